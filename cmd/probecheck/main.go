// Command probecheck loads a TOML scene description and reports, for
// each target, whether the probe volume overlaps it. With -watch it
// keeps running and re-tests whenever the scene file changes, which is
// handy while tweaking a scene in an editor.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/akmonengine/probe"
	"github.com/akmonengine/probe/internal/config"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

func main() {
	scenePath := flag.String("scene", "scene.toml", "path to the scene description")
	watch := flag.Bool("watch", false, "re-run the tests when the scene file changes")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "probecheck",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(logger, *scenePath); err != nil {
		logger.Fatal("scene check failed", "err", err)
	}

	if !*watch {
		return
	}

	if err := watchScene(logger, *scenePath); err != nil {
		logger.Fatal("watching scene", "err", err)
	}
}

// run loads the scene and tests the probe against every target.
func run(logger *log.Logger, path string) error {
	scene, err := config.Load(path)
	if err != nil {
		return err
	}

	p, err := buildProbe(scene.Probe)
	if err != nil {
		return err
	}
	logger.Debug("probe built",
		"shape", scene.Probe.Shape,
		"rays", len(p.Rays),
		"triangles", len(p.Triangles)/3,
	)

	tester := probe.NewIntersectionTester()

	for _, obj := range scene.Targets {
		target, err := buildTarget(obj)
		if err != nil {
			return err
		}

		start := time.Now()
		overlap, err := tester.TestObject(p, target)
		if err != nil {
			return err
		}

		logger.Info("tested",
			"target", obj.Name,
			"overlap", overlap,
			"duration", time.Since(start),
		)
	}

	return nil
}

// watchScene re-runs the tests on every write to the scene file.
func watchScene(logger *log.Logger, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	logger.Info("watching scene file", "path", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("scene changed", "event", event.Op.String())
			if err := run(logger, path); err != nil {
				// Keep watching, the next save may fix the scene
				logger.Error("scene check failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)
		}
	}
}
