// Package config loads TOML scene descriptions for the probecheck tool.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Scene describes one probe and the targets it is tested against.
type Scene struct {
	Probe   Object   `toml:"probe"`
	Targets []Object `toml:"targets"`
}

// Object describes a single mesh in the scene.
type Object struct {
	Name  string `toml:"name"`
	Shape string `toml:"shape"` // box, plane or icosahedron

	Size   [3]float64 `toml:"size"`   // box full extents
	Radius float64    `toml:"radius"` // icosahedron circumradius
	Width  float64    `toml:"width"`  // plane extent along X
	Depth  float64    `toml:"depth"`  // plane extent along Z

	Position [3]float64 `toml:"position"`
	Rotation [3]float64 `toml:"rotation"` // euler angles in degrees, XYZ order
	Scale    [3]float64 `toml:"scale"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	var scene Scene
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	scene.applyDefaults()
	if err := scene.validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}

	return &scene, nil
}

// applyDefaults fills zero values with usable geometry: unit scale,
// unit box extents, unit radius.
func (s *Scene) applyDefaults() {
	s.Probe.applyDefaults()
	for i := range s.Targets {
		s.Targets[i].applyDefaults()
	}
}

func (o *Object) applyDefaults() {
	if o.Scale == [3]float64{} {
		o.Scale = [3]float64{1, 1, 1}
	}
	if o.Size == [3]float64{} {
		o.Size = [3]float64{1, 1, 1}
	}
	if o.Radius == 0 {
		o.Radius = 1
	}
	if o.Width == 0 {
		o.Width = 1
	}
	if o.Depth == 0 {
		o.Depth = 1
	}
}

func (s *Scene) validate() error {
	if s.Probe.Shape == "" {
		return fmt.Errorf("probe has no shape")
	}
	if len(s.Targets) == 0 {
		return fmt.Errorf("no targets defined")
	}

	for i, target := range s.Targets {
		if target.Shape == "" {
			return fmt.Errorf("target %d (%q) has no shape", i, target.Name)
		}
	}

	return nil
}
