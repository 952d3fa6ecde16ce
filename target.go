package probe

import (
	"errors"

	"github.com/akmonengine/probe/geom"
)

// ErrNoMeshSource is returned when a target exposes no geometry to test
// against. The collision proxy is detached rather than left stale.
var ErrNoMeshSource = errors.New("probe: target has no mesh source")

// MeshSource supplies the mesh a target should be collision-tested
// against, in the target's local coordinate frame.
type MeshSource interface {
	// CollisionMesh returns the mesh to attach to the collision proxy.
	// Implementations may bake into scratch and return it, or return a
	// shared mesh and leave scratch untouched.
	CollisionMesh(scratch *geom.Mesh) *geom.Mesh
}

// StaticMesh exposes a shared, immutable mesh without copying it
type StaticMesh struct {
	Mesh *geom.Mesh
}

func (s StaticMesh) CollisionMesh(*geom.Mesh) *geom.Mesh {
	return s.Mesh
}

// SkinnedMesh snapshots a deformable mesh. Bake writes the current pose
// into the destination buffer; it runs once per attach, so the snapshot
// is only as fresh as the last Attach or TestObject call.
type SkinnedMesh struct {
	Bake func(dst *geom.Mesh)
}

func (s SkinnedMesh) CollisionMesh(scratch *geom.Mesh) *geom.Mesh {
	s.Bake(scratch)
	return scratch
}

// Target is an object a probe can be tested against
type Target struct {
	Transform geom.Transform
	Source    MeshSource
}
