package probe

import (
	"github.com/akmonengine/probe/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Probe is the tester volume: a mesh with a set of precomputed
// local-space sample rays, typically one per vertex. It is immutable
// for the duration of a test call.
type Probe struct {
	// Transform maps the probe's local space to world space
	Transform geom.Transform
	// Rays are the ordered coarse samples tried before the edge sweep
	Rays []geom.Ray
	// Vertices is the probe mesh vertex buffer
	Vertices []mgl64.Vec3
	// Triangles holds flattened index triples into Vertices
	Triangles []int
}

// Bounds returns the local-space bounds of the probe vertices
func (p *Probe) Bounds() geom.AABB {
	mesh := geom.Mesh{Vertices: p.Vertices}
	return mesh.Bounds()
}

// NewProbe builds a probe from a mesh, deriving one sample ray per
// vertex aimed at the mesh centroid. The mesh buffers are shared, not
// copied.
func NewProbe(mesh *geom.Mesh, transform geom.Transform) *Probe {
	centroid := mesh.Centroid()

	rays := make([]geom.Ray, 0, len(mesh.Vertices))
	for _, vertex := range mesh.Vertices {
		direction := centroid.Sub(vertex)
		if direction.LenSqr() < degenerateEpsilon*degenerateEpsilon {
			// Vertex sits on the centroid, any direction samples it
			direction = mgl64.Vec3{0, 1, 0}
		} else {
			direction = direction.Normalize()
		}

		rays = append(rays, geom.Ray{Origin: vertex, Direction: direction})
	}

	return &Probe{
		Transform: transform,
		Rays:      rays,
		Vertices:  mesh.Vertices,
		Triangles: mesh.Triangles,
	}
}
