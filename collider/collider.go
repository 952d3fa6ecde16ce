// Package collider implements the reusable collision proxy the overlap
// tester ray-casts against. A single collider is rebound to the mesh of
// each target before testing, so casts always happen in that target's
// local coordinate frame with the collider parked at identity.
package collider

import (
	"math"

	"github.com/akmonengine/probe/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// detEpsilon rejects rays parallel to a triangle plane
	detEpsilon = 1e-12

	// baryEpsilon widens the barycentric bounds so rays passing exactly
	// through shared edges or vertices of a closed mesh still register
	baryEpsilon = 1e-9

	// tMin rejects hits at the cast origin itself
	tMin = 1e-9
)

// Hit describes a ray intersection with the attached mesh.
// Normal is the geometric triangle normal, oriented by winding.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Triangle int
}

// Collider is a long-lived mesh collider whose backing mesh reference is
// swapped in before each use. Not safe for concurrent use.
type Collider struct {
	mesh     *geom.Mesh
	bounds   geom.AABB
	diameter float64
}

func New() *Collider {
	return &Collider{}
}

// SetMesh rebinds the collider to a mesh and recomputes its bounds.
// A nil mesh detaches the collider; every cast then misses.
func (c *Collider) SetMesh(mesh *geom.Mesh) {
	c.mesh = mesh
	if mesh == nil {
		c.bounds = geom.AABB{}
		c.diameter = 0
		return
	}

	c.bounds = mesh.Bounds()
	c.diameter = 2 * c.bounds.Radius()
}

// Mesh returns the currently attached mesh, or nil
func (c *Collider) Mesh() *geom.Mesh {
	return c.mesh
}

// Bounds returns the AABB of the attached mesh in its local frame
func (c *Collider) Bounds() geom.AABB {
	return c.bounds
}

// BoundsDiameter returns the diameter of the bounding sphere around the
// attached mesh, used as the pull-back distance for outside-in casts
func (c *Collider) BoundsDiameter() float64 {
	return c.diameter
}

// Raycast casts against the attached mesh and returns the nearest hit
// within maxDistance. The ray direction must be unit length for the
// distance semantics to hold. Backfaces are not culled.
func (c *Collider) Raycast(ray geom.Ray, maxDistance float64) (Hit, bool) {
	if c.mesh == nil || len(c.mesh.Triangles) < 3 {
		return Hit{}, false
	}

	if !rayIntersectsAABB(ray, c.bounds, maxDistance) {
		return Hit{}, false
	}

	nearest := Hit{Distance: math.Inf(1)}
	found := false

	for i := 0; i < c.mesh.TriangleCount(); i++ {
		a, b, d := c.mesh.Triangle(i)

		t, ok := rayIntersectsTriangle(ray, a, b, d)
		if !ok || t > maxDistance || t >= nearest.Distance {
			continue
		}

		nearest = Hit{
			Point:    ray.At(t),
			Normal:   triangleNormal(a, b, d),
			Distance: t,
			Triangle: i,
		}
		found = true
	}

	if !found {
		return Hit{}, false
	}

	return nearest, true
}

// rayIntersectsTriangle implements the Möller-Trumbore intersection test
// and returns the distance along the ray when it hits
func rayIntersectsTriangle(ray geom.Ray, v0, v1, v2 mgl64.Vec3) (float64, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -detEpsilon && det < detEpsilon {
		return 0, false // ray is parallel to the triangle plane
	}

	invDet := 1.0 / det
	s := ray.Origin.Sub(v0)
	u := s.Dot(h) * invDet
	if u < -baryEpsilon || u > 1+baryEpsilon {
		return 0, false
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * invDet
	if v < -baryEpsilon || u+v > 1+baryEpsilon {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t <= tMin {
		return 0, false // line intersection behind or at the origin
	}

	return t, true
}

func triangleNormal(v0, v1, v2 mgl64.Vec3) mgl64.Vec3 {
	normal := v1.Sub(v0).Cross(v2.Sub(v0))
	if normal.LenSqr() == 0 {
		return normal
	}
	return normal.Normalize()
}

// rayIntersectsAABB is a slab-method early out: it reports whether the
// ray can touch the box within maxDistance
func rayIntersectsAABB(ray geom.Ray, box geom.AABB, maxDistance float64) bool {
	tEnter := 0.0
	tExit := maxDistance

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		dir := ray.Direction[axis]

		if math.Abs(dir) < detEpsilon {
			if origin < box.Min[axis] || origin > box.Max[axis] {
				return false
			}
			continue
		}

		t1 := (box.Min[axis] - origin) / dir
		t2 := (box.Max[axis] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tEnter = max(tEnter, t1)
		tExit = min(tExit, t2)
		if tEnter > tExit {
			return false
		}
	}

	return true
}
