// Package probe implements a narrow-phase mesh-vs-mesh overlap test
// driven by ray casting: a small probe volume is tested against an
// arbitrary target mesh through a reusable collision proxy, first with
// coarse per-vertex containment samples, then with an exhaustive edge
// sweep. The result is a best-effort boolean; measure-zero contacts
// that fall between samples can be missed.
package probe

import (
	"math"

	"github.com/akmonengine/probe/collider"
	"github.com/akmonengine/probe/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// segmentEpsilon widens the betweenness bounds so points exactly on
	// a surface crossing still classify as contained
	segmentEpsilon = 1e-9

	// degenerateEpsilon is the edge length below which an edge is
	// skipped as degenerate
	degenerateEpsilon = 1e-9
)

// IntersectionTester owns the reusable collision proxy and the scratch
// buffers shared across calls: the baked-mesh buffer for deformable
// sources and the 3-vertex buffer of the edge sweep. A single instance
// is not safe for concurrent use; create one per goroutine.
type IntersectionTester struct {
	proxy    *collider.Collider
	bakeMesh geom.Mesh
	corners  [3]mgl64.Vec3
}

func NewIntersectionTester() *IntersectionTester {
	return &IntersectionTester{proxy: collider.New()}
}

// Proxy exposes the underlying collider, mainly for inspection
func (it *IntersectionTester) Proxy() *collider.Collider {
	return it.proxy
}

// Attach rebinds the collision proxy to the target's current geometry.
// It must run before TestRay, CastRay or TestEdges can be trusted for a
// given target; TestObject calls it exactly once per invocation. A
// target without a mesh source detaches the proxy and returns
// ErrNoMeshSource.
func (it *IntersectionTester) Attach(target *Target) error {
	if target.Source == nil {
		it.proxy.SetMesh(nil)
		return ErrNoMeshSource
	}

	it.proxy.SetMesh(target.Source.CollisionMesh(&it.bakeMesh))
	return nil
}

// OnSegment reports whether c lies on the segment from a to b,
// endpoints included. The comparison is epsilon-tolerant and symmetric
// in a and b.
func OnSegment(a, c, b mgl64.Vec3) bool {
	ab := b.Sub(a)
	projection := c.Sub(a).Dot(ab)

	return projection >= -segmentEpsilon && projection <= ab.LenSqr()+segmentEpsilon
}

// TestRay reports whether the ray's world-space origin lies inside or
// on the target volume. Two opposing casts are issued through the probe
// point, each pulled back by the bounding-sphere diameter plus the
// point's distance from the bounds center so both origins are
// guaranteed to clear the mesh; the point is contained iff it sits
// between the two surface crossings. A miss on either cast means not
// contained.
func (it *IntersectionTester) TestRay(ray geom.Ray, target geom.Transform) bool {
	local := ray.ToLocal(target)
	if local.Direction.LenSqr() < degenerateEpsilon*degenerateEpsilon {
		return false
	}

	direction := local.Direction.Normalize()
	center := it.proxy.Bounds().Center()
	pullback := it.proxy.BoundsDiameter() + local.Origin.Sub(center).Len()

	forward := geom.Ray{
		Origin:    local.Origin.Sub(direction.Mul(pullback)),
		Direction: direction,
	}
	front, ok := it.proxy.Raycast(forward, 2*pullback)
	if !ok {
		return false
	}

	backward := geom.Ray{
		Origin:    local.Origin.Add(direction.Mul(pullback)),
		Direction: direction.Mul(-1),
	}
	behind, ok := it.proxy.Raycast(backward, 2*pullback)
	if !ok {
		return false
	}

	// Both casts resolving to one point means the line pierces a
	// zero-thickness surface; only a probe point on that surface counts
	if front.Point.ApproxEqualThreshold(behind.Point, segmentEpsilon) {
		return local.Origin.ApproxEqualThreshold(front.Point, segmentEpsilon)
	}

	return OnSegment(front.Point, local.Origin, behind.Point)
}

// CastRay transforms the ray into the target's local frame and issues a
// single cast against the proxy, for callers needing exact hit geometry
// rather than a containment verdict. The maximum distance is rescaled
// through the inverse transform of direction*maxDistance, so under
// non-uniform scale the effective range depends on the ray direction.
// The hit point and normal are mapped back to world space; Distance
// stays in the target's local frame.
func (it *IntersectionTester) CastRay(ray geom.Ray, maxDistance float64, target geom.Transform) (collider.Hit, bool) {
	origin := target.PointToLocal(ray.Origin)
	reach := target.VectorToLocal(ray.Direction.Mul(maxDistance))

	localMax := reach.Len()
	if localMax < degenerateEpsilon {
		return collider.Hit{}, false
	}

	hit, ok := it.proxy.Raycast(geom.Ray{
		Origin:    origin,
		Direction: reach.Mul(1 / localMax),
	}, localMax)
	if !ok {
		return collider.Hit{}, false
	}

	hit.Point = target.PointToWorld(hit.Point)
	hit.Normal = target.NormalToWorld(hit.Normal)

	return hit, true
}

// TestEdges sweeps every directed edge of every probe triangle against
// the attached target, in the target's local space. Each edge is probed
// with the same double-cast technique as TestRay, pulled back far
// enough past both endpoints to clear the bounding sphere; with forward
// hit A, behind hit B and edge endpoints C, D the edge qualifies when
// any of C, D lies between A and B, or A, B lies between C and D. The
// first qualifying edge returns true.
//
// This is the robustness fallback for probes whose vertices all lie
// outside the target while an edge still passes through it.
func (it *IntersectionTester) TestEdges(p *Probe, target geom.Transform) bool {
	diameter := it.proxy.BoundsDiameter()
	center := it.proxy.Bounds().Center()

	for tri := 0; tri+2 < len(p.Triangles); tri += 3 {
		for i := 0; i < 3; i++ {
			world := p.Transform.PointToWorld(p.Vertices[p.Triangles[tri+i]])
			it.corners[i] = target.PointToLocal(world)
		}

		for i := 0; i < 3; i++ {
			start := it.corners[i]
			end := it.corners[(i+1)%3]

			edge := end.Sub(start)
			length := edge.Len()
			if length < degenerateEpsilon {
				continue // degenerate edge
			}
			direction := edge.Mul(1 / length)

			pullback := length + diameter +
				math.Max(start.Sub(center).Len(), end.Sub(center).Len())
			reach := 2 * pullback

			front, ok := it.proxy.Raycast(geom.Ray{
				Origin:    start.Sub(direction.Mul(pullback)),
				Direction: direction,
			}, reach)
			if !ok {
				continue
			}

			behind, ok := it.proxy.Raycast(geom.Ray{
				Origin:    end.Add(direction.Mul(pullback)),
				Direction: direction.Mul(-1),
			}, reach)
			if !ok {
				continue
			}

			// A coincident hit pair means the edge line pierces a
			// zero-thickness surface; it only counts inside the edge
			if front.Point.ApproxEqualThreshold(behind.Point, segmentEpsilon) {
				if OnSegment(start, front.Point, end) {
					return true
				}
				continue
			}

			if OnSegment(front.Point, start, behind.Point) ||
				OnSegment(front.Point, end, behind.Point) ||
				OnSegment(start, front.Point, end) ||
				OnSegment(start, behind.Point, end) {
				return true
			}
		}
	}

	return false
}

// TestObject reports whether the probe overlaps, contains or is
// contained by the target. The proxy is attached once and disjoint
// world bounds reject immediately; otherwise each precomputed probe ray
// is tried through TestRay, short-circuiting on the first contained
// sample, and if none land the exhaustive TestEdges sweep decides.
func (it *IntersectionTester) TestObject(p *Probe, target *Target) (bool, error) {
	if err := it.Attach(target); err != nil {
		return false, err
	}

	probeBounds := p.Transform.BoundsToWorld(p.Bounds())
	targetBounds := target.Transform.BoundsToWorld(it.proxy.Bounds())
	if !probeBounds.Overlaps(targetBounds) {
		return false, nil
	}

	for _, ray := range p.Rays {
		if it.TestRay(ray.ToWorld(p.Transform), target.Transform) {
			return true, nil
		}
	}

	return it.TestEdges(p, target.Transform), nil
}
