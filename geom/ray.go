package geom

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and a direction. Callers relying
// on cast distances must keep Direction at unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ToWorld maps the ray from the transform's local space to world space.
// The direction is not re-normalized; under non-uniform scale its length
// changes with orientation.
func (r Ray) ToWorld(t Transform) Ray {
	return Ray{
		Origin:    t.PointToWorld(r.Origin),
		Direction: t.VectorToWorld(r.Direction),
	}
}

// ToLocal maps the ray from world space to the transform's local space.
// The direction is not re-normalized.
func (r Ray) ToLocal(t Transform) Ray {
	return Ray{
		Origin:    t.PointToLocal(r.Origin),
		Direction: t.VectorToLocal(r.Direction),
	}
}
