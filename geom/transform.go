package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform maps a local coordinate frame to world space.
// Points are scaled, then rotated, then translated.
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
	Scale           mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position:        mgl64.Vec3{0, 0, 0},
		Rotation:        mgl64.QuatIdent(),
		InverseRotation: mgl64.QuatIdent(),
		Scale:           mgl64.Vec3{1, 1, 1},
	}
}

// NewTransformAt creates an identity transform translated to position
func NewTransformAt(position mgl64.Vec3) Transform {
	t := NewTransform()
	t.Position = position
	return t
}

// WithRotation returns a copy of the transform with the rotation and its
// cached inverse replaced
func (t Transform) WithRotation(rotation mgl64.Quat) Transform {
	t.Rotation = rotation
	t.InverseRotation = rotation.Inverse()
	return t
}

// WithScale returns a copy of the transform with the scale replaced.
// Scale components must be non-zero for the inverse mappings to hold.
func (t Transform) WithScale(scale mgl64.Vec3) Transform {
	t.Scale = scale
	return t
}

// PointToWorld maps a local-space point to world space
func (t Transform) PointToWorld(point mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(mulElem(point, t.Scale)))
}

// PointToLocal maps a world-space point to local space
func (t Transform) PointToLocal(point mgl64.Vec3) mgl64.Vec3 {
	return divElem(t.InverseRotation.Rotate(point.Sub(t.Position)), t.Scale)
}

// VectorToWorld maps a local-space vector to world space, ignoring translation
func (t Transform) VectorToWorld(vector mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(mulElem(vector, t.Scale))
}

// VectorToLocal maps a world-space vector to local space, ignoring translation
func (t Transform) VectorToLocal(vector mgl64.Vec3) mgl64.Vec3 {
	return divElem(t.InverseRotation.Rotate(vector), t.Scale)
}

// NormalToWorld maps a local-space surface normal to world space.
// Normals transform by the inverse-transpose, so non-uniform scale
// divides per component instead of multiplying. The result is
// re-normalized; a zero normal is returned unchanged.
func (t Transform) NormalToWorld(normal mgl64.Vec3) mgl64.Vec3 {
	world := t.Rotation.Rotate(divElem(normal, t.Scale))
	if world.LenSqr() == 0 {
		return world
	}
	return world.Normalize()
}

// BoundsToWorld maps a local-space box to the axis-aligned box
// enclosing its world-space image, by transforming all eight corners
func (t Transform) BoundsToWorld(box AABB) AABB {
	var world AABB
	for i := 0; i < 8; i++ {
		corner := box.Min
		if i&1 != 0 {
			corner[0] = box.Max[0]
		}
		if i&2 != 0 {
			corner[1] = box.Max[1]
		}
		if i&4 != 0 {
			corner[2] = box.Max[2]
		}

		point := t.PointToWorld(corner)
		if i == 0 {
			world = AABB{Min: point, Max: point}
			continue
		}
		for axis := 0; axis < 3; axis++ {
			world.Min[axis] = min(world.Min[axis], point[axis])
			world.Max[axis] = max(world.Max[axis], point[axis])
		}
	}

	return world
}

func mulElem(v, s mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * s.X(), v.Y() * s.Y(), v.Z() * s.Z()}
}

func divElem(v, s mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X() / s.X(), v.Y() / s.Y(), v.Z() / s.Z()}
}
