package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEpsilon = 1e-9

func createTestTransform() Transform {
	return NewTransformAt(mgl64.Vec3{1, 2, 3}).
		WithRotation(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})).
		WithScale(mgl64.Vec3{2, 3, 4})
}

func TestTransformPointRoundTrip(t *testing.T) {
	t.Run("identity transform leaves points untouched", func(t *testing.T) {
		transform := NewTransform()
		point := mgl64.Vec3{1.5, -2.5, 3.5}

		world := transform.PointToWorld(point)
		if !world.ApproxEqualThreshold(point, testEpsilon) {
			t.Errorf("Expected %v, got %v", point, world)
		}
	})

	t.Run("non-uniform scale with rotation round-trips", func(t *testing.T) {
		transform := createTestTransform()
		point := mgl64.Vec3{0.5, -1.25, 2}

		back := transform.PointToLocal(transform.PointToWorld(point))
		if !back.ApproxEqualThreshold(point, testEpsilon) {
			t.Errorf("Expected round-trip %v, got %v", point, back)
		}
	})

	t.Run("translation applies to points only", func(t *testing.T) {
		transform := NewTransformAt(mgl64.Vec3{10, 0, 0})
		vector := mgl64.Vec3{1, 0, 0}

		world := transform.VectorToWorld(vector)
		if !world.ApproxEqualThreshold(vector, testEpsilon) {
			t.Errorf("Expected vector %v unaffected by translation, got %v", vector, world)
		}

		point := transform.PointToWorld(mgl64.Vec3{1, 0, 0})
		expected := mgl64.Vec3{11, 0, 0}
		if !point.ApproxEqualThreshold(expected, testEpsilon) {
			t.Errorf("Expected point %v, got %v", expected, point)
		}
	})
}

func TestTransformVectorRoundTrip(t *testing.T) {
	transform := createTestTransform()
	vector := mgl64.Vec3{-1, 2, 0.5}

	back := transform.VectorToLocal(transform.VectorToWorld(vector))
	if !back.ApproxEqualThreshold(vector, testEpsilon) {
		t.Errorf("Expected round-trip %v, got %v", vector, back)
	}
}

func TestTransformScaleApplies(t *testing.T) {
	transform := NewTransform().WithScale(mgl64.Vec3{2, 3, 4})

	world := transform.PointToWorld(mgl64.Vec3{1, 1, 1})
	expected := mgl64.Vec3{2, 3, 4}
	if !world.ApproxEqualThreshold(expected, testEpsilon) {
		t.Errorf("Expected %v, got %v", expected, world)
	}
}

func TestNormalToWorld(t *testing.T) {
	t.Run("stays perpendicular under non-uniform scale", func(t *testing.T) {
		transform := NewTransform().WithScale(mgl64.Vec3{1, 4, 1})

		// A plane through (1,0,0) and (0,1,0) has local normal (1,1,0)/sqrt2.
		// Scaling y by 4 moves the second point to (0,4,0); the transformed
		// normal must stay perpendicular to the transformed tangent.
		normal := mgl64.Vec3{1, 1, 0}.Normalize()
		tangent := mgl64.Vec3{-1, 1, 0} // from (1,0,0) to (0,1,0)

		worldNormal := transform.NormalToWorld(normal)
		worldTangent := transform.VectorToWorld(tangent)

		if dot := worldNormal.Dot(worldTangent); math.Abs(dot) > testEpsilon {
			t.Errorf("Expected perpendicular normal, got dot product %v", dot)
		}
		if !mgl64.FloatEqualThreshold(worldNormal.Len(), 1, testEpsilon) {
			t.Errorf("Expected unit normal, got length %v", worldNormal.Len())
		}
	})

	t.Run("zero normal is returned unchanged", func(t *testing.T) {
		transform := createTestTransform()

		result := transform.NormalToWorld(mgl64.Vec3{})
		if result != (mgl64.Vec3{}) {
			t.Errorf("Expected zero vector, got %v", result)
		}
	})
}

func TestBoundsToWorld(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	t.Run("translation shifts the box", func(t *testing.T) {
		transform := NewTransformAt(mgl64.Vec3{10, 0, 0})

		world := transform.BoundsToWorld(box)
		if !world.Min.ApproxEqualThreshold(mgl64.Vec3{9, -1, -1}, testEpsilon) ||
			!world.Max.ApproxEqualThreshold(mgl64.Vec3{11, 1, 1}, testEpsilon) {
			t.Errorf("Expected shifted box, got %v", world)
		}
	})

	t.Run("rotation encloses the rotated corners", func(t *testing.T) {
		transform := NewTransform().
			WithRotation(mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}))

		world := transform.BoundsToWorld(box)
		if !mgl64.FloatEqualThreshold(world.Max.X(), math.Sqrt2, testEpsilon) ||
			!mgl64.FloatEqualThreshold(world.Min.X(), -math.Sqrt2, testEpsilon) {
			t.Errorf("Expected x extent %v, got %v", math.Sqrt2, world)
		}
		if !mgl64.FloatEqualThreshold(world.Max.Z(), 1, testEpsilon) {
			t.Errorf("Expected z extent unchanged, got %v", world.Max.Z())
		}
	})

	t.Run("scale stretches per axis", func(t *testing.T) {
		transform := NewTransform().WithScale(mgl64.Vec3{2, 3, 4})

		world := transform.BoundsToWorld(box)
		if !world.Max.ApproxEqualThreshold(mgl64.Vec3{2, 3, 4}, testEpsilon) {
			t.Errorf("Expected scaled box, got %v", world)
		}
	})
}

func TestRaySpaceConversion(t *testing.T) {
	t.Run("world and local conversions invert each other", func(t *testing.T) {
		transform := createTestTransform()
		ray := NewRay(mgl64.Vec3{1, 0, -2}, mgl64.Vec3{0, 0, 1})

		back := ray.ToWorld(transform).ToLocal(transform)
		if !back.Origin.ApproxEqualThreshold(ray.Origin, testEpsilon) {
			t.Errorf("Expected origin %v, got %v", ray.Origin, back.Origin)
		}
		if !back.Direction.ApproxEqualThreshold(ray.Direction, testEpsilon) {
			t.Errorf("Expected direction %v, got %v", ray.Direction, back.Direction)
		}
	})

	t.Run("At walks along the direction", func(t *testing.T) {
		ray := NewRay(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 1, 0})

		point := ray.At(2.5)
		expected := mgl64.Vec3{1, 3.5, 1}
		if !point.ApproxEqualThreshold(expected, testEpsilon) {
			t.Errorf("Expected %v, got %v", expected, point)
		}
	})
}
