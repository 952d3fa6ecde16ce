package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewBoxMesh creates a closed box mesh centered on center, with full
// extents given by size (2 triangles per face, 12 total)
func NewBoxMesh(center, size mgl64.Vec3) *Mesh {
	half := size.Mul(0.5)

	vertices := []mgl64.Vec3{
		center.Add(mgl64.Vec3{-half.X(), -half.Y(), -half.Z()}), // 0: left-bottom-back
		center.Add(mgl64.Vec3{+half.X(), -half.Y(), -half.Z()}), // 1: right-bottom-back
		center.Add(mgl64.Vec3{+half.X(), +half.Y(), -half.Z()}), // 2: right-top-back
		center.Add(mgl64.Vec3{-half.X(), +half.Y(), -half.Z()}), // 3: left-top-back
		center.Add(mgl64.Vec3{-half.X(), -half.Y(), +half.Z()}), // 4: left-bottom-front
		center.Add(mgl64.Vec3{+half.X(), -half.Y(), +half.Z()}), // 5: right-bottom-front
		center.Add(mgl64.Vec3{+half.X(), +half.Y(), +half.Z()}), // 6: right-top-front
		center.Add(mgl64.Vec3{-half.X(), +half.Y(), +half.Z()}), // 7: left-top-front
	}

	triangles := []int{
		// Back face (Z-)
		0, 1, 2, 0, 2, 3,
		// Front face (Z+)
		4, 6, 5, 4, 7, 6,
		// Left face (X-)
		0, 3, 7, 0, 7, 4,
		// Right face (X+)
		1, 5, 6, 1, 6, 2,
		// Bottom face (Y-)
		0, 4, 5, 0, 5, 1,
		// Top face (Y+)
		3, 2, 6, 3, 6, 7,
	}

	return &Mesh{Vertices: vertices, Triangles: triangles}
}

// NewPlaneMesh creates a flat rectangle in the XZ plane centered on
// center, spanning width along X and depth along Z. The mesh has zero
// thickness and is not a closed volume.
func NewPlaneMesh(center mgl64.Vec3, width, depth float64) *Mesh {
	halfW := width * 0.5
	halfD := depth * 0.5

	vertices := []mgl64.Vec3{
		center.Add(mgl64.Vec3{-halfW, 0, -halfD}), // 0: left-back
		center.Add(mgl64.Vec3{+halfW, 0, -halfD}), // 1: right-back
		center.Add(mgl64.Vec3{+halfW, 0, +halfD}), // 2: right-front
		center.Add(mgl64.Vec3{-halfW, 0, +halfD}), // 3: left-front
	}

	triangles := []int{
		0, 2, 1,
		0, 3, 2,
	}

	return &Mesh{Vertices: vertices, Triangles: triangles}
}

// NewIcosahedronMesh creates a closed icosahedron mesh centered on
// center, with all 12 vertices at distance radius from the center
func NewIcosahedronMesh(center mgl64.Vec3, radius float64) *Mesh {
	phi := (1.0 + math.Sqrt(5.0)) / 2.0

	// Canonical vertices (±1, ±phi, 0) have length sqrt(1+phi²)
	scale := radius / math.Sqrt(1+phi*phi)

	vertices := []mgl64.Vec3{
		center.Add(mgl64.Vec3{-1, phi, 0}.Mul(scale)),  // 0
		center.Add(mgl64.Vec3{1, phi, 0}.Mul(scale)),   // 1
		center.Add(mgl64.Vec3{-1, -phi, 0}.Mul(scale)), // 2
		center.Add(mgl64.Vec3{1, -phi, 0}.Mul(scale)),  // 3
		center.Add(mgl64.Vec3{0, -1, phi}.Mul(scale)),  // 4
		center.Add(mgl64.Vec3{0, 1, phi}.Mul(scale)),   // 5
		center.Add(mgl64.Vec3{0, -1, -phi}.Mul(scale)), // 6
		center.Add(mgl64.Vec3{0, 1, -phi}.Mul(scale)),  // 7
		center.Add(mgl64.Vec3{phi, 0, -1}.Mul(scale)),  // 8
		center.Add(mgl64.Vec3{phi, 0, 1}.Mul(scale)),   // 9
		center.Add(mgl64.Vec3{-phi, 0, -1}.Mul(scale)), // 10
		center.Add(mgl64.Vec3{-phi, 0, 1}.Mul(scale)),  // 11
	}

	triangles := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return &Mesh{Vertices: vertices, Triangles: triangles}
}
