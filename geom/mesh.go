// Package geom provides the spatial primitives shared by the overlap
// tester: transforms, rays, indexed triangle meshes and bounding boxes.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Mesh is an indexed triangle mesh. Triangles holds flattened index
// triples into Vertices, three entries per triangle.
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles []int
}

// TriangleCount returns the number of index triples
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Triangle returns the three corner positions of triangle i
func (m *Mesh) Triangle(i int) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	return m.Vertices[m.Triangles[3*i]],
		m.Vertices[m.Triangles[3*i+1]],
		m.Vertices[m.Triangles[3*i+2]]
}

// Bounds computes the axis-aligned bounding box of the vertices.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}

	bounds := AABB{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bounds.Min = mgl64.Vec3{
			min(bounds.Min.X(), v.X()),
			min(bounds.Min.Y(), v.Y()),
			min(bounds.Min.Z(), v.Z()),
		}
		bounds.Max = mgl64.Vec3{
			max(bounds.Max.X(), v.X()),
			max(bounds.Max.Y(), v.Y()),
			max(bounds.Max.Z(), v.Z()),
		}
	}

	return bounds
}

// Centroid returns the mean of the vertex positions, or the origin for
// an empty mesh
func (m *Mesh) Centroid() mgl64.Vec3 {
	if len(m.Vertices) == 0 {
		return mgl64.Vec3{}
	}

	var sum mgl64.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}

	return sum.Mul(1.0 / float64(len(m.Vertices)))
}

// CopyFrom replaces the mesh content with a copy of src, reusing the
// existing buffer capacity. Used by deforming sources to bake pose
// snapshots without allocating per call.
func (m *Mesh) CopyFrom(src *Mesh) {
	m.Vertices = append(m.Vertices[:0], src.Vertices...)
	m.Triangles = append(m.Triangles[:0], src.Triangles...)
}
