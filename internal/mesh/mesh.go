// Package mesh holds the accumulated result of evaluating a shape
// description: a vertex list, a triangle list with concrete corner points
// (no index buffer), an optional tree of child meshes for traceability, and
// the geometric modifiers applied on the way up.
package mesh

import (
	"cad-engine/internal/geom"
	"cad-engine/internal/shape"

	"github.com/ungerik/go3d/float64/vec3"
)

// Triangle is one face as three concrete corner points. Winding is whatever
// the tessellation produced; no normalization is applied.
type Triangle [3]vec3.T

// Mesh is the output of one evaluated description node. Vertices and
// Triangles are flat over the whole subtree; Children retains the per-child
// outputs a Group was assembled from; Applied records the geometric
// modifiers applied to this output, innermost first.
type Mesh struct {
	Vertices  []vec3.T
	Triangles []Triangle
	Children  []*Mesh
	Applied   []shape.Modifier
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// Append concatenates child's vertices and triangles onto m in order and
// retains child in m.Children. Triangles are values, so the child and the
// parent never share geometry storage.
func (m *Mesh) Append(child *Mesh) {
	m.Vertices = append(m.Vertices, child.Vertices...)
	m.Triangles = append(m.Triangles, child.Triangles...)
	m.Children = append(m.Children, child)
}

// Transform maps every vertex and triangle corner of m through a, in place,
// recursing into retained children so the whole trace stays in one frame.
func (m *Mesh) Transform(a geom.Affine) {
	for i := range m.Vertices {
		m.Vertices[i] = a.Apply(m.Vertices[i])
	}
	for i := range m.Triangles {
		m.Triangles[i][0] = a.Apply(m.Triangles[i][0])
		m.Triangles[i][1] = a.Apply(m.Triangles[i][1])
		m.Triangles[i][2] = a.Apply(m.Triangles[i][2])
	}
	for _, c := range m.Children {
		c.Transform(a)
	}
}

// Record appends mod to the provenance list.
func (m *Mesh) Record(mod shape.Modifier) {
	m.Applied = append(m.Applied, mod)
}

// TriangleCount returns the number of triangles in the flat list.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices in the flat list.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Empty reports whether the mesh carries no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Triangles) == 0
}
