package mesh

import "github.com/ungerik/go3d/float64/vec3"

// Box is an axis-aligned bounding box.
type Box struct {
	Min vec3.T
	Max vec3.T
}

// Center returns the midpoint of the box.
func (b Box) Center() vec3.T {
	return vec3.T{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// Extents returns the size of the box on each axis.
func (b Box) Extents() vec3.T {
	return vec3.T{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}

// Bounds returns the axis-aligned box enclosing every triangle corner.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() Box {
	if len(m.Triangles) == 0 {
		return Box{}
	}
	b := Box{Min: m.Triangles[0][0], Max: m.Triangles[0][0]}
	for _, t := range m.Triangles {
		for _, p := range t {
			for axis := 0; axis < 3; axis++ {
				if p[axis] < b.Min[axis] {
					b.Min[axis] = p[axis]
				}
				if p[axis] > b.Max[axis] {
					b.Max[axis] = p[axis]
				}
			}
		}
	}
	return b
}
