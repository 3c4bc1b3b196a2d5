package mesh

import (
	"testing"

	"cad-engine/internal/geom"
	"cad-engine/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func square(offset float64) *Mesh {
	m := New()
	a := vec3.T{offset, 0, 0}
	b := vec3.T{offset + 1, 0, 0}
	c := vec3.T{offset + 1, 1, 0}
	d := vec3.T{offset, 1, 0}
	m.Vertices = append(m.Vertices, a, b, c, d)
	m.Triangles = append(m.Triangles, Triangle{a, b, c}, Triangle{a, c, d})
	return m
}

func TestAppendConcatenatesAndRetains(t *testing.T) {
	parent := New()
	left := square(0)
	right := square(5)
	parent.Append(left)
	parent.Append(right)

	assert.Equal(t, 4, parent.TriangleCount())
	assert.Equal(t, 8, parent.VertexCount())
	require.Len(t, parent.Children, 2)
	assert.Same(t, left, parent.Children[0])
	assert.Same(t, right, parent.Children[1])
	// Flat list order matches child order.
	assert.Equal(t, left.Triangles[0], parent.Triangles[0])
	assert.Equal(t, right.Triangles[1], parent.Triangles[3])
}

func TestTransformRecursesIntoChildren(t *testing.T) {
	parent := New()
	child := square(0)
	parent.Append(child)

	parent.Transform(geom.Translation(vec3.T{0, 0, 7}))

	assert.Equal(t, vec3.T{0, 0, 7}, parent.Vertices[0])
	// The retained child moved too, so the whole trace is in one frame.
	assert.Equal(t, vec3.T{0, 0, 7}, child.Vertices[0])
	assert.Equal(t, vec3.T{1, 0, 7}, child.Triangles[0][1])
}

func TestRecord(t *testing.T) {
	m := square(0)
	mod := shape.Translate{Offset: vec3.T{1, 2, 3}}
	m.Record(mod)
	require.Len(t, m.Applied, 1)
	assert.Equal(t, mod, m.Applied[0])
}

func TestBounds(t *testing.T) {
	m := New()
	m.Triangles = append(m.Triangles, Triangle{
		{-1, 2, 0}, {3, -4, 1}, {0, 0, 5},
	})
	b := m.Bounds()
	assert.Equal(t, vec3.T{-1, -4, 0}, b.Min)
	assert.Equal(t, vec3.T{3, 2, 5}, b.Max)
	assert.Equal(t, vec3.T{1, -1, 2.5}, b.Center())
	assert.Equal(t, vec3.T{4, 6, 5}, b.Extents())
}

func TestBoundsEmpty(t *testing.T) {
	assert.Equal(t, Box{}, New().Bounds())
	assert.True(t, New().Empty())
}
