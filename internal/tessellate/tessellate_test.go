package tessellate

import (
	"math"
	"testing"

	"cad-engine/internal/geom"
	"cad-engine/internal/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestSquareNotCentered(t *testing.T) {
	m := Square(geom.NewSize(2, 2, 0), false)

	assert.Equal(t, []vec3.T{
		{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0},
	}, m.Vertices)
	assert.Equal(t, []mesh.Triangle{
		{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}},
		{{0, 0, 0}, {2, 2, 0}, {0, 2, 0}},
	}, m.Triangles)
}

func TestSquareCentered(t *testing.T) {
	m := Square(geom.NewSize(2, 4, 0), true)
	assert.Equal(t, []vec3.T{
		{-1, -2, 0}, {1, -2, 0}, {1, 2, 0}, {-1, 2, 0},
	}, m.Vertices)
	assert.Len(t, m.Triangles, 2)
}

func TestCube(t *testing.T) {
	m := Cube(geom.NewSize(2, 2, 2))

	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Triangles, 12)
	// All corner combinations of ±1 on each axis appear exactly once.
	seen := make(map[vec3.T]int)
	for _, v := range m.Vertices {
		seen[v]++
	}
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				assert.Equal(t, 1, seen[vec3.T{x, y, z}], "corner (%v,%v,%v)", x, y, z)
			}
		}
	}
}

func TestCircleFanFromOrigin(t *testing.T) {
	m := Circle(5, 3)

	require.Len(t, m.Triangles, 3)
	for i, tri := range m.Triangles {
		assert.Equal(t, vec3.Zero, tri[0], "triangle %d apex", i)
		for _, corner := range tri[1:] {
			p := corner
			assert.InDelta(t, 5, p.Length(), 1e-12)
		}
	}
	// First perimeter point sits on +X at the radius.
	assert.Equal(t, vec3.T{5, 0, 0}, m.Vertices[1])
}

func TestCirclePerimeterAngles(t *testing.T) {
	const n = 7
	m := Circle(1, n)
	require.Len(t, m.Triangles, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := m.Vertices[1+i]
		assert.InDelta(t, math.Cos(a), p[0], 1e-12)
		assert.InDelta(t, math.Sin(a), p[1], 1e-12)
		assert.Zero(t, p[2])
	}
}

func TestCircleDegenerate(t *testing.T) {
	assert.Empty(t, Circle(5, 0).Triangles)
	assert.Empty(t, Circle(5, 2).Triangles)
}

func TestPolygonFanFromCentroid(t *testing.T) {
	points := []vec3.T{{0, 0, 0}, {3, 0, 0}, {3, 3, 0}, {0, 3, 0}}
	m := Polygon(points)

	require.Len(t, m.Triangles, 4)
	centroid := vec3.T{1.5, 1.5, 0}
	assert.Equal(t, centroid, m.Vertices[0])
	for _, tri := range m.Triangles {
		assert.Equal(t, centroid, tri[0])
	}
	// The fan closes the loop back to the first point.
	assert.Equal(t, points[3], m.Triangles[3][1])
	assert.Equal(t, points[0], m.Triangles[3][2])
}

func TestPolygonDegenerate(t *testing.T) {
	m := Polygon([]vec3.T{{0, 0, 0}, {1, 1, 1}})
	assert.Empty(t, m.Triangles)
	assert.Empty(t, m.Vertices)
}

func TestSphereGridCounts(t *testing.T) {
	m := Sphere(1, 4, 2)
	assert.Len(t, m.Triangles, 16) // slices * stacks * 2

	// Every point is on the unit sphere.
	for _, tri := range m.Triangles {
		for _, corner := range tri {
			p := corner
			assert.InDelta(t, 1, p.Length(), 1e-12)
		}
	}
}

func TestSphereDegenerate(t *testing.T) {
	assert.Empty(t, Sphere(1, 0, 2).Triangles)
	assert.Empty(t, Sphere(1, 4, 0).Triangles)
}

func TestCylinderCounts(t *testing.T) {
	m := Cylinder(1, 1, 2, 4)
	// 4 side quads * 2 + 4 top fan + 4 bottom fan.
	assert.Len(t, m.Triangles, 16)

	// Geometry spans z=0 to z=height.
	bounds := m.Bounds()
	assert.Equal(t, 0.0, bounds.Min[2])
	assert.Equal(t, 2.0, bounds.Max[2])
}

func TestCylinderTapered(t *testing.T) {
	m := Cylinder(2, 1, 3, 8)
	assert.Len(t, m.Triangles, 32)
	bounds := m.Bounds()
	// Bottom ring has radius 2, top ring radius 1.
	assert.InDelta(t, -2, bounds.Min[0], 1e-12)
	assert.InDelta(t, 2, bounds.Max[0], 1e-12)
}

func TestCylinderDegenerate(t *testing.T) {
	assert.Empty(t, Cylinder(1, 1, 2, 2).Triangles)
}

func TestPolyhedronFanPerFace(t *testing.T) {
	vertices := []vec3.T{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2, 3},
	}
	m := Polyhedron(vertices, faces)
	assert.Len(t, m.Triangles, 4)
	assert.Equal(t, vertices, m.Vertices)
}

func TestPolyhedronQuadFaceSplits(t *testing.T) {
	vertices := []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m := Polyhedron(vertices, [][]int{{0, 1, 2, 3}})
	require.Len(t, m.Triangles, 2)
	assert.Equal(t, mesh.Triangle{vertices[0], vertices[1], vertices[2]}, m.Triangles[0])
	assert.Equal(t, mesh.Triangle{vertices[0], vertices[2], vertices[3]}, m.Triangles[1])
}

func TestPolyhedronDropsBadFaces(t *testing.T) {
	vertices := []vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := [][]int{
		{0, 1},       // too short
		{0, 1, 7},    // index out of range
		{0, 1, 2},    // valid
		{-1, 0, 1},   // negative index
	}
	m := Polyhedron(vertices, faces)
	assert.Len(t, m.Triangles, 1)
}
