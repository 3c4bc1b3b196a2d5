// Package tessellate turns primitive parameters into triangles in the
// primitive's own local frame. Every function is pure and closed-form:
// identical parameters always produce bit-identical output. Degenerate
// parameters (too few points, segments, slices, or stacks) produce an empty
// mesh rather than an error; that policy belongs to the evaluator's
// degenerate-input handling.
package tessellate

import (
	"math"

	"cad-engine/internal/geom"
	"cad-engine/internal/mesh"

	"github.com/ungerik/go3d/float64/vec3"
)

// Circle tessellates a disc of the given radius on the XY plane: segments
// perimeter points at angle 2π·i/segments, fan-triangulated from the
// origin. segments < 3 yields an empty mesh. The fan apex is the first
// vertex.
func Circle(radius float64, segments int) *mesh.Mesh {
	m := mesh.New()
	if segments < 3 {
		return m
	}
	m.Vertices = append(m.Vertices, vec3.Zero)
	ring := make([]vec3.T, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = vec3.T{radius * math.Cos(a), radius * math.Sin(a), 0}
	}
	m.Vertices = append(m.Vertices, ring...)
	for i := 0; i < segments; i++ {
		m.Triangles = append(m.Triangles, mesh.Triangle{vec3.Zero, ring[i], ring[(i+1)%segments]})
	}
	return m
}

// Square tessellates a rectangle on the XY plane as two triangles. When
// centered, corners sit at ±half extents; otherwise the local origin is the
// first corner and the rectangle extends into the positive quadrant.
func Square(size geom.Size, centered bool) *mesh.Mesh {
	m := mesh.New()
	var x0, y0 float64
	if centered {
		x0 = -size.Width / 2
		y0 = -size.Height / 2
	}
	c := [4]vec3.T{
		{x0, y0, 0},
		{x0 + size.Width, y0, 0},
		{x0 + size.Width, y0 + size.Height, 0},
		{x0, y0 + size.Height, 0},
	}
	m.Vertices = append(m.Vertices, c[0], c[1], c[2], c[3])
	m.Triangles = append(m.Triangles,
		mesh.Triangle{c[0], c[1], c[2]},
		mesh.Triangle{c[0], c[2], c[3]},
	)
	return m
}

// Polygon fan-triangulates the given points from their centroid, closing
// the loop back to the first point. Fewer than 3 points yields an empty
// mesh. The centroid is the first vertex.
func Polygon(points []vec3.T) *mesh.Mesh {
	m := mesh.New()
	n := len(points)
	if n < 3 {
		return m
	}
	var centroid vec3.T
	for _, p := range points {
		centroid[0] += p[0]
		centroid[1] += p[1]
		centroid[2] += p[2]
	}
	centroid[0] /= float64(n)
	centroid[1] /= float64(n)
	centroid[2] /= float64(n)
	m.Vertices = append(m.Vertices, centroid)
	m.Vertices = append(m.Vertices, points...)
	for i := 0; i < n; i++ {
		m.Triangles = append(m.Triangles, mesh.Triangle{centroid, points[i], points[(i+1)%n]})
	}
	return m
}

// Cube tessellates an axis-aligned box centered at the origin: 8 corners at
// ±half extents, 12 triangles (2 per face), outward winding.
func Cube(size geom.Size) *mesh.Mesh {
	m := mesh.New()
	hx := size.Width / 2
	hy := size.Height / 2
	hz := size.Depth / 2
	v := [8]vec3.T{
		{-hx, -hy, -hz},
		{hx, -hy, -hz},
		{hx, hy, -hz},
		{-hx, hy, -hz},
		{-hx, -hy, hz},
		{hx, -hy, hz},
		{hx, hy, hz},
		{-hx, hy, hz},
	}
	m.Vertices = append(m.Vertices, v[:]...)
	quads := [6][4]int{
		{1, 0, 3, 2}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{5, 1, 2, 6}, // +X
	}
	for _, q := range quads {
		m.Triangles = append(m.Triangles,
			mesh.Triangle{v[q[0]], v[q[1]], v[q[2]]},
			mesh.Triangle{v[q[0]], v[q[2]], v[q[3]]},
		)
	}
	return m
}

// Sphere tessellates a ball centered at the origin as a latitude/longitude
// grid: stacks latitude bands between ±90° and slices longitude columns,
// 2 triangles per grid cell. The pole rows are ordinary grid rows, so the
// triangle count is always slices·stacks·2 (pole cells are degenerate on
// one edge). slices < 1 or stacks < 1 yields an empty mesh.
func Sphere(radius float64, slices, stacks int) *mesh.Mesh {
	m := mesh.New()
	if slices < 1 || stacks < 1 {
		return m
	}
	// rows[i][j] is the point at latitude -90° + 180°·i/stacks and
	// longitude 360°·j/slices.
	rows := make([][]vec3.T, stacks+1)
	for i := 0; i <= stacks; i++ {
		lat := -math.Pi/2 + math.Pi*float64(i)/float64(stacks)
		rows[i] = make([]vec3.T, slices+1)
		for j := 0; j <= slices; j++ {
			lon := 2 * math.Pi * float64(j) / float64(slices)
			rows[i][j] = vec3.T{
				radius * math.Cos(lat) * math.Cos(lon),
				radius * math.Cos(lat) * math.Sin(lon),
				radius * math.Sin(lat),
			}
		}
		m.Vertices = append(m.Vertices, rows[i][:slices]...)
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			p00 := rows[i][j]
			p10 := rows[i][j+1]
			p01 := rows[i+1][j]
			p11 := rows[i+1][j+1]
			m.Triangles = append(m.Triangles,
				mesh.Triangle{p00, p10, p11},
				mesh.Triangle{p00, p11, p01},
			)
		}
	}
	return m
}

// Cylinder tessellates a tube along +Z from z=0 to z=height with bottom
// radius r1 and top radius r2, closed by fan caps from the axis points.
// Each slice contributes one side quad (2 triangles) plus one triangle per
// cap, 4·slices triangles total. slices < 3 yields an empty mesh.
func Cylinder(r1, r2, height float64, slices int) *mesh.Mesh {
	m := mesh.New()
	if slices < 3 {
		return m
	}
	bottomCenter := vec3.Zero
	topCenter := vec3.T{0, 0, height}
	bottom := make([]vec3.T, slices)
	top := make([]vec3.T, slices)
	for i := 0; i < slices; i++ {
		a := 2 * math.Pi * float64(i) / float64(slices)
		c, s := math.Cos(a), math.Sin(a)
		bottom[i] = vec3.T{r1 * c, r1 * s, 0}
		top[i] = vec3.T{r2 * c, r2 * s, height}
	}
	m.Vertices = append(m.Vertices, bottomCenter, topCenter)
	m.Vertices = append(m.Vertices, bottom...)
	m.Vertices = append(m.Vertices, top...)
	for i := 0; i < slices; i++ {
		j := (i + 1) % slices
		// Side quad.
		m.Triangles = append(m.Triangles,
			mesh.Triangle{bottom[i], bottom[j], top[j]},
			mesh.Triangle{bottom[i], top[j], top[i]},
		)
		// Caps: bottom winds downward, top upward.
		m.Triangles = append(m.Triangles,
			mesh.Triangle{bottomCenter, bottom[j], bottom[i]},
			mesh.Triangle{topCenter, top[i], top[j]},
		)
	}
	return m
}

// Polyhedron tessellates explicit geometry: each face is an index list into
// vertices, fan-triangulated from its first vertex. Faces with fewer than 3
// indices or with an index out of range are dropped.
func Polyhedron(vertices []vec3.T, faces [][]int) *mesh.Mesh {
	m := mesh.New()
	m.Vertices = append(m.Vertices, vertices...)
	for _, face := range faces {
		if len(face) < 3 || !faceInRange(face, len(vertices)) {
			continue
		}
		for i := 1; i < len(face)-1; i++ {
			m.Triangles = append(m.Triangles, mesh.Triangle{
				vertices[face[0]],
				vertices[face[i]],
				vertices[face[i+1]],
			})
		}
	}
	return m
}

func faceInRange(face []int, n int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}
