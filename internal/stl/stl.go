// Package stl serializes a mesh to stereolithography files, binary or
// ASCII. Triangles are written in list order with a per-face normal from
// the cross product of the first two edges; vertices are not deduplicated
// and winding is taken as-is from the mesh.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"cad-engine/internal/mesh"

	"github.com/ungerik/go3d/float64/vec3"
)

// headerSize and recordSize are fixed by the binary STL layout: an 80-byte
// header, a uint32 triangle count, then 50 bytes per triangle (normal,
// three corners, attribute word).
const (
	headerSize = 80
	recordSize = 50
)

// WriteBinary writes m as a little-endian binary STL. name is embedded in
// the header (truncated to the 80-byte field).
func WriteBinary(w io.Writer, name string, m *mesh.Mesh) error {
	var header [headerSize]byte
	copy(header[:], name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("write stl triangle count: %w", err)
	}
	var record [recordSize]byte
	for _, t := range m.Triangles {
		n := faceNormal(t)
		putVec(record[0:], n)
		putVec(record[12:], t[0])
		putVec(record[24:], t[1])
		putVec(record[36:], t[2])
		record[48] = 0
		record[49] = 0
		if _, err := w.Write(record[:]); err != nil {
			return fmt.Errorf("write stl triangle: %w", err)
		}
	}
	return nil
}

// WriteASCII writes m as an ASCII STL solid with the given name.
func WriteASCII(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		n := faceNormal(t)
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n[0], n[1], n[2])
		fmt.Fprintf(bw, "    outer loop\n")
		for _, p := range t {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", p[0], p[1], p[2])
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// faceNormal returns the unit normal of t, or the zero vector for a
// degenerate triangle. Zero normals are legal in STL; readers recompute
// from the winding.
func faceNormal(t mesh.Triangle) vec3.T {
	e1 := vec3.Sub(&t[1], &t[0])
	e2 := vec3.Sub(&t[2], &t[0])
	n := vec3.Cross(&e1, &e2)
	length := n.Length()
	if length == 0 {
		return vec3.Zero
	}
	return n.Scaled(1 / length)
}

// putVec encodes v as three little-endian float32 values at the start of b.
func putVec(b []byte, v vec3.T) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v[0])))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v[1])))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v[2])))
}
