package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"cad-engine/internal/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func twoTriangleMesh() *mesh.Mesh {
	m := mesh.New()
	m.Triangles = append(m.Triangles,
		mesh.Triangle{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}},
		mesh.Triangle{{0, 0, 0}, {2, 2, 0}, {0, 2, 0}},
	)
	return m
}

func TestWriteBinaryLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, "square", twoTriangleMesh()))

	data := buf.Bytes()
	require.Len(t, data, 84+2*50)
	assert.Equal(t, []byte("square"), data[:6])
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[80:84]))

	// First record: normal of a CCW triangle on the XY plane is +Z.
	normalZ := binary.LittleEndian.Uint32(data[84+8 : 84+12])
	assert.Equal(t, float32(1), math.Float32frombits(normalZ))
	// First vertex of the first triangle is the origin.
	for i := 0; i < 3; i++ {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[84+12+i*4:84+16+i*4]))
	}
	// Attribute byte count is zero.
	assert.Equal(t, byte(0), data[84+48])
	assert.Equal(t, byte(0), data[84+49])
}

func TestWriteBinaryEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, "empty", mesh.New()))
	assert.Len(t, buf.Bytes(), 84)
}

func TestWriteASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, "square", twoTriangleMesh()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "solid square\n"))
	assert.True(t, strings.HasSuffix(out, "endsolid square\n"))
	assert.Equal(t, 2, strings.Count(out, "facet normal"))
	assert.Equal(t, 6, strings.Count(out, "vertex"))
	assert.Contains(t, out, "facet normal 0 0 1")
	assert.Contains(t, out, "vertex 2 2 0")
}

func TestFaceNormalDegenerate(t *testing.T) {
	n := faceNormal(mesh.Triangle{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}})
	assert.Equal(t, vec3.Zero, n)
}
