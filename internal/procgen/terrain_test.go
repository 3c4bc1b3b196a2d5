package procgen

import (
	"testing"

	"cad-engine/internal/env"
	"cad-engine/internal/eval"
	"cad-engine/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainIsDeterministic(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 8, 8

	a := Terrain(opts)
	b := Terrain(opts)
	assert.Equal(t, a, b)

	ma, err := eval.Evaluate(a, env.Context{})
	require.NoError(t, err)
	mb, err := eval.Evaluate(b, env.Context{})
	require.NoError(t, err)
	assert.Equal(t, ma, mb)
}

func TestTerrainSeedChangesOutput(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 8, 8
	a := Terrain(opts)
	opts.Seed = 42
	b := Terrain(opts)
	assert.NotEqual(t, a, b)
}

func TestTerrainTileCount(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 5, 3

	s := Terrain(opts)
	comp, ok := s.(shape.Composite)
	require.True(t, ok)
	group, ok := comp.Body.(shape.Group)
	require.True(t, ok)
	assert.Len(t, group.Children, 15)

	m, err := eval.Evaluate(s, env.Context{})
	require.NoError(t, err)
	// One translated cube per tile, 12 triangles each.
	assert.Equal(t, 15*12, m.TriangleCount())
}

func TestTerrainSitsOnGroundPlane(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Width, opts.Depth = 4, 4
	opts.HeightScale = 2

	m, err := eval.Evaluate(Terrain(opts), env.Context{})
	require.NoError(t, err)
	b := m.Bounds()
	assert.InDelta(t, 0, b.Min[2], 1e-9)
	assert.Greater(t, b.Max[2], 0.0)
	assert.LessOrEqual(t, b.Max[2], opts.HeightScale)
	// Centered on the origin in X/Y.
	assert.InDelta(t, -b.Max[0], b.Min[0], 1e-9)
	assert.InDelta(t, -b.Max[1], b.Min[1], 1e-9)
}

func TestTerrainZeroValueOptions(t *testing.T) {
	m, err := eval.Evaluate(Terrain(TerrainOptions{}), env.Context{})
	require.NoError(t, err)
	assert.Equal(t, 16*16*12, m.TriangleCount())
}
