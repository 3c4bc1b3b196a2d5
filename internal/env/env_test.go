package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsDefaultWhenUnset(t *testing.T) {
	var c Context
	assert.Equal(t, Millimeter, Get(c, UnitKey))
	assert.True(t, Get(c, InteractionKey))
	assert.Equal(t, 16, Get(c, SegmentsKey))
}

func TestWithOverlaysWithoutMutating(t *testing.T) {
	base := With(Context{}, UnitKey, Centimeter)
	derived := With(base, UnitKey, Inch)

	assert.Equal(t, Inch, Get(derived, UnitKey))
	// The parent context is untouched by the derivation.
	assert.Equal(t, Centimeter, Get(base, UnitKey))
	// Shadowed entries stay in place: the derived context has both.
	assert.Equal(t, 2, derived.Len())
	assert.Equal(t, 1, base.Len())
}

func TestSiblingContextsAreIndependent(t *testing.T) {
	parent := With(Context{}, SegmentsKey, 8)
	left := With(parent, SegmentsKey, 32)
	right := With(parent, InteractionKey, false)

	assert.Equal(t, 32, Get(left, SegmentsKey))
	assert.Equal(t, 8, Get(right, SegmentsKey))
	assert.True(t, Get(left, InteractionKey))
	assert.False(t, Get(right, InteractionKey))
}

func TestUnitFactor(t *testing.T) {
	tests := []struct {
		unit   Unit
		factor float64
	}{
		{Millimeter, 1},
		{Centimeter, 10},
		{Meter, 1000},
		{Inch, 25.4},
		{Unit("furlong"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.factor, tt.unit.Factor(), "unit %q", tt.unit)
	}
}

func TestParseUnit(t *testing.T) {
	u, ok := ParseUnit("cm")
	require.True(t, ok)
	assert.Equal(t, Centimeter, u)
	_, ok = ParseUnit("parsec")
	assert.False(t, ok)
}

func TestFromEnviron(t *testing.T) {
	t.Setenv("CAD_UNIT", "in")
	t.Setenv("CAD_SEGMENTS", "24")
	t.Setenv("CAD_INTERACTION", "false")

	c := FromEnviron()
	assert.Equal(t, Inch, Get(c, UnitKey))
	assert.Equal(t, 24, Get(c, SegmentsKey))
	assert.False(t, Get(c, InteractionKey))
}

func TestFromEnvironIgnoresGarbage(t *testing.T) {
	t.Setenv("CAD_UNIT", "lightyear")
	t.Setenv("CAD_SEGMENTS", "not-a-number")
	t.Setenv("CAD_INTERACTION", "")

	c := FromEnviron()
	assert.Equal(t, Millimeter, Get(c, UnitKey))
	assert.Equal(t, 16, Get(c, SegmentsKey))
	assert.True(t, Get(c, InteractionKey))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nCAD_UNIT=cm\n\nCAD_SEGMENTS=\"12\"\nBROKEN LINE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("CAD_UNIT", "")
	t.Setenv("CAD_SEGMENTS", "")
	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "cm", os.Getenv("CAD_UNIT"))
	assert.Equal(t, "12", os.Getenv("CAD_SEGMENTS"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
