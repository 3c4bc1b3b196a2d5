package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestTranslationApply(t *testing.T) {
	a := Translation(vec3.T{1, 2, 3})
	got := a.Apply(vec3.T{10, 20, 30})
	assert.Equal(t, vec3.T{11, 22, 33}, got)
}

func TestScalingApply(t *testing.T) {
	a := Scaling(NewSize(2, 3, 4))
	got := a.Apply(vec3.T{1, 1, 1})
	assert.Equal(t, vec3.T{2, 3, 4}, got)
}

func TestRotationApply(t *testing.T) {
	// 90° about Z maps +X to +Y.
	q, ok := RotationAbout(vec3.T{0, 0, 1}, math.Pi/2)
	require.True(t, ok)
	got := Rotation(q).Apply(vec3.T{1, 0, 0})
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
	assert.InDelta(t, 0, got[2], 1e-12)
}

func TestMulAppliesRightFirst(t *testing.T) {
	scale := Scaling(NewSize(2, 2, 2))
	translate := Translation(vec3.T{1, 0, 0})

	// translate∘scale: scale first, then translate.
	got := translate.Mul(scale).Apply(vec3.T{1, 0, 0})
	assert.Equal(t, vec3.T{3, 0, 0}, got)

	// scale∘translate: translate first, then scale.
	got = scale.Mul(translate).Apply(vec3.T{1, 0, 0})
	assert.Equal(t, vec3.T{4, 0, 0}, got)
}

func TestMulMatchesSequentialApply(t *testing.T) {
	q, ok := RotationAbout(vec3.T{1, 1, 0}, 0.7)
	require.True(t, ok)
	a := Translation(vec3.T{-2, 5, 1})
	b := Rotation(q)
	p := vec3.T{0.3, -1.2, 4}

	composed := a.Mul(b).Apply(p)
	sequential := a.Apply(b.Apply(p))
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, sequential[axis], composed[axis], 1e-12)
	}
}

func TestRotationAboutDegenerateAxis(t *testing.T) {
	_, ok := RotationAbout(vec3.T{0, 0, 0}, 1)
	assert.False(t, ok)
	_, ok = RotationAbout(vec3.T{math.NaN(), 0, 0}, 1)
	assert.False(t, ok)
	_, ok = RotationAbout(vec3.T{0, 1, 0}, math.Inf(1))
	assert.False(t, ok)
}

func TestAffineIsFinite(t *testing.T) {
	assert.True(t, Identity().IsFinite())
	bad := Translation(vec3.T{math.NaN(), 0, 0})
	assert.False(t, bad.IsFinite())
	assert.False(t, Scaling(NewSize(math.Inf(1), 1, 1)).IsFinite())
}

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-15)
	assert.InDelta(t, 90, Degrees(math.Pi/2), 1e-12)
}
