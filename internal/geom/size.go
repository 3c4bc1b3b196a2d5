package geom

import "math"

// Size is an extent on each axis in local units. Square uses Width/Height only;
// Cube and Scale use all three.
type Size struct {
	Width  float64
	Height float64
	Depth  float64
}

// NewSize returns a Size with the given extents.
func NewSize(width, height, depth float64) Size {
	return Size{Width: width, Height: height, Depth: depth}
}

// IsFinite reports whether every extent is a finite number (no NaN, no Inf).
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height) && isFinite(s.Depth)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
