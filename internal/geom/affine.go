package geom

import (
	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Affine is a 3x4 row-major affine transform: a 3x3 linear part plus a
// translation column. The implicit bottom row is [0 0 0 1], so composing two
// Affines is ordinary homogeneous matrix multiplication without the
// projective plumbing a full 4x4 would carry.
type Affine struct {
	M [3][4]float64
}

// Identity returns the affine transform that maps every point to itself.
func Identity() Affine {
	return Affine{M: [3][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}}
}

// Translation returns the affine transform that adds offset to every point.
func Translation(offset vec3.T) Affine {
	a := Identity()
	a.M[0][3] = offset[0]
	a.M[1][3] = offset[1]
	a.M[2][3] = offset[2]
	return a
}

// Scaling returns the affine transform that scales each axis by the
// corresponding extent of s (width on X, height on Y, depth on Z).
func Scaling(s Size) Affine {
	a := Identity()
	a.M[0][0] = s.Width
	a.M[1][1] = s.Height
	a.M[2][2] = s.Depth
	return a
}

// Rotation returns the affine transform for rotating by q about the origin.
// Columns of the linear part are the rotated basis vectors.
func Rotation(q quaternion.T) Affine {
	x := q.RotatedVec3(&vec3.UnitX)
	y := q.RotatedVec3(&vec3.UnitY)
	z := q.RotatedVec3(&vec3.UnitZ)
	return Affine{M: [3][4]float64{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
	}}
}

// Mul returns the composition a∘b: the transform that applies b first, then a.
func (a Affine) Mul(b Affine) Affine {
	var out Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			sum := a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
			if j == 3 {
				sum += a.M[i][3]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// Apply maps the point p through the transform.
func (a Affine) Apply(p vec3.T) vec3.T {
	return vec3.T{
		a.M[0][0]*p[0] + a.M[0][1]*p[1] + a.M[0][2]*p[2] + a.M[0][3],
		a.M[1][0]*p[0] + a.M[1][1]*p[1] + a.M[1][2]*p[2] + a.M[1][3],
		a.M[2][0]*p[0] + a.M[2][1]*p[1] + a.M[2][2]*p[2] + a.M[2][3],
	}
}

// IsFinite reports whether every matrix entry is a finite number.
func (a Affine) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if !isFinite(a.M[i][j]) {
				return false
			}
		}
	}
	return true
}
