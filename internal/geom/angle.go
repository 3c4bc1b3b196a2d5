package geom

import (
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Radians converts degrees to radians. All trigonometry in this module works
// in radians; degrees only appear at author-facing boundaries (scene files,
// CLI flags).
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RotationAbout returns the unit quaternion for rotating by angle radians
// about axis. The axis is normalized first; ok is false when the axis has
// zero length or a non-finite component, in which case the identity
// quaternion is returned.
func RotationAbout(axis vec3.T, angle float64) (q quaternion.T, ok bool) {
	if !isFinite(axis[0]) || !isFinite(axis[1]) || !isFinite(axis[2]) || !isFinite(angle) {
		return quaternion.Ident, false
	}
	length := axis.Length()
	if length == 0 {
		return quaternion.Ident, false
	}
	unit := axis.Scaled(1 / length)
	return quaternion.FromAxisAngle(&unit, angle), true
}

// IsFiniteVec reports whether every component of v is a finite number.
func IsFiniteVec(v vec3.T) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

// IsFiniteQuat reports whether every component of q is a finite number.
func IsFiniteQuat(q quaternion.T) bool {
	return isFinite(q[0]) && isFinite(q[1]) && isFinite(q[2]) && isFinite(q[3])
}
