package shape

import (
	"fmt"

	"cad-engine/internal/env"
	"cad-engine/internal/geom"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Union combines sibling shapes into one compound shape. This is mesh
// concatenation, not a boolean merge; overlapping geometry stays duplicated.
func Union(children ...Shape) Shape {
	return Group{Children: children}
}

// Translated returns s moved by offset.
func Translated(s Shape, offset vec3.T) Shape {
	return Modified{Content: s, Mod: Translate{Offset: offset}}
}

// Scaled returns s scaled per axis by factor.
func Scaled(s Shape, factor geom.Size) Shape {
	return Modified{Content: s, Mod: Scale{Factor: factor}}
}

// Rotated returns s rotated by q about its local origin.
func Rotated(s Shape, q quaternion.T) Shape {
	return Modified{Content: s, Mod: Rotate{Rotation: q}}
}

// With returns s wrapped with an arbitrary modifier.
func With(s Shape, m Modifier) Shape {
	return Modified{Content: s, Mod: m}
}

// WithUnit returns s evaluated under the given measurement unit. Geometry
// authored inside the subtree is scaled to millimeters on emission.
func WithUnit(s Shape, u env.Unit) Shape {
	return With(s, Mutation{
		Key: env.UnitKey.Name,
		Apply: func(c env.Context) (env.Context, error) {
			return env.With(c, env.UnitKey, u), nil
		},
	})
}

// ConvertUnit returns s evaluated under f applied to the current unit.
// An error from f (unit conversion undefined for the current value) fails
// the subtree as a degenerate transform.
func ConvertUnit(s Shape, f func(env.Unit) (env.Unit, error)) Shape {
	return With(s, Mutation{
		Key: env.UnitKey.Name,
		Apply: func(c env.Context) (env.Context, error) {
			u, err := f(env.Get(c, env.UnitKey))
			if err != nil {
				return c, err
			}
			return env.With(c, env.UnitKey, u), nil
		},
	})
}

// WithSegments returns s evaluated with n as the default tessellation
// resolution for primitives that leave their segment count unset.
func WithSegments(s Shape, n int) Shape {
	return With(s, Mutation{
		Key: env.SegmentsKey.Name,
		Apply: func(c env.Context) (env.Context, error) {
			if n < 3 {
				return c, fmt.Errorf("segment default %d is below 3", n)
			}
			return env.With(c, env.SegmentsKey, n), nil
		},
	})
}

// InteractionDisabled returns s with editor interaction turned off for the
// whole subtree. Purely a context change; geometry is unaffected.
func InteractionDisabled(s Shape) Shape {
	return With(s, Mutation{
		Key: env.InteractionKey.Name,
		Apply: func(c env.Context) (env.Context, error) {
			return env.With(c, env.InteractionKey, false), nil
		},
	})
}
