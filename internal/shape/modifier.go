package shape

import (
	"cad-engine/internal/env"
	"cad-engine/internal/geom"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Modifier is one attribute transform attached to a Modified node: either a
// geometric transform (Translate, Scale, Rotate), a context mutation, or
// the Identity no-op.
type Modifier interface {
	isModifier()
}

// Translate moves the child's geometry by Offset.
type Translate struct {
	Offset vec3.T
}

// Scale multiplies the child's geometry per axis (width on X, height on Y,
// depth on Z).
type Scale struct {
	Factor geom.Size
}

// Rotate rotates the child's geometry by a quaternion about the origin of
// the child's local frame.
type Rotate struct {
	Rotation quaternion.T
}

// Mutation rewrites one entry of the configuration context for the child's
// evaluation only; it has no geometric effect of its own. Apply must be
// pure. Returning an error means the mutation is undefined for the current
// value, which the evaluator surfaces as a degenerate-transform failure.
type Mutation struct {
	Key   string
	Apply func(env.Context) (env.Context, error)
}

// Identity is the no-op modifier, used as a default or sentinel.
type Identity struct{}

func (Translate) isModifier() {}
func (Scale) isModifier()     {}
func (Rotate) isModifier()    {}
func (Mutation) isModifier()  {}
func (Identity) isModifier()  {}
