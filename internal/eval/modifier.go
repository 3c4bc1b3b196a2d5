package eval

import (
	"fmt"

	"cad-engine/internal/env"
	"cad-engine/internal/geom"
	"cad-engine/internal/mesh"
	"cad-engine/internal/shape"
)

// applyModifier expands a Modified node. Context mutations derive a new
// context for the child and leave geometry alone; geometric transforms
// evaluate the child in its local frame first, then map the whole result
// through the transform's affine matrix. Because each Modified layer
// transforms the already-expanded child, nested modifiers compose
// child-to-root: the innermost transform hits local geometry first.
func applyModifier(n shape.Modified, ctx env.Context, gen int) (*mesh.Mesh, error) {
	switch mod := n.Mod.(type) {
	case shape.Identity:
		return expand(n.Content, ctx, gen+1)

	case shape.Mutation:
		if mod.Apply == nil {
			return nil, &DegenerateTransformError{Mod: mod, Reason: "mutation has no function"}
		}
		derived, err := mod.Apply(ctx)
		if err != nil {
			return nil, &DegenerateTransformError{
				Mod:    mod,
				Reason: fmt.Sprintf("mutation of %q undefined for current value", mod.Key),
				Err:    err,
			}
		}
		return expand(n.Content, derived, gen+1)

	case shape.Translate, shape.Scale, shape.Rotate:
		a, err := transformMatrix(n.Mod)
		if err != nil {
			return nil, err
		}
		out, err := expand(n.Content, ctx, gen+1)
		if err != nil {
			return nil, err
		}
		out.Transform(a)
		out.Record(n.Mod)
		return out, nil

	default:
		return nil, fmt.Errorf("unknown modifier variant %T", n.Mod)
	}
}

// transformMatrix builds the affine matrix for a geometric modifier,
// rejecting parameters that would poison the mesh with NaNs.
func transformMatrix(mod shape.Modifier) (geom.Affine, error) {
	switch m := mod.(type) {
	case shape.Translate:
		if !geom.IsFiniteVec(m.Offset) {
			return geom.Affine{}, &DegenerateTransformError{Mod: m, Reason: "non-finite offset"}
		}
		return geom.Translation(m.Offset), nil
	case shape.Scale:
		if !m.Factor.IsFinite() {
			return geom.Affine{}, &DegenerateTransformError{Mod: m, Reason: "non-finite scale factor"}
		}
		return geom.Scaling(m.Factor), nil
	case shape.Rotate:
		if !geom.IsFiniteQuat(m.Rotation) {
			return geom.Affine{}, &DegenerateTransformError{Mod: m, Reason: "non-finite rotation"}
		}
		if m.Rotation.Norm() == 0 {
			return geom.Affine{}, &DegenerateTransformError{Mod: m, Reason: "zero-length rotation"}
		}
		return geom.Rotation(m.Rotation), nil
	default:
		return geom.Affine{}, fmt.Errorf("modifier %T has no transform matrix", mod)
	}
}
