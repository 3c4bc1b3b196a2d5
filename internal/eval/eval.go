// Package eval is the graph evaluator: a pure, synchronous, depth-first
// walk that expands a shape description into a mesh. The context propagates
// top-down (pre-order) and meshes assemble bottom-up (post-order). Given
// the same description and context, Evaluate always produces bit-identical
// output; nothing here does I/O or keeps state between calls.
package eval

import (
	"fmt"

	"cad-engine/internal/env"
	"cad-engine/internal/geom"
	"cad-engine/internal/mesh"
	"cad-engine/internal/shape"
	"cad-engine/internal/tessellate"
)

// MaxDepth caps Composite/Modified/Group nesting. Authored trees are finite
// and acyclic, so the cap only guards against trees assembled dynamically
// in a way that effectively never terminates.
const MaxDepth = 512

// Evaluate expands description under ctx and returns the accumulated mesh.
// The returned mesh is in the description's root frame: every primitive's
// local geometry has been transformed by all geometric modifiers between it
// and the root, composed child-to-root (outer·inner·vertex).
func Evaluate(description shape.Shape, ctx env.Context) (*mesh.Mesh, error) {
	return expand(description, ctx, 0)
}

// expand is the recursive core. gen counts expansion layers; it is the
// generation of the node being expanded.
func expand(s shape.Shape, ctx env.Context, gen int) (*mesh.Mesh, error) {
	if gen > MaxDepth {
		return nil, ErrMaxDepth
	}
	switch n := s.(type) {
	case shape.Group:
		// Children all see ctx (a value; sibling mutations cannot leak) and
		// concatenate in list order.
		out := mesh.New()
		for _, child := range n.Children {
			m, err := expand(child, ctx, gen+1)
			if err != nil {
				return nil, err
			}
			out.Append(m)
		}
		return out, nil

	case shape.Modified:
		return applyModifier(n, ctx, gen)

	case shape.Composite:
		// Pure pass-through aliasing layer: one generation deeper, result
		// returned verbatim.
		return expand(n.Body, ctx, gen+1)

	default:
		return primitive(s, ctx)
	}
}

// primitive dispatches a leaf to its tessellation function and scales the
// local-frame result by the context's measurement unit so all emitted
// geometry is in millimeters. Segment counts left at zero resolve from the
// context's segment default.
func primitive(s shape.Shape, ctx env.Context) (*mesh.Mesh, error) {
	segments := env.Get(ctx, env.SegmentsKey)
	var m *mesh.Mesh
	switch p := s.(type) {
	case shape.Circle:
		m = tessellate.Circle(p.Radius, resolve(p.Segments, segments))
	case shape.Square:
		m = tessellate.Square(p.Size, p.Centered)
	case shape.Polygon:
		m = tessellate.Polygon(p.Points)
	case shape.Cube:
		m = tessellate.Cube(p.Size)
	case shape.Sphere:
		m = tessellate.Sphere(p.Radius, resolve(p.Slices, segments), resolve(p.Stacks, segments/2))
	case shape.Cylinder:
		m = tessellate.Cylinder(p.R1, p.R2, p.Height, resolve(p.Slices, segments))
	case shape.Polyhedron:
		m = tessellate.Polyhedron(p.Vertices, p.Faces)
	default:
		return nil, fmt.Errorf("unknown shape variant %T", s)
	}
	if factor := env.Get(ctx, env.UnitKey).Factor(); factor != 1 {
		m.Transform(geom.Scaling(geom.NewSize(factor, factor, factor)))
	}
	return m, nil
}

// resolve returns the explicit primitive count when set, the context
// fallback otherwise.
func resolve(explicit, fallback int) int {
	if explicit != 0 {
		return explicit
	}
	return fallback
}
