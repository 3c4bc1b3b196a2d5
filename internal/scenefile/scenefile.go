// Package scenefile loads declarative YAML scene documents into shape
// description trees. A document names a measurement unit, optional per-kind
// parameter defaults, and an ordered list of shape nodes; nodes nest
// through "group" and carry per-node scale/rotate/translate plus context
// overrides (unit, segments, interaction).
//
// Example:
//
//	unit: mm
//	defaults:
//	  sphere: { slices: 24, stacks: 12 }
//	shapes:
//	  - cube: { width: 2, height: 2, depth: 2 }
//	    translate: [0, 0, 5]
//	  - group:
//	      - sphere: { radius: 1 }
//	      - cylinder: { r1: 1, r2: 1, height: 2 }
//	    rotate: { axis: [0, 0, 1], degrees: 45 }
package scenefile

import (
	"fmt"
	"os"

	"cad-engine/internal/env"
	"cad-engine/internal/geom"
	"cad-engine/internal/shape"

	"github.com/jinzhu/copier"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

// Document is the top level of a scene file. Shapes are combined into one
// Group in list order. Unit, when set, wraps the whole scene in a unit
// override.
type Document struct {
	Unit     string   `yaml:"unit,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Shapes   []Node   `yaml:"shapes"`
}

// Defaults holds per-kind parameter defaults, merged onto each node of that
// kind before the node's own values are read. Only non-zero node fields
// override a default.
type Defaults struct {
	Circle   *CircleParams   `yaml:"circle,omitempty"`
	Square   *SquareParams   `yaml:"square,omitempty"`
	Cube     *CubeParams     `yaml:"cube,omitempty"`
	Sphere   *SphereParams   `yaml:"sphere,omitempty"`
	Cylinder *CylinderParams `yaml:"cylinder,omitempty"`
}

// Node is one shape entry. Exactly one kind field must be set; the modifier
// fields wrap the kind innermost-first in the fixed order scale, rotate,
// translate, then context overrides.
type Node struct {
	Circle     *CircleParams     `yaml:"circle,omitempty"`
	Square     *SquareParams     `yaml:"square,omitempty"`
	Polygon    *PolygonParams    `yaml:"polygon,omitempty"`
	Cube       *CubeParams       `yaml:"cube,omitempty"`
	Sphere     *SphereParams     `yaml:"sphere,omitempty"`
	Cylinder   *CylinderParams   `yaml:"cylinder,omitempty"`
	Polyhedron *PolyhedronParams `yaml:"polyhedron,omitempty"`
	Group      []Node            `yaml:"group,omitempty"`

	Scale       *[3]float64   `yaml:"scale,omitempty"`
	Rotate      *RotateParams `yaml:"rotate,omitempty"`
	Translate   *[3]float64   `yaml:"translate,omitempty"`
	Unit        string        `yaml:"unit,omitempty"`
	Segments    int           `yaml:"segments,omitempty"`
	Interaction *bool         `yaml:"interaction,omitempty"`
}

// CircleParams mirrors shape.Circle for YAML decoding.
type CircleParams struct {
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments,omitempty"`
}

// SquareParams mirrors shape.Square.
type SquareParams struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Centered bool    `yaml:"centered,omitempty"`
}

// PolygonParams mirrors shape.Polygon.
type PolygonParams struct {
	Points [][3]float64 `yaml:"points"`
}

// CubeParams mirrors shape.Cube.
type CubeParams struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// SphereParams mirrors shape.Sphere.
type SphereParams struct {
	Radius float64 `yaml:"radius"`
	Slices int     `yaml:"slices,omitempty"`
	Stacks int     `yaml:"stacks,omitempty"`
}

// CylinderParams mirrors shape.Cylinder.
type CylinderParams struct {
	R1     float64 `yaml:"r1"`
	R2     float64 `yaml:"r2"`
	Height float64 `yaml:"height"`
	Slices int     `yaml:"slices,omitempty"`
}

// PolyhedronParams mirrors shape.Polyhedron.
type PolyhedronParams struct {
	Vertices [][3]float64 `yaml:"vertices"`
	Faces    [][]int      `yaml:"faces"`
}

// RotateParams is an axis-angle rotation in degrees.
type RotateParams struct {
	Axis    [3]float64 `yaml:"axis"`
	Degrees float64    `yaml:"degrees"`
}

// Load reads and parses a scene file.
func Load(path string) (shape.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scene document into a shape description tree.
func Parse(data []byte) (shape.Shape, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	if len(doc.Shapes) == 0 {
		return nil, fmt.Errorf("scene file has no shapes")
	}
	children := make([]shape.Shape, 0, len(doc.Shapes))
	for i, node := range doc.Shapes {
		s, err := buildNode(node, doc.Defaults)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		children = append(children, s)
	}
	root := shape.Union(children...)
	if doc.Unit != "" {
		u, ok := env.ParseUnit(doc.Unit)
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", doc.Unit)
		}
		root = shape.WithUnit(root, u)
	}
	return root, nil
}

// buildNode turns one node into a shape, wrapping modifiers around the base
// kind. Modifier order is scale, rotate, translate (innermost first), then
// context overrides, matching how a hand-built tree composes.
func buildNode(n Node, defaults Defaults) (shape.Shape, error) {
	base, err := baseShape(n, defaults)
	if err != nil {
		return nil, err
	}
	s := base
	if n.Scale != nil {
		s = shape.Scaled(s, geom.NewSize(n.Scale[0], n.Scale[1], n.Scale[2]))
	}
	if n.Rotate != nil {
		axis := vec3.T{n.Rotate.Axis[0], n.Rotate.Axis[1], n.Rotate.Axis[2]}
		q, ok := geom.RotationAbout(axis, geom.Radians(n.Rotate.Degrees))
		if !ok {
			return nil, fmt.Errorf("rotation axis %v is degenerate", n.Rotate.Axis)
		}
		s = shape.Rotated(s, q)
	}
	if n.Translate != nil {
		s = shape.Translated(s, vec3.T{n.Translate[0], n.Translate[1], n.Translate[2]})
	}
	if n.Segments != 0 {
		s = shape.WithSegments(s, n.Segments)
	}
	if n.Interaction != nil && !*n.Interaction {
		s = shape.InteractionDisabled(s)
	}
	if n.Unit != "" {
		u, ok := env.ParseUnit(n.Unit)
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", n.Unit)
		}
		s = shape.WithUnit(s, u)
	}
	return s, nil
}

// baseShape decodes the single kind field of a node, merging the document's
// per-kind defaults underneath the node's own non-zero values.
func baseShape(n Node, defaults Defaults) (shape.Shape, error) {
	kinds := 0
	for _, set := range []bool{
		n.Circle != nil, n.Square != nil, n.Polygon != nil, n.Cube != nil,
		n.Sphere != nil, n.Cylinder != nil, n.Polyhedron != nil, n.Group != nil,
	} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, fmt.Errorf("node must set exactly one shape kind, got %d", kinds)
	}

	switch {
	case n.Group != nil:
		children := make([]shape.Shape, 0, len(n.Group))
		for i, child := range n.Group {
			s, err := buildNode(child, defaults)
			if err != nil {
				return nil, fmt.Errorf("group child %d: %w", i, err)
			}
			children = append(children, s)
		}
		return shape.Union(children...), nil

	case n.Circle != nil:
		p, err := merged(n.Circle, defaults.Circle)
		if err != nil {
			return nil, err
		}
		return shape.Circle{Radius: p.Radius, Segments: p.Segments}, nil

	case n.Square != nil:
		p, err := merged(n.Square, defaults.Square)
		if err != nil {
			return nil, err
		}
		return shape.Square{Size: geom.NewSize(p.Width, p.Height, 0), Centered: p.Centered}, nil

	case n.Polygon != nil:
		points := make([]vec3.T, len(n.Polygon.Points))
		for i, p := range n.Polygon.Points {
			points[i] = vec3.T{p[0], p[1], p[2]}
		}
		return shape.Polygon{Points: points}, nil

	case n.Cube != nil:
		p, err := merged(n.Cube, defaults.Cube)
		if err != nil {
			return nil, err
		}
		return shape.Cube{Size: geom.NewSize(p.Width, p.Height, p.Depth)}, nil

	case n.Sphere != nil:
		p, err := merged(n.Sphere, defaults.Sphere)
		if err != nil {
			return nil, err
		}
		return shape.Sphere{Radius: p.Radius, Slices: p.Slices, Stacks: p.Stacks}, nil

	case n.Cylinder != nil:
		p, err := merged(n.Cylinder, defaults.Cylinder)
		if err != nil {
			return nil, err
		}
		return shape.Cylinder{R1: p.R1, R2: p.R2, Height: p.Height, Slices: p.Slices}, nil

	default:
		v := make([]vec3.T, len(n.Polyhedron.Vertices))
		for i, p := range n.Polyhedron.Vertices {
			v[i] = vec3.T{p[0], p[1], p[2]}
		}
		return shape.Polyhedron{Vertices: v, Faces: n.Polyhedron.Faces}, nil
	}
}

// merged overlays the node's non-zero parameter fields onto a copy of the
// kind's defaults. With no defaults the node's params are returned as-is.
func merged[T any](node, defaults *T) (*T, error) {
	if defaults == nil {
		return node, nil
	}
	out := new(T)
	*out = *defaults
	if err := copier.CopyWithOption(out, node, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("merge defaults: %w", err)
	}
	return out, nil
}
