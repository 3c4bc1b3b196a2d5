// Package shape is the declarative description model: immutable tree nodes
// that say what geometry is wanted, with no behavior of their own. The
// evaluator in internal/eval walks a Shape tree and accumulates a mesh.
//
// Variants are either primitive generators (Circle, Square, Polygon, Cube,
// Sphere, Cylinder, Polyhedron), a Group of ordered siblings, a Modified
// node carrying one child plus one Modifier, or a Composite naming a
// reusable body. Trees are finite and acyclic by construction: every node
// holds its children by value at build time, so a description can never
// reference its own subtree.
package shape

import (
	"cad-engine/internal/geom"

	"github.com/ungerik/go3d/float64/vec3"
)

// Shape is one node of a description tree. The interface is sealed; the
// variants in this package are the full set the evaluator dispatches on.
type Shape interface {
	isShape()
}

// Circle is a 2D disc on the XY plane: Segments perimeter points fan-
// triangulated from the origin. Segments == 0 means "use the context's
// segment default"; a resolved count below 3 produces an empty mesh.
type Circle struct {
	Radius   float64
	Segments int
}

// Square is a 2D rectangle on the XY plane. When Centered, corners sit at
// ±half extents; otherwise the local origin is one corner and the shape
// extends into the positive quadrant.
type Square struct {
	Size     geom.Size
	Centered bool
}

// Polygon is an arbitrary flat or non-flat polygon, fan-triangulated from
// the centroid of its points. Fewer than 3 points produces an empty mesh.
type Polygon struct {
	Points []vec3.T
}

// Cube is an axis-aligned box with corners at ±half extents.
type Cube struct {
	Size geom.Size
}

// Sphere is a latitude/longitude tessellated ball centered at the origin.
// Slices is the longitude count, Stacks the latitude band count; zero means
// "use the context's segment default" (Stacks resolves to half of it).
type Sphere struct {
	Radius float64
	Slices int
	Stacks int
}

// Cylinder is a (possibly tapered) tube along +Z from z=0 to z=Height, with
// bottom radius R1 and top radius R2, closed by fan caps. Slices == 0 means
// "use the context's segment default"; a resolved count below 3 produces an
// empty mesh.
type Cylinder struct {
	R1     float64
	R2     float64
	Height float64
	Slices int
}

// Polyhedron is explicit geometry: a vertex list plus faces given as index
// lists of length >= 3, each fan-triangulated from its first vertex. Faces
// that are too short or reference missing vertices are dropped.
type Polyhedron struct {
	Vertices []vec3.T
	Faces    [][]int
}

// Group combines ordered sibling shapes into one compound mesh. Grouping is
// not a geometric operation; child meshes are concatenated in list order.
type Group struct {
	Children []Shape
}

// Modified wraps one child shape with one modifier to apply around its
// expansion.
type Modified struct {
	Content Shape
	Mod     Modifier
}

// Composite names a reusable shape whose geometry is described by Body.
// Expansion recurses into Body one generation deeper and returns its mesh
// verbatim; the node exists only so authors can name and reuse subtrees.
type Composite struct {
	Name string
	Body Shape
}

func (Circle) isShape()     {}
func (Square) isShape()     {}
func (Polygon) isShape()    {}
func (Cube) isShape()       {}
func (Sphere) isShape()     {}
func (Cylinder) isShape()   {}
func (Polyhedron) isShape() {}
func (Group) isShape()      {}
func (Modified) isShape()   {}
func (Composite) isShape()  {}
