package scene

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/shape"
)

// ---------------------------------------------------------------------------
// Shapes
// ---------------------------------------------------------------------------

// ShapeKind says which descriptor a ShapeData carries.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCylinder
	ShapeCone
	ShapeTorus
	ShapePrism
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeTorus:
		return "torus"
	case ShapePrism:
		return "prism"
	default:
		return "unknown"
	}
}

// ShapeData holds exactly one descriptor, selected by Kind. Height bounds
// the otherwise infinite cylinder and cone, and is the extrusion length of
// a prism.
type ShapeData struct {
	Kind        ShapeKind
	Size        geom.XYZ // box, min corner at the origin
	Sphere      *shape.Sphere
	Cylinder    *shape.Cylinder
	Cone        *shape.Cone
	Torus       *shape.Torus
	Profile     *shape.Circle2d // prism cross-section
	ProfileTrsf *geom.Trsf2d    // optional placement of Profile in its plane
	Height      float64
}

func (ShapeData) nodeData() {}

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// AxisRotation turns by Angle radians about Axis (right-hand rule).
type AxisRotation struct {
	Axis  geom.Axis3d
	Angle float64
}

// TransformData is a rigid motion applied to a node's children. The
// rotation is applied first, then the translation. Created by (place ...).
type TransformData struct {
	Translation *geom.Vector3d
	Rotation    *AxisRotation
}

func (TransformData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData represents a logical grouping. Created by (group ...).
type GroupData struct {
	Description string
}

func (GroupData) nodeData() {}

// ---------------------------------------------------------------------------
// Boolean
// ---------------------------------------------------------------------------

// BooleanOp selects how a boolean node combines its children.
type BooleanOp int

const (
	BooleanUnion        BooleanOp = iota // every child
	BooleanDifference                    // first child minus the others
	BooleanIntersection                  // space common to all children
)

func (op BooleanOp) String() string {
	switch op {
	case BooleanUnion:
		return "union"
	case BooleanDifference:
		return "difference"
	case BooleanIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// BooleanData combines the solids of a node's children into a single solid.
// Each child subtree contributes the union of the shapes it reaches.
// Created by (union ...), (difference ...) and (intersection ...).
type BooleanData struct {
	Op BooleanOp
}

func (BooleanData) nodeData() {}
