// Package kernel defines the solid-modeling back end that turns shape
// descriptors into solids and solids into triangle meshes. The sdfx
// sub-package provides the implementation; the interface keeps the scene
// and tessellation code independent of it.
package kernel

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/shape"
)

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Profile is an opaque handle to a closed planar region, the input to
// Prism.
type Profile interface {
	// Bounds returns the axis-aligned bounding rectangle.
	Bounds() (min, max [2]float64)
}

// Kernel builds and combines solids. Constructors validate their
// descriptor and return an error rather than a degenerate solid.
//
// Solids are placed by the coordinate system of their descriptor. Finite
// solids built from infinite surfaces (Cylinder, Cone) start on the
// descriptor's XY plane and extend height along its main direction.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) (Solid, error) // min corner at the origin
	Sphere(s shape.Sphere) (Solid, error)
	Cylinder(c shape.Cylinder, height float64) (Solid, error)
	Cone(c shape.Cone, height float64) (Solid, error)
	Torus(t shape.Torus) (Solid, error)

	// Profiles
	Circle(c shape.Circle2d) (Profile, error)
	TransformProfile(p Profile, t geom.Trsf2d) (Profile, error)
	Prism(p Profile, height float64) (Solid, error) // from z=0 to z=height

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, v geom.Vector3d) Solid
	Rotate(s Solid, axis geom.Axis3d, angle float64) Solid // radians, right-hand rule

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
