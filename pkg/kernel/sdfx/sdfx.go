// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/interop"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/shape"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells is the marching cubes resolution along the longest side
// of a solid's bounding box.
const DefaultMeshCells = 200

// Options configures an SdfxKernel. Zero fields take their defaults.
type Options struct {
	MeshCells int
}

func (o Options) withDefaults() Options {
	if o.MeshCells <= 0 {
		o.MeshCells = DefaultMeshCells
	}
	return o
}

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	opts Options
}

// New returns an SdfxKernel with default options.
func New() *SdfxKernel {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *SdfxKernel {
	return &SdfxKernel{opts: opts.withDefaults()}
}

// MeshCells reports the marching cubes resolution in use.
func (k *SdfxKernel) MeshCells() int { return k.opts.MeshCells }

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// Box creates a box with its minimum corner at the origin, so that a
// translation places the corner. sdf.Box3D centers the box, hence the shift
// by half the dimensions.
func (k *SdfxKernel) Box(x, y, z float64) (kernel.Solid, error) {
	if !(x > 0 && y > 0 && z > 0) {
		return nil, fmt.Errorf("box dimensions must be positive, got %g x %g x %g: %w", x, y, z, shape.ErrInvalidShape)
	}
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Sphere creates a sphere centered on the descriptor's origin.
func (k *SdfxKernel) Sphere(sp shape.Sphere) (kernel.Solid, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	s, err := sdf.Sphere3D(sp.Radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Sphere3D: %w", err)
	}
	return wrap(place(s, sp.Position)), nil
}

// Cylinder creates the segment of c between its XY plane and height along
// its main direction.
func (k *SdfxKernel) Cylinder(c shape.Cylinder, height float64) (kernel.Solid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !(height > 0) {
		return nil, fmt.Errorf("cylinder height must be positive, got %g: %w", height, shape.ErrInvalidShape)
	}
	s, err := sdf.Cylinder3D(height, c.Radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return wrap(place(s, c.Position)), nil
}

// Cone creates the frustum of c from its reference radius up to height
// along its main direction. A narrowing cone must not close before height.
func (k *SdfxKernel) Cone(c shape.Cone, height float64) (kernel.Solid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !(height > 0) {
		return nil, fmt.Errorf("cone height must be positive, got %g: %w", height, shape.ErrInvalidShape)
	}
	top := c.RadiusAt(height)
	if top < 0 {
		return nil, fmt.Errorf("cone closes at height %g, below %g: %w",
			-c.Radius/math.Tan(c.SemiAngle), height, shape.ErrInvalidShape)
	}
	s, err := sdf.Cone3D(height, c.Radius, top, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cone3D: %w", err)
	}
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return wrap(place(s, c.Position)), nil
}

// Torus revolves the minor circle around the descriptor's main axis.
func (k *SdfxKernel) Torus(t shape.Torus) (kernel.Solid, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	circle, err := sdf.Circle2D(t.MinorRadius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
	}
	var shift geom.Trsf2d
	shift.SetTranslationVector(geom.NewVector2d(t.MajorRadius, 0))
	s, err := sdf.Revolve3D(newTrsfSDF2(circle, shift))
	if err != nil {
		return nil, fmt.Errorf("sdfx.Revolve3D: %w", err)
	}
	return wrap(place(s, t.Position)), nil
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// Circle creates a disc profile centered on the descriptor's origin.
func (k *SdfxKernel) Circle(c shape.Circle2d) (kernel.Profile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := sdf.Circle2D(c.Radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
	}
	if c.Position.Origin == geom.Origin2d {
		return &sdfxProfile{s: s}, nil
	}
	var move geom.Trsf2d
	move.SetTranslationVector(geom.Vector2dFromXY(c.Position.Origin.XY()))
	return &sdfxProfile{s: newTrsfSDF2(s, move)}, nil
}

// TransformProfile maps p through t. Transforms that cannot be inverted are
// rejected.
func (k *SdfxKernel) TransformProfile(p kernel.Profile, t geom.Trsf2d) (kernel.Profile, error) {
	if _, err := t.Inverted(); err != nil {
		return nil, fmt.Errorf("profile transform: %w", err)
	}
	return &sdfxProfile{s: newTrsfSDF2(p.(*sdfxProfile).s, t)}, nil
}

// Prism extrudes p from z=0 to z=height.
func (k *SdfxKernel) Prism(p kernel.Profile, height float64) (kernel.Solid, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("prism height must be positive, got %g: %w", height, shape.ErrInvalidShape)
	}
	s := sdf.Extrude3D(p.(*sdfxProfile).s, height)
	return wrap(sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))), nil
}

// ---------------------------------------------------------------------------
// Booleans and transforms
// ---------------------------------------------------------------------------

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by v.
func (k *SdfxKernel) Translate(s kernel.Solid, v geom.Vector3d) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.Translate3d(interop.Vector3dToV3(v))))
}

// Rotate turns a solid by angle radians about the line axis.
func (k *SdfxKernel) Rotate(s kernel.Solid, axis geom.Axis3d, angle float64) kernel.Solid {
	loc := interop.Point3dToV3(axis.Location)
	m := sdf.Translate3d(loc).
		Mul(sdf.Rotate3d(interop.Direction3dToV3(axis.Direction), angle)).
		Mul(sdf.Translate3d(v3.Vec{X: -loc.X, Y: -loc.Y, Z: -loc.Z}))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// place moves a solid modeled around the world Z axis at the origin onto
// the frame cs. Only the main direction is honored; every solid placed this
// way is symmetric about it.
func place(s sdf.SDF3, cs geom.CoordinateSystem3d) sdf.SDF3 {
	m := sdf.Translate3d(interop.Point3dToV3(cs.Origin())).Mul(alignZ(cs.Direction()))
	return sdf.Transform3D(s, m)
}

// alignZ returns the rotation carrying +Z onto d.
func alignZ(d geom.Direction3d) sdf.M44 {
	axis, err := geom.DZ.Cross(d)
	if err != nil {
		if d.Z() > 0 {
			return sdf.Translate3d(v3.Vec{})
		}
		return sdf.RotateX(math.Pi)
	}
	return sdf.Rotate3d(interop.Direction3dToV3(axis), geom.DZ.Angle(d))
}

// ---------------------------------------------------------------------------
// Mesh output
// ---------------------------------------------------------------------------

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.opts.MeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
