// Package shape holds composite geometry descriptors. Each one is plain data
// placed by a coordinate system from package geom; the descriptors know how
// to validate and print themselves and little else. Turning them into solids
// is the job of a kernel.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/geomkit/pkg/geom"
)

// ErrInvalidShape is wrapped by every Validate failure.
var ErrInvalidShape = errors.New("shape: invalid descriptor")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return invalid("%s must be positive and finite, got %g", name, v)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Planar curves
// ---------------------------------------------------------------------------

// Circle2d is a circle in the plane centered on Position's origin.
type Circle2d struct {
	Position geom.CoordinateSystem2d
	Radius   float64
}

func (c Circle2d) String() string {
	return fmt.Sprintf("Circle2d(%v, radius: %g)", c.Position, c.Radius)
}

func (c Circle2d) Validate() error { return positive("circle radius", c.Radius) }
func (c Circle2d) Area() float64   { return math.Pi * c.Radius * c.Radius }
func (c Circle2d) Length() float64 { return 2 * math.Pi * c.Radius }

// Hyperbola2d has its main branch along Position's X direction.
type Hyperbola2d struct {
	Position    geom.CoordinateSystem2d
	MajorRadius float64
	MinorRadius float64
}

func (h Hyperbola2d) String() string {
	return fmt.Sprintf("Hyperbola2d(%v, major: %g, minor: %g)", h.Position, h.MajorRadius, h.MinorRadius)
}

// Validate accepts zero radii, which describe degenerate hyperbolas.
func (h Hyperbola2d) Validate() error {
	if h.MajorRadius < 0 || h.MinorRadius < 0 {
		return invalid("hyperbola radii must not be negative, got %g and %g", h.MajorRadius, h.MinorRadius)
	}
	return nil
}

// Parabola2d opens along Position's X direction.
type Parabola2d struct {
	Position    geom.CoordinateSystem2d
	FocalLength float64
}

func (p Parabola2d) String() string {
	return fmt.Sprintf("Parabola2d(%v, focal: %g)", p.Position, p.FocalLength)
}

func (p Parabola2d) Validate() error {
	if p.FocalLength < 0 {
		return invalid("parabola focal length must not be negative, got %g", p.FocalLength)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Space curves
// ---------------------------------------------------------------------------

// Circle3d lies in the XY plane of Position.
type Circle3d struct {
	Position geom.CoordinateSystem3d
	Radius   float64
}

func (c Circle3d) String() string {
	return fmt.Sprintf("Circle3d(%v, radius: %g)", c.Position, c.Radius)
}

func (c Circle3d) Validate() error { return positive("circle radius", c.Radius) }
func (c Circle3d) Area() float64   { return math.Pi * c.Radius * c.Radius }
func (c Circle3d) Length() float64 { return 2 * math.Pi * c.Radius }

// Ellipse3d lies in the XY plane of Position, major axis along X.
type Ellipse3d struct {
	Position    geom.CoordinateSystem3d
	MajorRadius float64
	MinorRadius float64
}

func (e Ellipse3d) String() string {
	return fmt.Sprintf("Ellipse3d(%v, major: %g, minor: %g)", e.Position, e.MajorRadius, e.MinorRadius)
}

func (e Ellipse3d) Validate() error {
	if e.MinorRadius < 0 || e.MajorRadius < e.MinorRadius {
		return invalid("ellipse needs major >= minor >= 0, got %g and %g", e.MajorRadius, e.MinorRadius)
	}
	return nil
}

type Parabola3d struct {
	Position    geom.CoordinateSystem3d
	FocalLength float64
}

func (p Parabola3d) String() string {
	return fmt.Sprintf("Parabola3d(%v, focal: %g)", p.Position, p.FocalLength)
}

func (p Parabola3d) Validate() error {
	if p.FocalLength < 0 {
		return invalid("parabola focal length must not be negative, got %g", p.FocalLength)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Surfaces
// ---------------------------------------------------------------------------

// Plane is the XY plane of Position; its normal is the main direction.
type Plane struct {
	Position geom.CoordinateSystem3d
}

func (p Plane) String() string { return fmt.Sprintf("Plane(%v)", p.Position) }

// Validate always succeeds: every coordinate system defines a plane.
func (p Plane) Validate() error { return nil }

func (p Plane) Normal() geom.Direction3d { return p.Position.Direction() }

// Distance returns the unsigned distance from pt to the plane.
func (p Plane) Distance(pt geom.Point3d) float64 {
	d := geom.Vector3dFromPoints(p.Position.Origin(), pt)
	return math.Abs(d.Dot(p.Normal().Vector()))
}

// Sphere is centered on Position's origin.
type Sphere struct {
	Position geom.CoordinateSystem3d
	Radius   float64
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(%v, radius: %g)", s.Position, s.Radius)
}

func (s Sphere) Validate() error { return positive("sphere radius", s.Radius) }
func (s Sphere) Area() float64   { return 4 * math.Pi * s.Radius * s.Radius }
func (s Sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius }

// Cylinder is the infinite cylinder around Position's main axis. Kernels
// that need a finite solid take a height separately.
type Cylinder struct {
	Position geom.CoordinateSystem3d
	Radius   float64
}

func (c Cylinder) String() string {
	return fmt.Sprintf("Cylinder(%v, radius: %g)", c.Position, c.Radius)
}

func (c Cylinder) Validate() error { return positive("cylinder radius", c.Radius) }

// Cone has Radius in the XY plane of Position and opens by SemiAngle along
// the main direction. A negative semi-angle narrows the cone.
type Cone struct {
	Position  geom.CoordinateSystem3d
	Radius    float64
	SemiAngle float64
}

func (c Cone) String() string {
	return fmt.Sprintf("Cone(%v, radius: %g, semi-angle: %g)", c.Position, c.Radius, c.SemiAngle)
}

func (c Cone) Validate() error {
	if c.Radius < 0 {
		return invalid("cone radius must not be negative, got %g", c.Radius)
	}
	a := math.Abs(c.SemiAngle)
	if a < geom.Angular || a > math.Pi/2-geom.Angular {
		return invalid("cone semi-angle must be in (0, π/2) in magnitude, got %g", c.SemiAngle)
	}
	return nil
}

// RadiusAt returns the cone radius at height h along the main direction.
func (c Cone) RadiusAt(h float64) float64 {
	return c.Radius + h*math.Tan(c.SemiAngle)
}

// Torus revolves a circle of MinorRadius at distance MajorRadius around
// Position's main axis.
type Torus struct {
	Position    geom.CoordinateSystem3d
	MajorRadius float64
	MinorRadius float64
}

func (t Torus) String() string {
	return fmt.Sprintf("Torus(%v, major: %g, minor: %g)", t.Position, t.MajorRadius, t.MinorRadius)
}

func (t Torus) Validate() error {
	if err := positive("torus minor radius", t.MinorRadius); err != nil {
		return err
	}
	if t.MajorRadius < t.MinorRadius {
		return invalid("torus major radius %g is smaller than minor radius %g", t.MajorRadius, t.MinorRadius)
	}
	return nil
}

func (t Torus) Area() float64 {
	return 4 * math.Pi * math.Pi * t.MajorRadius * t.MinorRadius
}

func (t Torus) Volume() float64 {
	return 2 * math.Pi * math.Pi * t.MajorRadius * t.MinorRadius * t.MinorRadius
}
