package sdfx

import (
	"errors"
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/shape"
)

// testCells keeps marching cubes fast; the assertions only need a coarse
// mesh.
const testCells = 40

func newTestKernel() *SdfxKernel {
	return NewWithOptions(Options{MeshCells: testCells})
}

func assertBounds(t *testing.T, s kernel.Solid, wantMin, wantMax [3]float64, tol float64) {
	t.Helper()
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], wantMax[i])
		}
	}
}

func frame(origin geom.Point3d, main geom.Direction3d) geom.CoordinateSystem3d {
	return geom.CoordinateSystem3dAt(origin, main)
}

func TestOptions(t *testing.T) {
	if got := New().MeshCells(); got != DefaultMeshCells {
		t.Errorf("default MeshCells = %d", got)
	}
	if got := NewWithOptions(Options{MeshCells: 12}).MeshCells(); got != 12 {
		t.Errorf("MeshCells = %d", got)
	}
}

func TestBox(t *testing.T) {
	k := newTestKernel()
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, box, [3]float64{0, 0, 0}, [3]float64{100, 50, 25}, 1e-9)

	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3", len(mesh.Indices))
	}

	if _, err := k.Box(0, 1, 1); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("zero box: err = %v", err)
	}
}

func TestSphere(t *testing.T) {
	k := newTestKernel()
	s, err := k.Sphere(shape.Sphere{Position: frame(geom.NewPoint3d(5, 0, 0), geom.DZ), Radius: 2})
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, s, [3]float64{3, -2, -2}, [3]float64{7, 2, 2}, 1e-9)

	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatal(err)
	}
	c := mesh.Centroid()
	if math.Abs(c[0]-5) > 0.2 || math.Abs(c[1]) > 0.2 || math.Abs(c[2]) > 0.2 {
		t.Errorf("sphere centroid = %v, expected near (5, 0, 0)", c)
	}

	if _, err := k.Sphere(shape.Sphere{Position: geom.DefaultCoordinateSystem3d()}); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("zero sphere: err = %v", err)
	}
}

func TestCylinderFollowsAxis(t *testing.T) {
	k := newTestKernel()

	up, err := k.Cylinder(shape.Cylinder{Position: geom.DefaultCoordinateSystem3d(), Radius: 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, up, [3]float64{-1, -1, 0}, [3]float64{1, 1, 10}, 1e-9)

	along, err := k.Cylinder(shape.Cylinder{Position: frame(geom.Origin3d, geom.DX3), Radius: 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, along, [3]float64{0, -1, -1}, [3]float64{10, 1, 1}, 1e-6)

	down, err := k.Cylinder(shape.Cylinder{Position: frame(geom.Origin3d, geom.DZ.Reversed()), Radius: 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, down, [3]float64{-1, -1, -10}, [3]float64{1, 1, 0}, 1e-6)

	if _, err := k.Cylinder(shape.Cylinder{Position: geom.DefaultCoordinateSystem3d(), Radius: 1}, 0); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("zero height: err = %v", err)
	}
}

func TestCone(t *testing.T) {
	k := newTestKernel()
	c := shape.Cone{Position: geom.DefaultCoordinateSystem3d(), Radius: 1, SemiAngle: math.Pi / 4}
	s, err := k.Cone(c, 2)
	if err != nil {
		t.Fatal(err)
	}
	// The top radius is 1 + 2·tan(45°) = 3.
	assertBounds(t, s, [3]float64{-3, -3, 0}, [3]float64{3, 3, 2}, 1e-6)

	closing := shape.Cone{Position: geom.DefaultCoordinateSystem3d(), Radius: 1, SemiAngle: -math.Pi / 4}
	if _, err := k.Cone(closing, 2); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("cone closing below height: err = %v", err)
	}
	if _, err := k.Cone(closing, 0.5); err != nil {
		t.Errorf("frustum: %v", err)
	}
}

func TestTorus(t *testing.T) {
	k := newTestKernel()
	s, err := k.Torus(shape.Torus{Position: geom.DefaultCoordinateSystem3d(), MajorRadius: 3, MinorRadius: 1})
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, s, [3]float64{-4, -4, -1}, [3]float64{4, 4, 1}, 1e-6)

	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.IsEmpty() {
		t.Fatal("torus mesh is empty")
	}
	// The hole means no vertex lies near the axis.
	for i := 0; i < mesh.VertexCount(); i++ {
		x, y := float64(mesh.Vertices[i*3]), float64(mesh.Vertices[i*3+1])
		if math.Hypot(x, y) < 1.5 {
			t.Fatalf("vertex (%g, %g) inside the torus hole", x, y)
		}
	}

	if _, err := k.Torus(shape.Torus{Position: geom.DefaultCoordinateSystem3d(), MajorRadius: 1, MinorRadius: 2}); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("self-intersecting torus: err = %v", err)
	}
}

func TestProfileTransform(t *testing.T) {
	k := newTestKernel()
	p, err := k.Circle(shape.Circle2d{Position: geom.DefaultCoordinateSystem2d(), Radius: 1})
	if err != nil {
		t.Fatal(err)
	}

	var grow, move geom.Trsf2d
	if err := grow.SetScale(geom.Origin2d, 2); err != nil {
		t.Fatal(err)
	}
	move.SetTranslationVector(geom.NewVector2d(10, 0))

	moved, err := k.TransformProfile(p, move.Multiplied(grow))
	if err != nil {
		t.Fatal(err)
	}
	min, max := moved.Bounds()
	if math.Abs(min[0]-8) > 1e-9 || math.Abs(max[0]-12) > 1e-9 || math.Abs(max[1]-2) > 1e-9 {
		t.Errorf("bounds = %v, %v", min, max)
	}

	field := moved.(*sdfxProfile).s
	tests := []struct {
		x, y, want float64
	}{
		{10, 0, -2},
		{13, 0, 1},
		{10, 2, 0},
	}
	for _, tc := range tests {
		if got := field.Evaluate(v2.Vec{X: tc.x, Y: tc.y}); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("distance at (%g, %g) = %g, want %g", tc.x, tc.y, got, tc.want)
		}
	}

	var mirror geom.Trsf2d
	mirror.SetMirrorAxis(geom.OY2d())
	offset, err := k.Circle(shape.Circle2d{
		Position: geom.NewCoordinateSystem2d(geom.NewPoint2d(3, 0), geom.DX),
		Radius:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	flipped, err := k.TransformProfile(offset, mirror)
	if err != nil {
		t.Fatal(err)
	}
	if got := flipped.(*sdfxProfile).s.Evaluate(v2.Vec{X: -3, Y: 0}); math.Abs(got+1) > 1e-9 {
		t.Errorf("mirrored center distance = %g, want -1", got)
	}

	singular := geom.NewTrsf2d()
	singular.SetMatrix(geom.NewMatrix2d(1, 0, 0, 0))
	if _, err := k.TransformProfile(p, singular); !errors.Is(err, geom.ErrSingularMatrix) {
		t.Errorf("singular transform: err = %v", err)
	}
}

func TestPrism(t *testing.T) {
	k := newTestKernel()
	p, err := k.Circle(shape.Circle2d{Position: geom.DefaultCoordinateSystem2d(), Radius: 2})
	if err != nil {
		t.Fatal(err)
	}
	s, err := k.Prism(p, 5)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, s, [3]float64{-2, -2, 0}, [3]float64{2, 2, 5}, 1e-9)

	if _, err := k.Prism(p, -1); !errors.Is(err, shape.ErrInvalidShape) {
		t.Errorf("negative height: err = %v", err)
	}
}

func TestBooleans(t *testing.T) {
	k := newTestKernel()
	box, _ := k.Box(100, 100, 100)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatal(err)
	}

	hole, err := k.Cylinder(shape.Cylinder{Position: frame(geom.NewPoint3d(50, 50, -10), geom.DZ), Radius: 20}, 120)
	if err != nil {
		t.Fatal(err)
	}
	diffMesh, err := k.ToMesh(k.Difference(box, hole))
	if err != nil {
		t.Fatal(err)
	}
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Errorf("difference (%d triangles) should have more triangles than box (%d)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}

	other := k.Translate(box, geom.NewVector3d(50, 0, 0))
	assertBounds(t, k.Union(box, other), [3]float64{0, 0, 0}, [3]float64{150, 100, 100}, 1e-9)

	inter, err := k.ToMesh(k.Intersection(box, other))
	if err != nil {
		t.Fatal(err)
	}
	if inter.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
	min, max := inter.Bounds()
	if min[0] < 45 || max[0] > 105 {
		t.Errorf("intersection spans x %g..%g, expected about 50..100", min[0], max[0])
	}
}

func TestRotate(t *testing.T) {
	k := newTestKernel()
	box, _ := k.Box(100, 10, 10)

	// A long box along X turned a quarter about Z extends along Y instead.
	rotated := k.Rotate(box, geom.OZ(), math.Pi/2)
	min, max := rotated.BoundingBox()

	const tol = 1e-6
	if math.Abs((max[0]-min[0])-10) > tol {
		t.Errorf("rotated X extent = %f, expected 10", max[0]-min[0])
	}
	if math.Abs((max[1]-min[1])-100) > tol {
		t.Errorf("rotated Y extent = %f, expected 100", max[1]-min[1])
	}

	// Rotating about an axis through the box's far corner keeps that corner.
	pivot := geom.NewAxis3d(geom.NewPoint3d(100, 10, 0), geom.DZ)
	turned := k.Rotate(box, pivot, math.Pi)
	assertBounds(t, turned, [3]float64{100, 10, 0}, [3]float64{200, 20, 10}, 1e-6)
}
