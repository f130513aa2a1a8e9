// Package interop converts geom values to and from the vector and matrix
// types of the libraries the rest of the module builds on: sdfx for solid
// modeling and gonum for numerical work.
package interop

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/geomkit/pkg/geom"
)

// ---------------------------------------------------------------------------
// sdfx
// ---------------------------------------------------------------------------

func XYToV2(c geom.XY) v2.Vec { return v2.Vec{X: c.X, Y: c.Y} }
func V2ToXY(v v2.Vec) geom.XY { return geom.NewXY(v.X, v.Y) }

func Point2dToV2(p geom.Point2d) v2.Vec { return XYToV2(p.XY()) }

func XYZToV3(c geom.XYZ) v3.Vec { return v3.Vec{X: c.X, Y: c.Y, Z: c.Z} }
func V3ToXYZ(v v3.Vec) geom.XYZ { return geom.NewXYZ(v.X, v.Y, v.Z) }

func Point3dToV3(p geom.Point3d) v3.Vec         { return XYZToV3(p.XYZ()) }
func Vector3dToV3(v geom.Vector3d) v3.Vec       { return XYZToV3(v.XYZ()) }
func Direction3dToV3(d geom.Direction3d) v3.Vec { return XYZToV3(d.XYZ()) }

// ---------------------------------------------------------------------------
// gonum
// ---------------------------------------------------------------------------

func XYToR2(c geom.XY) r2.Vec { return r2.Vec{X: c.X, Y: c.Y} }
func R2ToXY(v r2.Vec) geom.XY { return geom.NewXY(v.X, v.Y) }

func XYZToR3(c geom.XYZ) r3.Vec { return r3.Vec{X: c.X, Y: c.Y, Z: c.Z} }
func R3ToXYZ(v r3.Vec) geom.XYZ { return geom.NewXYZ(v.X, v.Y, v.Z) }

func Vector3dToR3(v geom.Vector3d) r3.Vec { return XYZToR3(v.XYZ()) }
func Point3dToR3(p geom.Point3d) r3.Vec   { return XYZToR3(p.XYZ()) }

// Matrix2dToDense copies m into a new 2x2 gonum matrix.
func Matrix2dToDense(m geom.Matrix2d) *mat.Dense {
	return mat.NewDense(2, 2, []float64{m.M[0][0], m.M[0][1], m.M[1][0], m.M[1][1]})
}

// DenseToMatrix2d reads the top-left 2x2 block of d. It panics if d is
// smaller than that.
func DenseToMatrix2d(d mat.Matrix) geom.Matrix2d {
	return geom.NewMatrix2d(d.At(0, 0), d.At(0, 1), d.At(1, 0), d.At(1, 1))
}

func Matrix3dToDense(m geom.Matrix3d) *mat.Dense {
	v := m.Values()
	return mat.NewDense(3, 3, v[:])
}

// Trsf2dToDense returns the homogeneous 3x3 matrix of t, so that gonum can
// compose or invert transforms independently of geom.
func Trsf2dToDense(t geom.Trsf2d) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.Value(0, 0), t.Value(0, 1), t.Value(0, 2),
		t.Value(1, 0), t.Value(1, 1), t.Value(1, 2),
		0, 0, 1,
	})
}

// R3Rotate rotates v about axis by angle using gonum's quaternion rotation.
// It backs the cross-checks of geom's Rodrigues rotation.
func R3Rotate(v geom.Vector3d, axis geom.Direction3d, angle float64) geom.Vector3d {
	rot := r3.NewRotation(angle, XYZToR3(axis.XYZ()))
	return geom.Vector3dFromXYZ(R3ToXYZ(rot.Rotate(Vector3dToR3(v))))
}
