package engine

import (
	zygo "github.com/glycerine/zygomys/zygo"
	"gonum.org/v1/gonum/mat"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/interop"
)

// registerNumericBuiltins installs operations computed through gonum.
func registerNumericBuiltins(env *zygo.Zlisp) {

	// (rotate3d v axis angle), v turned about the direction axis (radians)
	register(env, "rotate3d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		v, err := toGeom[geom.Vector3d](args[0], "vector3d")
		if err != nil {
			return nil, err
		}
		axis, err := toGeom[geom.Direction3d](args[1], "dir3d")
		if err != nil {
			return nil, err
		}
		angle, err := toFloat64(args[2])
		if err != nil {
			return nil, err
		}
		return wrap(interop.R3Rotate(v, axis, angle)), nil
	})

	// (area-factor t), the signed factor by which t scales areas
	register(env, "area_factor", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		t, err := toGeom[geom.Trsf2d](args[0], "trsf")
		if err != nil {
			return nil, err
		}
		return num(mat.Det(interop.Trsf2dToDense(t))), nil
	})
}
