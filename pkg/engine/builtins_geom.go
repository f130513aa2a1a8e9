package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/geomkit/pkg/geom"
)

// builtin is the body of a script function. Errors are prefixed with the
// function's script name by register.
type builtin func(args []zygo.Sexp) (zygo.Sexp, error)

// register installs f under name. Names use underscores; the script
// spells them with hyphens (see preprocessSource).
func register(env *zygo.Zlisp, name string, f builtin) {
	display := strings.ReplaceAll(name, "_", "-")
	env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		out, err := f(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", display, err)
		}
		return out, nil
	})
}

func arity(args []zygo.Sexp, n int) error {
	if len(args) != n {
		return fmt.Errorf("requires %d arguments, got %d", n, len(args))
	}
	return nil
}

// registerGeomBuiltins installs constructors and operations on geom values.
func registerGeomBuiltins(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// Constructors
	// -----------------------------------------------------------------------

	register(env, "xy", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 2)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewXY(f[0], f[1])), nil
	})

	register(env, "xyz", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 3)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewXYZ(f[0], f[1], f[2])), nil
	})

	register(env, "point2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 2)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewPoint2d(f[0], f[1])), nil
	})

	register(env, "point3d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 3)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewPoint3d(f[0], f[1], f[2])), nil
	})

	// (vector2d 3 4) or (vector2d p1 p2)
	register(env, "vector2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 2 {
			p1, ok1 := unwrap[geom.Point2d](args[0])
			p2, ok2 := unwrap[geom.Point2d](args[1])
			if ok1 && ok2 {
				return wrap(geom.Vector2dFromPoints(p1, p2)), nil
			}
		}
		f, err := floats(args, 2)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewVector2d(f[0], f[1])), nil
	})

	register(env, "vector3d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 2 {
			p1, ok1 := unwrap[geom.Point3d](args[0])
			p2, ok2 := unwrap[geom.Point3d](args[1])
			if ok1 && ok2 {
				return wrap(geom.Vector3dFromPoints(p1, p2)), nil
			}
		}
		f, err := floats(args, 3)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewVector3d(f[0], f[1], f[2])), nil
	})

	register(env, "dir2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 2)
		if err != nil {
			return nil, err
		}
		d, err := geom.NewDirection2d(f[0], f[1])
		if err != nil {
			return nil, err
		}
		return wrap(d), nil
	})

	register(env, "dir3d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 3)
		if err != nil {
			return nil, err
		}
		d, err := geom.NewDirection3d(f[0], f[1], f[2])
		if err != nil {
			return nil, err
		}
		return wrap(d), nil
	})

	// (matrix2d a00 a01 a10 a11), row-major
	register(env, "matrix2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 4)
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewMatrix2d(f[0], f[1], f[2], f[3])), nil
	})

	register(env, "identity2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return wrap(geom.Identity2d()), nil
	})

	register(env, "rotation2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 1)
		if err != nil {
			return nil, err
		}
		return wrap(geom.Rotation2d(f[0])), nil
	})

	register(env, "axis2d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		p, err := toGeom[geom.Point2d](args[0], "point2d")
		if err != nil {
			return nil, err
		}
		d, err := toGeom[geom.Direction2d](args[1], "dir2d")
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewAxis2d(p, d)), nil
	})

	register(env, "axis3d", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		p, err := toGeom[geom.Point3d](args[0], "point3d")
		if err != nil {
			return nil, err
		}
		d, err := toGeom[geom.Direction3d](args[1], "dir3d")
		if err != nil {
			return nil, err
		}
		return wrap(geom.NewAxis3d(p, d)), nil
	})

	register(env, "radians", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 1)
		if err != nil {
			return nil, err
		}
		return num(f[0] * math.Pi / 180), nil
	})

	// -----------------------------------------------------------------------
	// Arithmetic
	// -----------------------------------------------------------------------

	register(env, "add", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		return addSub(args[0], args[1], 1)
	})

	register(env, "sub", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		return addSub(args[0], args[1], -1)
	})

	register(env, "scale", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		s, err := toFloat64(args[1])
		if err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.XY]:
			return wrap(a.v.Scaled(s)), nil
		case *sexpGeom[geom.XYZ]:
			return wrap(a.v.Scaled(s)), nil
		case *sexpGeom[geom.Vector2d]:
			return wrap(a.v.Scaled(s)), nil
		case *sexpGeom[geom.Vector3d]:
			return wrap(a.v.Scaled(s)), nil
		case *sexpGeom[geom.Matrix2d]:
			return wrap(a.v.Scaled(s)), nil
		}
		return nil, fmt.Errorf("cannot scale %s", describe(args[0]))
	})

	register(env, "dot", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Vector2d]:
			b, err := toGeom[geom.Vector2d](args[1], "vector2d")
			return num(a.v.Dot(b)), err
		case *sexpGeom[geom.Vector3d]:
			b, err := toGeom[geom.Vector3d](args[1], "vector3d")
			return num(a.v.Dot(b)), err
		case *sexpGeom[geom.Direction2d]:
			b, err := toGeom[geom.Direction2d](args[1], "dir2d")
			return num(a.v.Dot(b)), err
		case *sexpGeom[geom.Direction3d]:
			b, err := toGeom[geom.Direction3d](args[1], "dir3d")
			return num(a.v.Dot(b)), err
		case *sexpGeom[geom.XY]:
			b, err := toGeom[geom.XY](args[1], "xy")
			return num(a.v.Dot(b)), err
		case *sexpGeom[geom.XYZ]:
			b, err := toGeom[geom.XYZ](args[1], "xyz")
			return num(a.v.Dot(b)), err
		}
		return nil, fmt.Errorf("cannot take dot product of %s", describe(args[0]))
	})

	// 2D cross products are scalars; 3D ones are vectors or directions.
	register(env, "cross", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Vector2d]:
			b, err := toGeom[geom.Vector2d](args[1], "vector2d")
			return num(a.v.Cross(b)), err
		case *sexpGeom[geom.Direction2d]:
			b, err := toGeom[geom.Direction2d](args[1], "dir2d")
			return num(a.v.Cross(b)), err
		case *sexpGeom[geom.XY]:
			b, err := toGeom[geom.XY](args[1], "xy")
			return num(a.v.Cross(b)), err
		case *sexpGeom[geom.Vector3d]:
			b, err := toGeom[geom.Vector3d](args[1], "vector3d")
			return wrap(a.v.Cross(b)), err
		case *sexpGeom[geom.XYZ]:
			b, err := toGeom[geom.XYZ](args[1], "xyz")
			return wrap(a.v.Cross(b)), err
		case *sexpGeom[geom.Direction3d]:
			b, err := toGeom[geom.Direction3d](args[1], "dir3d")
			if err != nil {
				return nil, err
			}
			d, err := a.v.Cross(b)
			if err != nil {
				return nil, err
			}
			return wrap(d), nil
		}
		return nil, fmt.Errorf("cannot take cross product of %s", describe(args[0]))
	})

	register(env, "length", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Vector2d]:
			return num(a.v.Length()), nil
		case *sexpGeom[geom.Vector3d]:
			return num(a.v.Length()), nil
		case *sexpGeom[geom.XY]:
			return num(a.v.Modulus()), nil
		case *sexpGeom[geom.XYZ]:
			return num(a.v.Modulus()), nil
		}
		return nil, fmt.Errorf("cannot take length of %s", describe(args[0]))
	})

	register(env, "normalize", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Vector2d]:
			v, err := a.v.Normalized()
			if err != nil {
				return nil, err
			}
			return wrap(v), nil
		case *sexpGeom[geom.Vector3d]:
			v, err := a.v.Normalized()
			if err != nil {
				return nil, err
			}
			return wrap(v), nil
		}
		return nil, fmt.Errorf("cannot normalize %s", describe(args[0]))
	})

	register(env, "distance", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Point2d]:
			b, err := toGeom[geom.Point2d](args[1], "point2d")
			return num(a.v.Distance(b)), err
		case *sexpGeom[geom.Point3d]:
			b, err := toGeom[geom.Point3d](args[1], "point3d")
			return num(a.v.Distance(b)), err
		}
		return nil, fmt.Errorf("cannot measure distance from %s", describe(args[0]))
	})

	// Planar angles are signed in (-pi, pi]; spatial ones lie in [0, pi].
	register(env, "angle", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Vector2d]:
			b, err := toGeom[geom.Vector2d](args[1], "vector2d")
			if err != nil {
				return nil, err
			}
			ang, err := a.v.AngleTo(b)
			if err != nil {
				return nil, err
			}
			return num(ang), nil
		case *sexpGeom[geom.Vector3d]:
			b, err := toGeom[geom.Vector3d](args[1], "vector3d")
			if err != nil {
				return nil, err
			}
			ang, err := a.v.AngleTo(b)
			if err != nil {
				return nil, err
			}
			return num(ang), nil
		case *sexpGeom[geom.Direction2d]:
			b, err := toGeom[geom.Direction2d](args[1], "dir2d")
			return num(a.v.Angle(b)), err
		case *sexpGeom[geom.Direction3d]:
			b, err := toGeom[geom.Direction3d](args[1], "dir3d")
			return num(a.v.Angle(b)), err
		}
		return nil, fmt.Errorf("cannot measure angle of %s", describe(args[0]))
	})

	// -----------------------------------------------------------------------
	// Matrices
	// -----------------------------------------------------------------------

	register(env, "det", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		m, err := toGeom[geom.Matrix2d](args[0], "matrix2d")
		if err != nil {
			return nil, err
		}
		return num(m.Determinant()), nil
	})

	register(env, "invert", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Matrix2d]:
			inv, err := a.v.Inverted()
			if err != nil {
				return nil, err
			}
			return wrap(inv), nil
		case *sexpGeom[geom.Trsf2d]:
			inv, err := a.v.Inverted()
			if err != nil {
				return nil, err
			}
			return wrap(inv), nil
		}
		return nil, fmt.Errorf("cannot invert %s", describe(args[0]))
	})

	// (matmul a b) is a·b; (matmul m xy) applies m to a coordinate pair.
	register(env, "matmul", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		m, err := toGeom[geom.Matrix2d](args[0], "matrix2d")
		if err != nil {
			return nil, err
		}
		if c, ok := unwrap[geom.XY](args[1]); ok {
			return wrap(c.Multiplied(m)), nil
		}
		o, err := toGeom[geom.Matrix2d](args[1], "matrix2d or xy")
		if err != nil {
			return nil, err
		}
		return wrap(m.Multiplied(o)), nil
	})

	register(env, "matpow", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case *sexpGeom[geom.Matrix2d]:
			p, err := a.v.Powered(n)
			if err != nil {
				return nil, err
			}
			return wrap(p), nil
		case *sexpGeom[geom.Trsf2d]:
			p, err := a.v.Powered(n)
			if err != nil {
				return nil, err
			}
			return wrap(p), nil
		}
		return nil, fmt.Errorf("cannot raise %s to a power", describe(args[0]))
	})

	register(env, "transpose", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		m, err := toGeom[geom.Matrix2d](args[0], "matrix2d")
		if err != nil {
			return nil, err
		}
		return wrap(m.Transposed()), nil
	})

	// -----------------------------------------------------------------------
	// Planar transforms
	// -----------------------------------------------------------------------

	register(env, "trsf_mirror", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		p, err := toGeom[geom.Point2d](args[0], "point2d")
		if err != nil {
			return nil, err
		}
		t := geom.NewTrsf2d()
		t.SetMirrorPoint(p)
		return wrap(t), nil
	})

	register(env, "trsf_mirror_axis", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := toGeom[geom.Axis2d](args[0], "axis2d")
		if err != nil {
			return nil, err
		}
		t := geom.NewTrsf2d()
		t.SetMirrorAxis(a)
		return wrap(t), nil
	})

	register(env, "trsf_rotation", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		p, err := toGeom[geom.Point2d](args[0], "point2d")
		if err != nil {
			return nil, err
		}
		ang, err := toFloat64(args[1])
		if err != nil {
			return nil, err
		}
		t := geom.NewTrsf2d()
		t.SetRotation(p, ang)
		return wrap(t), nil
	})

	register(env, "trsf_scale", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		p, err := toGeom[geom.Point2d](args[0], "point2d")
		if err != nil {
			return nil, err
		}
		s, err := toFloat64(args[1])
		if err != nil {
			return nil, err
		}
		t := geom.NewTrsf2d()
		if err := t.SetScale(p, s); err != nil {
			return nil, err
		}
		return wrap(t), nil
	})

	// (trsf-translation v) or (trsf-translation p1 p2)
	register(env, "trsf_translation", func(args []zygo.Sexp) (zygo.Sexp, error) {
		t := geom.NewTrsf2d()
		switch len(args) {
		case 1:
			v, err := toGeom[geom.Vector2d](args[0], "vector2d")
			if err != nil {
				return nil, err
			}
			t.SetTranslationVector(v)
		case 2:
			p1, err := toGeom[geom.Point2d](args[0], "point2d")
			if err != nil {
				return nil, err
			}
			p2, err := toGeom[geom.Point2d](args[1], "point2d")
			if err != nil {
				return nil, err
			}
			t.SetTranslationPoints(p1, p2)
		default:
			return nil, fmt.Errorf("requires a vector2d or two point2d, got %d arguments", len(args))
		}
		return wrap(t), nil
	})

	// (compose t1 t2 ... tn) applies tn first and t1 last.
	register(env, "compose", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("requires at least one transform")
		}
		out := geom.NewTrsf2d()
		for i, a := range args {
			t, err := toGeom[geom.Trsf2d](a, "trsf")
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			out = out.Multiplied(t)
		}
		return wrap(out), nil
	})

	// (transform trsf value) maps a planar value or a profile.
	register(env, "transform", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		t, err := toGeom[geom.Trsf2d](args[0], "trsf")
		if err != nil {
			return nil, err
		}
		switch a := args[1].(type) {
		case *sexpGeom[geom.XY]:
			return wrap(t.TransformXY(a.v)), nil
		case *sexpGeom[geom.Point2d]:
			return wrap(t.TransformPoint(a.v)), nil
		case *sexpGeom[geom.Vector2d]:
			return wrap(t.TransformVector(a.v)), nil
		case *sexpGeom[geom.Direction2d]:
			d, err := t.TransformDirection(a.v)
			if err != nil {
				return nil, err
			}
			return wrap(d), nil
		case *sexpGeom[geom.Trsf2d]:
			return wrap(t.Multiplied(a.v)), nil
		case *sexpProfile:
			placed := t
			if a.trsf != nil {
				placed = t.Multiplied(*a.trsf)
			}
			return &sexpProfile{circle: a.circle, trsf: &placed}, nil
		}
		return nil, fmt.Errorf("cannot transform %s", describe(args[1]))
	})
}

// addSub returns a + sign·b for matching kinds. Points combine with
// vectors; two points subtract to a vector.
func addSub(a, b zygo.Sexp, sign float64) (zygo.Sexp, error) {
	switch x := a.(type) {
	case *sexpGeom[geom.XY]:
		y, err := toGeom[geom.XY](b, "xy")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Add(y.Scaled(sign))), nil
	case *sexpGeom[geom.XYZ]:
		y, err := toGeom[geom.XYZ](b, "xyz")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Add(y.Scaled(sign))), nil
	case *sexpGeom[geom.Vector2d]:
		y, err := toGeom[geom.Vector2d](b, "vector2d")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Add(y.Scaled(sign))), nil
	case *sexpGeom[geom.Vector3d]:
		y, err := toGeom[geom.Vector3d](b, "vector3d")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Add(y.Scaled(sign))), nil
	case *sexpGeom[geom.Matrix2d]:
		y, err := toGeom[geom.Matrix2d](b, "matrix2d")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Add(y.Scaled(sign))), nil
	case *sexpGeom[geom.Point2d]:
		if p, ok := unwrap[geom.Point2d](b); ok && sign < 0 {
			return wrap(geom.Vector2dFromPoints(p, x.v)), nil
		}
		v, err := toGeom[geom.Vector2d](b, "vector2d")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Translated(v.Scaled(sign))), nil
	case *sexpGeom[geom.Point3d]:
		if p, ok := unwrap[geom.Point3d](b); ok && sign < 0 {
			return wrap(geom.Vector3dFromPoints(p, x.v)), nil
		}
		v, err := toGeom[geom.Vector3d](b, "vector3d")
		if err != nil {
			return nil, err
		}
		return wrap(x.v.Translated(v.Scaled(sign))), nil
	}
	return nil, fmt.Errorf("unsupported operand %s", describe(a))
}
