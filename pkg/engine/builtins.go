package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/scene"
	"github.com/chazu/geomkit/pkg/shape"
)

// registerBuiltins installs every script function into env. Scene
// builtins add nodes to b as the script runs.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens become recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {
	registerGeomBuiltins(env)
	registerNumericBuiltins(env)
	registerSceneBuiltins(env, b)
}

// position reads the optional :at point and :axis direction of a solid.
func position(pa kwArgs) (geom.CoordinateSystem3d, error) {
	origin := geom.Origin3d
	main := geom.DZ
	if v, ok := pa.kw["at"]; ok {
		p, err := toGeom[geom.Point3d](v, "point3d")
		if err != nil {
			return geom.CoordinateSystem3d{}, fmt.Errorf("at: %w", err)
		}
		origin = p
	}
	if v, ok := pa.kw["axis"]; ok {
		d, err := toGeom[geom.Direction3d](v, "dir3d")
		if err != nil {
			return geom.CoordinateSystem3d{}, fmt.Errorf("axis: %w", err)
		}
		main = d
	}
	return geom.CoordinateSystem3dAt(origin, main), nil
}

// positional reads the first n positional arguments as numbers.
func positional(pa kwArgs, names ...string) ([]float64, error) {
	if len(pa.positional) != len(names) {
		return nil, fmt.Errorf("requires %d positional arguments (%v), got %d",
			len(names), names, len(pa.positional))
	}
	out := make([]float64, len(names))
	for i, a := range pa.positional {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = f
	}
	return out, nil
}

// shapeOf validates d and wraps it for the script.
func shapeOf(d scene.ShapeData) (zygo.Sexp, error) {
	var err error
	switch d.Kind {
	case scene.ShapeSphere:
		err = d.Sphere.Validate()
	case scene.ShapeCylinder:
		err = d.Cylinder.Validate()
	case scene.ShapeCone:
		err = d.Cone.Validate()
	case scene.ShapeTorus:
		err = d.Torus.Validate()
	}
	if err != nil {
		return nil, err
	}
	return &sexpShape{data: d}, nil
}

func registerSceneBuiltins(env *zygo.Zlisp, b *builder) {

	// -----------------------------------------------------------------------
	// (sphere 5 :at (point3d 0 0 10))
	// -----------------------------------------------------------------------
	register(env, "sphere", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := positional(pa, "radius")
		if err != nil {
			return nil, err
		}
		cs, err := position(pa)
		if err != nil {
			return nil, err
		}
		return shapeOf(scene.ShapeData{
			Kind:   scene.ShapeSphere,
			Sphere: &shape.Sphere{Position: cs, Radius: f[0]},
		})
	})

	// -----------------------------------------------------------------------
	// (cylinder 2 10 :at p :axis d), radius then height
	// -----------------------------------------------------------------------
	register(env, "cylinder", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := positional(pa, "radius", "height")
		if err != nil {
			return nil, err
		}
		cs, err := position(pa)
		if err != nil {
			return nil, err
		}
		return shapeOf(scene.ShapeData{
			Kind:     scene.ShapeCylinder,
			Cylinder: &shape.Cylinder{Position: cs, Radius: f[0]},
			Height:   f[1],
		})
	})

	// -----------------------------------------------------------------------
	// (cone 4 -0.3 10 :at p :axis d), base radius, semi-angle, height
	// -----------------------------------------------------------------------
	register(env, "cone", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := positional(pa, "radius", "semi-angle", "height")
		if err != nil {
			return nil, err
		}
		cs, err := position(pa)
		if err != nil {
			return nil, err
		}
		return shapeOf(scene.ShapeData{
			Kind:   scene.ShapeCone,
			Cone:   &shape.Cone{Position: cs, Radius: f[0], SemiAngle: f[1]},
			Height: f[2],
		})
	})

	// -----------------------------------------------------------------------
	// (torus 10 2 :at p :axis d), major then minor radius
	// -----------------------------------------------------------------------
	register(env, "torus", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := positional(pa, "major-radius", "minor-radius")
		if err != nil {
			return nil, err
		}
		cs, err := position(pa)
		if err != nil {
			return nil, err
		}
		return shapeOf(scene.ShapeData{
			Kind:  scene.ShapeTorus,
			Torus: &shape.Torus{Position: cs, MajorRadius: f[0], MinorRadius: f[1]},
		})
	})

	// -----------------------------------------------------------------------
	// (box 40 20 5), min corner at the origin
	// -----------------------------------------------------------------------
	register(env, "box", func(args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats(args, 3)
		if err != nil {
			return nil, err
		}
		for i, v := range f {
			if v <= 0 {
				return nil, fmt.Errorf("dimension %d must be positive, got %g", i+1, v)
			}
		}
		return shapeOf(scene.ShapeData{Kind: scene.ShapeBox, Size: geom.NewXYZ(f[0], f[1], f[2])})
	})

	// -----------------------------------------------------------------------
	// (circle 3 :at (point2d 1 2))
	// -----------------------------------------------------------------------
	register(env, "circle", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := positional(pa, "radius")
		if err != nil {
			return nil, err
		}
		cs := geom.DefaultCoordinateSystem2d()
		if v, ok := pa.kw["at"]; ok {
			p, err := toGeom[geom.Point2d](v, "point2d")
			if err != nil {
				return nil, fmt.Errorf("at: %w", err)
			}
			cs.Origin = p
		}
		c := shape.Circle2d{Position: cs, Radius: f[0]}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return &sexpProfile{circle: c}, nil
	})

	// -----------------------------------------------------------------------
	// (prism profile 8), extruded along +Z from z=0
	// -----------------------------------------------------------------------
	register(env, "prism", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		p, ok := args[0].(*sexpProfile)
		if !ok {
			return nil, fmt.Errorf("expected profile, got %s", describe(args[0]))
		}
		h, err := toFloat64(args[1])
		if err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
		if h <= 0 {
			return nil, fmt.Errorf("height must be positive, got %g", h)
		}
		c := p.circle
		return shapeOf(scene.ShapeData{
			Kind:        scene.ShapePrism,
			Profile:     &c,
			ProfileTrsf: p.trsf,
			Height:      h,
		})
	})

	// -----------------------------------------------------------------------
	// (defshape "name" (sphere ...))
	// -----------------------------------------------------------------------
	register(env, "defshape", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		name, err := toString(args[0])
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		if name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		body, ok := args[1].(*sexpShape)
		if !ok {
			return nil, fmt.Errorf("expected shape expression, got %s", describe(args[1]))
		}
		id := scene.NewNodeID("shape/" + name)
		if err := b.add(&scene.Node{ID: id, Kind: scene.NodeShape, Name: name, Data: body.data}); err != nil {
			return nil, err
		}
		return &sexpNodeRef{id: id, name: name}, nil
	})

	// -----------------------------------------------------------------------
	// (shape "name")
	// -----------------------------------------------------------------------
	register(env, "shape", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		name, err := toString(args[0])
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		n := b.scene.Lookup(name)
		if n == nil {
			return nil, fmt.Errorf("no shape named %q", name)
		}
		return &sexpNodeRef{id: n.ID, name: name}, nil
	})

	// -----------------------------------------------------------------------
	// (place ref-or-shape :at (vector3d 0 0 5) :axis (axis3d ...) :angle a)
	// Rotation about :axis happens before the :at translation.
	// -----------------------------------------------------------------------
	register(env, "place", func(args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return nil, fmt.Errorf("requires one shape or node reference")
		}

		child, err := b.operand(pa.positional[0])
		if err != nil {
			return nil, err
		}

		td := scene.TransformData{}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toGeom[geom.Vector3d](v, "vector3d")
			if err != nil {
				return nil, fmt.Errorf("at: %w", err)
			}
			td.Translation = &vec
		}
		_, hasAxis := pa.kw["axis"]
		_, hasAngle := pa.kw["angle"]
		if hasAxis != hasAngle {
			return nil, fmt.Errorf(":axis and :angle must be given together")
		}
		if hasAxis {
			ax, err := toGeom[geom.Axis3d](pa.kw["axis"], "axis3d")
			if err != nil {
				return nil, fmt.Errorf("axis: %w", err)
			}
			ang, err := toFloat64(pa.kw["angle"])
			if err != nil {
				return nil, fmt.Errorf("angle: %w", err)
			}
			td.Rotation = &scene.AxisRotation{Axis: ax, Angle: ang}
		}

		id := scene.NewNodeID(b.path("place/" + child.DisplayName()))
		if err := b.add(&scene.Node{
			ID:       id,
			Kind:     scene.NodeTransform,
			Children: []scene.NodeID{child.ID},
			Data:     td,
		}); err != nil {
			return nil, err
		}
		return &sexpNodeRef{id: id}, nil
	})

	// -----------------------------------------------------------------------
	// (group "name" child...)
	// -----------------------------------------------------------------------
	register(env, "group", func(args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("requires a name argument")
		}
		name, err := toString(args[0])
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}

		var children []scene.NodeID
		for i := 1; i < len(args); i++ {
			ref, ok := args[i].(*sexpNodeRef)
			if !ok {
				return nil, fmt.Errorf("child %d: expected node reference, got %s", i, describe(args[i]))
			}
			children = append(children, ref.id)
		}

		id := scene.NewNodeID("group/" + name)
		if err := b.add(&scene.Node{
			ID:       id,
			Kind:     scene.NodeGroup,
			Name:     name,
			Children: children,
			Data:     scene.GroupData{Description: name},
		}); err != nil {
			return nil, err
		}
		return &sexpNodeRef{id: id, name: name}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b ...), (difference a b ...), (intersection a b ...)
	// Operands are shapes or node references; :name "cup" names the result.
	// -----------------------------------------------------------------------
	for _, op := range []scene.BooleanOp{scene.BooleanUnion, scene.BooleanDifference, scene.BooleanIntersection} {
		register(env, op.String(), func(args []zygo.Sexp) (zygo.Sexp, error) {
			return booleanNode(b, op, parseArgs(args))
		})
	}
}

// booleanNode adds a node combining the operands in pa with op.
func booleanNode(b *builder, op scene.BooleanOp, pa kwArgs) (zygo.Sexp, error) {
	if len(pa.positional) < 2 {
		return nil, fmt.Errorf("requires at least two operands, got %d", len(pa.positional))
	}
	var name string
	if v, ok := pa.kw["name"]; ok {
		n, err := toString(v)
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		if n == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		name = n
	}

	children := make([]scene.NodeID, 0, len(pa.positional))
	for i, a := range pa.positional {
		child, err := b.operand(a)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		children = append(children, child.ID)
	}

	path := b.path("boolean/" + op.String())
	if name != "" {
		path = "boolean/" + name
	}
	id := scene.NewNodeID(path)
	if err := b.add(&scene.Node{
		ID:       id,
		Kind:     scene.NodeBoolean,
		Name:     name,
		Children: children,
		Data:     scene.BooleanData{Op: op},
	}); err != nil {
		return nil, err
	}
	return &sexpNodeRef{id: id, name: name}, nil
}
