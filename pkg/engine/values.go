package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/scene"
	"github.com/chazu/geomkit/pkg/shape"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpGeom wraps a geom value (XY, Point3d, Trsf2d, ...) so builtins can
// pass it around. It prints as the value's String form.
type sexpGeom[T fmt.Stringer] struct {
	v T
}

func (g *sexpGeom[T]) SexpString(ps *zygo.PrintState) string { return g.v.String() }
func (g *sexpGeom[T]) Type() *zygo.RegisteredType            { return nil }

func wrap[T fmt.Stringer](v T) zygo.Sexp {
	return &sexpGeom[T]{v: v}
}

// unwrap returns the geom value inside s if it has type T.
func unwrap[T fmt.Stringer](s zygo.Sexp) (T, bool) {
	g, ok := s.(*sexpGeom[T])
	if !ok {
		var zero T
		return zero, false
	}
	return g.v, true
}

// sexpShape is an unplaced shape descriptor returned by sphere, box, etc.
type sexpShape struct {
	data scene.ShapeData
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	d := s.data
	switch d.Kind {
	case scene.ShapeBox:
		return fmt.Sprintf("(box %gx%gx%g)", d.Size.X, d.Size.Y, d.Size.Z)
	case scene.ShapeSphere:
		return fmt.Sprintf("(sphere %v)", *d.Sphere)
	case scene.ShapeCylinder:
		return fmt.Sprintf("(cylinder %v height: %g)", *d.Cylinder, d.Height)
	case scene.ShapeCone:
		return fmt.Sprintf("(cone %v height: %g)", *d.Cone, d.Height)
	case scene.ShapeTorus:
		return fmt.Sprintf("(torus %v)", *d.Torus)
	case scene.ShapePrism:
		return fmt.Sprintf("(prism %v height: %g)", *d.Profile, d.Height)
	}
	return fmt.Sprintf("(%s)", d.Kind)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpProfile is a planar cross-section with an optional placement.
type sexpProfile struct {
	circle shape.Circle2d
	trsf   *geom.Trsf2d
}

func (p *sexpProfile) SexpString(ps *zygo.PrintState) string {
	if p.trsf != nil {
		return fmt.Sprintf("(profile %v %v)", p.circle, *p.trsf)
	}
	return fmt.Sprintf("(profile %v)", p.circle)
}
func (p *sexpProfile) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef wraps a scene.NodeID so it can be passed between builtins.
type sexpNodeRef struct {
	id   scene.NodeID
	name string // human-readable name for error messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(noderef %q)", n.name)
	}
	return fmt.Sprintf("(noderef %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string and returns the
// keyword name without prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return s.SexpString(nil)
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toInt extracts a whole number.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

// toGeom extracts a geom value of type T; what names it in the error.
func toGeom[T fmt.Stringer](s zygo.Sexp, what string) (T, error) {
	v, ok := unwrap[T](s)
	if !ok {
		return v, fmt.Errorf("expected %s, got %s", what, describe(s))
	}
	return v, nil
}

// floats extracts n numbers from args.
func floats(args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("requires exactly %d numbers, got %d arguments", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// toNodeRef extracts a NodeID from a sexpNodeRef.
func toNodeRef(s zygo.Sexp) (scene.NodeID, error) {
	if ref, ok := s.(*sexpNodeRef); ok {
		return ref.id, nil
	}
	return "", fmt.Errorf("expected node reference, got %s", describe(s))
}

func num(v float64) zygo.Sexp { return &zygo.SexpFloat{Val: v} }
