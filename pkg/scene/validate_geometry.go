package scene

import (
	"fmt"

	"github.com/chazu/geomkit/pkg/geom"
)

// validateGeometry runs the geometric checks. Returns errors (blocking)
// and warnings (advisory) separately.
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	for _, node := range s.Nodes {
		switch d := node.Data.(type) {
		case ShapeData:
			errs = append(errs, validateShape(node, d)...)
		case TransformData:
			e, w := validateTransform(s, node, d)
			errs = append(errs, e...)
			warnings = append(warnings, w...)
		case BooleanData:
			errs = append(errs, validateBoolean(s, node, d)...)
		}
		errs = append(errs, validateKind(node)...)
	}

	return errs, warnings
}

func shapeError(node *Node, format string, args ...any) ValidationError {
	return ValidationError{
		NodeID:   node.ID,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	}
}

// validateShape checks that the descriptor selected by Kind is present and
// valid, and that finite extents are positive.
func validateShape(node *Node, d ShapeData) []ValidationError {
	var errs []ValidationError

	check := func(err error) {
		if err != nil {
			errs = append(errs, shapeError(node, "%v", err))
		}
	}
	height := func(what string) {
		if d.Height <= 0 {
			errs = append(errs, shapeError(node, "%s height is %.4f, must be positive", what, d.Height))
		}
	}

	switch d.Kind {
	case ShapeBox:
		for i, axis := range []string{"X", "Y", "Z"} {
			if v := d.Size.At(i); v <= 0 {
				errs = append(errs, shapeError(node, "box dimension %s is %.4f, must be positive", axis, v))
			}
		}
	case ShapeSphere:
		if d.Sphere == nil {
			return append(errs, shapeError(node, "sphere shape has no sphere descriptor"))
		}
		check(d.Sphere.Validate())
	case ShapeCylinder:
		if d.Cylinder == nil {
			return append(errs, shapeError(node, "cylinder shape has no cylinder descriptor"))
		}
		check(d.Cylinder.Validate())
		height("cylinder")
	case ShapeCone:
		if d.Cone == nil {
			return append(errs, shapeError(node, "cone shape has no cone descriptor"))
		}
		check(d.Cone.Validate())
		height("cone")
		if d.Height > 0 && d.Cone.RadiusAt(d.Height) < 0 {
			errs = append(errs, shapeError(node, "cone closes before height %.4f", d.Height))
		}
	case ShapeTorus:
		if d.Torus == nil {
			return append(errs, shapeError(node, "torus shape has no torus descriptor"))
		}
		check(d.Torus.Validate())
	case ShapePrism:
		if d.Profile == nil {
			return append(errs, shapeError(node, "prism shape has no profile"))
		}
		check(d.Profile.Validate())
		height("prism")
		if d.ProfileTrsf != nil {
			if _, err := d.ProfileTrsf.Inverted(); err != nil {
				errs = append(errs, shapeError(node, "profile transform is not invertible: %v", err))
			}
		}
	default:
		errs = append(errs, shapeError(node, "unknown shape kind %d", int(d.Kind)))
	}

	return errs
}

// validateTransform rejects rotations about a degenerate axis and warns
// about transforms that do nothing.
func validateTransform(s *Scene, node *Node, d TransformData) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	tol := s.Defaults.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	if d.Rotation != nil {
		n := d.Rotation.Axis.Direction.XYZ().Modulus()
		if n < 1-tol || n > 1+tol {
			errs = append(errs, shapeError(node, "rotation axis is not a unit direction (length %.4f)", n))
		}
	}

	identity := true
	if d.Translation != nil && d.Translation.Length() > tol {
		identity = false
	}
	if d.Rotation != nil && !isNullAngle(d.Rotation.Angle) {
		identity = false
	}
	if identity {
		warnings = append(warnings, ValidationWarning{
			NodeID:  node.ID,
			Message: fmt.Sprintf("transform %q has no effect", node.DisplayName()),
		})
	}

	return errs, warnings
}

// validateBoolean requires at least two operands, each reaching a shape.
func validateBoolean(s *Scene, node *Node, d BooleanData) []ValidationError {
	switch d.Op {
	case BooleanUnion, BooleanDifference, BooleanIntersection:
	default:
		return []ValidationError{shapeError(node, "unknown boolean operation %d", int(d.Op))}
	}

	var errs []ValidationError
	if len(node.Children) < 2 {
		errs = append(errs, shapeError(node, "%s needs at least two operands, got %d", d.Op, len(node.Children)))
	}
	for i, id := range node.Children {
		if _, ok := s.Nodes[id]; !ok {
			continue // reported by validateReferences
		}
		if !reachesShape(s, id, make(map[NodeID]bool)) {
			errs = append(errs, shapeError(node, "%s operand %d contains no shape", d.Op, i+1))
		}
	}
	return errs
}

// reachesShape reports whether a shape node is reachable from id. seen
// guards against cycles, which validateDAG reports.
func reachesShape(s *Scene, id NodeID, seen map[NodeID]bool) bool {
	if seen[id] {
		return false
	}
	seen[id] = true
	n, ok := s.Nodes[id]
	if !ok {
		return false
	}
	if n.Kind == NodeShape {
		return true
	}
	for _, c := range n.Children {
		if reachesShape(s, c, seen) {
			return true
		}
	}
	return false
}

func isNullAngle(a float64) bool {
	return a > -geom.Angular && a < geom.Angular
}

// validateKind checks that Kind and Data agree.
func validateKind(node *Node) []ValidationError {
	ok := true
	switch node.Data.(type) {
	case ShapeData:
		ok = node.Kind == NodeShape
	case TransformData:
		ok = node.Kind == NodeTransform
	case GroupData, nil:
		ok = node.Kind == NodeGroup
	case BooleanData:
		ok = node.Kind == NodeBoolean
	}
	if ok {
		return nil
	}
	return []ValidationError{shapeError(node, "%s node carries %T", node.Kind, node.Data)}
}
