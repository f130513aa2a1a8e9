// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per shape node reached from a root,
// and one per boolean node, which consumes its whole subtree.
package tessellate

import (
	"fmt"

	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/logging"
	"github.com/chazu/geomkit/pkg/scene"
)

// transformStack accumulates transforms during scene traversal. The top of
// the stack is the innermost transform and is applied to a solid first.
type transformStack struct {
	frames []scene.TransformData
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(td scene.TransformData) {
	ts.frames = append(ts.frames, td)
}

func (ts *transformStack) pop() {
	if len(ts.frames) > 0 {
		ts.frames = ts.frames[:len(ts.frames)-1]
	}
}

// apply moves s by every frame, innermost first. Within a frame the
// rotation comes before the translation.
func (ts *transformStack) apply(k kernel.Kernel, s kernel.Solid) kernel.Solid {
	for i := len(ts.frames) - 1; i >= 0; i-- {
		td := ts.frames[i]
		if td.Rotation != nil && td.Rotation.Angle != 0 {
			s = k.Rotate(s, td.Rotation.Axis, td.Rotation.Angle)
		}
		if td.Translation != nil && td.Translation.SquareLength() != 0 {
			s = k.Translate(s, *td.Translation)
		}
	}
	return s
}

// Tessellate walks the scene and produces one triangle mesh per shape
// using the provided geometry kernel. The tessellator is read-only and
// never mutates the scene.
func Tessellate(s *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	ts := newTransformStack()

	for _, rootID := range s.Roots {
		root := s.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := walkNode(s, k, root, ts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walkNode recursively traverses a node and its children, collecting meshes.
func walkNode(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case scene.NodeShape:
		return handleShape(k, n, ts)
	case scene.NodeTransform:
		return handleTransform(s, k, n, ts)
	case scene.NodeGroup:
		return handleChildren(s, k, n, ts)
	case scene.NodeBoolean:
		return handleBoolean(s, k, n, ts)
	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// Solid builds the untransformed kernel solid for a shape descriptor.
func Solid(k kernel.Kernel, d scene.ShapeData) (kernel.Solid, error) {
	switch d.Kind {
	case scene.ShapeBox:
		return k.Box(d.Size.X, d.Size.Y, d.Size.Z)
	case scene.ShapeSphere:
		if d.Sphere == nil {
			return nil, fmt.Errorf("sphere shape without descriptor")
		}
		return k.Sphere(*d.Sphere)
	case scene.ShapeCylinder:
		if d.Cylinder == nil {
			return nil, fmt.Errorf("cylinder shape without descriptor")
		}
		return k.Cylinder(*d.Cylinder, d.Height)
	case scene.ShapeCone:
		if d.Cone == nil {
			return nil, fmt.Errorf("cone shape without descriptor")
		}
		return k.Cone(*d.Cone, d.Height)
	case scene.ShapeTorus:
		if d.Torus == nil {
			return nil, fmt.Errorf("torus shape without descriptor")
		}
		return k.Torus(*d.Torus)
	case scene.ShapePrism:
		if d.Profile == nil {
			return nil, fmt.Errorf("prism shape without profile")
		}
		p, err := k.Circle(*d.Profile)
		if err != nil {
			return nil, err
		}
		if d.ProfileTrsf != nil {
			if p, err = k.TransformProfile(p, *d.ProfileTrsf); err != nil {
				return nil, err
			}
		}
		return k.Prism(p, d.Height)
	default:
		return nil, fmt.Errorf("unsupported shape kind %v", d.Kind)
	}
}

// handleShape creates geometry for a shape node.
func handleShape(k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	data, ok := n.Data.(scene.ShapeData)
	if !ok {
		return nil, fmt.Errorf("shape node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	solid, err := Solid(k, data)
	if err != nil {
		return nil, fmt.Errorf("tessellate: %s node %s: %w", data.Kind, n.DisplayName(), err)
	}
	solid = ts.apply(k, solid)

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}
	mesh.PartName = n.DisplayName()

	logging.Logger().Debug("tessellated shape",
		"part", mesh.PartName,
		"kind", data.Kind.String(),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())

	return []*kernel.Mesh{mesh}, nil
}

// handleTransform pushes the transform, recurses into children, then pops.
func handleTransform(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	td, ok := n.Data.(scene.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	ts.push(td)
	defer ts.pop()
	return handleChildren(s, k, n, ts)
}

// handleChildren recurses into children transparently.
func handleChildren(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range s.Children(n) {
		collected, err := walkNode(s, k, child, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}

// handleBoolean meshes the combined solid of a boolean node.
func handleBoolean(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	bd, ok := n.Data.(scene.BooleanData)
	if !ok {
		return nil, fmt.Errorf("boolean node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}
	solid, err := buildSolid(s, k, n, ts)
	if err != nil {
		return nil, err
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}
	mesh.PartName = n.DisplayName()

	logging.Logger().Debug("tessellated boolean",
		"part", mesh.PartName,
		"op", bd.Op.String(),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())

	return []*kernel.Mesh{mesh}, nil
}

// buildSolid returns the single solid a subtree describes, already moved by
// the transforms on ts. Groups and transforms contribute the union of their
// children.
func buildSolid(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) (kernel.Solid, error) {
	switch n.Kind {
	case scene.NodeShape:
		data, ok := n.Data.(scene.ShapeData)
		if !ok {
			return nil, fmt.Errorf("shape node %s has unsupported data type %T", n.ID.Short(), n.Data)
		}
		solid, err := Solid(k, data)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %s node %s: %w", data.Kind, n.DisplayName(), err)
		}
		return ts.apply(k, solid), nil

	case scene.NodeTransform:
		td, ok := n.Data.(scene.TransformData)
		if !ok {
			return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
		}
		ts.push(td)
		defer ts.pop()
		return combine(s, k, n, scene.BooleanUnion, ts)

	case scene.NodeGroup:
		return combine(s, k, n, scene.BooleanUnion, ts)

	case scene.NodeBoolean:
		bd, ok := n.Data.(scene.BooleanData)
		if !ok {
			return nil, fmt.Errorf("boolean node %s has unexpected data type %T", n.ID.Short(), n.Data)
		}
		return combine(s, k, n, bd.Op, ts)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// combine folds the solids of n's children with op.
func combine(s *scene.Scene, k kernel.Kernel, n *scene.Node, op scene.BooleanOp, ts *transformStack) (kernel.Solid, error) {
	var acc kernel.Solid
	for _, child := range s.Children(n) {
		solid, err := buildSolid(s, k, child, ts)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = solid
			continue
		}
		switch op {
		case scene.BooleanUnion:
			acc = k.Union(acc, solid)
		case scene.BooleanDifference:
			acc = k.Difference(acc, solid)
		case scene.BooleanIntersection:
			acc = k.Intersection(acc, solid)
		default:
			return nil, fmt.Errorf("tessellate: unknown boolean operation %v", op)
		}
	}
	if acc == nil {
		return nil, fmt.Errorf("tessellate: %s node %s contributes no solid", n.Kind, n.DisplayName())
	}
	return acc, nil
}
