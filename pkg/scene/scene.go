package scene

import (
	"fmt"

	"github.com/chazu/geomkit/pkg/geom"
)

// DefaultTolerance is the default linear tolerance of a scene.
const DefaultTolerance = geom.Confusion

// Defaults contains scene-wide settings.
type Defaults struct {
	Units     string  // "mm" unless the script says otherwise
	Tolerance float64 // linear tolerance used by geometric checks
}

// Scene is the immutable data structure produced by script evaluation.
// It is never mutated once returned; each evaluation produces a new scene.
type Scene struct {
	Nodes     map[NodeID]*Node
	Roots     []NodeID
	NameIndex map[string]NodeID
	Defaults  Defaults
}

// New creates an empty Scene with default settings.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
		Defaults: Defaults{
			Units:     "mm",
			Tolerance: DefaultTolerance,
		},
	}
}

// AddNode adds a node to the scene. It does not check for duplicates.
func (s *Scene) AddNode(n *Node) {
	s.Nodes[n.ID] = n
	if n.Name != "" {
		s.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers a node ID as a root of the scene.
func (s *Scene) AddRoot(id NodeID) {
	s.Roots = append(s.Roots, id)
}

// Lookup returns the node with the given user-assigned name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (s *Scene) MustLookup(name string) *Node {
	n := s.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("scene: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// Shapes returns all shape nodes.
func (s *Scene) Shapes() []*Node {
	var shapes []*Node
	for _, n := range s.Nodes {
		if n.Kind == NodeShape {
			shapes = append(shapes, n)
		}
	}
	return shapes
}

// Children returns the child nodes of n, skipping dangling references.
func (s *Scene) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := s.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}

// DisplayName returns the node's name, or its short ID if unnamed.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}
