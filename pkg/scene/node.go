package scene

// NodeKind enumerates the types of nodes in the scene.
type NodeKind int

const (
	NodeShape     NodeKind = iota // solid built from a shape descriptor
	NodeTransform                 // rigid motion applied to children (place)
	NodeGroup                     // logical grouping
	NodeBoolean                   // union, difference or intersection of its children
)

func (k NodeKind) String() string {
	switch k {
	case NodeShape:
		return "shape"
	case NodeTransform:
		return "transform"
	case NodeGroup:
		return "group"
	case NodeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Node is the fundamental element of the scene.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Name     string
	Children []NodeID
	Data     NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}
