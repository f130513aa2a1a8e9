package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/geomkit/pkg/scene"
)

// builder collects scene nodes while a script runs. It is owned by one
// evaluation, so node paths and counters are deterministic.
type builder struct {
	scene    *scene.Scene
	order    []scene.NodeID
	counters map[string]int
}

func newBuilder() *builder {
	return &builder{
		scene:    scene.New(),
		counters: make(map[string]int),
	}
}

// path returns prefix/N with N counting up per prefix from 0.
func (b *builder) path(prefix string) string {
	n := b.counters[prefix]
	b.counters[prefix] = n + 1
	return fmt.Sprintf("%s/%d", prefix, n)
}

// add inserts n, rejecting a second node with the same name.
func (b *builder) add(n *scene.Node) error {
	if n.Name != "" && b.scene.Lookup(n.Name) != nil {
		return fmt.Errorf("name %q is already defined", n.Name)
	}
	if _, dup := b.scene.Nodes[n.ID]; dup {
		return fmt.Errorf("node %s is already defined", n.ID.Short())
	}
	b.scene.AddNode(n)
	b.order = append(b.order, n.ID)
	return nil
}

// finish makes every node that no other node references a root, in
// creation order, and returns the scene.
func (b *builder) finish() *scene.Scene {
	referenced := make(map[scene.NodeID]bool)
	for _, n := range b.scene.Nodes {
		for _, c := range n.Children {
			referenced[c] = true
		}
	}
	for _, id := range b.order {
		if !referenced[id] {
			b.scene.AddRoot(id)
		}
	}
	return b.scene
}

// operand resolves a script value to a scene node. A bare shape becomes an
// anonymous shape node.
func (b *builder) operand(v zygo.Sexp) (*scene.Node, error) {
	switch v := v.(type) {
	case *sexpNodeRef:
		n := b.scene.Get(v.id)
		if n == nil {
			return nil, fmt.Errorf("unknown node reference")
		}
		return n, nil
	case *sexpShape:
		n := &scene.Node{
			ID:   scene.NewNodeID(b.path("shape/anon")),
			Kind: scene.NodeShape,
			Data: v.data,
		}
		if err := b.add(n); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected shape or node reference, got %s", describe(v))
	}
}
