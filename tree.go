package radial

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// NodeID addresses a node inside a Tree. IDs are assigned in creation order
// starting at 1 and never change. The zero value means "no node".
type NodeID uint32

// TreeView is the read-only view of a tree consumed by the layout engine and
// the exporters. Children may contain a node more than once across the tree,
// including one of its own ancestors.
type TreeView interface {
	Root() NodeID
	Children(id NodeID) []NodeID
	Parent(id NodeID) (NodeID, bool)
	Label(id NodeID) string
}

// nodeRecord is one arena slot. children are ownership edges in traversal
// order; parent is the back-reference recorded when the node was created.
type nodeRecord[T any] struct {
	value    T
	parent   NodeID
	children []NodeID
}

// Tree is an append-only n-ary tree of values stored in an arena.
//
// A node created with AddChild records its creator as parent. AttachChild
// appends an existing node under another parent without changing that record,
// which is how shared and self-referential ("fractal") subtrees are built.
// No cycle or duplicate check is performed.
type Tree[T any] struct {
	nodes []nodeRecord[T]
}

// NewTree creates a tree with a single root holding value.
func NewTree[T any](value T) *Tree[T] {
	return &Tree[T]{nodes: []nodeRecord[T]{{value: value}}}
}

// Root returns the id of the root node.
func (t *Tree[T]) Root() NodeID {
	return 1
}

// Len returns the number of nodes in the arena.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Has reports whether id names a node of this tree.
func (t *Tree[T]) Has(id NodeID) bool {
	return id != 0 && int(id) <= len(t.nodes)
}

func (t *Tree[T]) record(id NodeID) *nodeRecord[T] {
	return &t.nodes[id-1]
}

// AddChild creates a node holding value and appends it to parent's children.
// Returns ErrInvalidNode if parent does not exist; the tree is unchanged.
func (t *Tree[T]) AddChild(parent NodeID, value T) (NodeID, error) {
	if !t.Has(parent) {
		return 0, errors.Wrapf(ErrInvalidNode, "add child to node %d", parent)
	}
	t.nodes = append(t.nodes, nodeRecord[T]{value: value, parent: parent})
	id := NodeID(len(t.nodes))
	p := t.record(parent)
	p.children = append(p.children, id)
	return id, nil
}

// AttachChild appends an existing node to parent's children without changing
// the node's recorded parent. The node may already be a child elsewhere, or an
// ancestor of parent. Returns ErrInvalidNode if either id does not exist.
func (t *Tree[T]) AttachChild(parent, node NodeID) (NodeID, error) {
	if !t.Has(parent) {
		return 0, errors.Wrapf(ErrInvalidNode, "attach to node %d", parent)
	}
	if !t.Has(node) {
		return 0, errors.Wrapf(ErrInvalidNode, "attach node %d", node)
	}
	p := t.record(parent)
	p.children = append(p.children, node)
	return node, nil
}

// Children returns the child list in insertion order. The returned slice MUST
// NOT be mutated by the caller. Unknown ids have no children.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	if !t.Has(id) {
		return nil
	}
	return t.record(id).children
}

// Parent returns the node's recorded parent. The root, and unknown ids, have
// none.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	if !t.Has(id) {
		return 0, false
	}
	p := t.record(id).parent
	return p, p != 0
}

// Value returns the value stored in id, or the zero value for unknown ids.
func (t *Tree[T]) Value(id NodeID) T {
	if !t.Has(id) {
		var zero T
		return zero
	}
	return t.record(id).value
}

// SetValue overwrites the value stored in id.
func (t *Tree[T]) SetValue(id NodeID, value T) error {
	if !t.Has(id) {
		return errors.Wrapf(ErrInvalidNode, "set value of node %d", id)
	}
	t.record(id).value = value
	return nil
}

// Label returns the display string of the node's value.
func (t *Tree[T]) Label(id NodeID) string {
	v := t.Value(id)
	switch s := any(v).(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
