package radial

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestTreeAddChild(t *testing.T) {
	tree := NewTree("root")
	a, err := tree.AddChild(tree.Root(), "a")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := tree.AddChild(tree.Root(), "b")
	aa, _ := tree.AddChild(a, "aa")

	if tree.Len() != 4 {
		t.Errorf("Len = %d, want 4", tree.Len())
	}
	kids := tree.Children(tree.Root())
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Errorf("root children = %v, want [%d %d]", kids, a, b)
	}
	if p, ok := tree.Parent(aa); !ok || p != a {
		t.Errorf("Parent(aa) = %d, %v; want %d", p, ok, a)
	}
	if _, ok := tree.Parent(tree.Root()); ok {
		t.Error("root has a parent")
	}
	if tree.Value(aa) != "aa" {
		t.Errorf("Value(aa) = %q", tree.Value(aa))
	}
}

func TestTreeAddChildInvalidParent(t *testing.T) {
	tree := NewTree("root")
	for _, id := range []NodeID{0, 2, 99} {
		if _, err := tree.AddChild(id, "x"); !errors.Is(err, ErrInvalidNode) {
			t.Errorf("AddChild(%d) err = %v, want ErrInvalidNode", id, err)
		}
	}
	if tree.Len() != 1 {
		t.Errorf("failed adds changed the tree: Len = %d", tree.Len())
	}
}

func TestTreeAttachChildKeepsParent(t *testing.T) {
	tree := NewTree("root")
	a, _ := tree.AddChild(tree.Root(), "a")
	b, _ := tree.AddChild(tree.Root(), "b")
	if _, err := tree.AttachChild(b, a); err != nil {
		t.Fatal(err)
	}
	if kids := tree.Children(b); len(kids) != 1 || kids[0] != a {
		t.Errorf("Children(b) = %v, want [%d]", kids, a)
	}
	if p, _ := tree.Parent(a); p != tree.Root() {
		t.Errorf("Parent(a) = %d after attach, want root", p)
	}
}

func TestTreeAttachAncestor(t *testing.T) {
	tree := NewTree("root")
	a, _ := tree.AddChild(tree.Root(), "a")
	if _, err := tree.AttachChild(a, tree.Root()); err != nil {
		t.Fatalf("attaching an ancestor: %v", err)
	}
	if kids := tree.Children(a); len(kids) != 1 || kids[0] != tree.Root() {
		t.Errorf("Children(a) = %v", kids)
	}
}

func TestTreeAttachInvalid(t *testing.T) {
	tree := NewTree("root")
	if _, err := tree.AttachChild(tree.Root(), 5); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("attach missing node err = %v", err)
	}
	if _, err := tree.AttachChild(5, tree.Root()); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("attach to missing parent err = %v", err)
	}
}

func TestTreeSetValue(t *testing.T) {
	tree := NewTree(1)
	if err := tree.SetValue(tree.Root(), 42); err != nil {
		t.Fatal(err)
	}
	if tree.Label(tree.Root()) != "42" {
		t.Errorf("Label = %q, want 42", tree.Label(tree.Root()))
	}
	if err := tree.SetValue(7, 1); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("SetValue(7) err = %v", err)
	}
}

type named struct{ name string }

func (n named) String() string { return "<" + n.name + ">" }

func TestTreeLabelStringer(t *testing.T) {
	tree := NewTree(named{"x"})
	if got := tree.Label(tree.Root()); got != "<x>" {
		t.Errorf("Label = %q, want <x>", got)
	}
}

func TestTreeUnknownIDs(t *testing.T) {
	tree := NewTree("root")
	if tree.Children(9) != nil {
		t.Error("unknown id has children")
	}
	if tree.Value(9) != "" {
		t.Error("unknown id has a value")
	}
	if tree.Has(0) {
		t.Error("Has(0) = true")
	}
}
