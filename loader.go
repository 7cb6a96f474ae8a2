package radial

import (
	"bytes"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseTree reads the nested tag format:
//
//	<1 Root>
//	  <2 Child>
//	    <3 Grandchild>
//	    </3>
//	  </2>
//	</1>
//
// An opening tag "<id name>" adds a node called name under the current node
// and descends into it; the first tag creates the root. A closing tag "</id>"
// returns to the parent, and at the root it ends parsing. The id is not
// interpreted and only the first word after it is used as the name. Missing
// closing tags are tolerated.
func ParseTree(data []byte) (*Tree[string], error) {
	var (
		tree    *Tree[string]
		current NodeID
	)
	offset := 0
	for i, chunk := range bytes.Split(data, []byte("<")) {
		start := offset
		offset += len(chunk) + 1
		if i == 0 {
			// Text before the first tag.
			continue
		}
		tag := string(chunk)
		if end := strings.IndexByte(tag, '>'); end >= 0 {
			tag = tag[:end]
		}
		fields := strings.Fields(tag)
		if len(fields) == 0 {
			return nil, errors.Wrapf(ErrTreeFormat, "empty tag at offset %d", start-1)
		}

		if strings.HasPrefix(fields[0], "/") {
			if tree == nil {
				return nil, errors.Wrapf(ErrTreeFormat, "closing tag %q before root at offset %d", fields[0], start-1)
			}
			parent, ok := tree.Parent(current)
			if !ok {
				break
			}
			current = parent
			continue
		}
		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrTreeFormat, "tag %q has no name at offset %d", fields[0], start-1)
		}

		name := fields[1]
		if tree == nil {
			tree = NewTree(name)
			current = tree.Root()
			continue
		}
		id, err := tree.AddChild(current, name)
		if err != nil {
			return nil, err
		}
		current = id
	}
	if tree == nil {
		return nil, errors.Wrap(ErrTreeFormat, "no root tag")
	}
	return tree, nil
}

// LoadTreeFile reads and parses a tree file.
func LoadTreeFile(path string) (*Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read tree %s", path)
	}
	tree, err := ParseTree(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse tree %s", path)
	}
	return tree, nil
}

// ExampleTree builds the demonstration tree. It contains two shared loops:
// "Whoa" has the root as a child, and the chain spelling "FRACTALSAREFUN!"
// links back to its first "F".
func ExampleTree() *Tree[string] {
	t := NewTree("Example")
	add := func(parent NodeID, names ...string) NodeID {
		var id NodeID
		for _, name := range names {
			id, _ = t.AddChild(parent, name)
		}
		return id
	}
	chain := func(parent NodeID, names ...string) NodeID {
		for _, name := range names {
			parent, _ = t.AddChild(parent, name)
		}
		return parent
	}

	root := t.Root()
	a := add(root, "A")
	b := add(root, "B")
	c := add(root, "C")
	fractal := add(root, "Fractal")

	add(a, "A1", "A2", "A3", "A4")
	add(b, "B1", "B2", "B3")
	add(c, "C1", "C2", "C3", "C4")
	whoa := add(fractal, "Whoa")
	_, _ = t.AttachChild(whoa, root)

	c5 := add(c, "C5")
	c6 := add(c, "C6")
	add(c5, "C5A", "C5B")
	add(c6, "C6A", "C6B")
	c6a := add(c6, "C6A")
	add(c6, "C6B", "C6C", "C6D", "C6E", "C6F")
	add(c6a, "C6A1", "C6A2", "C6A3", "C6A4", "C6A5", "C6A6", "C6A7", "C6A8")

	f := add(c6a, "F")
	last := chain(f, "R", "A", "C", "T", "A", "L", "S", "A", "R", "E", "F", "U", "N", "!")
	_, _ = t.AttachChild(last, f)
	return t
}
