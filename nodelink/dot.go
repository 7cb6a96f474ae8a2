package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-graphviz"

	"github.com/phanxgames/radial"
)

// Options configures diagram generation.
type Options struct {
	// LeftToRight lays the tree out horizontally instead of top to bottom.
	LeftToRight bool
	// ShowIDs appends the node id to each label.
	ShowIDs bool
}

// ToDOT converts the part of tree reachable from its root to Graphviz DOT.
// Each node appears once. Edges to a child whose recorded parent is a
// different node are shared references and drawn dashed.
func ToDOT(tree radial.TreeView, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	buf.WriteString("\n")

	nodes, edges := walk(tree)
	for _, n := range nodes {
		fill, outline := radial.DepthColors(n.depth)
		label := tree.Label(n.id)
		if opts.ShowIDs {
			label = fmt.Sprintf("%s\n#%d", label, n.id)
		}
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q, color=%q];\n",
			n.id, label, hex(fill), hex(outline))
	}
	buf.WriteString("\n")
	for _, e := range edges {
		if e.shared {
			fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed, constraint=false];\n", e.from, e.to)
		} else {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.from, e.to)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

type dotNode struct {
	id    radial.NodeID
	depth int
}

type dotEdge struct {
	from, to radial.NodeID
	shared   bool
}

// walk lists reachable nodes in depth-first preorder with the depth they were
// first reached at, and every edge between them.
func walk(tree radial.TreeView) ([]dotNode, []dotEdge) {
	var (
		nodes   []dotNode
		edges   []dotEdge
		visited = make(map[radial.NodeID]bool)
	)
	var visit func(id radial.NodeID, depth int)
	visit = func(id radial.NodeID, depth int) {
		visited[id] = true
		nodes = append(nodes, dotNode{id: id, depth: depth})
		for _, child := range tree.Children(id) {
			parent, ok := tree.Parent(child)
			edges = append(edges, dotEdge{from: id, to: child, shared: !ok || parent != id})
			if !visited[child] {
				visit(child, depth+1)
			}
		}
	}
	visit(tree.Root(), 0)
	return nodes, edges
}

func hex(c radial.Color) string {
	n := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// RenderSVG renders DOT source to SVG in-process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return buf.Bytes(), nil
}
