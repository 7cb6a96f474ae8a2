// Package nodelink draws a radial tree as a conventional node-link diagram
// using Graphviz.
//
// Shared subtrees and back references are emitted once; the extra edges that
// point at them are dashed, so a fractal tree becomes a finite graph with
// visible cycles:
//
//	dot := nodelink.ToDOT(tree, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
package nodelink
