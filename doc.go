// Package radial lays out and navigates n-ary trees as nested circles.
//
// Each node is a circle; its children sit on a ring around it, sized so that
// siblings never overlap and each level shrinks geometrically. Trees may share
// subtrees or point back at an ancestor, which renders as a self-similar
// fractal that stops once circles become too small to see.
//
// # Quick start
//
//	tree := radial.ExampleTree()
//	view, err := radial.NewView(tree, radial.DefaultConfig(), nil)
//	if err != nil { ... }
//	frame := view.Frame()
//	png, err := radial.RenderPNG(frame, view.Config().Background)
//
// For an interactive window, pass the view to [github.com/phanxgames/radial/viewer.Run].
//
// # Layout
//
// [Engine.Layout] is a pure function of the tree, the [Viewport] and a
// [CameraState]. It returns a [Frame] holding the ordered [DrawCommand] list
// and a [HitIndex] of the circles it drew. Off-screen circles and edges are
// culled but their subtrees are still visited. Recursion ends when a circle's
// radius drops below [Config.MinDrawRadius] or the depth reaches
// [Config.MaxDepth].
//
// # Navigation
//
// [View] ties a tree to an engine and a [CameraAnimator]. Pan and relative
// zoom jump immediately; zooming to a node eases over [Config.PanDuration],
// overshooting slightly when zooming in. [PointerInput] maps drags, wheel
// notches and double clicks onto those operations, and [Script] replays them
// headlessly, which is how snapshots are produced from the command line.
//
// # Output
//
// A frame can be replayed onto any [Canvas]. [RenderPNG] rasterises with gg,
// [RenderSVG] writes vector output, and the viewer package draws with
// Ebitengine.
package radial
