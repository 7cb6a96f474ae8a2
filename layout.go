package radial

import "math"

// defaultCommandCap is the initial command buffer capacity; the engine grows
// it to the largest frame seen so far.
const defaultCommandCap = 256

// Engine converts a tree and a camera into screen-space draw commands. The
// result of the latest Layout call backs Engine.HitTest.
type Engine struct {
	cfg      Config
	measurer TextMeasurer
	last     *Frame
	capHint  int
}

// NewEngine creates an engine for cfg. A nil measurer selects a FontMeasurer
// using the embedded Go Regular font.
func NewEngine(cfg Config, m TextMeasurer) *Engine {
	if m == nil {
		if fm, err := NewFontMeasurer(cfg.LabelReferenceSize); err == nil {
			m = fm
		} else {
			m = fixedMeasurer{Ratio: 0.55}
		}
	}
	return &Engine{cfg: cfg, measurer: m, capHint: defaultCommandCap}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// LastFrame returns the frame produced by the most recent Layout call, or nil.
func (e *Engine) LastFrame() *Frame {
	return e.last
}

// HitTest queries the most recent frame. It reports false before the first
// Layout call. Callers must lay out again after any camera or tree change.
func (e *Engine) HitTest(x, y float64) (Circle, bool) {
	if e.last == nil {
		return Circle{}, false
	}
	return e.last.HitTest(x, y)
}

// Layout walks tree depth-first from the root and returns a new frame. The
// root is centered at the viewport center offset by (cam.X, cam.Y). The tree
// is only read.
func (e *Engine) Layout(tree TreeView, vp Viewport, cam CameraState) *Frame {
	f := &Frame{
		Viewport: vp,
		Camera:   cam,
		Commands: make([]DrawCommand, 0, e.capHint),
	}
	p := layoutPass{
		cfg:      &e.cfg,
		tree:     tree,
		measurer: e.measurer,
		vp:       vp,
		zoom:     cam.Zoom,
		frame:    f,
	}
	x := int64(cam.X) + int64(vp.Width)/2
	y := int64(cam.Y) + int64(vp.Height)/2
	p.visit(tree.Root(), x, y, 0, 1.0, 0, true)

	if len(f.Commands) > e.capHint {
		e.capHint = len(f.Commands)
	}
	e.last = f
	return f
}

// layoutPass carries the per-call state of one traversal.
type layoutPass struct {
	cfg      *Config
	tree     TreeView
	measurer TextMeasurer
	vp       Viewport
	zoom     float64
	frame    *Frame
}

func (p *layoutPass) emit(cmd DrawCommand) {
	p.frame.Commands = append(p.frame.Commands, cmd)
}

// visit lays out node id centered at (x, y) and recurses into its children.
// pct is the node's size relative to the root; incoming is the angle pointing
// back at the parent.
func (p *layoutPass) visit(id NodeID, x, y int64, depth int, pct, incoming float64, isRoot bool) {
	cfg := p.cfg
	st := &p.frame.Stats
	st.Visited++
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}

	radius := int64(cfg.BaseRadius * pct * p.zoom)
	fill, outline := DepthColors(depth)
	stroke := float64(radius) / 20

	// Culling only suppresses this node's commands. Children are still
	// visited since they may be on screen.
	drawn := !p.vp.boxOutside(x, y, radius)
	if drawn {
		p.emit(DrawCommand{Type: CommandFillCircle, X: x, Y: y, Radius: radius, Color: fill, Node: id, Depth: depth})
		p.emit(DrawCommand{Type: CommandStrokeCircle, X: x, Y: y, Radius: radius, Color: outline, StrokeWidth: stroke, Node: id, Depth: depth})
		p.frame.Index.add(Circle{X: x, Y: y, Radius: radius, Node: id, Depth: depth})
		st.Drawn++
	} else {
		st.Culled++
	}

	// Too small to see anything below: abandon the branch.
	if radius < cfg.MinDrawRadius {
		return
	}

	if drawn && radius >= cfg.MinLabelRadius {
		p.label(id, x, y, radius, depth)
	}

	children := p.tree.Children(id)
	if len(children) == 0 {
		return
	}
	if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
		st.Truncated = true
		return
	}

	angle, _ := childAngle(len(children), isRoot)
	side := 2 * cfg.NodeDistance * math.Sin(angle/2)
	childPct := side * cfg.PackingFactor / cfg.NodeDistance * pct
	childRadius := int64(cfg.BaseRadius * childPct * p.zoom)
	reach := cfg.NodeDistance * pct
	edge := int64(reach*p.zoom - (float64(radius) + float64(childRadius)))

	for i, child := range children {
		cur := angle*float64(i+1) + incoming
		sin, cos := math.Sincos(cur)

		x1 := int64(float64(radius)*cos) + x
		y1 := int64(float64(radius)*sin) + y
		x2 := int64((float64(radius)+float64(edge))*cos) + x
		y2 := int64((float64(radius)+float64(edge))*sin) + y
		if segmentVisible(p.vp, x1, y1, x2, y2) {
			p.emit(DrawCommand{
				Type: CommandLine, X: x1, Y: y1, X2: x2, Y2: y2,
				Color: outline, StrokeWidth: stroke, Node: child, Depth: depth + 1,
			})
			st.Lines++
		} else {
			st.LinesCulled++
		}

		nx := int64(reach*cos*p.zoom) + x
		ny := int64(reach*sin*p.zoom) + y
		p.visit(child, nx, ny, depth+1, childPct, cur+math.Pi, false)
	}
}

// label emits the node's text sized so its width matches the radius. The
// string is measured once at the reference size and the size scaled linearly.
func (p *layoutPass) label(id NodeID, x, y, radius int64, depth int) {
	text := p.tree.Label(id)
	ref := p.cfg.LabelReferenceSize
	w := p.measurer.MeasureString(text, ref)
	if w <= 0 {
		return
	}
	p.emit(DrawCommand{
		Type: CommandLabel, X: x, Y: y,
		Text: text, FontSize: float64(radius) / w * ref,
		Color: ColorBlack, Node: id, Depth: depth,
	})
	p.frame.Stats.Labels++
}

// childAngle returns the angular slot width for a node with n children and
// the number of slots the circle is divided into. Non-root nodes reserve one
// slot for the edge back to their parent. The slot is capped at π so a single
// child of the root is sized like one of two.
func childAngle(n int, isRoot bool) (angle float64, slots int) {
	slots = n
	if !isRoot {
		slots++
	}
	if slots == 0 {
		return math.Pi, 0
	}
	angle = 2 * math.Pi / float64(slots)
	if angle > math.Pi {
		angle = math.Pi
	}
	return angle, slots
}

// segmentVisible reports whether the segment should be drawn: an endpoint is
// inside the viewport or the segment crosses one of its four borders.
func segmentVisible(vp Viewport, x1, y1, x2, y2 int64) bool {
	if vp.Empty() {
		return false
	}
	if vp.Contains(x1, y1) || vp.Contains(x2, y2) {
		return true
	}
	w, h := float64(vp.Width), float64(vp.Height)
	borders := [4][4]float64{
		{0, 0, w, 0},
		{w, 0, w, h},
		{0, 0, 0, h},
		{0, h, w, h},
	}
	ax1, ay1, ax2, ay2 := float64(x1), float64(y1), float64(x2), float64(y2)
	for _, b := range borders {
		if _, _, ok := intersectSegments(ax1, ay1, ax2, ay2, b[0], b[1], b[2], b[3]); ok {
			return true
		}
	}
	return false
}

// intersectSegments tests segment (x1,y1)-(x2,y2) against (a1,b1)-(a2,b2).
// t and u are the intersection parameters along the first and second segment.
// Parallel segments, including collinear ones, never intersect.
func intersectSegments(x1, y1, x2, y2, a1, b1, a2, b2 float64) (t, u float64, ok bool) {
	dx1, dy1 := x2-x1, y2-y1
	dx2, dy2 := a2-a1, b2-b1
	det := dx1*dy2 - dy1*dx2
	if det == 0 {
		return 0, 0, false
	}
	ox, oy := a1-x1, b1-y1
	t = (ox*dy2 - oy*dx2) / det
	if t < 0 || t > 1 {
		return 0, 0, false
	}
	u = (ox*dy1 - oy*dx1) / det
	if u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}
