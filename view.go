package radial

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// View binds a tree, a layout engine and a camera to a viewport. It is the
// object a render loop, the scripted player and the CLI drive. A View is owned
// by a single goroutine.
type View struct {
	cfg    Config
	tree   TreeView
	engine *Engine
	camera *CameraAnimator
	vp     Viewport

	// focus is the node the last zoom-to targeted, 0 when none.
	focus NodeID

	logger *log.Logger
	frames uint64
}

// NewView validates cfg and creates a view over tree at the configured
// viewport. A nil measurer selects the embedded Go Regular font.
func NewView(tree TreeView, cfg Config, m TextMeasurer) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &View{
		cfg:    cfg,
		tree:   tree,
		engine: NewEngine(cfg, m),
		camera: NewCameraAnimator(),
		vp:     cfg.Viewport(),
	}, nil
}

// Config returns the view's configuration.
func (v *View) Config() Config { return v.cfg }

// Tree returns the displayed tree.
func (v *View) Tree() TreeView { return v.tree }

// Camera returns the view's camera animator.
func (v *View) Camera() *CameraAnimator { return v.camera }

// Engine returns the view's layout engine.
func (v *View) Engine() *Engine { return v.engine }

// Viewport returns the current viewport.
func (v *View) Viewport() Viewport { return v.vp }

// Focus returns the node targeted by the last zoom-to, if any.
func (v *View) Focus() (NodeID, bool) { return v.focus, v.focus != 0 }

// SetViewport changes the viewport size, e.g. after a window resize.
func (v *View) SetViewport(width, height int) {
	v.vp = Viewport{Width: width, Height: height}
}

// SetTree replaces the displayed tree and resets the camera.
func (v *View) SetTree(tree TreeView) {
	v.tree = tree
	v.Reset()
}

// Update advances the camera animation by dt seconds and reports whether the
// camera moved.
func (v *View) Update(dt float64) bool {
	return v.camera.Tick(dt)
}

// Frame lays the tree out at the current camera state.
func (v *View) Frame() *Frame {
	var t0 time.Time
	if v.logger != nil {
		t0 = time.Now()
	}
	f := v.engine.Layout(v.tree, v.vp, v.camera.Current())
	v.frames++
	if v.logger != nil {
		v.logFrame(f, time.Since(t0))
	}
	return f
}

// HitTest lays out at the current camera and returns the earliest-drawn
// circle containing the screen point.
func (v *View) HitTest(x, y float64) (Circle, bool) {
	return v.Frame().HitTest(x, y)
}

// Pan moves the camera by a screen-space delta immediately.
func (v *View) Pan(dx, dy float64) {
	cur := v.camera.Current()
	v.camera.JumpTo(cur.X+dx, cur.Y+dy, cur.Zoom)
}

// Zoom changes the zoom relative to its current value by
// amount*ZoomRate*zoom, keeping the viewport center fixed. Results that would
// make the zoom non-positive are ignored.
func (v *View) Zoom(amount float64) {
	cur := v.camera.Current()
	next := cur.Zoom + amount*v.cfg.ZoomRate*cur.Zoom
	if next <= 0 || cur.Zoom <= 0 {
		return
	}
	scale := next / cur.Zoom
	v.camera.JumpTo(cur.X*scale, cur.Y*scale, next)
}

// ZoomToPoint animates toward the circle under the screen point. It reports
// false when nothing is hit.
func (v *View) ZoomToPoint(x, y float64) bool {
	c, ok := v.HitTest(x, y)
	if !ok {
		return false
	}
	v.ZoomToCircle(c)
	return true
}

// ZoomToCircle animates so that c ends up centered with the radius of the
// root at zoom 1. c is interpreted against the current camera.
func (v *View) ZoomToCircle(c Circle) {
	if c.Radius <= 0 {
		return
	}
	cur := v.camera.Current()
	zoom := cur.Zoom * v.cfg.BaseRadius / float64(c.Radius)
	x := cur.X - (float64(c.X) - float64(v.vp.Width/2))
	y := cur.Y - (float64(c.Y) - float64(v.vp.Height/2))
	scale := zoom / cur.Zoom
	v.camera.AnimateTo(x*scale, y*scale, zoom, v.cfg.PanDuration)
	v.focus = c.Node
}

// StepOut zooms to the parent of the focused node. With no focus, at the root,
// or when the parent is not on screen, it resets.
func (v *View) StepOut() {
	if v.focus == 0 {
		v.Reset()
		return
	}
	parent, ok := v.tree.Parent(v.focus)
	if !ok {
		v.Reset()
		return
	}
	c, ok := v.Frame().Find(parent)
	if !ok {
		v.Reset()
		return
	}
	v.ZoomToCircle(c)
}

// Reset jumps back to the home position and clears the focus.
func (v *View) Reset() {
	v.camera.JumpTo(0, 0, 1)
	v.focus = 0
}

// ZoomLabel formats the current zoom for display, e.g. "1.00x".
func (v *View) ZoomLabel() string {
	return fmt.Sprintf("%.2fx", v.camera.Current().Zoom)
}
