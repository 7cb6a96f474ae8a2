package radial

import "math"

// PointerSample is the pointer state observed during one tick.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	// Wheel is the vertical wheel movement in notches; positive zooms in.
	Wheel float64
}

// InputEvents is the set of gestures recognised during one tick.
type InputEvents uint8

const (
	InputDrag InputEvents = 1 << iota
	InputClick
	InputDoubleClick
	InputWheel
)

// Has reports whether all of e are set.
func (s InputEvents) Has(e InputEvents) bool { return s&e == e }

// pointerState tracks one pointer between ticks.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

// PointerInput turns sampled pointer and wheel state into View operations:
// drags pan, wheel notches zoom, and a double click zooms to the node under
// the pointer. Movement within Config.DragDeadZone of the press point is not
// a drag.
type PointerInput struct {
	view *View
	ps   pointerState

	clock     float64
	clickAt   float64
	clickX    float64
	clickY    float64
	haveClick bool
}

// NewPointerInput creates an input handler driving v.
func NewPointerInput(v *View) *PointerInput {
	return &PointerInput{view: v}
}

// Dragging reports whether a drag is in progress.
func (p *PointerInput) Dragging() bool { return p.ps.dragging }

// Update processes one sample taken dt seconds after the previous one.
func (p *PointerInput) Update(s PointerSample, dt float64) InputEvents {
	cfg := p.view.cfg
	p.clock += dt
	var ev InputEvents

	if s.Wheel != 0 {
		p.view.Zoom(s.Wheel * cfg.WheelZoomStep)
		ev |= InputWheel
	}

	ps := &p.ps
	switch {
	case s.Pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.startX, ps.startY = s.X, s.Y
		ps.lastX, ps.lastY = s.X, s.Y

	case s.Pressed && ps.down:
		if s.X == ps.lastX && s.Y == ps.lastY {
			break
		}
		if !ps.dragging && math.Hypot(s.X-ps.startX, s.Y-ps.startY) > cfg.DragDeadZone {
			// The drag absorbs the travel through the dead zone.
			ps.dragging = true
			ps.lastX, ps.lastY = ps.startX, ps.startY
		}
		if ps.dragging {
			p.view.Pan(s.X-ps.lastX, s.Y-ps.lastY)
			ps.lastX, ps.lastY = s.X, s.Y
			ev |= InputDrag
		}

	case !s.Pressed && ps.down:
		wasDrag := ps.dragging
		*ps = pointerState{}
		if wasDrag {
			break
		}
		ev |= InputClick
		if p.haveClick && p.clock-p.clickAt <= cfg.DoubleClickInterval &&
			math.Hypot(s.X-p.clickX, s.Y-p.clickY) <= cfg.DragDeadZone {
			p.haveClick = false
			p.view.ZoomToPoint(s.X, s.Y)
			ev |= InputDoubleClick
			break
		}
		p.haveClick = true
		p.clickAt = p.clock
		p.clickX, p.clickY = s.X, s.Y
	}
	return ev
}
