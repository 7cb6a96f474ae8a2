package radial

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the label color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts c to a color.NRGBA for image and ebiten APIs.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Viewport is the screen-space area the layout is culled against. The origin
// is at the top-left, with Y increasing downward.
type Viewport struct {
	Width, Height int
}

// Empty reports whether the viewport has zero area. Nothing is visible in an
// empty viewport.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the viewport.
// Points on the edge are considered inside.
func (v Viewport) Contains(x, y int64) bool {
	if v.Empty() {
		return false
	}
	return x >= 0 && x <= int64(v.Width) &&
		y >= 0 && y <= int64(v.Height)
}

// boxOutside reports whether the square of half-size r centered at (x, y)
// lies entirely outside the viewport.
func (v Viewport) boxOutside(x, y, r int64) bool {
	if v.Empty() {
		return true
	}
	return x+r < 0 || x-r > int64(v.Width) ||
		y+r < 0 || y-r > int64(v.Height)
}

// CameraState is a camera snapshot. X and Y offset the root from the viewport
// center in screen pixels; Zoom scales every radius and distance.
type CameraState struct {
	X, Y float64
	Zoom float64
}

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandFillCircle   CommandType = iota // filled disc
	CommandStrokeCircle                    // circle outline
	CommandLine                            // straight edge between two circles
	CommandLabel                           // text centered on a node
)

// String returns the command type name.
func (t CommandType) String() string {
	switch t {
	case CommandFillCircle:
		return "fill-circle"
	case CommandStrokeCircle:
		return "stroke-circle"
	case CommandLine:
		return "line"
	case CommandLabel:
		return "label"
	default:
		return "unknown"
	}
}
