package radial

import "math"

// Circle is a drawn node in screen coordinates.
type Circle struct {
	X, Y   int64
	Radius int64
	Node   NodeID
	Depth  int
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c Circle) Contains(x, y float64) bool {
	return math.Hypot(x-float64(c.X), y-float64(c.Y)) < float64(c.Radius)
}

// HitIndex is the list of circles drawn by one layout pass, in draw order.
// It is rebuilt by every Engine.Layout call and is only meaningful for the
// frame that produced it.
type HitIndex struct {
	circles []Circle
}

// Len returns the number of indexed circles.
func (h *HitIndex) Len() int {
	return len(h.circles)
}

// HitTest returns the first circle, in draw order, containing (x, y). When
// circles overlap the one drawn earliest (beneath) wins.
func (h *HitIndex) HitTest(x, y float64) (Circle, bool) {
	for _, c := range h.circles {
		if c.Contains(x, y) {
			return c, true
		}
	}
	return Circle{}, false
}

// Find returns the first circle drawn for node.
func (h *HitIndex) Find(node NodeID) (Circle, bool) {
	for _, c := range h.circles {
		if c.Node == node {
			return c, true
		}
	}
	return Circle{}, false
}

func (h *HitIndex) add(c Circle) {
	h.circles = append(h.circles, c)
}
