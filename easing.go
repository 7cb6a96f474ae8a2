package radial

import "github.com/tanema/gween/ease"

// Easing selects the interpolation curve used by a camera animation.
type Easing uint8

const (
	// EaseCosine is a symmetric ease-in-out: begin + (end-begin)*(0.5 - 0.5*cos(πt)).
	EaseCosine Easing = iota
	// EaseBack overshoots the target slightly before settling (s = 1.70158).
	EaseBack
)

func (e Easing) String() string {
	switch e {
	case EaseCosine:
		return "cosine"
	case EaseBack:
		return "back"
	default:
		return "unknown"
	}
}

// TweenFunc returns the gween curve for e.
func (e Easing) TweenFunc() ease.TweenFunc {
	if e == EaseBack {
		return ease.OutBack
	}
	return ease.InOutSine
}

// Progress evaluates the curve at t in [0, 1] as a fraction of the distance
// from begin to end. t is clamped; the endpoints are returned exactly.
func (e Easing) Progress(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(e.TweenFunc()(float32(t), 0, 1, 1))
}

// Interpolate blends begin toward end at t along the curve.
func (e Easing) Interpolate(begin, end, t float64) float64 {
	if t >= 1 {
		return end
	}
	return begin + (end-begin)*e.Progress(t)
}
