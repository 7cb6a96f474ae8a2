package radial

// CameraMode is the animator state.
type CameraMode uint8

const (
	CameraIdle CameraMode = iota
	CameraAnimating
)

func (m CameraMode) String() string {
	if m == CameraAnimating {
		return "animating"
	}
	return "idle"
}

// CameraAnimator owns the camera pan and zoom and eases between targets.
// Newer requests replace any animation in flight.
type CameraAnimator struct {
	current  CameraState
	begin    CameraState
	target   CameraState
	easing   Easing
	elapsed  float64
	duration float64
	mode     CameraMode
}

// NewCameraAnimator returns an idle animator at (0, 0) with zoom 1.
func NewCameraAnimator() *CameraAnimator {
	home := CameraState{Zoom: 1}
	return &CameraAnimator{current: home, begin: home, target: home}
}

// Current returns the camera state to lay out with.
func (c *CameraAnimator) Current() CameraState { return c.current }

// Target returns the state the camera is heading to. It equals Current when idle.
func (c *CameraAnimator) Target() CameraState { return c.target }

// Mode reports whether an animation is in progress.
func (c *CameraAnimator) Mode() CameraMode { return c.mode }

// Animating is shorthand for Mode() == CameraAnimating.
func (c *CameraAnimator) Animating() bool { return c.mode == CameraAnimating }

// Easing returns the curve chosen for the current or last animation.
func (c *CameraAnimator) Easing() Easing { return c.easing }

// JumpTo moves the camera immediately and cancels any animation. A
// non-positive zoom keeps the current zoom.
func (c *CameraAnimator) JumpTo(x, y, zoom float64) {
	if zoom <= 0 {
		zoom = c.current.Zoom
	}
	s := CameraState{X: x, Y: y, Zoom: zoom}
	c.current, c.begin, c.target = s, s, s
	c.elapsed, c.duration = 0, 0
	c.mode = CameraIdle
}

// AnimateTo eases from the current state to the target over duration seconds.
// Zooming in uses EaseBack, everything else EaseCosine; the curve is fixed for
// the whole animation. A non-positive duration jumps.
func (c *CameraAnimator) AnimateTo(x, y, zoom, duration float64) {
	if zoom <= 0 {
		zoom = c.current.Zoom
	}
	if duration <= 0 {
		c.JumpTo(x, y, zoom)
		return
	}
	c.begin = c.current
	c.target = CameraState{X: x, Y: y, Zoom: zoom}
	c.easing = EaseCosine
	if c.begin.Zoom < c.target.Zoom {
		c.easing = EaseBack
	}
	c.elapsed = 0
	c.duration = duration
	c.mode = CameraAnimating
}

// Tick advances the animation by dt seconds. It reports whether the camera
// moved. On the final tick current is set to the target exactly.
func (c *CameraAnimator) Tick(dt float64) bool {
	if c.mode != CameraAnimating {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	if c.elapsed >= c.duration {
		c.elapsed = c.duration
		c.current = c.target
		c.begin = c.target
		c.mode = CameraIdle
		return true
	}
	t := c.elapsed / c.duration
	p := c.easing.Progress(t)
	c.current = CameraState{
		X:    lerp(c.begin.X, c.target.X, p),
		Y:    lerp(c.begin.Y, c.target.Y, p),
		Zoom: lerp(c.begin.Zoom, c.target.Zoom, p),
	}
	return true
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
