package radial

// DrawCommand is a single draw instruction emitted during layout. Which fields
// are meaningful depends on Type:
//
//	CommandFillCircle:   X, Y, Radius, Color
//	CommandStrokeCircle: X, Y, Radius, Color, StrokeWidth
//	CommandLine:         X, Y, X2, Y2, Color, StrokeWidth
//	CommandLabel:        X, Y (center), Text, FontSize, Color
type DrawCommand struct {
	Type        CommandType
	X, Y        int64
	X2, Y2      int64
	Radius      int64
	Color       Color
	StrokeWidth float64
	Text        string
	FontSize    float64

	// Node and Depth identify the tree node that produced the command. For
	// lines they name the child end of the edge.
	Node  NodeID
	Depth int
}

// FrameStats summarises one layout pass.
type FrameStats struct {
	Visited     int  // nodes the traversal entered
	Drawn       int  // circles emitted
	Culled      int  // circles skipped as off-screen
	Lines       int  // edges emitted
	LinesCulled int  // edges skipped as off-screen
	Labels      int  // labels emitted
	MaxDepth    int  // deepest depth entered
	Truncated   bool // recursion stopped at Config.MaxDepth
}

// Frame is the result of one layout pass: the ordered draw commands and the
// hit-test index of the circles they draw.
type Frame struct {
	Viewport Viewport
	Camera   CameraState
	Commands []DrawCommand
	Index    HitIndex
	Stats    FrameStats
}

// Circles returns the visible circles in draw order.
func (f *Frame) Circles() []Circle {
	return f.Index.circles
}

// HitTest returns the earliest-drawn circle containing (x, y).
func (f *Frame) HitTest(x, y float64) (Circle, bool) {
	return f.Index.HitTest(x, y)
}

// Find returns the first visible circle drawn for node.
func (f *Frame) Find(node NodeID) (Circle, bool) {
	return f.Index.Find(node)
}

// Count returns the number of commands of type t.
func (f *Frame) Count(t CommandType) int {
	n := 0
	for i := range f.Commands {
		if f.Commands[i].Type == t {
			n++
		}
	}
	return n
}

// Canvas is the drawing capability a renderer provides. Coordinates are in
// screen pixels; Text is centered on (x, y).
type Canvas interface {
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	Text(s string, x, y, size float64, c Color)
}

// Replay executes the frame's commands against c in order.
func (f *Frame) Replay(c Canvas) {
	for i := range f.Commands {
		cmd := &f.Commands[i]
		switch cmd.Type {
		case CommandFillCircle:
			c.FillCircle(float64(cmd.X), float64(cmd.Y), float64(cmd.Radius), cmd.Color)
		case CommandStrokeCircle:
			c.StrokeCircle(float64(cmd.X), float64(cmd.Y), float64(cmd.Radius), cmd.StrokeWidth, cmd.Color)
		case CommandLine:
			c.Line(float64(cmd.X), float64(cmd.Y), float64(cmd.X2), float64(cmd.Y2), cmd.StrokeWidth, cmd.Color)
		case CommandLabel:
			c.Text(cmd.Text, float64(cmd.X), float64(cmd.Y), cmd.FontSize, cmd.Color)
		}
	}
}
