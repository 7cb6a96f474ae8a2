package radial

import (
	"math"
	"reflect"
	"testing"
)

func newTestEngine(cfg Config) *Engine {
	return NewEngine(cfg, fixedMeasurer{Ratio: 0.5})
}

var home = CameraState{Zoom: 1}

func commandTypes(f *Frame) []CommandType {
	out := make([]CommandType, len(f.Commands))
	for i, c := range f.Commands {
		out[i] = c.Type
	}
	return out
}

// fanTree is a root with n leaf children.
func fanTree(n int) (*Tree[string], []NodeID) {
	t := NewTree("root")
	ids := make([]NodeID, n)
	for i := range ids {
		ids[i], _ = t.AddChild(t.Root(), string(rune('a'+i)))
	}
	return t, ids
}

func TestLayoutSingleNode(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	f := e.Layout(NewTree("root"), Viewport{800, 600}, home)

	circles := f.Circles()
	if len(circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(circles))
	}
	c := circles[0]
	if c.X != 400 || c.Y != 300 || c.Radius != 50 {
		t.Errorf("root circle = %+v, want (400,300) r50", c)
	}
	if n := f.Count(CommandLine); n != 0 {
		t.Errorf("lines = %d, want 0", n)
	}
	want := []CommandType{CommandFillCircle, CommandStrokeCircle, CommandLabel}
	if got := commandTypes(f); !reflect.DeepEqual(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
	if sw := f.Commands[1].StrokeWidth; sw != 2.5 {
		t.Errorf("stroke width = %v, want r/20 = 2.5", sw)
	}
}

func TestLayoutLabelSize(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	f := e.Layout(NewTree("root"), Viewport{800, 600}, home)
	lbl := f.Commands[2]
	// "root" measures 4 * 20 * 0.5 = 40 at the reference size.
	if lbl.Text != "root" || !approxEqual(lbl.FontSize, 25, epsilon) {
		t.Errorf("label = %q size %v, want \"root\" size 25", lbl.Text, lbl.FontSize)
	}
	if lbl.X != 400 || lbl.Y != 300 {
		t.Errorf("label at (%d,%d), want circle center", lbl.X, lbl.Y)
	}
}

func TestLayoutCameraOffsetAndZoom(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	f := e.Layout(NewTree("root"), Viewport{800, 600}, CameraState{X: 30, Y: -40, Zoom: 2})
	c := f.Circles()[0]
	if c.X != 430 || c.Y != 260 || c.Radius != 100 {
		t.Errorf("root = %+v, want (430,260) r100", c)
	}
}

func TestChildAngle(t *testing.T) {
	tests := []struct {
		n     int
		root  bool
		angle float64
		slots int
	}{
		{0, true, math.Pi, 0},
		{1, true, math.Pi, 1},
		{2, true, math.Pi, 2},
		{3, true, 2 * math.Pi / 3, 3},
		{4, true, math.Pi / 2, 4},
		{1, false, math.Pi, 2},
		{3, false, math.Pi / 2, 4},
		{5, false, math.Pi / 3, 6},
	}
	for _, tt := range tests {
		angle, slots := childAngle(tt.n, tt.root)
		if slots != tt.slots || !approxEqual(angle, tt.angle, epsilon) {
			t.Errorf("childAngle(%d, %v) = (%v, %d), want (%v, %d)",
				tt.n, tt.root, angle, slots, tt.angle, tt.slots)
		}
	}
}

func TestLayoutRootChildrenPositions(t *testing.T) {
	tree, ids := fanTree(4)
	f := newTestEngine(DefaultConfig()).Layout(tree, Viewport{800, 600}, home)

	// Slots are a quarter turn apart, starting one slot past angle 0.
	want := [][2]int64{{400, 500}, {200, 300}, {400, 100}, {600, 300}}
	for i, id := range ids {
		c, ok := f.Find(id)
		if !ok {
			t.Fatalf("child %d not drawn", i)
		}
		if c.X != want[i][0] || c.Y != want[i][1] {
			t.Errorf("child %d at (%d,%d), want (%d,%d)", i, c.X, c.Y, want[i][0], want[i][1])
		}
		// 2*200*sin(π/4)*0.32/200 of the root radius.
		if c.Radius != 22 {
			t.Errorf("child %d radius = %d, want 22", i, c.Radius)
		}
		if c.Depth != 1 {
			t.Errorf("child %d depth = %d, want 1", i, c.Depth)
		}
	}
	if n := f.Count(CommandLine); n != 4 {
		t.Errorf("lines = %d, want 4", n)
	}
}

func TestLayoutEdgeBeforeChild(t *testing.T) {
	tree, ids := fanTree(1)
	f := newTestEngine(DefaultConfig()).Layout(tree, Viewport{800, 600}, home)

	want := []CommandType{
		CommandFillCircle, CommandStrokeCircle, CommandLabel,
		CommandLine,
		CommandFillCircle, CommandStrokeCircle, CommandLabel,
	}
	if got := commandTypes(f); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}

	line := f.Commands[3]
	// A lone child of the root sits at angle π, 200px left, radius 32.
	if line.X != 350 || line.Y != 300 || line.X2 != 232 || line.Y2 != 300 {
		t.Errorf("line = (%d,%d)-(%d,%d), want (350,300)-(232,300)", line.X, line.Y, line.X2, line.Y2)
	}
	if line.Node != ids[0] {
		t.Errorf("line node = %d, want child %d", line.Node, ids[0])
	}
	_, outline := DepthColors(0)
	if line.Color != outline || line.StrokeWidth != 2.5 {
		t.Errorf("line style = %+v width %v, want parent outline width 2.5", line.Color, line.StrokeWidth)
	}
	child, _ := f.Find(ids[0])
	if child.X != 200 || child.Y != 300 || child.Radius != 32 {
		t.Errorf("child = %+v, want (200,300) r32", child)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	tree := ExampleTree()
	cam := CameraState{X: -37, Y: 12, Zoom: 1.7}
	a := e.Layout(tree, Viewport{800, 600}, cam)
	b := e.Layout(tree, Viewport{800, 600}, cam)
	if !reflect.DeepEqual(a.Commands, b.Commands) {
		t.Error("two layouts with identical inputs differ")
	}
	if a.Stats != b.Stats {
		t.Errorf("stats differ: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestLayoutExampleTree(t *testing.T) {
	tree := ExampleTree()
	f := newTestEngine(DefaultConfig()).Layout(tree, Viewport{800, 600}, home)

	root, ok := f.Find(tree.Root())
	if !ok || root.X != 400 || root.Y != 300 {
		t.Fatalf("root = %+v (found %v), want at viewport center", root, ok)
	}
	kids := tree.Children(tree.Root())
	first, _ := f.Find(kids[0])
	last, _ := f.Find(kids[3])
	if first.X != 400 || first.Y != 500 {
		t.Errorf("A at (%d,%d), want (400,500)", first.X, first.Y)
	}
	if last.X != 600 || last.Y != 300 {
		t.Errorf("Fractal at (%d,%d), want (600,300)", last.X, last.Y)
	}
	if f.Stats.Truncated {
		t.Error("example tree hit the depth limit")
	}
	if f.Stats.Drawn != len(f.Circles()) {
		t.Errorf("Drawn = %d, circles = %d", f.Stats.Drawn, len(f.Circles()))
	}
	// "Whoa" links back to the root, which is drawn again to its right.
	copies := 0
	for _, c := range f.Circles() {
		if c.Node == tree.Root() {
			copies++
		}
	}
	if copies < 2 {
		t.Errorf("root drawn %d times, want the fractal copy too", copies)
	}
}

func TestLayoutZeroViewport(t *testing.T) {
	f := newTestEngine(DefaultConfig()).Layout(ExampleTree(), Viewport{}, home)
	if len(f.Circles()) != 0 {
		t.Errorf("circles = %d, want 0", len(f.Circles()))
	}
	if len(f.Commands) != 0 {
		t.Errorf("commands = %d, want 0", len(f.Commands))
	}
	if f.Commands == nil {
		t.Error("command list is nil, want empty")
	}
}

func TestLayoutOffscreenStillVisitsChildren(t *testing.T) {
	tree, ids := fanTree(4)
	// Root pushed off the right edge; its left child at (x-200) lands on screen.
	f := newTestEngine(DefaultConfig()).Layout(tree, Viewport{800, 600}, CameraState{X: 500, Zoom: 1})
	if _, ok := f.Find(tree.Root()); ok {
		t.Error("root drawn although off-screen")
	}
	if f.Stats.Culled == 0 {
		t.Error("no circle counted as culled")
	}
	if _, ok := f.Find(ids[1]); !ok {
		t.Error("on-screen child of culled root not drawn")
	}
}

func TestLayoutFarAwayDrawsNothing(t *testing.T) {
	f := newTestEngine(DefaultConfig()).Layout(ExampleTree(), Viewport{800, 600}, CameraState{X: 1e5, Y: 1e5, Zoom: 1})
	if len(f.Commands) != 0 {
		t.Errorf("commands = %d, want 0", len(f.Commands))
	}
	if f.Stats.Visited == 0 {
		t.Error("nothing visited")
	}
}

func TestLayoutMinDrawRadiusStopsRecursion(t *testing.T) {
	tree, _ := fanTree(4)
	f := newTestEngine(DefaultConfig()).Layout(tree, Viewport{800, 600}, CameraState{Zoom: 0.03})
	// Root radius int64(50*0.03) = 1 is below MinDrawRadius 2.
	if f.Stats.Visited != 1 {
		t.Errorf("visited = %d, want only the root", f.Stats.Visited)
	}
	if f.Count(CommandLabel) != 0 {
		t.Error("label drawn below MinLabelRadius")
	}
}

func TestLayoutMaxDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	f := newTestEngine(cfg).Layout(ExampleTree(), Viewport{800, 600}, home)
	if f.Stats.MaxDepth != 1 {
		t.Errorf("MaxDepth reached = %d, want 1", f.Stats.MaxDepth)
	}
	if !f.Stats.Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestLayoutHugeZoom(t *testing.T) {
	f := newTestEngine(DefaultConfig()).Layout(ExampleTree(), Viewport{800, 600}, CameraState{Zoom: 1e6})
	if len(f.Circles()) == 0 {
		t.Error("expected the root to cover the viewport")
	}
}

func TestEngineHitTestUsesLastFrame(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	if _, ok := e.HitTest(400, 300); ok {
		t.Error("hit before any layout")
	}
	tree := NewTree("root")
	e.Layout(tree, Viewport{800, 600}, home)
	c, ok := e.HitTest(400, 300)
	if !ok || c.Node != tree.Root() {
		t.Fatalf("HitTest center = %+v, %v", c, ok)
	}
	again, _ := e.HitTest(400, 300)
	if again != c {
		t.Error("repeated hit test differs")
	}
	if _, ok := e.HitTest(10, 10); ok {
		t.Error("hit far outside the root")
	}
}

func TestIntersectSegments(t *testing.T) {
	tt, u, ok := intersectSegments(0, 0, 10, 10, 0, 10, 10, 0)
	if !ok || !approxEqual(tt, 0.5, epsilon) || !approxEqual(u, 0.5, epsilon) {
		t.Errorf("crossing diagonals = (%v, %v, %v), want (0.5, 0.5, true)", tt, u, ok)
	}
	if _, _, ok := intersectSegments(0, 0, 10, 0, 0, 5, 10, 5); ok {
		t.Error("parallel segments intersect")
	}
	if _, _, ok := intersectSegments(0, 0, 10, 0, 0, 0, 10, 0); ok {
		t.Error("collinear segments intersect")
	}
	if _, _, ok := intersectSegments(0, 0, 1, 1, 5, 0, 5, 10); ok {
		t.Error("short segment reaches a distant line")
	}
}

func TestSegmentVisible(t *testing.T) {
	vp := Viewport{800, 600}
	tests := []struct {
		name           string
		x1, y1, x2, y2 int64
		want           bool
	}{
		{"inside", 10, 10, 20, 20, true},
		{"one end inside", -50, 300, 100, 300, true},
		{"crosses", -10, 300, 900, 300, true},
		{"crosses corner region", -100, 100, 100, -100, true},
		{"left of viewport", -100, -100, -50, 700, false},
		{"above viewport", -10, -5, 900, -5, false},
	}
	for _, tt := range tests {
		if got := segmentVisible(vp, tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
			t.Errorf("%s: segmentVisible = %v, want %v", tt.name, got, tt.want)
		}
	}
	if segmentVisible(Viewport{}, 0, 0, 0, 0) {
		t.Error("segment visible in empty viewport")
	}
}
