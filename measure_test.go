package radial

import "testing"

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(20)
	if err != nil {
		t.Fatal(err)
	}
	if w := m.MeasureString("", 20); w != 0 {
		t.Errorf("empty width = %v", w)
	}
	w20 := m.MeasureString("Fractal", 20)
	if w20 <= 0 {
		t.Fatalf("width = %v, want positive", w20)
	}
	if w40 := m.MeasureString("Fractal", 40); !approxEqual(w40, 2*w20, 1e-9) {
		t.Errorf("width at 40 = %v, want twice %v", w40, w20)
	}
	if wide, narrow := m.MeasureString("WWWW", 20), m.MeasureString("iiii", 20); wide <= narrow {
		t.Errorf("WWWW (%v) not wider than iiii (%v)", wide, narrow)
	}
}

func TestFixedMeasurerCountsRunes(t *testing.T) {
	m := fixedMeasurer{Ratio: 0.5}
	if w := m.MeasureString("héllo", 10); w != 25 {
		t.Errorf("width = %v, want 25", w)
	}
}

func TestEngineDefaultMeasurer(t *testing.T) {
	f := NewEngine(DefaultConfig(), nil).Layout(NewTree("root"), Viewport{800, 600}, home)
	if f.Count(CommandLabel) != 1 {
		t.Fatal("no label with the default measurer")
	}
	if size := f.Commands[2].FontSize; size <= 0 {
		t.Errorf("font size = %v", size)
	}
}
