package radial

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TextMeasurer reports the rendered width of a string at a font size. The
// layout engine calls it once per label at Config.LabelReferenceSize and
// rescales linearly.
type TextMeasurer interface {
	MeasureString(s string, size float64) float64
}

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

// goRegularFont returns the parsed embedded Go Regular font.
func goRegularFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// newGoRegularFace creates an unhinted Go Regular face at size points, 72 DPI.
func newGoRegularFace(size float64) (font.Face, error) {
	f, err := goRegularFont()
	if err != nil {
		return nil, errors.Wrap(err, "parse go regular")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "go regular face at %v", size)
	}
	return face, nil
}

// FontMeasurer measures strings with the embedded Go Regular font. Widths are
// cached per string; a measurer is not safe for concurrent use.
type FontMeasurer struct {
	size  float64
	face  font.Face
	cache map[string]float64
}

// NewFontMeasurer creates a measurer whose face is built at refSize. Requests
// at other sizes are scaled from the reference width.
func NewFontMeasurer(refSize float64) (*FontMeasurer, error) {
	face, err := newGoRegularFace(refSize)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{size: refSize, face: face, cache: make(map[string]float64)}, nil
}

// MeasureString returns the advance width of s at size.
func (m *FontMeasurer) MeasureString(s string, size float64) float64 {
	w, ok := m.cache[s]
	if !ok {
		w = float64(font.MeasureString(m.face, s)) / 64
		m.cache[s] = w
	}
	return w * size / m.size
}

// fixedMeasurer gives every rune the same advance: width = runes * size * Ratio.
// It is used when no font is available and in tests.
type fixedMeasurer struct {
	Ratio float64
}

func (m fixedMeasurer) MeasureString(s string, size float64) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * size * m.Ratio
}
