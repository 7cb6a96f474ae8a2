package radial

import (
	"bytes"
	"image"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// PNGCanvas rasterises draw commands into an in-memory image.
type PNGCanvas struct {
	dc    *gg.Context
	faces map[float64]font.Face
}

// NewPNGCanvas creates a canvas of the viewport size cleared to bg.
func NewPNGCanvas(vp Viewport, bg Color) *PNGCanvas {
	w, h := vp.Width, vp.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(bg.RGBA())
	dc.Clear()
	return &PNGCanvas{dc: dc, faces: make(map[float64]font.Face)}
}

func (c *PNGCanvas) FillCircle(x, y, r float64, col Color) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(col.RGBA())
	c.dc.Fill()
}

func (c *PNGCanvas) StrokeCircle(x, y, r, width float64, col Color) {
	if width <= 0 {
		return
	}
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(col.RGBA())
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *PNGCanvas) Line(x1, y1, x2, y2, width float64, col Color) {
	if width <= 0 {
		return
	}
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.SetColor(col.RGBA())
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

// Text draws s centered on (x, y). Faces are cached per quarter point.
func (c *PNGCanvas) Text(s string, x, y, size float64, col Color) {
	key := math.Round(size*4) / 4
	if key <= 0 {
		return
	}
	face, ok := c.faces[key]
	if !ok {
		var err error
		if face, err = newGoRegularFace(key); err != nil {
			return
		}
		c.faces[key] = face
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col.RGBA())
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// Image returns the rendered image.
func (c *PNGCanvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the image as PNG.
func (c *PNGCanvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(c.dc.EncodePNG(w), "encode png")
}

// RenderPNG rasterises the frame at its viewport size over bg.
func RenderPNG(f *Frame, bg Color) ([]byte, error) {
	c := NewPNGCanvas(f.Viewport, bg)
	f.Replay(c)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
