package radial

import (
	"bytes"
	"fmt"
	"html"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background *Color
	fontFamily string
}

// WithSVGBackground fills the whole viewport with c before drawing.
func WithSVGBackground(c Color) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithFontFamily sets the font-family used by labels (default "Go, sans-serif").
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG writes the frame as a standalone SVG document the size of its
// viewport. Commands keep their order, so later shapes paint over earlier ones.
func RenderSVG(f *Frame, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "Go, sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Viewport.Width, f.Viewport.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		w, h, w, h)
	if r.background != nil {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgColor(*r.background))
	}
	f.Replay(&svgCanvas{buf: &buf, fontFamily: r.fontFamily})
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// svgCanvas appends one element per draw call.
type svgCanvas struct {
	buf        *bytes.Buffer
	fontFamily string
}

func (c *svgCanvas) FillCircle(x, y, r float64, col Color) {
	fmt.Fprintf(c.buf, `  <circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", x, y, r, svgColor(col))
}

func (c *svgCanvas) StrokeCircle(x, y, r, width float64, col Color) {
	fmt.Fprintf(c.buf, `  <circle cx="%g" cy="%g" r="%g" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		x, y, r, svgColor(col), width)
}

func (c *svgCanvas) Line(x1, y1, x2, y2, width float64, col Color) {
	fmt.Fprintf(c.buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
		x1, y1, x2, y2, svgColor(col), width)
}

func (c *svgCanvas) Text(s string, x, y, size float64, col Color) {
	fmt.Fprintf(c.buf,
		`  <text x="%g" y="%g" font-family="%s" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		x, y, html.EscapeString(c.fontFamily), size, svgColor(col), html.EscapeString(s))
}

// svgColor formats c as #rrggbb, adding an opacity suffix only when translucent.
func svgColor(c Color) string {
	n := c.RGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
