package radial

import colorful "github.com/lucasb-eyer/go-colorful"

// depthBands is the number of depths after which the hue cycle repeats.
const depthBands = 7

// DepthColors returns the fill and outline colors for a node at depth.
// Hue cycles every seven levels; the fill is a pale tint and the outline a
// saturated, slightly darker shade of the same hue.
func DepthColors(depth int) (fill, outline Color) {
	hue := float64(depth%depthBands) / depthBands * 360
	return fromColorful(colorful.Hsv(hue, 0.5, 1.0)), fromColorful(colorful.Hsv(hue, 1.0, 0.8))
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
