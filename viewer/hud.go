package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS readout changes.
const fpsRefresh = 0.5

// fpsCounter samples ebiten's FPS/TPS at a fixed interval so the readout is
// legible.
type fpsCounter struct {
	since float64
	label string
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{since: fpsRefresh}
}

func (f *fpsCounter) update(dt float64) {
	f.since += dt
	if f.since < fpsRefresh {
		return
	}
	f.since = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

var helpLines = []string{
	"Pan: drag left mouse",
	"Zoom: scroll wheel",
	"Zoom to node: double click",
	"Step out: Backspace   Reset: R   Help: H",
}

// helpText returns the controls overlay, ending with the zoom readout.
func helpText(zoom string) string {
	return strings.Join(helpLines, "\n") + "\nZoom: " + zoom
}

var hudBackdrop = color.RGBA{0, 0, 0, 128}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.cfg.ShowFPS && g.hud.label != "" {
		ebitenutil.DebugPrintAt(screen, g.hud.label, 4, 4)
	}
	h := screen.Bounds().Dy()
	if !g.showHelp {
		ebitenutil.DebugPrintAt(screen, g.view.ZoomLabel(), 4, h-20)
		return
	}
	msg := helpText(g.view.ZoomLabel())
	lines := strings.Count(msg, "\n") + 1
	top := h - lines*16 - 8
	if g.backdrop == nil {
		g.backdrop = ebiten.NewImage(260, lines*16+4)
		g.backdrop.Fill(hudBackdrop)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, float64(top-2))
	screen.DrawImage(g.backdrop, op)
	ebitenutil.DebugPrintAt(screen, msg, 6, top)
}
