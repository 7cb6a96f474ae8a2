// Package viewer shows a radial.View in an Ebitengine window.
//
// Drag with the left mouse button to pan, scroll to zoom and double click a
// node to zoom onto it. R resets the camera, Backspace steps out to the
// focused node's parent and H toggles the help overlay.
package viewer

import (
	"bytes"
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/radial"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// ShowFPS draws the FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// HideHelp starts with the controls overlay hidden.
	HideHelp bool
	// Resizable lets the user resize the window; the viewport follows.
	Resizable bool
	// Reload, when set, delivers replacement trees. Each one resets the
	// camera. Closing the channel stops polling.
	Reload <-chan radial.TreeView
}

// Game implements ebiten.Game for a view.
type Game struct {
	view     *radial.View
	input    *radial.PointerInput
	cfg      RunConfig
	bg       color.NRGBA
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	showHelp bool
	hud      *fpsCounter
	backdrop *ebiten.Image
	reload   <-chan radial.TreeView
}

// NewGame wraps view for ebiten.RunGame.
func NewGame(view *radial.View, cfg RunConfig) (*Game, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load label font")
	}
	return &Game{
		view:     view,
		input:    radial.NewPointerInput(view),
		cfg:      cfg,
		bg:       view.Config().Background.RGBA(),
		source:   source,
		faces:    make(map[float64]*text.GoTextFace),
		showHelp: !cfg.HideHelp,
		hud:      newFPSCounter(),
		reload:   cfg.Reload,
	}, nil
}

// Run opens a window the size of the view's viewport and blocks until it is
// closed.
func Run(view *radial.View, cfg RunConfig) error {
	g, err := NewGame(view, cfg)
	if err != nil {
		return err
	}
	vp := view.Viewport()
	title := cfg.Title
	if title == "" {
		title = "radial"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetTPS(view.Config().TickRate)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run viewer")
	}
	return nil
}

// Update samples input and advances the camera one tick.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.view.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.view.StepOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	g.pollReload()

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	g.input.Update(radial.PointerSample{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wheel,
	}, dt)

	g.view.Update(dt)
	g.hud.update(dt)
	return nil
}

// pollReload swaps in a pending tree without blocking.
func (g *Game) pollReload() {
	if g.reload == nil {
		return
	}
	select {
	case tree, ok := <-g.reload:
		if !ok {
			g.reload = nil
			return
		}
		if tree != nil {
			g.view.SetTree(tree)
		}
	default:
	}
}

// Draw lays out the current frame and paints it, then the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.view.Frame().Replay(&screenCanvas{dst: screen, game: g})
	g.drawHUD(screen)
}

// Layout keeps the viewport in step with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.view.Viewport()
	if vp.Width != outsideWidth || vp.Height != outsideHeight {
		g.view.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// face returns a label face for size, cached per quarter point.
func (g *Game) face(size float64) *text.GoTextFace {
	key := quantizeSize(size)
	f, ok := g.faces[key]
	if !ok {
		f = &text.GoTextFace{Source: g.source, Size: key}
		g.faces[key] = f
	}
	return f
}

func quantizeSize(size float64) float64 {
	return math.Round(size*4) / 4
}

// screenCanvas replays draw commands onto an ebiten image.
type screenCanvas struct {
	dst  *ebiten.Image
	game *Game
}

func (c *screenCanvas) FillCircle(x, y, r float64, col radial.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col.RGBA(), true)
}

func (c *screenCanvas) StrokeCircle(x, y, r, width float64, col radial.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), float32(width), col.RGBA(), true)
}

func (c *screenCanvas) Line(x1, y1, x2, y2, width float64, col radial.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col.RGBA(), true)
}

func (c *screenCanvas) Text(s string, x, y, size float64, col radial.Color) {
	if quantizeSize(size) <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.game.face(size), op)
}
