//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"spritedit/internal/core"
	"spritedit/internal/editor"
	"spritedit/internal/layout"
	"spritedit/internal/paint"
	"spritedit/internal/render"
	"spritedit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const statusTicks = 180

// clearColor shows wherever neither the canvas nor the panel draws.
var clearColor = color.RGBA{R: 0, G: 121, B: 241, A: 255}

// Game adapts an editing session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	doc     *editor.Document
	ctl     *paint.Controller
	tool    paint.ToolState
	painter *render.GridPainter
	hud     *ui.HUD

	input  paint.Input
	status string
	ttl    int
}

// New constructs a Game for the provided document.
func New(cfg *Config, doc *editor.Document) *Game {
	palette := cfg.Colors()
	g := &Game{
		cfg:  cfg,
		doc:  doc,
		tool: paint.NewToolState(),
		hud:  ui.NewHUD(doc.Path(), cfg.Panel, palette),
		ctl:  paint.NewController(layout.Geometry{}, cfg.PaintPolicy(), cfg.PressTrigger()),
	}
	g.tool.Select(palette[0])
	g.relayout()
	g.setStatus(fmt.Sprintf("%s %s", doc.Format(), doc.Grid().Size()))
	return g
}

// relayout recomputes the cell geometry for the current grid size.
func (g *Game) relayout() {
	size := g.doc.Grid().Size()
	geom := layout.Fit(g.cfg.Budget, size.W, size.H, g.cfg.GapPolicy())
	g.ctl.SetGeometry(geom)
	g.painter = render.NewGridPainter(size.W, size.H, geom, g.hud.ThumbSize())
}

// WindowSize returns the window size needed for the canvas and panel.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update samples input, applies panel actions and painting.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	g.input = paint.Input{
		X:           float32(mx),
		Y:           float32(my),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	switch action := g.hud.Update(g.canvasWidth(), &g.tool); action {
	case ui.ActionSave:
		g.save()
	case ui.ActionLoad:
		g.load()
	case ui.ActionReset:
		g.doc.Reset()
		g.setStatus("reset")
	case ui.ActionClear:
		g.doc.Clear()
		g.setStatus("cleared")
	default:
		g.ctl.Apply(g.doc.Grid(), g.input, g.tool.Color)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.save()
	}

	if g.ttl > 0 {
		g.ttl--
		if g.ttl == 0 {
			g.status = ""
		}
	}
	return nil
}

func (g *Game) save() {
	if err := g.doc.Save(); err != nil {
		g.setStatus("save failed")
		return
	}
	g.setStatus("saved " + g.doc.Format().String())
}

func (g *Game) load() {
	before := g.doc.Grid().Size()
	if err := g.doc.Reload(); err != nil {
		if errors.Is(err, core.ErrFormat) {
			g.setStatus("bad file, kept grid")
		} else {
			g.setStatus("load failed")
		}
		return
	}
	if g.doc.Grid().Size() != before {
		g.relayout()
		w, h := g.WindowSize()
		ebiten.SetWindowSize(w, h)
	}
	g.setStatus("loaded " + g.doc.Grid().Size().String())
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.ttl = statusTicks
}

// Draw renders the canvas and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	grid := g.doc.Grid()
	hx, hy, hover := g.ctl.Hover(grid, g.input)
	g.painter.Draw(screen, grid, hx, hy, hover)

	status := g.status
	if status == "" && g.doc.Dirty() {
		status = "unsaved"
	}
	_, height := g.Layout(0, 0)
	g.hud.Draw(screen, g.canvasWidth(), height, g.tool, g.painter.Thumbnail(grid), status)
}

func (g *Game) canvasWidth() int {
	size := g.doc.Grid().Size()
	w, _ := g.ctl.Geometry().Extent(size.W, size.H)
	return w
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.doc.Grid().Size()
	w, h := g.ctl.Geometry().Extent(size.W, size.H)
	if ph := g.hud.Height(); ph > h {
		h = ph
	}
	return w + g.hud.Width(), h
}
