//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"path/filepath"

	"spritedit/internal/core"
	"spritedit/internal/glyph"
	"spritedit/internal/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the palette and action panel to the right of the canvas.
type HUD struct {
	layout       *Panel
	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the document at path.
func NewHUD(path string, width int, palette []core.Color) *HUD {
	h := &HUD{layout: NewPanel(width, palette)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.title = glyph.Sanitize(filepath.Base(path))
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int { return h.layout.Width() }

// Height returns the minimum panel height.
func (h *HUD) Height() int { return h.layout.Height() }

// ThumbSize is the side of the square the thumbnail is drawn in.
func (h *HUD) ThumbSize() int { return h.layout.thumbRect.Dx() }

// Update handles a click on the panel. Palette clicks update tool; button
// clicks are returned to the caller.
func (h *HUD) Update(panelOffsetX int, tool *paint.ToolState) Action {
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return ActionNone
	}
	return h.layout.Click(mx-h.panelOffsetX, my, tool)
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, tool paint.ToolState, thumb *ebiten.Image, status string) {
	if height < h.layout.Height() {
		height = h.layout.Height()
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.layout.Width(), height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline-6, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for _, s := range h.layout.swatches {
		h.fillRect(s.rect, s.color)
		if s.color == tool.Color {
			h.strokeRect(s.rect.Inset(-2), color.RGBA{R: 240, G: 240, B: 250, A: 255})
		}
	}

	h.fillRect(h.layout.toolRect, tool.Color)
	h.strokeRect(h.layout.toolRect, color.RGBA{R: 120, G: 120, B: 130, A: 255})
	text.Draw(h.panel, glyph.Sanitize("tool "+tool.Color.String()), face,
		h.layout.toolRect.Max.X+buttonGap, h.layout.toolRect.Min.Y+labelBaseline+4, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	for _, b := range h.layout.buttons {
		h.drawButton(b.rect, b.action.Label())
	}

	if thumb != nil {
		h.drawThumbnail(thumb)
	}

	if status != "" {
		text.Draw(h.panel, glyph.Sanitize(status), face, panelPadding, h.layout.statusY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	h.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, glyph.Sanitize(label), face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) drawThumbnail(thumb *ebiten.Image) {
	r := h.layout.thumbRect
	b := thumb.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X+(r.Dx()-b.Dx())/2), float64(r.Min.Y+(r.Dy()-b.Dy())/2))
	h.panel.DrawImage(thumb, op)
}

func (h *HUD) fillRect(rect image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) strokeRect(rect image.Rectangle, clr color.Color) {
	vector.StrokeRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 1, clr, false)
}
