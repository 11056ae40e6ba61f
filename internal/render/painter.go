//go:build ebiten

package render

import (
	"image"
	"image/color"

	"spritedit/internal/core"
	"spritedit/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter rasterizes a grid into an RGBA buffer, uploads it to an
// ebiten image and draws it at the canvas geometry. The same pass refreshes
// a thumbnail for the HUD. Work is only redone when the grid changes.
type GridPainter struct {
	w, h int
	geom layout.Geometry

	last   *core.Grid
	canvas *image.RGBA
	img    *ebiten.Image
	thumb  *ebiten.Image
	side   int

	GapColor   color.Color
	HoverColor color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h laid out with
// geom. The thumbnail fits a thumbSide square.
func NewGridPainter(w, h int, geom layout.Geometry, thumbSide int) *GridPainter {
	ew, eh := geom.Extent(w, h)
	canvas := image.NewRGBA(image.Rect(0, 0, geom.OriginX+ew, geom.OriginY+eh))
	gp := &GridPainter{
		w:          w,
		h:          h,
		geom:       geom,
		canvas:     canvas,
		img:        ebiten.NewImage(canvas.Bounds().Dx(), canvas.Bounds().Dy()),
		side:       thumbSide,
		GapColor:   color.RGBA{R: 40, G: 40, B: 48, A: 255},
		HoverColor: color.RGBA{R: 240, G: 240, B: 250, A: 255},
	}
	return gp
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func (gp *GridPainter) refresh(g *core.Grid) {
	if gp.last != nil && g.Equal(gp.last) {
		return
	}
	RasterizeInto(gp.canvas, g, gp.geom, gp.GapColor)
	gp.img.WritePixels(gp.canvas.Pix)

	thumb := FitThumbnail(g, gp.side)
	if gp.thumb == nil || gp.thumb.Bounds().Size() != thumb.Bounds().Size() {
		gp.thumb = ebiten.NewImage(thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
	gp.thumb.WritePixels(thumb.Pix)
	gp.last = g.Clone()
}

// Draw blits the canvas and outlines the hovered cell.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *core.Grid, hoverX, hoverY int, hover bool) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	gp.refresh(g)
	dst.DrawImage(gp.img, nil)
	if hover {
		r := gp.geom.CellRect(hoverX, hoverY)
		vector.StrokeRect(dst, float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5, float32(r.Dx())-1, float32(r.Dy())-1, 1, gp.HoverColor, false)
	}
}

// Thumbnail returns the scaled thumbnail of g.
func (gp *GridPainter) Thumbnail(g *core.Grid) *ebiten.Image {
	if g.W == gp.w && g.H == gp.h {
		gp.refresh(g)
	}
	return gp.thumb
}
