package render

import (
	"image"
	"image/color"

	"spritedit/internal/core"
	"spritedit/internal/layout"

	"golang.org/x/image/draw"
)

// fillGridRGBA converts cells into RGBA pixels in buf, one pixel per cell.
// Background cells are written as the off color.
func fillGridRGBA(buf []byte, cells []core.Color, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c.IsBackground() {
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
			continue
		}
		r, g, b, a := c.RGBA()
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

// Thumbnail returns the grid as an image with one pixel per cell, in screen
// orientation (row 0 on top).
func Thumbnail(g *core.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillGridRGBA(img.Pix, g.Cells(), core.Background)
	return img
}

// Rasterize draws the grid the way the canvas shows it: every cell is filled
// at geom.CellRect and the gaps take the gap color.
func Rasterize(g *core.Grid, geom layout.Geometry, gap color.Color) *image.RGBA {
	w, h := geom.Extent(g.W, g.H)
	dst := image.NewRGBA(image.Rect(0, 0, geom.OriginX+w, geom.OriginY+h))
	RasterizeInto(dst, g, geom, gap)
	return dst
}

// RasterizeInto is Rasterize drawing into an existing image, which must
// cover the canvas extent.
func RasterizeInto(dst draw.Image, g *core.Grid, geom layout.Geometry, gap color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(gap), image.Point{}, draw.Src)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			draw.Draw(dst, geom.CellRect(x, y), image.NewUniform(cells[g.Index(x, y)]), image.Point{}, draw.Src)
		}
	}
}

// Scale resizes src to the given size with nearest-neighbour sampling so
// cells stay crisp.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ThumbnailSize returns the size of a thumbnail of g that fits in a side by
// side square without changing the grid's aspect ratio.
func ThumbnailSize(g *core.Grid, side int) (int, int) {
	long := g.W
	if g.H > long {
		long = g.H
	}
	w, h := side*g.W/long, side*g.H/long
	return max(w, 1), max(h, 1)
}

// FitThumbnail returns the thumbnail of g scaled to ThumbnailSize.
func FitThumbnail(g *core.Grid, side int) *image.RGBA {
	w, h := ThumbnailSize(g, side)
	return Scale(Thumbnail(g), w, h)
}
