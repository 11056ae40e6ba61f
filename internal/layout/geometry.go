// Package layout maps grid cells to on-screen rectangles and back.
package layout

import (
	"image"
	"math"
)

// GapPolicy selects whether cells are separated by a one pixel gap.
type GapPolicy int

const (
	// WithGap leaves a one pixel gap before each cell.
	WithGap GapPolicy = iota
	// NoGap packs cells edge to edge.
	NoGap
)

// Geometry describes how cells are laid out on screen. Cells repeat every
// Pitch pixels; the first Gap pixels of each pitch are left empty, so cell
// (x, y) covers [left, left+Pitch-Gap) x [top, top+Pitch-Gap) with
// left = OriginX + Pitch*x + Gap.
type Geometry struct {
	OriginX, OriginY int
	Pitch            int
	Gap              int
}

// Fit derives the geometry that fills budget pixels along the longer grid
// side. With gaps the drawn cell is (budget-side)/side pixels wide, one pixel
// per cell being reserved for the gap.
func Fit(budget, w, h int, policy GapPolicy) Geometry {
	side := w
	if h > side {
		side = h
	}
	if side < 1 {
		side = 1
	}
	geom := Geometry{Pitch: budget / side}
	if policy == WithGap {
		geom.Gap = 1
	}
	if geom.Pitch <= geom.Gap {
		geom.Pitch = geom.Gap + 1
	}
	return geom
}

// CellSize is the drawn width of a cell.
func (g Geometry) CellSize() int { return g.Pitch - g.Gap }

// CellRect returns the on-screen rectangle of cell (x, y).
func (g Geometry) CellRect(x, y int) image.Rectangle {
	left := g.OriginX + g.Pitch*x + g.Gap
	top := g.OriginY + g.Pitch*y + g.Gap
	return image.Rect(left, top, left+g.CellSize(), top+g.CellSize())
}

// Extent returns the pixel size covered by a w by h grid, including a closing
// gap after the last cell.
func (g Geometry) Extent(w, h int) (int, int) {
	return g.Pitch*w + g.Gap, g.Pitch*h + g.Gap
}

// CellAt inverts CellRect: it returns the cell under pointer (px, py) in a
// w by h grid, or ok == false when the pointer is over a gap or outside
// every cell.
func (g Geometry) CellAt(px, py float32, w, h int) (x, y int, ok bool) {
	x, ok = g.axis(px, g.OriginX, w)
	if !ok {
		return 0, 0, false
	}
	y, ok = g.axis(py, g.OriginY, h)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func (g Geometry) axis(p float32, origin, n int) (int, bool) {
	if g.CellSize() <= 0 || n <= 0 {
		return 0, false
	}
	rel := float64(p) - float64(origin)
	if rel < 0 || math.IsNaN(rel) {
		return 0, false
	}
	i := int(math.Floor(rel / float64(g.Pitch)))
	if i >= n {
		return 0, false
	}
	if rel-float64(i*g.Pitch) < float64(g.Gap) {
		return 0, false
	}
	return i, true
}
