package core

import "fmt"

// Grid stores a 2D grid of cell colors in row-major order.
type Grid struct {
	W, H  int
	cells []Color
}

// NewGrid allocates a grid with every cell set to Background.
func NewGrid(w, h int) (*Grid, error) {
	return NewFilledGrid(w, h, Background)
}

// NewFilledGrid allocates a grid with every cell set to fill.
func NewFilledGrid(w, h int, fill Color) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]Color, w*h)}
	g.Fill(fill)
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so renderers can walk it in row-major order.
func (g *Grid) Cells() []Color { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the color of cell (x, y).
func (g *Grid) At(x, y int) (Color, error) {
	if !g.Contains(x, y) {
		return Color{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.W, g.H)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores c in cell (x, y).
func (g *Grid) Set(x, y int, c Color) error {
	if !g.Contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.cells[g.Index(x, y)] = c
	return nil
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Color) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: append([]Color(nil), g.cells...)}
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// CountPainted returns the number of cells that differ from Background.
func (g *Grid) CountPainted() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsBackground() {
			n++
		}
	}
	return n
}
