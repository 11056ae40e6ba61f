package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAtWithGap(t *testing.T) {
	geom := Geometry{Pitch: 10, Gap: 1}

	x, y, ok := geom.CellAt(5, 5, 8, 8)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	_, _, ok = geom.CellAt(10, 10, 8, 8)
	assert.False(t, ok, "pointer on the gap boundary must not resolve to a cell")

	_, _, ok = geom.CellAt(0.5, 5, 8, 8)
	assert.False(t, ok, "leading gap belongs to no cell")

	x, y, ok = geom.CellAt(12, 23, 8, 8)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, [2]int{x, y})

	x, y, ok = geom.CellAt(79.99, 79.99, 8, 8)
	assert.True(t, ok)
	assert.Equal(t, [2]int{7, 7}, [2]int{x, y})

	_, _, ok = geom.CellAt(5, 95, 8, 8)
	assert.False(t, ok, "beyond the last row")
	_, _, ok = geom.CellAt(-3, 5, 8, 8)
	assert.False(t, ok)
}

func TestCellAtNoGap(t *testing.T) {
	geom := Geometry{Pitch: 10}

	x, y, ok := geom.CellAt(10, 10, 4, 4)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})

	x, y, ok = geom.CellAt(39.9, 0, 4, 4)
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 0}, [2]int{x, y})

	_, _, ok = geom.CellAt(40, 0, 4, 4)
	assert.False(t, ok)
}

func TestCellAtHonoursOrigin(t *testing.T) {
	geom := Geometry{OriginX: 100, OriginY: 50, Pitch: 5, Gap: 1}
	x, y, ok := geom.CellAt(102, 53, 3, 3)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	_, _, ok = geom.CellAt(2, 3, 3, 3)
	assert.False(t, ok)
}

func TestCellAtAgreesWithCellRect(t *testing.T) {
	const w, h = 5, 3
	for _, geom := range []Geometry{{Pitch: 7, Gap: 1}, {Pitch: 6}, {OriginX: 3, OriginY: 9, Pitch: 5, Gap: 2}} {
		ew, eh := geom.Extent(w, h)
		for py := -2; py < eh+2; py++ {
			for px := -2; px < ew+2; px++ {
				want, wantOK := scan(geom, px, py, w, h)
				x, y, ok := geom.CellAt(float32(px)+0.5, float32(py)+0.5, w, h)
				if ok != wantOK || (ok && want != [2]int{x, y}) {
					t.Fatalf("geom %+v pixel (%d,%d): CellAt=(%d,%d,%v), scan=(%v,%v)", geom, px, py, x, y, ok, want, wantOK)
				}
			}
		}
	}
}

func scan(geom Geometry, px, py, w, h int) ([2]int, bool) {
	pt := image.Pt(px, py)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pt.In(geom.CellRect(x, y)) {
				return [2]int{x, y}, true
			}
		}
	}
	return [2]int{}, false
}

func TestFit(t *testing.T) {
	geom := Fit(512, 8, 8, WithGap)
	assert.Equal(t, Geometry{Pitch: 64, Gap: 1}, geom)
	assert.Equal(t, (512-8)/8, geom.CellSize())
	ew, eh := geom.Extent(8, 8)
	assert.Equal(t, 513, ew)
	assert.Equal(t, ew, eh)

	geom = Fit(512, 16, 4, NoGap)
	assert.Equal(t, Geometry{Pitch: 32}, geom)

	geom = Fit(10, 64, 64, WithGap)
	assert.Equal(t, 1, geom.CellSize())
}
