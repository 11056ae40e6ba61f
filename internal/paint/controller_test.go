package paint

import (
	"testing"

	"spritedit/internal/core"
	"spritedit/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = core.RGB8(255, 0, 0)
	blue = core.RGB8(0, 0, 255)
)

func newGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(4, 4)
	require.NoError(t, err)
	return g
}

func click(x, y float32) Input { return Input{X: x, Y: y, Pressed: true, JustPressed: true} }

func hold(x, y float32) Input { return Input{X: x, Y: y, Pressed: true} }

func cell(t *testing.T, g *core.Grid, x, y int) core.Color {
	t.Helper()
	c, err := g.At(x, y)
	require.NoError(t, err)
	return c
}

func TestToggleTwiceRestoresBackground(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, EdgeTriggered)

	assert.True(t, ctl.Apply(g, click(15, 25), red))
	assert.Equal(t, red, cell(t, g, 1, 2))

	assert.True(t, ctl.Apply(g, click(15, 25), red))
	assert.Equal(t, core.Background, cell(t, g, 1, 2))
	assert.Zero(t, g.CountPainted())
}

func TestPaintOverwritesWithoutBlending(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, EdgeTriggered)

	ctl.Apply(g, click(5, 5), red)
	ctl.Apply(g, click(5, 5), blue)
	assert.Equal(t, blue, cell(t, g, 0, 0))
	assert.Equal(t, 1, g.CountPainted())
}

func TestToggleOnAnyNonBackgroundErasesOtherColors(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnAnyNonBackground, EdgeTriggered)

	ctl.Apply(g, click(5, 5), red)
	assert.Equal(t, red, cell(t, g, 0, 0))
	ctl.Apply(g, click(5, 5), blue)
	assert.Equal(t, core.Background, cell(t, g, 0, 0))
}

func TestNoEffectWithoutPressOrHover(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, EdgeTriggered)

	assert.False(t, ctl.Apply(g, Input{X: 5, Y: 5}, red))
	assert.False(t, ctl.Apply(g, click(10, 10), red), "gap")
	assert.False(t, ctl.Apply(g, click(500, 5), red), "outside")
	assert.Zero(t, g.CountPainted())
}

func TestEdgeTriggeredIgnoresHeldButton(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, EdgeTriggered)

	ctl.Apply(g, click(5, 5), red)
	for i := 0; i < 10; i++ {
		assert.False(t, ctl.Apply(g, hold(5, 5), red))
		assert.False(t, ctl.Apply(g, hold(15, 5), red))
	}
	assert.Equal(t, red, cell(t, g, 0, 0))
	assert.Equal(t, core.Background, cell(t, g, 1, 0))
}

func TestLevelTriggeredDragPaints(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, LevelTriggered)

	assert.True(t, ctl.Apply(g, click(5, 5), red))
	// Holding on the same cell must not toggle it back every tick.
	for i := 0; i < 5; i++ {
		assert.False(t, ctl.Apply(g, hold(6, 6), red))
	}
	assert.True(t, ctl.Apply(g, hold(15, 5), red))
	assert.True(t, ctl.Apply(g, hold(25, 5), red))
	assert.Equal(t, 3, g.CountPainted())

	// Release, then press again on a painted cell erases it.
	assert.False(t, ctl.Apply(g, Input{X: 25, Y: 5}, red))
	assert.True(t, ctl.Apply(g, click(25, 5), red))
	assert.Equal(t, core.Background, cell(t, g, 2, 0))
}

func TestLevelTriggeredRetouchesCellAfterLeavingIt(t *testing.T) {
	g := newGrid(t)
	ctl := NewController(layout.Geometry{Pitch: 10, Gap: 1}, ToggleOnSameColor, LevelTriggered)

	require.True(t, ctl.Apply(g, click(5, 5), red))

	// Through the gap column and back onto the same cell.
	assert.False(t, ctl.Apply(g, hold(10, 5), red))
	assert.True(t, ctl.Apply(g, hold(5, 5), red))
	assert.Equal(t, core.Background, cell(t, g, 0, 0))

	// Off the canvas and back.
	assert.False(t, ctl.Apply(g, hold(6, 6), red))
	assert.False(t, ctl.Apply(g, hold(500, 5), red))
	assert.True(t, ctl.Apply(g, hold(6, 6), red))
	assert.Equal(t, red, cell(t, g, 0, 0))
}

func TestToolStateSelect(t *testing.T) {
	tool := NewToolState()
	assert.Equal(t, Accent, tool.Color)
	tool.Select(blue)
	assert.Equal(t, blue, tool.Color)
}

func TestParsePolicyAndTrigger(t *testing.T) {
	p, err := ParsePolicy("any")
	require.NoError(t, err)
	assert.Equal(t, ToggleOnAnyNonBackground, p)
	_, err = ParsePolicy("sometimes")
	assert.Error(t, err)

	tr, err := ParseTrigger("level")
	require.NoError(t, err)
	assert.Equal(t, LevelTriggered, tr)
	assert.Equal(t, "edge", EdgeTriggered.String())
}
