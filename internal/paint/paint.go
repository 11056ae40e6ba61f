// Package paint applies toggle-paint mutations to a grid from sampled pointer
// input.
package paint

import (
	"fmt"

	"spritedit/internal/core"
)

// Policy selects what a click on an already painted cell does.
type Policy int

const (
	// ToggleOnSameColor erases a cell that already bears the tool color and
	// paints over any other color.
	ToggleOnSameColor Policy = iota
	// ToggleOnAnyNonBackground erases any painted cell and paints only
	// background cells.
	ToggleOnAnyNonBackground
)

func (p Policy) String() string {
	switch p {
	case ToggleOnSameColor:
		return "same"
	case ToggleOnAnyNonBackground:
		return "any"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps the command line spelling of a policy to its value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "same":
		return ToggleOnSameColor, nil
	case "any":
		return ToggleOnAnyNonBackground, nil
	}
	return 0, fmt.Errorf("unknown paint policy %q", s)
}

// Trigger selects which press signal drives painting.
type Trigger int

const (
	// EdgeTriggered paints once per discrete button press.
	EdgeTriggered Trigger = iota
	// LevelTriggered paints every tick the button is held, which allows
	// drag-painting. A held press touches each cell at most once until the
	// pointer moves to another cell or off the grid (a gap counts), or the
	// button is released.
	LevelTriggered
)

func (t Trigger) String() string {
	switch t {
	case EdgeTriggered:
		return "edge"
	case LevelTriggered:
		return "level"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// ParseTrigger maps the command line spelling of a trigger to its value.
func ParseTrigger(s string) (Trigger, error) {
	switch s {
	case "edge":
		return EdgeTriggered, nil
	case "level":
		return LevelTriggered, nil
	}
	return 0, fmt.Errorf("unknown press trigger %q", s)
}

// Input is the pointer state sampled once per tick, in window pixels.
type Input struct {
	X, Y        float32
	Pressed     bool
	JustPressed bool
}

// ToolState holds the color currently selected on the palette.
type ToolState struct {
	Color core.Color
}

// Accent is the tool color selected at startup.
var Accent = core.RGB8(0xff, 0x6b, 0x35)

// NewToolState returns a tool state with the accent color selected.
func NewToolState() ToolState { return ToolState{Color: Accent} }

// Select makes c the active tool color.
func (t *ToolState) Select(c core.Color) { t.Color = c }
