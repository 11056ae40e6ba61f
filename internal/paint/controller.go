package paint

import (
	"spritedit/internal/core"
	"spritedit/internal/layout"
)

// Controller is the only per-tick mutator of the grid.
type Controller struct {
	geom    layout.Geometry
	policy  Policy
	trigger Trigger

	// last cell touched during the current level-triggered hold
	held  bool
	heldX int
	heldY int
}

// NewController builds a controller for the given layout and policies.
func NewController(geom layout.Geometry, policy Policy, trigger Trigger) *Controller {
	return &Controller{geom: geom, policy: policy, trigger: trigger}
}

// Geometry returns the layout used for hit-testing.
func (c *Controller) Geometry() layout.Geometry { return c.geom }

// SetGeometry replaces the layout, e.g. after a grid of another size is loaded.
func (c *Controller) SetGeometry(geom layout.Geometry) {
	c.geom = geom
	c.held = false
}

// Policy returns the toggle policy.
func (c *Controller) Policy() Policy { return c.policy }

// Trigger returns the press policy.
func (c *Controller) Trigger() Trigger { return c.trigger }

// Hover returns the cell under the pointer, if any.
func (c *Controller) Hover(g *core.Grid, in Input) (x, y int, ok bool) {
	return c.geom.CellAt(in.X, in.Y, g.W, g.H)
}

// Apply toggles the hovered cell when the configured press signal is present
// and reports whether a cell changed.
func (c *Controller) Apply(g *core.Grid, in Input, tool core.Color) bool {
	switch c.trigger {
	case LevelTriggered:
		if !in.Pressed {
			c.held = false
			return false
		}
	default:
		if !in.JustPressed {
			return false
		}
	}

	x, y, ok := c.Hover(g, in)
	if !ok {
		c.held = false
		return false
	}
	if c.trigger == LevelTriggered {
		if c.held && c.heldX == x && c.heldY == y {
			return false
		}
		c.held, c.heldX, c.heldY = true, x, y
	}

	cur, err := g.At(x, y)
	if err != nil {
		return false
	}
	next := Toggle(c.policy, cur, tool)
	if next == cur {
		return false
	}
	return g.Set(x, y, next) == nil
}

// Toggle returns the color a cell holding cur takes when clicked with tool.
func Toggle(policy Policy, cur, tool core.Color) core.Color {
	switch policy {
	case ToggleOnAnyNonBackground:
		if !cur.IsBackground() {
			return core.Background
		}
		return tool
	default:
		if cur == tool {
			return core.Background
		}
		return tool
	}
}
