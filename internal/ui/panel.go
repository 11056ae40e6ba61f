package ui

import (
	"fmt"
	"image"

	"spritedit/internal/core"
	"spritedit/internal/paint"
)

// Action is a HUD button the user clicked.
type Action int

const (
	ActionNone Action = iota
	ActionSave
	ActionLoad
	ActionReset
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSave:
		return "save"
	case ActionLoad:
		return "load"
	case ActionReset:
		return "reset"
	case ActionClear:
		return "clear"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Label is the text drawn on the action's button.
func (a Action) Label() string {
	switch a {
	case ActionSave:
		return "SAVE"
	case ActionLoad:
		return "LOAD"
	case ActionReset:
		return "RESET"
	case ActionClear:
		return "CLEAR"
	}
	return ""
}

var actions = []Action{ActionSave, ActionLoad, ActionReset, ActionClear}

// DefaultPalette is the fixed set of selectable tool colors.
var DefaultPalette = []core.Color{
	paint.Accent,
	core.RGB8(0xff, 0xff, 0xff),
	core.RGB8(0xe6, 0x39, 0x46),
	core.RGB8(0x2a, 0x9d, 0x8f),
	core.RGB8(0x45, 0x7b, 0x9d),
	core.RGB8(0xf4, 0xd3, 0x5e),
	core.RGB8(0x8d, 0x5a, 0x97),
	core.RGB8(0x6c, 0x75, 0x7d),
}

type swatch struct {
	color core.Color
	rect  image.Rectangle
}

type button struct {
	action Action
	rect   image.Rectangle
}

// Panel lays out the palette swatches and action buttons of the HUD and
// resolves clicks on them. Coordinates are relative to the panel's top left.
type Panel struct {
	width    int
	swatches []swatch
	buttons  []button

	toolRect  image.Rectangle
	thumbRect image.Rectangle
	statusY   int
}

// NewPanel lays out a panel of the given width.
func NewPanel(width int, palette []core.Color) *Panel {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	p := &Panel{width: width}

	inner := width - 2*panelPadding
	swatchSize := (inner - (paletteColumns-1)*swatchGap) / paletteColumns
	top := panelPadding + headerBaseline + sectionGap
	for i, c := range palette {
		col := i % paletteColumns
		row := i / paletteColumns
		x := panelPadding + col*(swatchSize+swatchGap)
		y := top + row*(swatchSize+swatchGap)
		p.swatches = append(p.swatches, swatch{color: c, rect: image.Rect(x, y, x+swatchSize, y+swatchSize)})
	}
	rows := (len(palette) + paletteColumns - 1) / paletteColumns
	top += rows*(swatchSize+swatchGap) + sectionGap

	p.toolRect = image.Rect(panelPadding, top, panelPadding+buttonHeight, top+buttonHeight)
	top += buttonHeight + sectionGap

	for _, a := range actions {
		p.buttons = append(p.buttons, button{action: a, rect: image.Rect(panelPadding, top, width-panelPadding, top+buttonHeight)})
		top += buttonHeight + buttonGap
	}
	top += sectionGap

	p.thumbRect = image.Rect(panelPadding, top, panelPadding+thumbSize, top+thumbSize)
	p.statusY = top + thumbSize + sectionGap + labelBaseline
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Height returns the pixel height needed to show every control.
func (p *Panel) Height() int { return p.statusY + panelPadding }

// Click handles a primary button press at (x, y). A palette swatch selects
// its color on tool; a button returns its action.
func (p *Panel) Click(x, y int, tool *paint.ToolState) Action {
	for _, s := range p.swatches {
		if pointInRect(x, y, s.rect) {
			tool.Select(s.color)
			return ActionNone
		}
	}
	for _, b := range p.buttons {
		if pointInRect(x, y, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	minPanelWidth  = 120
	panelPadding   = 12
	paletteColumns = 4
	swatchGap      = 6
	sectionGap     = 14
	buttonHeight   = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 13
	thumbSize      = 64
)
