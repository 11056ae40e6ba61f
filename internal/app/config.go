package app

import (
	"errors"
	"fmt"
	"strings"

	"spritedit/internal/codec"
	"spritedit/internal/core"
	"spritedit/internal/layout"
	"spritedit/internal/paint"
	"spritedit/internal/ui"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Config represents the command-line parameters for the application.
type Config struct {
	File string `arg:"" name:"file" help:"Sprite to edit (.ppm, .png or .bmp). Its size becomes the grid size."`
	Dim  *int   `short:"d" name:"dim" placeholder:"N" help:"Start from a blank NxN grid saved to <file>, ignoring its current content."`

	Policy   string   `help:"What a click on a painted cell does: same (erase only the tool color) or any (erase any color)." enum:"same,any" default:"same"`
	Trigger  string   `help:"Paint once per press (edge) or while the button is held (level)." enum:"edge,level" default:"edge"`
	Budget   int      `help:"Canvas size in pixels along the longer grid side." default:"512"`
	Gap      bool     `help:"Separate cells with a one pixel gap." default:"true" negatable:""`
	Panel    int      `help:"Width of the control panel in pixels." default:"180"`
	Palette  []string `help:"Comma separated tool colors as #RGB or #RRGGBB. The first one is selected at start." placeholder:"#RRGGBB"`
	TPS      int      `help:"Ticks per second." default:"60"`
	LogLevel string   `help:"Log level." enum:"debug,info,warn,error" default:"info"`

	colors []core.Color
}

const maxPaletteColors = 16

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Policy: "same", Trigger: "edge", Budget: 512, Gap: true, Panel: 180, TPS: 60, LogLevel: "info"}
}

// Validate checks the file extension and the blank grid size.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: must provide a file path", core.ErrConfig)
	}
	if _, err := codec.FormatFromPath(c.File); err != nil {
		return err
	}
	if c.Dim != nil && *c.Dim < 1 {
		return fmt.Errorf("%w: grid dimension must be at least 1, got %d", core.ErrConfig, *c.Dim)
	}
	if c.Budget < 1 {
		return fmt.Errorf("%w: canvas budget must be positive, got %d", core.ErrConfig, c.Budget)
	}
	if c.TPS < 1 {
		return fmt.Errorf("%w: ticks per second must be positive, got %d", core.ErrConfig, c.TPS)
	}
	if len(c.Palette) > maxPaletteColors {
		return fmt.Errorf("%w: at most %d palette colors, got %d", core.ErrConfig, maxPaletteColors, len(c.Palette))
	}
	c.colors = c.colors[:0]
	for _, s := range c.Palette {
		clr, err := core.ParseHex(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrConfig, err)
		}
		c.colors = append(c.colors, clr)
	}
	return nil
}

// Colors returns the parsed --palette, or ui.DefaultPalette when none was
// given. Validate must have run first.
func (c *Config) Colors() []core.Color {
	if len(c.colors) == 0 {
		return ui.DefaultPalette
	}
	return c.colors
}

// PaintPolicy returns the configured toggle policy.
func (c *Config) PaintPolicy() paint.Policy {
	p, err := paint.ParsePolicy(c.Policy)
	if err != nil {
		return paint.ToggleOnSameColor
	}
	return p
}

// PressTrigger returns the configured press policy.
func (c *Config) PressTrigger() paint.Trigger {
	t, err := paint.ParseTrigger(c.Trigger)
	if err != nil {
		return paint.EdgeTriggered
	}
	return t
}

// GapPolicy returns the configured cell spacing.
func (c *Config) GapPolicy() layout.GapPolicy {
	if c.Gap {
		return layout.WithGap
	}
	return layout.NoGap
}

// ParseArgs parses the command line (without the program name). Every
// failure wraps core.ErrConfig.
func ParseArgs(args []string, options ...kong.Option) (*Config, error) {
	cfg := NewConfig()
	options = append([]kong.Option{
		kong.Name("spritedit"),
		kong.Description("Paint pixel-art sprites on a fixed grid."),
	}, options...)
	parser, err := kong.New(cfg, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfig, err)
	}
	if _, err := parser.Parse(args); err != nil {
		if errors.Is(err, core.ErrConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: must provide a file path: %v", core.ErrConfig, err)
	}
	return cfg, nil
}

// ConfigureLogging applies the configured log level to the standard logger.
func ConfigureLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
