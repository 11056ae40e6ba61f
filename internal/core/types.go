package core

import (
	"fmt"
	"math"
	"strings"
)

// Size describes the dimensions of a sprite grid in cells.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are at least one cell.
func (s Size) Valid() bool { return s.W >= 1 && s.H >= 1 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Color is a cell color with normalized channels in [0, 1]. Two colors are
// equal only when every channel matches exactly.
type Color struct {
	R, G, B, A float32
}

// Background is the reserved color of an unpainted cell.
var Background = Color{R: 0, G: 0, B: 0, A: 1}

// RGB8 builds an opaque color from 8-bit channels without any quantization.
func RGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// IsBackground reports whether c is the unpainted color.
func (c Color) IsBackground() bool { return c == Background }

// Bytes converts the RGB channels to bytes, rounding to the nearest value.
func (c Color) Bytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*float32(a) + 0.5)
	g = uint32(clamp01(c.G)*float32(a) + 0.5)
	b = uint32(clamp01(c.B)*float32(a) + 0.5)
	return r, g, b, a
}

func (c Color) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses #RGB or #RRGGBB into an opaque color.
func ParseHex(s string) (Color, error) {
	var r, g, b uint8
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(strings.ToLower(s), "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 7:
		n, err := fmt.Sscanf(strings.ToLower(s), "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}
	return RGB8(r, g, b), nil
}

func channelByte(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
