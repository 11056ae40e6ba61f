package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfIsTotal(t *testing.T) {
	for r := rune(0); r < 0x3000; r++ {
		g := Of(r)
		if g == Unsupported {
			continue
		}
		if !g.Supported() {
			t.Fatalf("rune %q mapped to invalid glyph %d", r, g)
		}
		back := g.Rune()
		if Of(back) != g {
			t.Fatalf("rune %q -> %d -> %q does not round trip", r, g, back)
		}
	}
}

func TestLettersDigitsPunctuation(t *testing.T) {
	assert.Equal(t, 'A', LetterA.Rune())
	assert.Equal(t, 'Z', LetterZ.Rune())
	assert.Equal(t, '0', Digit0.Rune())
	assert.Equal(t, '9', Digit9.Rune())
	assert.Equal(t, Of('Q'), Of('q'))
	assert.Equal(t, Hash, Of('#'))
	assert.Equal(t, Unsupported, Of('é'))
	assert.False(t, Unsupported.Supported())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "SAVED SPRITE.PNG (8X8)", Sanitize("saved sprite.png (8x8)"))
	assert.Equal(t, "CAF? ?", Sanitize("café €"))
}
