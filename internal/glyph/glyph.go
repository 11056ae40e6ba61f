// Package glyph defines the closed set of characters the HUD can draw.
package glyph

import "strings"

// Glyph is one drawable character.
type Glyph uint8

// Letters and digits are laid out contiguously so they can be computed.
const (
	Unsupported Glyph = iota
	Space
	Period
	Comma
	Colon
	Hyphen
	Underscore
	Slash
	LParen
	RParen
	Exclaim
	Question
	Hash
	LetterA
	LetterZ Glyph = LetterA + 25
	Digit0  Glyph = LetterZ + 1
	Digit9  Glyph = Digit0 + 9
)

var punctuation = map[rune]Glyph{
	' ': Space,
	'.': Period,
	',': Comma,
	':': Colon,
	'-': Hyphen,
	'_': Underscore,
	'/': Slash,
	'(': LParen,
	')': RParen,
	'!': Exclaim,
	'?': Question,
	'#': Hash,
}

var punctuationRunes = func() map[Glyph]rune {
	m := make(map[Glyph]rune, len(punctuation))
	for r, g := range punctuation {
		m[g] = r
	}
	return m
}()

// Of maps r to its glyph. Lowercase letters fold to uppercase; every other
// rune outside the set maps to Unsupported.
func Of(r rune) Glyph {
	switch {
	case r >= 'A' && r <= 'Z':
		return LetterA + Glyph(r-'A')
	case r >= 'a' && r <= 'z':
		return LetterA + Glyph(r-'a')
	case r >= '0' && r <= '9':
		return Digit0 + Glyph(r-'0')
	}
	if g, ok := punctuation[r]; ok {
		return g
	}
	return Unsupported
}

// Rune returns the character drawn for g. Unsupported draws as '?'.
func (g Glyph) Rune() rune {
	switch {
	case g >= LetterA && g <= LetterZ:
		return 'A' + rune(g-LetterA)
	case g >= Digit0 && g <= Digit9:
		return '0' + rune(g-Digit0)
	}
	if r, ok := punctuationRunes[g]; ok {
		return r
	}
	return '?'
}

// Supported reports whether g is a real glyph.
func (g Glyph) Supported() bool { return g != Unsupported && g <= Digit9 }

// Sanitize maps every rune of s through Of and back, so the result only
// contains drawable characters. Unsupported runes become '?'.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if g := Of(r); g.Supported() {
			b.WriteRune(g.Rune())
			continue
		}
		b.WriteRune('?')
	}
	return b.String()
}
