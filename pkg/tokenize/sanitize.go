package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maqaf = '\u05BE'

// hebrewMarks covers Hebrew cantillation, vowel points and punctuation marks.
var hebrewMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0591, Hi: 0x05C7, Stride: 1}},
}

// combiningMarks is the Combining Diacritical Marks block left behind by NFD.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036F, Stride: 1}},
}

// transformers carry state, so every call gets its own chain.
func newSanitizer() transform.Transformer {
	return transform.Chain(
		runes.Map(func(r rune) rune {
			if r == maqaf {
				return '-'
			}
			return r
		}),
		runes.Remove(runes.In(hebrewMarks)),
		norm.NFD,
		runes.Remove(runes.In(combiningMarks)),
	)
}

// Sanitize lowercases text and removes diacritics that would throw off
// n-gram analysis. The Hebrew maqaf becomes a plain hyphen.
func Sanitize(text string) string {
	stripped, _, err := transform.String(newSanitizer(), text)
	if err != nil {
		// transform only fails on malformed chains; fall back to the raw text
		stripped = text
	}
	return strings.ToLower(stripped)
}
