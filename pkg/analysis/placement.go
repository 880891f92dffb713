/*
Package analysis looks at where n-grams sit: inside words (placement), next
to each other (siblings) and alongside other significant n-grams (related).

All functions work on already tokenized input, see package tokenize.
*/
package analysis

import (
	"slices"
	"strings"
)

// Placement counts where an n-gram occurs inside words.
type Placement struct {
	Start  int `json:"start" msgpack:"start"`
	Middle int `json:"middle" msgpack:"middle"`
	End    int `json:"end" msgpack:"end"`
}

// Total is the number of occurrences counted.
func (p Placement) Total() int {
	return p.Start + p.Middle + p.End
}

// Placements holds one Placement per n-gram, in the order the n-grams were given.
type Placements struct {
	ngrams []string
	byGram map[string]Placement
}

// NGrams returns the n-grams in order.
func (p *Placements) NGrams() []string {
	if p == nil {
		return []string{}
	}
	ngrams := make([]string, len(p.ngrams))
	copy(ngrams, p.ngrams)
	return ngrams
}

// Get returns the placement of ngram.
func (p *Placements) Get(ngram string) (Placement, bool) {
	if p == nil {
		return Placement{}, false
	}
	placement, ok := p.byGram[ngram]
	return placement, ok
}

// Len returns the number of n-grams.
func (p *Placements) Len() int {
	if p == nil {
		return 0
	}
	return len(p.ngrams)
}

// Each calls fn for every n-gram in order.
func (p *Placements) Each(fn func(ngram string, placement Placement)) {
	if p == nil {
		return
	}
	for _, ngram := range p.ngrams {
		fn(ngram, p.byGram[ngram])
	}
}

// PlacementOf counts the case-insensitive occurrences of ngram in words.
// Matches are found left to right and do not overlap. A match at the first
// rune counts as start, one ending at the last rune as end, anything else as
// middle. When a match is both (ngram equals the word) it counts as start.
func PlacementOf(ngram string, words []string) Placement {
	var placement Placement
	needle := []rune(strings.ToLower(ngram))
	if len(needle) == 0 {
		return placement
	}

	for _, word := range words {
		haystack := []rune(strings.ToLower(word))
		last := len(haystack) - len(needle)
		for _, index := range matchIndexes(haystack, needle) {
			switch index {
			case 0:
				placement.Start++
			case last:
				placement.End++
			default:
				placement.Middle++
			}
		}
	}
	return placement
}

// PlacementsOf computes the placement of every distinct n-gram.
func PlacementsOf(ngrams []string, words []string) *Placements {
	placements := &Placements{
		ngrams: make([]string, 0, len(ngrams)),
		byGram: make(map[string]Placement, len(ngrams)),
	}
	for _, ngram := range ngrams {
		if _, done := placements.byGram[ngram]; done {
			continue
		}
		placements.ngrams = append(placements.ngrams, ngram)
		placements.byGram[ngram] = PlacementOf(ngram, words)
	}
	return placements
}

func matchIndexes(haystack, needle []rune) []int {
	var indexes []int
	for i := 0; i+len(needle) <= len(haystack); {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			indexes = append(indexes, i)
			i += len(needle)
			continue
		}
		i++
	}
	return indexes
}
