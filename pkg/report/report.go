/*
Package report turns an analyzer into plain, serializable values and writes
them as JSON, msgpack or terminal tables.

Maps from the analysis packages are flattened into ordered slices so that the
encoded output keeps the ranking order.
*/
package report

import (
	"github.com/bastiangx/wordgram/pkg/analysis"
	"github.com/bastiangx/wordgram/pkg/analyzer"
	"github.com/bastiangx/wordgram/pkg/metrics"
)

// Entry is one ranked n-gram.
type Entry struct {
	NGram string  `json:"ngram" msgpack:"n"`
	Value float64 `json:"value" msgpack:"v"`
}

// Position is the placement of one n-gram inside the words.
type Position struct {
	NGram  string `json:"ngram" msgpack:"n"`
	Start  int    `json:"start" msgpack:"s"`
	Middle int    `json:"middle" msgpack:"m"`
	End    int    `json:"end" msgpack:"e"`
}

// Neighbours lists the n-grams seen around one n-gram.
type Neighbours struct {
	NGram  string  `json:"ngram" msgpack:"n"`
	Before []Entry `json:"before" msgpack:"b"`
	After  []Entry `json:"after" msgpack:"a"`
}

// Report summarises one text.
type Report struct {
	Words          int     `json:"words" msgpack:"words"`
	UniqueWords    int     `json:"unique_words" msgpack:"unique_words"`
	MeanWordSize   float64 `json:"mean_word_size" msgpack:"mean_word_size"`
	MedianWordSize float64 `json:"median_word_size" msgpack:"median_word_size"`
	NGramSize      int     `json:"ngram_size" msgpack:"ngram_size"`

	TopLetters  []Entry              `json:"top_letters" msgpack:"top_letters"`
	TopNGrams   []Entry              `json:"top_ngrams" msgpack:"top_ngrams"`
	Percentages []Entry              `json:"percentages" msgpack:"percentages"`
	TopWords    []Entry              `json:"top_words" msgpack:"top_words"`
	Positions   []Position           `json:"positions" msgpack:"positions"`
	Siblings    []Neighbours         `json:"siblings" msgpack:"siblings"`
	Related     []Entry              `json:"related" msgpack:"related"`
	Carriers    []analyzer.WordGrams `json:"carriers" msgpack:"carriers"`
}

// Options selects what goes into a Report.
type Options struct {
	NGramSize      int // size of the ranked n-grams
	TopLimit       int // entries kept for n-grams and words
	TopLetterLimit int // entries kept for letters
	SiblingSize    int // neighbours counted on each side
}

// DefaultOptions ranks the 20 most frequent bigrams and 10 letters.
func DefaultOptions() Options {
	return Options{
		NGramSize:      2,
		TopLimit:       analyzer.DefaultTopLimit,
		TopLetterLimit: analyzer.DefaultTopLetterLimit,
		SiblingSize:    1,
	}
}

// Build computes a Report for a.
func Build(a *analyzer.Analyzer, opts Options) (*Report, error) {
	top := a.TopNGrams(opts.NGramSize, opts.TopLimit)
	percentages := metrics.Percentages(metrics.Frequencies(a.LetterNGrams(opts.NGramSize)))

	related, err := a.RelatedTopNGrams(opts.NGramSize, opts.TopLimit)
	if err != nil {
		return nil, err
	}
	carriers := a.WordsContainingTopNGrams(opts.NGramSize, opts.TopLimit)

	r := &Report{
		Words:          len(a.Words()),
		UniqueWords:    len(a.UniqueWords()),
		MeanWordSize:   a.MeanWordSize(),
		MedianWordSize: a.MedianWordSize(),
		NGramSize:      opts.NGramSize,
		TopLetters:     entries(a.TopLetters(opts.TopLetterLimit)),
		TopNGrams:      entries(top),
		TopWords:       entries(a.TopWords(opts.TopLimit)),
		Related:        entries(related),
		Carriers:       carriers,
		Percentages:    []Entry{},
		Positions:      []Position{},
		Siblings:       []Neighbours{},
	}

	for _, ngram := range top.Keys() {
		share, _ := percentages.Get(ngram)
		r.Percentages = append(r.Percentages, Entry{NGram: ngram, Value: share})
	}

	placements := a.Placements(top.Keys())
	placements.Each(func(ngram string, p analysis.Placement) {
		r.Positions = append(r.Positions, Position{NGram: ngram, Start: p.Start, Middle: p.Middle, End: p.End})
	})

	for _, ngram := range top.Keys() {
		siblings := a.Siblings(ngram, opts.SiblingSize)
		r.Siblings = append(r.Siblings, Neighbours{
			NGram:  ngram,
			Before: entries(siblings.Before),
			After:  entries(siblings.After),
		})
	}
	return r, nil
}

func entries(m *metrics.FrequencyMap) []Entry {
	result := make([]Entry, 0, m.Len())
	m.Each(func(key string, value float64) {
		result = append(result, Entry{NGram: key, Value: value})
	})
	return result
}
