/*
Package analyzer bundles the wordgram packages behind a single value that
describes one text.

	a := analyzer.New("The revolution of the nation was televised")
	a.TopBigrams(5)                  // most frequent bigrams
	a.BigramPositions()              // where they sit inside words
	a.WordsContainingTopNGrams(2, 5) // which words carry them

The text is sanitized once when the Analyzer is created. Every other
statistic is computed on demand and returned as a fresh value, so an
Analyzer can be shared between goroutines.
*/
package analyzer

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordgram/pkg/analysis"
	"github.com/bastiangx/wordgram/pkg/metrics"
	"github.com/bastiangx/wordgram/pkg/ngramtree"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

// Default limits for the top-K helpers.
const (
	DefaultTopLetterLimit = 10
	DefaultTopLimit       = metrics.DefaultTopLimit
)

// NGramType names the n-gram sizes an Analyzer reports on.
type NGramType int

const (
	Letter  NGramType = 1
	Bigram  NGramType = 2
	Trigram NGramType = 3
	// Word stands for whole words, whatever their length.
	Word NGramType = math.MaxInt
)

func (t NGramType) String() string {
	switch t {
	case Letter:
		return "letters"
	case Bigram:
		return "bigrams"
	case Trigram:
		return "trigrams"
	case Word:
		return "words"
	default:
		return "unknown"
	}
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithStrictSymbols drops n-grams containing symbols such as '#' or '-'.
func WithStrictSymbols(strict bool) Option {
	return func(a *Analyzer) {
		a.strict = strict
	}
}

// WithBuilder sets the builder used for the word trees.
func WithBuilder(builder ngramtree.Builder) Option {
	return func(a *Analyzer) {
		a.builder = builder
	}
}

// Analyzer answers statistical questions about one text.
type Analyzer struct {
	text      string
	sanitized string
	words     []string

	strict  bool
	builder ngramtree.Builder
}

// New prepares text for analysis.
func New(text string, opts ...Option) *Analyzer {
	a := &Analyzer{
		text:    text,
		builder: ngramtree.Builder{MaxWordLength: ngramtree.DefaultMaxWordLength},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.sanitized = tokenize.Sanitize(text)
	a.words = tokenize.Words(a.sanitized)
	log.Debugf("Analyzer ready: %d runes, %d words", len([]rune(a.sanitized)), len(a.words))
	return a
}

// Text returns the text as given.
func (a *Analyzer) Text() string { return a.text }

// SanitizedText returns the lowercased text without diacritics.
func (a *Analyzer) SanitizedText() string { return a.sanitized }

// Words returns the words of the text in order.
func (a *Analyzer) Words() []string { return slices.Clone(a.words) }

// LetterNGrams returns the n-grams of size of the sanitized text.
func (a *Analyzer) LetterNGrams(size int) []string {
	if a.strict {
		return tokenize.StrictNGrams(a.sanitized, size)
	}
	return tokenize.NGrams(a.sanitized, size)
}

func (a *Analyzer) Letters() []string  { return a.LetterNGrams(1) }
func (a *Analyzer) Bigrams() []string  { return a.LetterNGrams(2) }
func (a *Analyzer) Trigrams() []string { return a.LetterNGrams(3) }

func (a *Analyzer) UniqueLetters() []string  { return unique(a.Letters()) }
func (a *Analyzer) UniqueBigrams() []string  { return unique(a.Bigrams()) }
func (a *Analyzer) UniqueTrigrams() []string { return unique(a.Trigrams()) }
func (a *Analyzer) UniqueWords() []string    { return unique(a.words) }

// MeanWordSize is the average word length in runes.
func (a *Analyzer) MeanWordSize() float64 { return metrics.MeanWordSize(a.words) }

// MedianWordSize is the median word length in runes.
func (a *Analyzer) MedianWordSize() float64 { return metrics.MedianWordSize(a.words) }

func (a *Analyzer) LetterFrequencies() *metrics.FrequencyMap  { return metrics.Frequencies(a.Letters()) }
func (a *Analyzer) BigramFrequencies() *metrics.FrequencyMap  { return metrics.Frequencies(a.Bigrams()) }
func (a *Analyzer) TrigramFrequencies() *metrics.FrequencyMap { return metrics.Frequencies(a.Trigrams()) }
func (a *Analyzer) WordFrequencies() *metrics.FrequencyMap    { return metrics.Frequencies(a.words) }

func (a *Analyzer) LetterPercentages() *metrics.FrequencyMap {
	return metrics.Percentages(a.LetterFrequencies())
}

func (a *Analyzer) BigramPercentages() *metrics.FrequencyMap {
	return metrics.Percentages(a.BigramFrequencies())
}

func (a *Analyzer) TrigramPercentages() *metrics.FrequencyMap {
	return metrics.Percentages(a.TrigramFrequencies())
}

// LetterPositions tells where each distinct letter sits inside the words.
func (a *Analyzer) LetterPositions() *analysis.Placements {
	return analysis.PlacementsOf(a.UniqueLetters(), a.words)
}

// BigramPositions tells where each distinct bigram sits inside the words.
func (a *Analyzer) BigramPositions() *analysis.Placements {
	return analysis.PlacementsOf(a.UniqueBigrams(), a.words)
}

// TrigramPositions tells where each distinct trigram sits inside the words.
func (a *Analyzer) TrigramPositions() *analysis.Placements {
	return analysis.PlacementsOf(a.UniqueTrigrams(), a.words)
}

// Placements tells where each distinct n-gram of ngrams sits inside the words.
func (a *Analyzer) Placements(ngrams []string) *analysis.Placements {
	return analysis.PlacementsOf(ngrams, a.words)
}

// Siblings counts the n-grams of the same size surrounding ngram inside words.
func (a *Analyzer) Siblings(ngram string, size int) analysis.Siblings {
	gramSize := len([]rune(ngram))
	return analysis.CollectionSiblings(ngram, tokenize.Collections(a.words, gramSize), size)
}

// TreeCollection builds the n-gram tree of every distinct word. Words the
// builder rejects, like runs longer than its MaxWordLength, are left out.
func (a *Analyzer) TreeCollection() *ngramtree.Collection {
	collection, _ := a.builder.BuildCollectionSkipping(a.UniqueWords())
	return collection
}

// TopLetters returns the limit most frequent letters.
func (a *Analyzer) TopLetters(limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(a.LetterFrequencies(), limit)
}

// TopBigrams returns the limit most frequent bigrams.
func (a *Analyzer) TopBigrams(limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(a.BigramFrequencies(), limit)
}

// TopTrigrams returns the limit most frequent trigrams.
func (a *Analyzer) TopTrigrams(limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(a.TrigramFrequencies(), limit)
}

// TopWords returns the limit most frequent words.
func (a *Analyzer) TopWords(limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(a.WordFrequencies(), limit)
}

// TopNGrams returns the limit most frequent n-grams of any size.
func (a *Analyzer) TopNGrams(size, limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(metrics.Frequencies(a.LetterNGrams(size)), limit)
}

// WordGrams pairs a word with the n-grams of interest it contains.
type WordGrams struct {
	Word   string   `json:"word" msgpack:"word"`
	NGrams []string `json:"ngrams" msgpack:"ngrams"`
}

// WordsContainingTopNGrams lists, in word order, the distinct words that
// contain at least one of the limit most frequent n-grams of size.
func (a *Analyzer) WordsContainingTopNGrams(size, limit int) []WordGrams {
	top := a.TopNGrams(size, limit).Keys()
	collection := a.TreeCollection()

	matches := []WordGrams{}
	collection.Each(func(word string, node ngramtree.Node) {
		var found []string
		switch n := node.(type) {
		case *ngramtree.Tree:
			if n.HasAny(top) {
				found = n.HasWhich(top)
			}
		case ngramtree.Leaf:
			for _, letter := range n {
				if slices.Contains(top, letter) {
					found = append(found, letter)
				}
			}
		}
		if len(found) > 0 {
			matches = append(matches, WordGrams{Word: word, NGrams: found})
		}
	})
	return matches
}

// RelatedTopNGrams counts the top n-grams of size that sit next to another
// top n-gram inside a word.
func (a *Analyzer) RelatedTopNGrams(size, limit int) (*metrics.FrequencyMap, error) {
	return analysis.RelatedNGrams(a.Words(), a.TopNGrams(size, limit), size)
}

func unique(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		result = append(result, entry)
	}
	return result
}
