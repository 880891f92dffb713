package report

import (
	"github.com/bastiangx/wordgram/pkg/analyzer"
	"github.com/bastiangx/wordgram/pkg/compare"
)

// Section is the comparison of one n-gram type between two texts.
type Section struct {
	Type       string   `json:"type" msgpack:"type"`
	Shared     []string `json:"shared" msgpack:"shared"`
	OnlyFirst  []string `json:"only_first" msgpack:"only_first"`
	OnlySecond []string `json:"only_second" msgpack:"only_second"`
}

// Comparison summarises what two texts share.
type Comparison struct {
	Sections []Section `json:"sections" msgpack:"sections"`
}

// Compare builds a Comparison of letters, bigrams, trigrams and words.
func Compare(first, second *analyzer.Analyzer) (*Comparison, error) {
	result, err := first.CompareTo(second)
	if err != nil {
		return nil, err
	}

	c := &Comparison{}
	for _, t := range []analyzer.NGramType{analyzer.Letter, analyzer.Bigram, analyzer.Trigram, analyzer.Word} {
		section, _ := result.Get(t)
		c.Sections = append(c.Sections, newSection(t.String(), section))
	}
	return c, nil
}

func newSection(name string, c compare.Comparison) Section {
	return Section{
		Type:       name,
		Shared:     c.Intersection,
		OnlyFirst:  c.OnlyFirst(),
		OnlySecond: c.OnlySecond(),
	}
}
