package analyzer

import (
	"github.com/bastiangx/wordgram/pkg/compare"
	wgerrors "github.com/bastiangx/wordgram/pkg/errors"
)

// Comparison holds one sequence comparison per n-gram type.
type Comparison struct {
	Letters  compare.Comparison `json:"letters" msgpack:"letters"`
	Bigrams  compare.Comparison `json:"bigrams" msgpack:"bigrams"`
	Trigrams compare.Comparison `json:"trigrams" msgpack:"trigrams"`
	Words    compare.Comparison `json:"words" msgpack:"words"`
}

// Get returns the comparison for one n-gram type.
func (c Comparison) Get(t NGramType) (compare.Comparison, bool) {
	switch t {
	case Letter:
		return c.Letters, true
	case Bigram:
		return c.Bigrams, true
	case Trigram:
		return c.Trigrams, true
	case Word:
		return c.Words, true
	default:
		return compare.Comparison{}, false
	}
}

// CompareTo compares letters, bigrams, trigrams and words of both texts.
func (a *Analyzer) CompareTo(other *Analyzer) (Comparison, error) {
	if other == nil {
		return Comparison{}, &wgerrors.TypeMismatchError{Expected: "*analyzer.Analyzer", Got: "nil"}
	}

	return Comparison{
		Letters:  compare.Compare(a.Letters(), other.Letters()),
		Bigrams:  compare.Compare(a.Bigrams(), other.Bigrams()),
		Trigrams: compare.Compare(a.Trigrams(), other.Trigrams()),
		Words:    compare.Compare(a.words, other.words),
	}, nil
}
