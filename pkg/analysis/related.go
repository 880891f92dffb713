package analysis

import (
	"github.com/charmbracelet/log"

	wgerrors "github.com/bastiangx/wordgram/pkg/errors"
	"github.com/bastiangx/wordgram/pkg/metrics"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

// RelatedNGrams splits every word into n-grams of size and counts each
// n-gram of interest whose direct predecessor or successor in the same word
// is also of interest. Chains like "tio" "ion" stand out this way.
//
// Both words and interest are required.
func RelatedNGrams(words []string, interest *metrics.FrequencyMap, size int) (*metrics.FrequencyMap, error) {
	if words == nil {
		return nil, wgerrors.Invalid("words", "word list is required")
	}
	if interest == nil {
		return nil, wgerrors.Invalid("ngrams", "n-grams of interest are required")
	}

	related := metrics.NewFrequencyMap()
	for _, word := range words {
		ngrams := tokenize.NGrams(word, size)
		for i, ngram := range ngrams {
			if !interest.Has(ngram) {
				continue
			}
			withPrevious := i > 0 && interest.Has(ngrams[i-1])
			withNext := i < len(ngrams)-1 && interest.Has(ngrams[i+1])
			if withPrevious || withNext {
				related.Increment(ngram)
			}
		}
	}

	log.Debugf("Found %d related %d-grams among %d of interest", related.Len(), size, interest.Len())
	return related, nil
}
