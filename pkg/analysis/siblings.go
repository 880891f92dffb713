package analysis

import (
	"github.com/bastiangx/wordgram/pkg/metrics"
)

// DefaultSiblingSize is how many neighbours on each side are counted.
const DefaultSiblingSize = 1

// Siblings tallies the n-grams found next to a searched n-gram.
type Siblings struct {
	Before *metrics.FrequencyMap `json:"before"`
	After  *metrics.FrequencyMap `json:"after"`
}

func newSiblings() Siblings {
	return Siblings{
		Before: metrics.NewFrequencyMap(),
		After:  metrics.NewFrequencyMap(),
	}
}

// SequenceSiblings counts the neighbours of search within one sequence.
func SequenceSiblings(search string, sequence []string, size int) Siblings {
	return CollectionSiblings(search, [][]string{sequence}, size)
}

// CollectionSiblings counts the neighbours of search in every sequence of
// collection. Each occurrence looks at up to size elements on either side;
// windows of close occurrences overlap and their neighbours are counted
// once per occurrence. A size below 1 counts as 1.
func CollectionSiblings(search string, collection [][]string, size int) Siblings {
	siblings := newSiblings()
	if search == "" {
		return siblings
	}
	if size < 1 {
		size = DefaultSiblingSize
	}

	for _, sequence := range collection {
		for i, ngram := range sequence {
			if ngram == search {
				siblings.tally(sequence, i, size)
			}
		}
	}
	return siblings
}

func (s Siblings) tally(sequence []string, index, size int) {
	start, end := index-size, index+size+1
	if index == 0 || start < 0 {
		start = 0
	}
	if index == len(sequence)-1 || end > len(sequence) {
		end = len(sequence)
	}

	for i := start; i < end; i++ {
		switch {
		case i < index:
			s.Before.Increment(sequence[i])
		case i > index:
			s.After.Increment(sequence[i])
		}
	}
}
