package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bastiangx/wordgram/pkg/metrics"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

func entries(m *metrics.FrequencyMap) map[string]float64 {
	result := make(map[string]float64)
	m.Each(func(key string, value float64) {
		result[key] = value
	})
	return result
}

func TestCollectionSiblings(t *testing.T) {
	collection := tokenize.Collections([]string{"revolution", "nation"}, 2)

	siblings := CollectionSiblings("io", collection, 1)
	assert.Equal(t, map[string]float64{"ti": 2}, entries(siblings.Before))
	assert.Equal(t, map[string]float64{"on": 2}, entries(siblings.After))
}

func TestCollectionSiblingsWiderWindow(t *testing.T) {
	collection := tokenize.Collections([]string{"revolution", "nation"}, 2)

	siblings := CollectionSiblings("io", collection, 2)
	assert.Equal(t, map[string]float64{"ut": 1, "ti": 2, "at": 1}, entries(siblings.Before))
	assert.Equal(t, map[string]float64{"on": 2}, entries(siblings.After))
}

func TestSequenceSiblings(t *testing.T) {
	sequence := tokenize.NGrams("revolution", 2)

	siblings := SequenceSiblings("re", sequence, 1)
	assert.Zero(t, siblings.Before.Len())
	assert.Equal(t, map[string]float64{"ev": 1}, entries(siblings.After))

	siblings = SequenceSiblings("on", sequence, 3)
	assert.Equal(t, map[string]float64{"ut": 1, "ti": 1, "io": 1}, entries(siblings.Before))
	assert.Zero(t, siblings.After.Len())
}

func TestSequenceSiblingsEveryOccurrence(t *testing.T) {
	sequence := []string{"ab", "xx", "ab", "yy"}

	siblings := SequenceSiblings("ab", sequence, 1)
	assert.Equal(t, map[string]float64{"xx": 1}, entries(siblings.Before))
	assert.Equal(t, map[string]float64{"xx": 1, "yy": 1}, entries(siblings.After))
}

func TestSiblingsEdgeCases(t *testing.T) {
	sequence := []string{"na", "at", "ti"}

	empty := SequenceSiblings("", sequence, 1)
	assert.Zero(t, empty.Before.Len())
	assert.Zero(t, empty.After.Len())

	missing := SequenceSiblings("zz", sequence, 1)
	assert.Zero(t, missing.Before.Len()+missing.After.Len())

	defaulted := SequenceSiblings("at", sequence, 0)
	assert.Equal(t, map[string]float64{"na": 1}, entries(defaulted.Before))
	assert.Equal(t, map[string]float64{"ti": 1}, entries(defaulted.After))

	none := CollectionSiblings("at", nil, 1)
	assert.Zero(t, none.Before.Len()+none.After.Len())
}
