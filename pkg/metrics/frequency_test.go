package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencies(t *testing.T) {
	frequencies := Frequencies([]string{"he", "el", "ll", "lo", "ll"})

	assert.Equal(t, []string{"he", "el", "ll", "lo"}, frequencies.Keys())
	for key, want := range map[string]float64{"he": 1, "el": 1, "ll": 2, "lo": 1} {
		got, ok := frequencies.Get(key)
		require.True(t, ok, "missing %q", key)
		assert.Equal(t, want, got, "count of %q", key)
	}
	assert.False(t, frequencies.Has("zz"))
}

func TestFrequenciesEmpty(t *testing.T) {
	frequencies := Frequencies(nil)
	assert.Equal(t, 0, frequencies.Len())
	assert.Equal(t, []Entry{}, frequencies.Entries())
	assert.Equal(t, 0, Percentages(frequencies).Len())
	assert.Equal(t, 0, TopGrams(frequencies, 5).Len())
}

func TestPercentages(t *testing.T) {
	percentages := Percentages(Frequencies([]string{"he", "el"}))
	assert.Equal(t, []Entry{{"he", 0.5}, {"el", 0.5}}, percentages.Entries())
}

func TestPercentagesDivideByDistinctKeys(t *testing.T) {
	// 3 tokens over 2 distinct keys: shares are count/2, not count/3
	percentages := Percentages(Frequencies([]string{"ll", "ll", "lo"}))

	ll, _ := percentages.Get("ll")
	lo, _ := percentages.Get("lo")
	assert.Equal(t, 1.0, ll)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 1.5, ll+lo)
}

func TestTopGrams(t *testing.T) {
	frequencies := Frequencies([]string{"he", "el", "ll", "ll", "lo"})
	top := TopGrams(frequencies, 2)

	assert.Equal(t, []Entry{{"ll", 2}, {"he", 1}}, top.Entries())
	assert.False(t, top.Has("lo"))
}

func TestTopGramsIsStableSubset(t *testing.T) {
	frequencies := Frequencies([]string{"a", "b", "c", "b", "d", "c", "e"})

	testCases := []struct {
		limit    int
		expected []string
	}{
		{0, []string{}},
		{1, []string{"b"}},
		{3, []string{"b", "c", "a"}},
		{DefaultTopLimit, []string{"b", "c", "a", "d", "e"}},
		{-1, []string{}},
	}

	for _, tc := range testCases {
		top := TopGrams(frequencies, tc.limit)
		assert.Equal(t, tc.expected, top.Keys(), "limit %d", tc.limit)
		assert.LessOrEqual(t, top.Len(), max(tc.limit, 0))

		previous := -1.0
		top.Each(func(key string, value float64) {
			original, ok := frequencies.Get(key)
			assert.True(t, ok)
			assert.Equal(t, original, value)
			if previous >= 0 {
				assert.LessOrEqual(t, value, previous)
			}
			previous = value
		})
	}
}

func TestFrequencyMapSetKeepsOrder(t *testing.T) {
	m := NewFrequencyMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, []Entry{{"b", 3}, {"a", 2}}, m.Entries())
}

func TestFrequencyMapJSON(t *testing.T) {
	data, err := json.Marshal(Frequencies([]string{"th", "he", "th"}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"th","value":2},{"key":"he","value":1}]`, string(data))
}

func TestNilFrequencyMap(t *testing.T) {
	var m *FrequencyMap
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Equal(t, []string{}, m.Keys())
}
