package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanWordSize(t *testing.T) {
	words := []string{"it", "will", "get", "the", "mean"}
	assert.Equal(t, (2.0+4+3+3+4)/5, MeanWordSize(words))
	assert.Equal(t, 2.0, MeanWordSize([]string{"\u00e9t\u00e9", "", " a "}))
	assert.Equal(t, 0.0, MeanWordSize(nil))
}

func TestMedianWordSize(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		expected    float64
	}{
		{"odd count", []string{"it", "will", "get", "the", "mean"}, 3},
		{"even count", []string{"it", "will", "get", "the"}, 3},
		{"even count, distinct middles", []string{"it", "will", "gets", "a"}, 3},
		{"single word", []string{"word"}, 4},
		{"empty words ignored", []string{"", "abc", "  "}, 3},
		{"no words", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, MedianWordSize(tc.words))
		})
	}
}
