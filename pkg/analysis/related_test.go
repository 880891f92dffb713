package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wgerrors "github.com/bastiangx/wordgram/pkg/errors"
	"github.com/bastiangx/wordgram/pkg/metrics"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

const revolutionText = "the revolution of the nation was on television. It was about pollution and the terrible situation"

var revolutionWords = []string{
	"the", "revolution", "of", "the", "nation", "was", "on", "television",
	"it", "was", "about", "pollution", "and", "the", "terrible", "situation",
}

func topOf(text string, size, limit int) *metrics.FrequencyMap {
	return metrics.TopGrams(metrics.Frequencies(tokenize.NGrams(text, size)), limit)
}

func TestRelatedNGrams(t *testing.T) {
	thText := "they saw this thing and this these thimbles thoughtfully throwing thorns through the thicket they thusly thought wrath"
	thWords := tokenize.Words(thText)

	decisionsText := revolutionText + " of decisions about derision"
	decisionsWords := append(append([]string{}, revolutionWords...), "of", "decisions", "about", "derision")

	tests := []struct {
		name  string
		words []string
		top   *metrics.FrequencyMap
		size  int
		want  map[string]float64
	}{
		{
			name:  "bigram chains",
			words: revolutionWords,
			top:   topOf(revolutionText, 2, 5),
			size:  2,
			want:  map[string]float64{"th": 3, "he": 3, "ti": 4, "io": 5, "on": 5},
		},
		{
			name:  "th clusters",
			words: thWords,
			top:   topOf(thText, 2, 7),
			size:  2,
			want:  map[string]float64{"th": 12, "he": 4, "hi": 5, "ho": 3, "ou": 3, "ug": 3, "gh": 3},
		},
		{
			name:  "tio and ion",
			words: revolutionWords,
			top:   topOf(revolutionText, 3, 5),
			size:  3,
			want:  map[string]float64{"lut": 2, "uti": 2, "tio": 4, "ion": 4},
		},
		{
			name:  "sio joins ion",
			words: decisionsWords,
			top:   topOf(decisionsText, 3, 5),
			size:  3,
			want:  map[string]float64{"tio": 4, "ion": 7, "isi": 3, "sio": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			related, err := RelatedNGrams(tt.words, tt.top, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries(related))
		})
	}
}

func TestRelatedNGramsRequiresInput(t *testing.T) {
	_, err := RelatedNGrams(nil, metrics.NewFrequencyMap(), 2)
	assert.ErrorIs(t, err, wgerrors.ErrInvalidInput)

	_, err = RelatedNGrams(revolutionWords, nil, 2)
	assert.ErrorIs(t, err, wgerrors.ErrInvalidInput)

	related, err := RelatedNGrams([]string{}, metrics.NewFrequencyMap(), 2)
	require.NoError(t, err)
	assert.Zero(t, related.Len())
}
