package metrics

import (
	"sort"
	"strings"
	"unicode/utf8"
)

func wordSizes(words []string) []int {
	sizes := make([]int, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		sizes = append(sizes, utf8.RuneCountInString(word))
	}
	return sizes
}

// MeanWordSize returns the average rune length of the non-empty words.
func MeanWordSize(words []string) float64 {
	sizes := wordSizes(words)
	if len(sizes) == 0 {
		return 0
	}
	sum := 0
	for _, size := range sizes {
		sum += size
	}
	return float64(sum) / float64(len(sizes))
}

// MedianWordSize returns the median rune length of the non-empty words. An
// even count averages the two middle sizes (n/2-1 and n/2 zero-based), not
// the n/2 and n/2+1 pair some older n-gram tools use.
func MedianWordSize(words []string) float64 {
	sizes := wordSizes(words)
	if len(sizes) == 0 {
		return 0
	}
	sort.Ints(sizes)

	middle := len(sizes) / 2
	if len(sizes)%2 != 0 {
		return float64(sizes[middle])
	}
	return float64(sizes[middle-1]+sizes[middle]) / 2
}
