// Package metrics counts n-grams and words: frequency maps, percentages,
// top-K views and word size statistics.
package metrics

import (
	"encoding/json"
	"sort"
)

// DefaultTopLimit is the number of entries TopGrams keeps when callers have no preference.
const DefaultTopLimit = 20

// Entry is a single key/value pair of a FrequencyMap.
type Entry struct {
	Key   string  `json:"key" msgpack:"k"`
	Value float64 `json:"value" msgpack:"v"`
}

// FrequencyMap maps n-grams to a count or a share, remembering the order in
// which keys were first inserted.
type FrequencyMap struct {
	keys   []string
	values map[string]float64
}

// NewFrequencyMap creates an empty FrequencyMap.
func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{values: make(map[string]float64)}
}

// Set stores value under key. New keys go to the end of the order.
func (m *FrequencyMap) Set(key string, value float64) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Increment adds one to key, starting unseen keys at 1.
func (m *FrequencyMap) Increment(key string) {
	m.Set(key, m.values[key]+1)
}

// Get returns the value stored for key.
func (m *FrequencyMap) Get(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *FrequencyMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (m *FrequencyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *FrequencyMap) Keys() []string {
	if m == nil {
		return []string{}
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Entries returns the pairs in insertion order.
func (m *FrequencyMap) Entries() []Entry {
	if m == nil {
		return []Entry{}
	}
	entries := make([]Entry, 0, len(m.keys))
	for _, key := range m.keys {
		entries = append(entries, Entry{Key: key, Value: m.values[key]})
	}
	return entries
}

// Each calls fn for every pair in insertion order.
func (m *FrequencyMap) Each(fn func(key string, value float64)) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		fn(key, m.values[key])
	}
}

// MarshalJSON encodes the map as an ordered list of entries.
func (m *FrequencyMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// Frequencies counts how often each n-gram occurs.
func Frequencies(ngrams []string) *FrequencyMap {
	frequencies := NewFrequencyMap()
	for _, ngram := range ngrams {
		frequencies.Increment(ngram)
	}
	return frequencies
}

// Percentages divides every count by the number of distinct keys.
// This is relative to the type count, not the token count, so the shares
// only sum to 1 when every key occurs exactly once.
func Percentages(frequencies *FrequencyMap) *FrequencyMap {
	percentages := NewFrequencyMap()
	size := float64(frequencies.Len())
	frequencies.Each(func(key string, value float64) {
		percentages.Set(key, value/size)
	})
	return percentages
}

// TopGrams keeps the limit most frequent entries, highest first.
// Ties keep their original order.
func TopGrams(frequencies *FrequencyMap, limit int) *FrequencyMap {
	entries := frequencies.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if limit < 0 {
		limit = 0
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	top := NewFrequencyMap()
	for _, entry := range entries {
		top.Set(entry.Key, entry.Value)
	}
	return top
}
