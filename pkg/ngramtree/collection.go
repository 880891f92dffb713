package ngramtree

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Collection holds the trees of several words, in first-seen word order.
// Words are also indexed in a patricia trie for prefix lookups.
type Collection struct {
	words []string
	trees map[string]Node
	index *patricia.Trie
}

func newCollection(capacity int) *Collection {
	return &Collection{
		words: make([]string, 0, capacity),
		trees: make(map[string]Node, capacity),
		index: patricia.NewTrie(),
	}
}

func (c *Collection) add(word string, node Node) {
	c.words = append(c.words, word)
	c.trees[word] = node
	c.index.Insert(patricia.Prefix(word), node)
}

// Get returns the tree built for word.
func (c *Collection) Get(word string) (Node, bool) {
	if c == nil {
		return nil, false
	}
	node, ok := c.trees[word]
	return node, ok
}

// Has reports whether word is part of the collection.
func (c *Collection) Has(word string) bool {
	_, ok := c.Get(word)
	return ok
}

// Words returns the words in the order they were added.
func (c *Collection) Words() []string {
	if c == nil {
		return []string{}
	}
	words := make([]string, len(c.words))
	copy(words, c.words)
	return words
}

// Len returns the number of words.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.words)
}

// Each calls fn for every word and its tree in order.
func (c *Collection) Each(fn func(word string, node Node)) {
	if c == nil {
		return
	}
	for _, word := range c.words {
		fn(word, c.trees[word])
	}
}

// WithPrefix returns the words starting with prefix, sorted.
func (c *Collection) WithPrefix(prefix string) []string {
	matches := []string{}
	if c == nil {
		return matches
	}

	err := c.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		matches = append(matches, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting tree index for prefix %q: %v", prefix, err)
	}

	sort.Strings(matches)
	return matches
}
