/*
Package ngramtree decomposes words into nested n-gram trees.

A word of length n maps to its two (n-1)-grams, each of which maps to its own
(n-2)-grams, and so on until bigrams, whose children are the single letters:

	nation
	├── natio ── nati, atio ── ...
	└── ation
	    ├── atio ── ...
	    └── tion
	        ├── tio ── ti, io
	        └── ion ── io, on

Every node is either a Leaf (letters) or a *Tree (ordered map of n-gram to
Node). Callers switch on the concrete type:

	switch n := node.(type) {
	case *ngramtree.Tree:
		n.HasDeep("io")
	case ngramtree.Leaf:
		n.Contains("o")
	}

Trees are immutable once built. Identical substrings of one word share a
single subtree, which keeps building and flattening quadratic in the word
length.
*/
package ngramtree

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordgram/pkg/metrics"
)

// Node is either a Leaf or a *Tree.
type Node interface {
	node()
}

// Leaf is the bottom of a tree: the letters of a bigram (or of a word too
// short to decompose). It must not be modified.
type Leaf []string

func (Leaf) node() {}

// Contains reports whether gram is one of the leaf's letters.
func (l Leaf) Contains(gram string) bool {
	return slices.Contains(l, gram)
}

// Child is one key of a Tree and the node it leads to.
type Child struct {
	Key  string
	Node Node
}

// Tree maps n-grams of one length to their decomposition, in insertion order.
type Tree struct {
	keys     []string
	children map[string]Node
}

func (*Tree) node() {}

// NewTree assembles a tree from already built children. Repeated keys keep
// their first position and their last node.
func NewTree(children ...Child) *Tree {
	t := &Tree{children: make(map[string]Node, len(children))}
	for _, child := range children {
		t.insert(child.Key, child.Node)
	}
	return t
}

func (t *Tree) insert(key string, child Node) {
	if _, exists := t.children[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.children[key] = child
}

// Keys returns the direct keys in insertion order.
func (t *Tree) Keys() []string {
	return slices.Clone(t.keys)
}

// Get returns the child stored under key.
func (t *Tree) Get(key string) (Node, bool) {
	child, ok := t.children[key]
	return child, ok
}

// Has reports whether key is a direct key of the tree.
func (t *Tree) Has(key string) bool {
	_, ok := t.children[key]
	return ok
}

// Len returns the number of direct keys.
func (t *Tree) Len() int {
	return len(t.keys)
}

// Walk visits every key depth-first in key order. fn receives the nesting
// level (0 for direct keys) and decides whether to descend into the child.
func (t *Tree) Walk(fn func(level int, key string, child Node) bool) {
	t.walk(0, fn)
}

func (t *Tree) walk(level int, fn func(int, string, Node) bool) {
	for _, key := range t.keys {
		child := t.children[key]
		if !fn(level, key, child) {
			continue
		}
		if sub, ok := child.(*Tree); ok {
			sub.walk(level+1, fn)
		}
	}
}

// NGramSize is the mean rune length of the direct keys, rounded half up.
// An empty tree has size 0.
func (t *Tree) NGramSize() int {
	if len(t.keys) == 0 {
		return 0
	}
	return int(math.Floor(metrics.MeanWordSize(t.keys) + 0.5))
}

// Depth counts the nested map levels below the tree: 0 when the keys are
// bigrams. Siblings are assumed to share the depth of the first child.
func (t *Tree) Depth() int {
	if t.NGramSize() <= 2 {
		return 0
	}
	first, ok := t.children[t.keys[0]].(*Tree)
	if !ok {
		return 1
	}
	return first.Depth() + 1
}

// Flatten lists the n-grams of the tree at the given size, without duplicates
// and in first-seen order. Keys whose subtree is already smaller than size
// are listed as they are.
func (t *Tree) Flatten(size int) []string {
	f := flattener{
		size:    size,
		seen:    make(map[string]struct{}),
		visited: make(map[*Tree]struct{}),
		grams:   []string{},
	}
	f.flatten(t)
	return f.grams
}

type flattener struct {
	size    int
	seen    map[string]struct{}
	visited map[*Tree]struct{}
	grams   []string
}

// a subtree that was already flattened cannot add anything new, so shared
// subtrees are expanded once
func (f *flattener) flatten(t *Tree) {
	if _, done := f.visited[t]; done {
		return
	}
	f.visited[t] = struct{}{}

	for _, key := range t.keys {
		sub, isTree := t.children[key].(*Tree)
		if !isTree || f.size > sub.NGramSize() {
			f.emit(key)
			continue
		}
		f.flatten(sub)
	}
}

func (f *flattener) emit(gram string) {
	if _, dup := f.seen[gram]; dup {
		return
	}
	f.seen[gram] = struct{}{}
	f.grams = append(f.grams, gram)
}

// HasDeep reports whether ngram appears anywhere in the tree. It first looks
// for an exact key of the same length and then falls back to a substring
// search over those keys.
func (t *Tree) HasDeep(ngram string) bool {
	size := utf8.RuneCountInString(ngram)
	if size == 0 {
		return false
	}

	grams := t.Flatten(size)
	if slices.Contains(grams, ngram) {
		return true
	}
	for _, gram := range grams {
		if strings.Contains(gram, ngram) {
			return true
		}
	}
	return false
}

// HasMany reports whether every ngram is in the tree.
func (t *Tree) HasMany(ngrams []string) bool {
	for _, ngram := range ngrams {
		if !t.HasDeep(ngram) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one ngram is in the tree.
func (t *Tree) HasAny(ngrams []string) bool {
	for _, ngram := range ngrams {
		if t.HasDeep(ngram) {
			return true
		}
	}
	return false
}

// HasWhich keeps the ngrams that are in the tree, in input order.
func (t *Tree) HasWhich(ngrams []string) []string {
	found := make([]string, 0, len(ngrams))
	for _, ngram := range ngrams {
		if t.HasDeep(ngram) {
			found = append(found, ngram)
		}
	}
	return found
}

// KeyContaining finds the key that contains the given same-length ngrams.
//
// A subtree holding all of them is descended into, or reported directly when
// its key is exactly one rune longer than the ngrams; a later matching
// subtree replaces an earlier result. At the bigram level only the first
// ngram is looked up among the letters, and a letter shared by two bigrams
// ("t" in "at" and "ti") yields an ambiguous match holding both keys.
func (t *Tree) KeyContaining(ngrams ...string) KeyMatch {
	if len(ngrams) == 0 {
		return KeyMatch{}
	}
	size := utf8.RuneCountInString(ngrams[0])

	var match KeyMatch
	for _, key := range t.keys {
		switch child := t.children[key].(type) {
		case *Tree:
			if !child.HasMany(ngrams) {
				continue
			}
			if utf8.RuneCountInString(key) == size+1 {
				match = singleMatch(key)
			} else {
				match = child.KeyContaining(ngrams...)
			}
		case Leaf:
			if !child.Contains(ngrams[0]) {
				continue
			}
			if match.Kind() == NoMatch {
				match = singleMatch(key)
			} else {
				match = match.with(key)
			}
		}
	}
	return match
}
