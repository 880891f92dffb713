package ngramtree

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordgram/internal/utils"
	wgerrors "github.com/bastiangx/wordgram/pkg/errors"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

// DefaultMaxWordLength bounds the recursion of Build.
const DefaultMaxWordLength = 64

// Builder turns words into trees.
type Builder struct {
	// MaxWordLength rejects longer words. Zero means DefaultMaxWordLength.
	MaxWordLength int
}

var defaultBuilder = Builder{MaxWordLength: DefaultMaxWordLength}

// Build decomposes word with the default builder.
func Build(word string) (Node, error) {
	return defaultBuilder.Build(word)
}

// BuildCollection builds every word with the default builder.
func BuildCollection(words []string) (*Collection, error) {
	return defaultBuilder.BuildCollection(words)
}

func (b Builder) maxWordLength() int {
	if b.MaxWordLength <= 0 {
		return DefaultMaxWordLength
	}
	return b.MaxWordLength
}

// Build decomposes word into a tree. Words of one or two runes give a Leaf.
func (b Builder) Build(word string) (Node, error) {
	size := utf8.RuneCountInString(word)
	if size == 0 {
		return nil, &wgerrors.ValidationError{Field: "word", Message: "empty word"}
	}
	if limit := b.maxWordLength(); size > limit {
		return nil, &wgerrors.ValidationError{
			Field:   "word",
			Value:   utils.Truncate(word, limit),
			Message: fmt.Sprintf("%d runes exceeds the limit of %d", size, limit),
		}
	}

	memo := make(map[string]Node)
	return build(word, memo), nil
}

// build is keyed by substring: both halves of a gram share their common
// middle, so each distinct substring is decomposed once.
func build(word string, memo map[string]Node) Node {
	if node, ok := memo[word]; ok {
		return node
	}

	var node Node
	size := utf8.RuneCountInString(word)
	if size <= 2 {
		node = Leaf(tokenize.NGrams(word, 1))
	} else {
		tree := &Tree{children: make(map[string]Node, 2)}
		for _, gram := range tokenize.NGrams(word, size-1) {
			if tree.Has(gram) {
				continue
			}
			tree.insert(gram, build(gram, memo))
		}
		node = tree
	}

	memo[word] = node
	return node
}

// BuildCollection builds one tree per distinct non-empty word, keeping the
// order in which words first appear. It stops at the first word that fails.
func (b Builder) BuildCollection(words []string) (*Collection, error) {
	collection, _, err := b.collect(words, false)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// BuildCollectionSkipping is BuildCollection for arbitrary text: words that
// cannot be built, such as runs longer than MaxWordLength, are logged and
// left out instead of failing the whole collection. The skipped words are
// returned in order.
func (b Builder) BuildCollectionSkipping(words []string) (*Collection, []string) {
	collection, skipped, _ := b.collect(words, true)
	return collection, skipped
}

func (b Builder) collect(words []string, skip bool) (*Collection, []string, error) {
	collection := newCollection(len(words))
	var skipped []string
	seen := make(map[string]struct{})
	for _, word := range words {
		if word == "" || collection.Has(word) {
			continue
		}
		node, err := b.Build(word)
		if err != nil {
			if !skip {
				return nil, nil, fmt.Errorf("build tree for %q: %w", word, err)
			}
			if _, dup := seen[word]; !dup {
				seen[word] = struct{}{}
				skipped = append(skipped, word)
				log.Warnf("Skipping tree for %q: %v", utils.Truncate(word, 24), err)
			}
			continue
		}
		collection.add(word, node)
	}

	log.Debugf("Built %d trees from %d words", collection.Len(), len(words))
	return collection, skipped, nil
}
