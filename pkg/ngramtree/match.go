package ngramtree

import (
	"slices"
	"strings"
)

// MatchKind tells how many keys a KeyMatch holds.
type MatchKind int

const (
	NoMatch        MatchKind = iota // no key contains the ngram
	SingleMatch                     // exactly one key
	AmbiguousMatch                  // the ngram belongs to several adjacent keys
)

func (k MatchKind) String() string {
	switch k {
	case SingleMatch:
		return "single"
	case AmbiguousMatch:
		return "ambiguous"
	default:
		return "none"
	}
}

// KeyMatch is the result of Tree.KeyContaining.
type KeyMatch struct {
	Keys []string `json:"keys" msgpack:"keys"`
}

func singleMatch(key string) KeyMatch {
	return KeyMatch{Keys: []string{key}}
}

func (m KeyMatch) with(key string) KeyMatch {
	keys := slices.Clone(m.Keys)
	return KeyMatch{Keys: append(keys, key)}
}

// Kind classifies the match.
func (m KeyMatch) Kind() MatchKind {
	switch len(m.Keys) {
	case 0:
		return NoMatch
	case 1:
		return SingleMatch
	default:
		return AmbiguousMatch
	}
}

// Key returns the first matching key, or "" when nothing matched.
func (m KeyMatch) Key() string {
	if len(m.Keys) == 0 {
		return ""
	}
	return m.Keys[0]
}

func (m KeyMatch) String() string {
	switch m.Kind() {
	case NoMatch:
		return ""
	case SingleMatch:
		return m.Keys[0]
	default:
		return "[" + strings.Join(m.Keys, " ") + "]"
	}
}
