package ngramtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(letters ...string) Leaf {
	return Leaf(letters)
}

// hand-assembled trees for the letters of "nation"
var (
	natTree  = NewTree(Child{"na", leaf("n", "a")}, Child{"at", leaf("a", "t")})
	atiTree  = NewTree(Child{"at", leaf("a", "t")}, Child{"ti", leaf("t", "i")})
	tioTree  = NewTree(Child{"ti", leaf("t", "i")}, Child{"io", leaf("i", "o")})
	natiTree = NewTree(Child{"nat", natTree}, Child{"ati", atiTree})
	atioTree = NewTree(Child{"ati", atiTree}, Child{"tio", tioTree})

	natioTree = NewTree(Child{"nati", natiTree}, Child{"atio", atioTree})
)

func mustTree(t *testing.T, word string) *Tree {
	t.Helper()
	node, err := Build(word)
	require.NoError(t, err)
	tree, ok := node.(*Tree)
	require.True(t, ok, "expected a tree for %q, got %T", word, node)
	return tree
}

func TestNewTree(t *testing.T) {
	the := NewTree(Child{"th", leaf("t", "h")}, Child{"he", leaf("h", "e")})

	child, ok := the.Get("th")
	require.True(t, ok)
	assert.Equal(t, leaf("t", "h"), child)
	assert.Equal(t, []string{"th", "he"}, the.Keys())
	assert.Equal(t, 2, the.Len())

	_, ok = the.Get("ht")
	assert.False(t, ok)
}

func TestNewTreeDuplicateKeepsPosition(t *testing.T) {
	tree := NewTree(Child{"ab", leaf("a")}, Child{"bc", leaf("b", "c")}, Child{"ab", leaf("a", "b")})

	assert.Equal(t, []string{"ab", "bc"}, tree.Keys())
	child, _ := tree.Get("ab")
	assert.Equal(t, leaf("a", "b"), child)
}

func TestNGramSize(t *testing.T) {
	assert.Equal(t, 2, natTree.NGramSize())
	assert.Equal(t, 3, natiTree.NGramSize())
	assert.Equal(t, 4, natioTree.NGramSize())
	assert.Equal(t, 0, NewTree().NGramSize())

	mixed := NewTree(Child{"the", natTree}, Child{"this", natTree})
	assert.Equal(t, 4, mixed.NGramSize(), "3.5 rounds half up")
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, natTree.Depth())
	assert.Equal(t, 1, natiTree.Depth())
	assert.Equal(t, 2, natioTree.Depth())
	assert.Equal(t, 0, NewTree().Depth())
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		tree *Tree
		size int
		want []string
	}{
		{"bigram tree", natTree, 2, []string{"na", "at"}},
		{"nested once", natiTree, 2, []string{"na", "at", "ti"}},
		{"nested twice", natioTree, 2, []string{"na", "at", "ti", "io"}},
		{"trigrams of nati", natiTree, 3, []string{"nat", "ati"}},
		{"trigrams of natio", natioTree, 3, []string{"nat", "ati", "tio"}},
		{"four-grams of natio", natioTree, 4, []string{"nati", "atio"}},
		{"letters stop at bigrams", natTree, 1, []string{"na", "at"}},
		{"empty tree", NewTree(), 2, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tree.Flatten(tt.size))
		})
	}
}

func TestHasDeep(t *testing.T) {
	tionTree := mustTree(t, "tion")
	ionTree := mustTree(t, "ion")
	ationTree := mustTree(t, "ation")

	assert.True(t, natTree.HasDeep("a"), "letter one level deep")
	assert.True(t, natioTree.HasDeep("o"), "letter many levels deep")
	assert.True(t, tionTree.HasDeep("io"))
	assert.True(t, tionTree.HasDeep("ion"))
	assert.True(t, ionTree.HasDeep("io"))
	assert.True(t, ionTree.HasDeep("on"))
	assert.True(t, ationTree.HasDeep("ion"))
	assert.True(t, ationTree.HasDeep("tion"))

	assert.False(t, natioTree.HasDeep("on"))
	assert.False(t, natioTree.HasDeep("z"))
	assert.False(t, natioTree.HasDeep(""))
}

func TestHasDeepEverySubstring(t *testing.T) {
	const word = "revolution"
	tree := mustTree(t, word)
	runes := []rune(word)

	for size := 1; size < len(runes); size++ {
		for i := 0; i+size <= len(runes); i++ {
			gram := string(runes[i : i+size])
			assert.True(t, tree.HasDeep(gram), "missing %q", gram)
		}
	}
	assert.False(t, tree.HasDeep("nov"))
}

func TestHasMany(t *testing.T) {
	assert.True(t, tioTree.HasMany([]string{"t", "i"}))
	assert.True(t, tioTree.HasMany([]string{"ti", "io"}))
	assert.True(t, atioTree.HasMany([]string{"at", "ti", "io"}))
	assert.True(t, natioTree.HasMany([]string{"nat", "ati"}))
	assert.True(t, natioTree.HasMany([]string{"nat", "ati", "tio"}))
	assert.False(t, natioTree.HasMany([]string{"nat", "tio", "ons"}))
	assert.True(t, natioTree.HasMany(nil))
}

func TestHasAny(t *testing.T) {
	assert.True(t, natioTree.HasAny([]string{"nat", "tio", "ons"}))
	assert.False(t, natioTree.HasAny([]string{"zi", "qt"}))
	assert.False(t, natioTree.HasAny(nil))
}

func TestHasWhich(t *testing.T) {
	assert.Equal(t, []string{"nat", "tio"}, natioTree.HasWhich([]string{"nat", "tio", "ons"}))
	assert.Equal(t, []string{"na", "at", "ti"}, natioTree.HasWhich([]string{"na", "at", "ti", "on"}))

	none := natioTree.HasWhich([]string{"zi", "qt"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestKeyContaining(t *testing.T) {
	tests := []struct {
		name   string
		tree   *Tree
		ngrams []string
		kind   MatchKind
		want   []string
	}{
		{"letter in one bigram", atiTree, []string{"i"}, SingleMatch, []string{"ti"}},
		{"letter shared by two bigrams", atiTree, []string{"t"}, AmbiguousMatch, []string{"at", "ti"}},
		{"shared first letter", natTree, []string{"a"}, AmbiguousMatch, []string{"na", "at"}},
		{"bigram deep in the tree", natioTree, []string{"ti"}, SingleMatch, []string{"tio"}},
		{"two bigrams", natioTree, []string{"ti", "io"}, SingleMatch, []string{"tio"}},
		{"trigram", natioTree, []string{"tio"}, SingleMatch, []string{"atio"}},
		{"absent", natioTree, []string{"zz"}, NoMatch, nil},
		{"nothing asked", natioTree, nil, NoMatch, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := tt.tree.KeyContaining(tt.ngrams...)
			assert.Equal(t, tt.kind, match.Kind())
			assert.Equal(t, tt.want, match.Keys)
		})
	}
}

func TestKeyMatch(t *testing.T) {
	assert.Equal(t, "", KeyMatch{}.Key())
	assert.Equal(t, "", KeyMatch{}.String())
	assert.Equal(t, "ti", singleMatch("ti").String())
	assert.Equal(t, "at", singleMatch("at").with("ti").Key())
	assert.Equal(t, "[at ti]", singleMatch("at").with("ti").String())
	assert.Equal(t, "ambiguous", AmbiguousMatch.String())
}

func TestWalk(t *testing.T) {
	type visit struct {
		level int
		key   string
	}
	var visits []visit

	natiTree.Walk(func(level int, key string, _ Node) bool {
		visits = append(visits, visit{level, key})
		return true
	})

	assert.Equal(t, []visit{
		{0, "nat"}, {1, "na"}, {1, "at"},
		{0, "ati"}, {1, "at"}, {1, "ti"},
	}, visits)
}

func TestWalkSkipsSubtrees(t *testing.T) {
	var keys []string
	natioTree.Walk(func(level int, key string, _ Node) bool {
		keys = append(keys, key)
		return level < 1
	})

	assert.Equal(t, []string{"nati", "nat", "ati", "atio", "ati", "tio"}, keys)
}

func TestLeafContains(t *testing.T) {
	assert.True(t, leaf("o", "n").Contains("o"))
	assert.False(t, leaf("o", "n").Contains("on"))
}
