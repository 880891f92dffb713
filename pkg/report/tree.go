package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bastiangx/wordgram/pkg/ngramtree"
)

var (
	treeRootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c4a7e7"))
	treeEnumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e6a86"))
	treeLeafStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#908caa"))
)

// RenderTree draws the decomposition of word as a terminal tree. Levels below
// maxLevels are cut off; zero or less draws everything.
func RenderTree(word string, node ngramtree.Node, maxLevels int) string {
	root := tree.Root(word).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle).
		RootStyle(treeRootStyle)
	appendNode(root, node, 1, maxLevels)
	return root.String()
}

func appendNode(parent *tree.Tree, node ngramtree.Node, level, maxLevels int) {
	if maxLevels > 0 && level > maxLevels {
		return
	}
	switch n := node.(type) {
	case ngramtree.Leaf:
		parent.Child(treeLeafStyle.Render(strings.Join(n, " ")))
	case *ngramtree.Tree:
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			sub := tree.Root(key).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(treeEnumStyle)
			appendNode(sub, child, level+1, maxLevels)
			parent.Child(sub)
		}
	}
}
