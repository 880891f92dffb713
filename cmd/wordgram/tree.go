package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bastiangx/wordgram/pkg/ngramtree"
	"github.com/bastiangx/wordgram/pkg/report"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	var (
		flatten  int
		depth    int
		prefix   string
		contains []string
	)

	cmd := &cobra.Command{
		Use:   "tree <word>...",
		Short: "Show the n-gram tree of one or more words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if flatten < 0 {
				return fmt.Errorf("--flatten must not be negative, got %d", flatten)
			}

			words := make([]string, 0, len(args))
			for _, arg := range args {
				words = append(words, tokenize.Sanitize(arg))
			}
			collection, err := cfg.Builder().BuildCollection(words)
			if err != nil {
				return err
			}

			for i, ngram := range contains {
				contains[i] = tokenize.Sanitize(ngram)
			}

			selected := collection.Words()
			if prefix != "" {
				selected = collection.WithPrefix(tokenize.Sanitize(prefix))
			}

			out := cmd.OutOrStdout()
			for _, word := range selected {
				node, _ := collection.Get(word)
				switch {
				case len(contains) > 0:
					fmt.Fprintf(out, "%s: %s\n", word, keyContaining(node, contains))
				case flatten > 0:
					fmt.Fprintf(out, "%s: %s\n", word, strings.Join(flattened(node, flatten), " "))
				default:
					fmt.Fprintln(out, report.RenderTree(word, node, depth))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flatten, "flatten", 0, "Print the n-grams of the given size instead of the tree")
	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum tree levels to draw, 0 draws all")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only show words starting with prefix")
	cmd.Flags().StringSliceVar(&contains, "contains", nil, "Print the top-level key containing all of these n-grams")
	return cmd
}

func flattened(node ngramtree.Node, size int) []string {
	switch n := node.(type) {
	case *ngramtree.Tree:
		return n.Flatten(size)
	case ngramtree.Leaf:
		if size == 1 {
			return n
		}
	}
	return nil
}

func keyContaining(node ngramtree.Node, ngrams []string) string {
	tree, ok := node.(*ngramtree.Tree)
	if !ok {
		return ngramtree.NoMatch.String()
	}
	match := tree.KeyContaining(ngrams...)
	if match.Kind() == ngramtree.NoMatch {
		return match.Kind().String()
	}
	return match.String()
}
