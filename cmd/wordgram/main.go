// Copyright 2025 The WordGram Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordgram command line tool.

wordgram reads text and reports statistics about its letters, n-grams and
words: how often they occur, where inside words they sit, which n-grams
surround them and which words carry the most frequent ones. Words can also be
decomposed into n-gram trees, where every word maps to its two shorter
n-grams until only letters remain.

# Usage

Analyze a file and print tables:

	wordgram analyze speech.txt

Rank trigrams from stdin and emit JSON:

	cat speech.txt | wordgram analyze --size 3 --limit 10 --format json

Compare the n-grams of two texts:

	wordgram compare first.txt second.txt

Draw the n-gram tree of a word, or list its n-grams at one size:

	wordgram tree nation
	wordgram tree nation --flatten 3

Type lines interactively:

	wordgram repl

# Configuration

Defaults are read from a TOML file, [UserConfigDir]/wordgram/config.toml
unless --config points elsewhere:

	[analysis]
	ngram_size = 2
	top_limit = 20
	top_letter_limit = 10
	sibling_size = 1
	strict_symbols = false

	[tree]
	max_word_length = 64

	[output]
	format = "table"

Create it with `wordgram config init` and inspect the active values with
`wordgram config show`. Flags given on the command line win over the file.

# Output

The table format is meant for terminals. The json and msgpack formats carry
the same report and keep ranking order, so they can be piped into other
tools:

	wordgram analyze speech.txt --format msgpack > speech.report
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

var (
	Version = "0.1.0-beta"
	gh      = "https://github.com/bastiangx/wordgram"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
