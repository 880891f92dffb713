// Package cli runs the interactive analysis loop: every line typed is analyzed
// on its own, and a few colon commands inspect n-gram trees.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordgram/internal/logger"
	"github.com/bastiangx/wordgram/internal/utils"
	"github.com/bastiangx/wordgram/pkg/analyzer"
	"github.com/bastiangx/wordgram/pkg/config"
	"github.com/bastiangx/wordgram/pkg/ngramtree"
	"github.com/bastiangx/wordgram/pkg/report"
	"github.com/bastiangx/wordgram/pkg/tokenize"
)

const helpText = `commands:
  <text>                      analyze the text
  :tree <word>                draw the n-gram tree of word
  :flatten <word> <size>      list the n-grams of word at size
  :key <word> <ngram>...      find the key of word containing the n-grams
  :help                       show this help
  :quit                       leave`

// maximum line length echoed back in summaries
const previewLength = 40

var errQuit = errors.New("quit")

// InputHandler reads lines from in and writes results to out.
type InputHandler struct {
	cfg          *config.Config
	in           *bufio.Reader
	out          io.Writer
	log          *log.Logger
	requestCount int
}

// NewInputHandler creates a handler using the analysis settings of cfg.
func NewInputHandler(cfg *config.Config, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		cfg: cfg,
		in:  bufio.NewReader(in),
		out: out,
		log: logger.New("repl"),
	}
}

// Start runs the loop until the input ends or :quit is typed.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "wordgram repl, type text and press Enter (:help for commands, Ctrl+D to exit)")

	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if handleErr := h.handleInput(line); errors.Is(handleErr, errQuit) {
				return nil
			} else if handleErr != nil {
				h.log.Error(handleErr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(h.out)
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) error {
	h.requestCount++
	if !strings.HasPrefix(line, ":") {
		return h.analyze(line)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":q", ":quit", ":exit":
		return errQuit
	case ":help", ":h":
		fmt.Fprintln(h.out, helpText)
		return nil
	case ":tree":
		if len(fields) != 2 {
			return errors.New("usage: :tree <word>")
		}
		return h.tree(fields[1])
	case ":flatten":
		if len(fields) != 3 {
			return errors.New("usage: :flatten <word> <size>")
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", fields[2], err)
		}
		return h.flatten(fields[1], size)
	case ":key":
		if len(fields) < 3 {
			return errors.New("usage: :key <word> <ngram>...")
		}
		return h.key(fields[1], fields[2:])
	default:
		return fmt.Errorf("unknown command %s, try :help", fields[0])
	}
}

func (h *InputHandler) analyze(line string) error {
	start := time.Now()
	a := analyzer.New(line, h.cfg.AnalyzerOptions()...)
	opts := h.cfg.ReportOptions()

	related, err := a.RelatedTopNGrams(opts.NGramSize, opts.TopLimit)
	if err != nil {
		return err
	}
	top := a.TopNGrams(opts.NGramSize, opts.TopLimit)

	fmt.Fprintf(h.out, "%q: %s words, %s %d-grams, mean word size %.2f\n",
		utils.Truncate(line, previewLength),
		utils.FormatWithCommas(len(a.Words())),
		utils.FormatWithCommas(len(a.LetterNGrams(opts.NGramSize))),
		opts.NGramSize,
		a.MeanWordSize(),
	)
	placements := a.Placements(top.Keys())
	for i, entry := range top.Entries() {
		p, _ := placements.Get(entry.Key)
		fmt.Fprintf(h.out, "%2d. %-12s %6.0f  (start %d, middle %d, end %d)\n",
			i+1, entry.Key, entry.Value, p.Start, p.Middle, p.End)
	}
	if related.Len() > 0 {
		fmt.Fprintf(h.out, "related: %s\n", strings.Join(related.Keys(), " "))
	}

	h.log.Debugf("Request %d took [ %v ]", h.requestCount, time.Since(start))
	return nil
}

func (h *InputHandler) build(word string) (ngramtree.Node, error) {
	return h.cfg.Builder().Build(tokenize.Sanitize(word))
}

func (h *InputHandler) tree(word string) error {
	node, err := h.build(word)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, report.RenderTree(word, node, 0))
	return nil
}

func (h *InputHandler) flatten(word string, size int) error {
	node, err := h.build(word)
	if err != nil {
		return err
	}
	tree, ok := node.(*ngramtree.Tree)
	if !ok {
		fmt.Fprintln(h.out, strings.Join(node.(ngramtree.Leaf), " "))
		return nil
	}
	fmt.Fprintln(h.out, strings.Join(tree.Flatten(size), " "))
	return nil
}

func (h *InputHandler) key(word string, ngrams []string) error {
	node, err := h.build(word)
	if err != nil {
		return err
	}
	tree, ok := node.(*ngramtree.Tree)
	if !ok {
		return fmt.Errorf("%q is too short to have keys", word)
	}

	sanitized := make([]string, len(ngrams))
	for i, ngram := range ngrams {
		sanitized[i] = tokenize.Sanitize(ngram)
	}
	match := tree.KeyContaining(sanitized...)
	switch match.Kind() {
	case ngramtree.NoMatch:
		fmt.Fprintf(h.out, "no key of %s contains %s\n", word, strings.Join(ngrams, " "))
	default:
		fmt.Fprintf(h.out, "%s (%s)\n", match, match.Kind())
	}
	return nil
}
