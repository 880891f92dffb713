package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bastiangx/wordgram/internal/utils"
	"github.com/bastiangx/wordgram/pkg/analyzer"
	"github.com/bastiangx/wordgram/pkg/config"
	"github.com/bastiangx/wordgram/pkg/report"
)

type analyzeFlags struct {
	format string
	size   int
	limit  int
	strict bool
}

// bind registers the flags shared by analyze and compare.
func (f *analyzeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: table, json or msgpack")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "N-gram size to rank")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "Number of entries per ranking")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Drop n-grams containing symbols")
}

// apply lays the flags that were set over a copy of cfg.
func (f *analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, report.Format, error) {
	merged := *cfg
	if cmd.Flags().Changed("size") {
		if f.size < 1 {
			return nil, "", fmt.Errorf("--size must be at least 1, got %d", f.size)
		}
		merged.Analysis.NGramSize = f.size
	}
	if cmd.Flags().Changed("limit") {
		if f.limit < 1 {
			return nil, "", fmt.Errorf("--limit must be at least 1, got %d", f.limit)
		}
		merged.Analysis.TopLimit = f.limit
	}
	if cmd.Flags().Changed("strict") {
		merged.Analysis.StrictSymbols = f.strict
	}

	format := merged.OutputFormat()
	if f.format != "" {
		parsed, err := report.ParseFormat(f.format)
		if err != nil {
			return nil, "", err
		}
		format = parsed
	}
	return &merged, format, nil
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Report n-gram statistics for a text",
		Long:  "Report n-gram statistics for a text read from file, or from stdin when no file or \"-\" is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, format, err := flags.apply(cmd, cfg)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			text, err := utils.ReadText(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a := analyzer.New(text, cfg.AnalyzerOptions()...)
			r, err := report.Build(a, cfg.ReportOptions())
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			return report.Encode(cmd.OutOrStdout(), r, format)
		},
	}

	flags.bind(cmd)
	return cmd
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Compare the n-grams and words of two texts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, format, err := flags.apply(cmd, cfg)
			if err != nil {
				return err
			}

			analyzers := make([]*analyzer.Analyzer, len(args))
			for i, path := range args {
				text, err := utils.ReadText(path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				analyzers[i] = analyzer.New(text, cfg.AnalyzerOptions()...)
			}

			c, err := report.Compare(analyzers[0], analyzers[1])
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			return report.EncodeComparison(cmd.OutOrStdout(), c, format)
		},
	}

	flags.bind(cmd)
	return cmd
}
