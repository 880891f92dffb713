package main

import (
	"github.com/spf13/cobra"

	"github.com/bastiangx/wordgram/internal/cli"
)

func newReplCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Analyze lines typed on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return cli.NewInputHandler(cfg, cmd.InOrStdin(), cmd.OutOrStdout()).Start()
		},
	}
}
