package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective board and rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(Settings{
				Width:          cfg.Width,
				Height:         cfg.Height,
				Mines:          cfg.Mines,
				Seed:           cfg.Seed,
				MinDimension:   cfg.Rules.MinDimension,
				MaxDimension:   cfg.Rules.MaxDimension,
				DensityCeiling: cfg.Rules.DensityCeiling,
				QuestionMarks:  cfg.Rules.QuestionMarks,
				CapFlags:       cfg.Rules.CapFlags,
			})
			return nil
		},
	}
	addBoardFlags(cmd)
	return cmd
}
