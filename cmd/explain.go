package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fromback/internal/domain"
)

// explainCmd represents the explain command.
var explainCmd = newExplainCmd()
var explainLenFlags []int
var explainOfFlag []string

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain EXPR...",
		Short: "Show the bounds each expression resolves to",
		Long: `Explain resolves every expression against every --len and prints the
half-open bounds it denotes, or why it cannot be resolved.

With --of, the expressions are applied to the given sample elements instead:

  fromback explain 2..^3 ^2.. --of 8,6,7,5,3,0,9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			return workflowFor(cmd).Explain(domain.ExplainArgs{
				Exprs:    args,
				Lengths:  explainLenFlags,
				Elements: explainOfFlag,
				Aliases:  cfg.Aliases,
			})
		},
	}
	cmd.Flags().IntSliceVarP(&explainLenFlags, "len", "n", nil, "sequence length to resolve against (can be repeated)")
	cmd.Flags().StringSliceVar(&explainOfFlag, "of", nil, "comma separated sample elements")

	return cmd
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
