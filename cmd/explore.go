package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fromback/internal/domain"
	m "github.com/mouse-blink/fromback/internal/model"
)

// exploreCmd represents the explore command.
var exploreCmd = newExploreCmd()
var exploreUnitFlag string
var exploreExprFlag string

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [path]",
		Short: "Try expressions interactively against one input",
		Long: `Explore loads one input (stdin when no path is given) and re-evaluates the
expression as you type it. Enter pins a result, Tab recalls the selected pin
and Esc quits. Requires a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			unit, err := resolveUnit(cmd, cfg, exploreUnitFlag)
			if err != nil {
				return err
			}

			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			cmd.SilenceUsage = true

			return workflowFor(cmd).Explore(domain.ExploreArgs{
				Path:    path,
				Unit:    unit,
				Expr:    exploreExprFlag,
				Aliases: cfg.Aliases,
			})
		},
	}
	cmd.Flags().StringVarP(&exploreUnitFlag, "unit", "u", string(m.UnitLines), "element unit: lines, bytes, runes or fields")
	cmd.Flags().StringVarP(&exploreExprFlag, "expr", "e", "", "expression to start with")

	return cmd
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
