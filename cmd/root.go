// Package cmd provides the root command and CLI setup for fromback.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fromback/internal/adapter"
	"github.com/mouse-blink/fromback/internal/controller"
	"github.com/mouse-blink/fromback/internal/domain"
	m "github.com/mouse-blink/fromback/internal/model"
)

// workflow overrides the workflow built from the command's streams. Tests set it.
var workflow domain.Workflow
var configStore = adapter.NewConfigStore()

var configFlag string
var verboseFlag bool
var unitFlag string
var parallelFlag int
var strictFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fromback EXPR [paths...]",
		Short: "Slice input with from-the-back indexes",
		Long: `fromback selects part of each input using an index expression where
^N counts from the back of the sequence:

  ^1         last element
  2..^3      from the third element up to, not including, the third from last
  2..=^2     same start, ending at the second from last
  ^2..       last two elements
  ..         everything

Inputs are split into lines by default; see --unit. Without paths, stdin is read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			unit, err := resolveUnit(cmd, cfg, unitFlag)
			if err != nil {
				return err
			}

			threads := parallelFlag
			if !cmd.Flags().Changed("parallel") && cfg.Parallel > 0 {
				threads = cfg.Parallel
			}

			strict := strictFlag
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Strict
			}

			cmd.SilenceUsage = true

			return workflowFor(cmd).Select(domain.SelectArgs{
				Expr:    args[0],
				Paths:   parsePaths(args[1:]),
				Unit:    unit,
				Threads: threads,
				Strict:  strict,
				Aliases: cfg.Aliases,
			})
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default "+string(m.DefaultConfigPath)+" if present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log resolution details to stderr")
	cmd.Flags().StringVarP(&unitFlag, "unit", "u", string(m.UnitLines), "element unit: lines, bytes, runes or fields")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of inputs read in parallel")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "stop at the first input that cannot be sliced")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (m.Config, error) {
	cfg, err := configStore.Load(m.Path(configFlag))
	if err != nil {
		return m.Config{}, err
	}

	if verboseFlag {
		newLogger(cmd).Debug("config loaded", "path", configFlag, "unit", cfg.Unit,
			"parallel", cfg.Parallel, "strict", cfg.Strict, "aliases", len(cfg.Aliases))
	}

	return cfg, nil
}

// resolveUnit picks the --unit flag when set, then the config file, then the
// flag default.
func resolveUnit(cmd *cobra.Command, cfg m.Config, flag string) (m.Unit, error) {
	if !cmd.Flags().Changed("unit") && cfg.Unit != "" {
		return cfg.Unit, nil
	}

	return m.ParseUnit(flag)
}

func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(cmd.InOrStdin()),
		controller.NewUI(cmd, adapter.IsTTY(cmd.OutOrStdout())),
		newLogger(cmd),
	)
}

// newLogger returns a debug logger on stderr when --verbose is set, nil otherwise.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if !verboseFlag {
		return nil
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
