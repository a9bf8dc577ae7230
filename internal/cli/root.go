package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/symshape/internal/config"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the symshape root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   config.ToolName,
		Short: "Symbolic shape arithmetic",
		Long: `Symbolic shape arithmetic over deferred integer expressions.

Expressions mix literals and named symbolic variables; arithmetic stays
symbolic until something forces a concrete value, and every forcing
decision can be recorded to a guard ledger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(NewEvalCommand(opts))
	return cmd
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}
	return 0
}
