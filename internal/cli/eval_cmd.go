package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/funvibe/symshape/internal/ast"
	"github.com/funvibe/symshape/internal/config"
	"github.com/funvibe/symshape/internal/guardlog"
	"github.com/funvibe/symshape/internal/parser"
	"github.com/funvibe/symshape/internal/shapeexpr"
	"github.com/funvibe/symshape/internal/symnode"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	HintsFile string
	Guard     bool
	Database  string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a shape expression",
		Long: `Evaluate a shape expression over symbolic variables.

Identifiers are symbolic variables. The result stays symbolic unless the
expression is fully concrete, the expression is a comparison (comparisons
always force), or --guard is given.

Example:
  symshape eval "2*x + 1"
  symshape eval --hints hints.yaml --guard "max(x, 4) % 3"
  symshape eval --hints hints.yaml --db guards.db "x + 1 < 10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.HintsFile, "hints", "", "YAML file binding variables to concrete values")
	cmd.Flags().BoolVar(&opts.Guard, "guard", false, "force the result to a concrete integer")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record guard events to a SQLite ledger at this path")
	cmd.Flags().Lookup("db").NoOptDefVal = config.DefaultGuardDB

	return cmd
}

func runEval(opts *EvalOptions, input string, cmd *cobra.Command) error {
	expr, err := parser.Parse(input)
	if err != nil {
		return err
	}

	env := shapeexpr.NewEnv()
	if opts.HintsFile != "" {
		hints, err := shapeexpr.LoadHints(opts.HintsFile)
		if err != nil {
			return err
		}
		env.ApplyHints(hints)
		slog.Debug("hints loaded", "file", opts.HintsFile, "count", len(hints))
	}

	if opts.Database != "" {
		store, err := guardlog.Open(opts.Database)
		if err != nil {
			return err
		}
		defer store.Close()
		env.SetRecorder(store)
		slog.Debug("guard ledger attached", "db", opts.Database)
	}

	out := cmd.OutOrStdout()

	if cmp, ok := expr.(*ast.InfixExpression); ok && isComparison(cmp.Operator) {
		v, err := evalCompare(env, cmp)
		if err != nil {
			return fmt.Errorf("force comparison: %w", err)
		}
		fmt.Fprintln(out, strconv.FormatBool(v))
		return nil
	}

	result, err := evalArith(env, expr)
	if err != nil {
		return err
	}
	defer result.Release()

	if !result.IsSymbolic() {
		fmt.Fprintln(out, result.String())
		return nil
	}

	if opts.Guard {
		v, err := result.GuardInt(symnode.Location{File: config.CLIGuardFile, Line: 1})
		if err != nil {
			return fmt.Errorf("force %s: %w", result, err)
		}
		fmt.Fprintln(out, v)
		return nil
	}

	fmt.Fprintln(out, colorize(result.String()))
	return nil
}

// colorize renders symbolic results in cyan when stdout is a terminal.
func colorize(s string) string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "\x1b[36m" + s + "\x1b[0m"
	}
	return s
}
