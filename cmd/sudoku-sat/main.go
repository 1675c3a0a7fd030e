package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
	"github.com/prateekkumarweb/sudoku-solver/internal/ports"
	"github.com/prateekkumarweb/sudoku-solver/internal/sat"
	"github.com/prateekkumarweb/sudoku-solver/internal/solver"
	"github.com/prateekkumarweb/sudoku-solver/internal/usecase"
	"github.com/prateekkumarweb/sudoku-solver/internal/validator"
)

// Exit codes, one per failure kind.
const (
	exitNoGrid       = 1
	exitUnsat        = 2
	exitInconclusive = 3
	exitInconsistent = 4
)

func newRootCommand() *cobra.Command {
	var engineName string
	var levelStr string

	cmd := &cobra.Command{
		Use:   "sudoku-sat",
		Short: "Solve a Sudoku puzzle by SAT encoding",
		Long: "Reads a 9-line puzzle from stdin ('1'-'9' are clues, anything else is\n" +
			"an empty cell), encodes it in CNF, and prints the completed grid.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(levelStr)

			newEngine, err := engineFactory(engineName)
			if err != nil {
				return err
			}

			grid, err := domain.Read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input:\n%s", grid)

			uc := usecase.NewService(solver.NewSATSolver(newEngine), validator.New())
			out, st, err := uc.Solve(context.Background(), grid)
			logger.Info("solve",
				"engine", engineName,
				"vars", st.Vars,
				"clauses", st.Clauses,
				"dur", st.Duration,
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output:\n%s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&engineName, "engine", "gini", "SAT engine to use: gini|gophersat")
	cmd.Flags().StringVar(&levelStr, "log-level", "warn", "debug|info|warn|error")
	return cmd
}

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func engineFactory(name string) (func() sat.Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gini":
		return func() sat.Engine { return sat.NewGini(730) }, nil
	case "gophersat":
		return func() sat.Engine { return sat.NewGophersat() }, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoGrid):
		return exitNoGrid
	case errors.Is(err, ports.ErrUnsatisfiable):
		return exitUnsat
	case errors.Is(err, ports.ErrInconsistent):
		return exitInconsistent
	case errors.Is(err, ports.ErrInconclusive):
		return exitInconclusive
	default:
		return 1
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sudoku-sat: %v\n", err)
		os.Exit(exitCode(err))
	}
}
