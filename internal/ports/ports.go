package ports

import (
	"context"
	"errors"
	"time"

	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
)

// Stats captures the size of an encoding and how long solving took.
type Stats struct {
	Vars     int
	Clauses  int
	Duration time.Duration
}

// Solve failure kinds. Callers distinguish them with errors.Is so "bad
// puzzle" is never confused with "engine gave up" or an internal defect.
var (
	// ErrUnsatisfiable reports that the clue set admits no solution.
	ErrUnsatisfiable = errors.New("puzzle is unsatisfiable")
	// ErrInconclusive reports that the engine returned neither a model nor
	// an unsatisfiability proof.
	ErrInconclusive = errors.New("engine result inconclusive")
	// ErrInconsistent reports a model that contradicts a pre-filled clue,
	// which can only come from an encoding defect.
	ErrInconsistent = errors.New("solution inconsistent with clues")
)

// Solver completes a puzzle, leaving the input grid untouched.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}
