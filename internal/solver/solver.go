// Package solver completes Sudoku grids by reduction to SAT: one Boolean
// variable per (row, col, digit) triple, pairwise exclusion clauses for the
// cell/row/column/box rules, unit clauses for the clues, and an external
// engine doing the search.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
	"github.com/prateekkumarweb/sudoku-solver/internal/ports"
	"github.com/prateekkumarweb/sudoku-solver/internal/sat"
)

// SATSolver implements ports.Solver on top of a sat.Engine. Each Solve call
// gets a fresh engine from the factory; the literal table and clause set live
// only for that one attempt.
type SATSolver struct {
	newEngine func() sat.Engine
}

func NewSATSolver(newEngine func() sat.Engine) *SATSolver {
	return &SATSolver{newEngine: newEngine}
}

// Solve encodes g, runs the engine once with no assumptions, and decodes the
// model into a copy of g. Failure kinds are distinguished by ports sentinel
// errors: ErrUnsatisfiable for contradictory clues, ErrInconclusive when the
// engine gives up, ErrInconsistent for a model that violates a clue.
func (s *SATSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	eng := s.newEngine()

	enc := newEncoding(eng)
	clauses := enc.constrain(eng)
	clauses += enc.assert(eng, g)
	st := ports.Stats{Vars: nVars, Clauses: clauses}

	if err := ctx.Err(); err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}
	res := eng.Solve(ctx)
	st.Duration = time.Since(start)

	switch res.Status {
	case sat.StatusSat:
		out := *g
		if err := enc.decode(res, &out); err != nil {
			return nil, st, err
		}
		return &out, st, nil
	case sat.StatusUnsat:
		return nil, st, ports.ErrUnsatisfiable
	default:
		return nil, st, fmt.Errorf("%w: engine returned %s", ports.ErrInconclusive, res.Status)
	}
}
