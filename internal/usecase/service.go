package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
	"github.com/prateekkumarweb/sudoku-solver/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(s ports.Solver, v ports.Validator) *Service {
	return &Service{Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve delegates to the solver. When the puzzle comes back unsatisfiable,
// the validator pinpoints conflicting clues so the caller can tell a bad
// puzzle from one the rules simply rule out.
func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	out, st, err := u.Solver.Solve(ctx, g)
	if err != nil && errors.Is(err, ports.ErrUnsatisfiable) && u.Validator != nil {
		if ok, conflicts, verr := u.Validator.Validate(ctx, g); verr == nil && !ok {
			return nil, st, fmt.Errorf("%w: conflicting clues at %v", err, conflicts)
		}
	}
	return out, st, err
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}
