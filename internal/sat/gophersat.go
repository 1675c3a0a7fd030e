package sat

import (
	"context"

	"github.com/crillab/gophersat/solver"
)

// Gophersat adapts crillab/gophersat to Engine. gophersat builds its problem
// from complete clause slices, so registration buffers DIMACS-coded clauses
// and the underlying solver is constructed at Solve time.
type Gophersat struct {
	nVars   int
	clauses [][]int
}

// NewGophersat returns a fresh gophersat-backed engine.
func NewGophersat() *Gophersat {
	return &Gophersat{}
}

func (s *Gophersat) NewVar() Var {
	s.nVars++
	return Var(s.nVars)
}

func (s *Gophersat) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		panicEmptyClause()
	}
	cl := make([]int, len(lits))
	for i, l := range lits {
		cl[i] = int(l)
	}
	s.clauses = append(s.clauses, cl)
}

func (s *Gophersat) Solve(ctx context.Context, assumptions ...Lit) Result {
	if ctx.Err() != nil {
		return Result{Status: StatusUnknown}
	}
	cnf := s.clauses
	if len(assumptions) > 0 {
		// One-shot solving: assumptions become unit clauses of the problem.
		cnf = make([][]int, len(s.clauses), len(s.clauses)+len(assumptions))
		copy(cnf, s.clauses)
		for _, l := range assumptions {
			cnf = append(cnf, []int{int(l)})
		}
	}
	sv := solver.New(solver.ParseSlice(cnf))
	switch sv.Solve() {
	case solver.Sat:
		m := sv.Model()
		model := make([]bool, s.nVars)
		copy(model, m)
		return Result{Status: StatusSat, Model: model}
	case solver.Unsat:
		return Result{Status: StatusUnsat}
	default:
		return Result{Status: StatusUnknown}
	}
}
