package sat

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini adapts the gini solver to Engine. Clauses are handed over as they are
// registered, using gini's Add/Add(0) protocol.
type Gini struct {
	g *gini.Gini
}

// NewGini returns a fresh gini-backed engine. capHint sizes the variable
// store up front; pass 0 for the default.
func NewGini(capHint int) *Gini {
	if capHint > 0 {
		return &Gini{g: gini.NewV(capHint)}
	}
	return &Gini{g: gini.New()}
}

func (s *Gini) NewVar() Var {
	m := s.g.Lit()
	return Var(m.Var())
}

func (s *Gini) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		panicEmptyClause()
	}
	for _, l := range lits {
		s.g.Add(z.Dimacs2Lit(int(l)))
	}
	s.g.Add(z.LitNull)
}

func (s *Gini) Solve(ctx context.Context, assumptions ...Lit) Result {
	if ctx.Err() != nil {
		return Result{Status: StatusUnknown}
	}
	for _, l := range assumptions {
		s.g.Assume(z.Dimacs2Lit(int(l)))
	}
	// gini reports 1 sat, -1 unsat, 0 undetermined; it has no best-effort
	// mode for plain feasibility queries.
	switch s.g.Solve() {
	case 1:
		n := int(s.g.MaxVar())
		model := make([]bool, n)
		for v := 1; v <= n; v++ {
			model[v-1] = s.g.Value(z.Var(v).Pos())
		}
		return Result{Status: StatusSat, Model: model}
	case -1:
		return Result{Status: StatusUnsat}
	default:
		return Result{Status: StatusUnknown}
	}
}
