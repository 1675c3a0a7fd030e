// Package sat defines the boundary to an external SAT engine: fresh variable
// allocation, clause registration, and a single solve call. The encoding in
// internal/solver depends only on this package, never on a concrete engine.
package sat

import "context"

// Var is a propositional variable, numbered from 1.
type Var int

// Pos returns the positive literal of v.
func (v Var) Pos() Lit { return Lit(v) }

// Neg returns the negative literal of v.
func (v Var) Neg() Lit { return -Lit(v) }

// Lit is a literal in the DIMACS convention: a positive value asserts the
// variable, a negative value asserts its negation. Negating a literal is a
// sign flip and never touches the underlying variable.
type Lit int

// Not returns the negation of l.
func (l Lit) Not() Lit { return -l }

// Var returns the variable l refers to.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPos reports whether l asserts its variable.
func (l Lit) IsPos() bool { return l > 0 }

// Status is the outcome of a solve call.
type Status int

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
	// StatusBestEffort is a partial model under a cost objective. No engine
	// wired here produces one for a pure-feasibility query; callers treat it
	// like StatusUnknown.
	StatusBestEffort
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	case StatusBestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

// Result is the outcome of Engine.Solve. Model is populated only when
// Status is StatusSat and is total over all allocated variables.
type Result struct {
	Status Status
	Model  []bool // indexed by Var-1
}

// Value reports the truth value of l under the model.
func (r Result) Value(l Lit) bool {
	v := r.Model[int(l.Var())-1]
	if l.IsPos() {
		return v
	}
	return !v
}

// Engine is the narrow capability the encoder consumes.
//
// NewVar allocates a fresh variable; allocation is monotonic. AddClause
// registers the disjunction of its literals and panics on an empty clause,
// which is always a programming error. Solve runs once under the given
// assumptions; engines are not reused across puzzles.
type Engine interface {
	NewVar() Var
	AddClause(lits ...Lit)
	Solve(ctx context.Context, assumptions ...Lit) Result
}

func panicEmptyClause() {
	panic("sat: empty clause registered")
}
