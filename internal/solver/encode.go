package solver

import (
	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
	"github.com/prateekkumarweb/sudoku-solver/internal/sat"
)

const (
	size    = 9
	nCells  = size * size        // 81
	nVars   = nCells * size      // 729, one variable per (row, col, digit)
	nDigits = size
)

// encoding is the literal table for one solve attempt: a flat arena of 729
// positive literals, one per (row, col, digit) triple. It is built once per
// attempt and never reused across puzzles.
type encoding struct {
	lits [nVars]sat.Lit
}

// idx maps a (row, col, digit) triple to its slot in the table.
func idx(row, col, digit int) int {
	return size*size*row + size*col + digit
}

// newEncoding allocates one fresh engine variable per triple, in row-major
// order. The table is a bijection: 729 calls, no slot written twice.
func newEncoding(eng sat.Engine) *encoding {
	e := &encoding{}
	for i := range e.lits {
		e.lits[i] = eng.NewVar().Pos()
	}
	return e
}

// lit returns the literal meaning "cell (row, col) holds digit+1".
func (e *encoding) lit(row, col, digit int) sat.Lit {
	return e.lits[idx(row, col, digit)]
}

// constrain registers the puzzle-independent clause families and returns how
// many clauses were added. A single pass over every cell emits, for each
// digit k and peer index l:
//
//   - cell uniqueness: (i,j) holds at most one of k and l
//   - row uniqueness: digit k appears at most once in columns j and l of row i
//   - column uniqueness: digit k appears at most once in rows i and l of column j
//   - box uniqueness: digit k appears at most once at (i,j) and the l-th
//     position of the enclosing 3x3 box
//
// followed by the 9-literal at-least-one clause for the cell. Self pairs are
// vacuous and skipped. Together the families force exactly one digit per
// cell and no duplicate within any row, column, or box.
func (e *encoding) constrain(eng sat.Engine) int {
	n := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			cl := make([]sat.Lit, 0, nDigits)
			for k := 0; k < nDigits; k++ {
				m := e.lit(i, j, k)
				cl = append(cl, m)
				for l := 0; l < size; l++ {
					if k != l {
						eng.AddClause(m.Not(), e.lit(i, j, l).Not())
						n++
					}
					if j != l {
						eng.AddClause(m.Not(), e.lit(i, l, k).Not())
						n++
					}
					if i != l {
						eng.AddClause(m.Not(), e.lit(l, j, k).Not())
						n++
					}
					boxI := (i/3)*3 + l/3
					boxJ := (j/3)*3 + l%3
					if boxI != i || boxJ != j {
						eng.AddClause(m.Not(), e.lit(boxI, boxJ, k).Not())
						n++
					}
				}
			}
			eng.AddClause(cl...)
			n++
		}
	}
	return n
}

// assert registers one unit clause per non-zero cell of g, pinning that cell
// to its clue. This is the only place puzzle content reaches the clause set.
func (e *encoding) assert(eng sat.Engine, g *domain.Grid) int {
	n := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if v := g.Cells[i][j]; v != 0 {
				eng.AddClause(e.lit(i, j, int(v)-1))
				n++
			}
		}
	}
	return n
}
