package solver

import (
	"fmt"

	"github.com/prateekkumarweb/sudoku-solver/internal/domain"
	"github.com/prateekkumarweb/sudoku-solver/internal/ports"
	"github.com/prateekkumarweb/sudoku-solver/internal/sat"
)

// decode reads a satisfying assignment back into g: every true (row, col,
// digit) variable sets its cell to digit+1. The clause set guarantees exactly
// one true digit per cell, so decoding the same model twice is a no-op the
// second time.
//
// A true variable that disagrees with a non-zero clue means the clue's unit
// clause was violated, which only an encoding defect can produce. That case
// fails with ports.ErrInconsistent instead of overwriting the clue.
func (e *encoding) decode(res sat.Result, g *domain.Grid) error {
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			for k := 0; k < nDigits; k++ {
				if !res.Value(e.lit(i, j, k)) {
					continue
				}
				v := uint8(k + 1)
				if cur := g.Cells[i][j]; cur != 0 && cur != v {
					return fmt.Errorf("%w: cell (%d,%d) clue %d decoded as %d",
						ports.ErrInconsistent, i, j, cur, v)
				}
				g.Cells[i][j] = v
			}
		}
	}
	return nil
}
