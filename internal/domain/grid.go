package domain

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrNoGrid reports that the input did not contain a usable 9x9 puzzle.
var ErrNoGrid = errors.New("no grid")

// Grid holds the puzzle values; 0 means the cell is empty.
type Grid struct {
	Cells [9][9]uint8
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// Read parses a puzzle from r: 9 lines, the first 9 characters of each read
// positionally. '1'-'9' map to that digit, anything else (including '.', '0'
// and whitespace) to empty. A missing or short line fails the whole read —
// there is no partial grid.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	g := &Grid{}
	for i := 0; i < 9; i++ {
		if !sc.Scan() {
			return nil, ErrNoGrid
		}
		line := sc.Text()
		if len(line) < 9 {
			return nil, ErrNoGrid
		}
		for j := 0; j < 9; j++ {
			if c := line[j]; c >= '1' && c <= '9' {
				g.Cells[i][j] = c - '0'
			}
		}
	}
	return g, nil
}

// String renders the grid as a fixed-width bordered box, '_' for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	const border = "+-------+-------+-------+\n"
	b.WriteString(border)
	for i := 0; i < 9; i++ {
		b.WriteByte('|')
		for j := 0; j < 9; j++ {
			if v := g.Cells[i][j]; v == 0 {
				b.WriteString(" _")
			} else {
				b.WriteByte(' ')
				b.WriteByte('0' + v)
			}
			if j == 2 || j == 5 || j == 8 {
				b.WriteString(" |")
			}
		}
		b.WriteByte('\n')
		if i == 2 || i == 5 || i == 8 {
			b.WriteString(border)
		}
	}
	return b.String()
}
