package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestReadClassicPuzzle(t *testing.T) {
	in := strings.Join([]string{
		"530070000",
		"600195000",
		"098000060",
		"800060003",
		"400803001",
		"700020006",
		"060000280",
		"000419005",
		"000080079",
	}, "\n")
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Cells[0][0] != 5 || g.Cells[0][1] != 3 || g.Cells[0][4] != 7 {
		t.Fatalf("row 0 misparsed: %v", g.Cells[0])
	}
	if g.Cells[0][2] != 0 {
		t.Fatalf("expected empty cell at (0,2), got %d", g.Cells[0][2])
	}
	if g.Cells[8][8] != 9 {
		t.Fatalf("expected 9 at (8,8), got %d", g.Cells[8][8])
	}
}

func TestReadNonDigitsAreEmpty(t *testing.T) {
	// '.', '0', and letters all map to empty; extra characters past
	// column 9 are ignored.
	line := ".0x45678 ignored"
	in := strings.Repeat(line+"\n", 9)
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := [9]uint8{0, 0, 0, 4, 5, 6, 7, 8, 0}
	for r := 0; r < 9; r++ {
		if g.Cells[r] != want {
			t.Fatalf("row %d = %v, want %v", r, g.Cells[r], want)
		}
	}
}

func TestReadRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too few lines", strings.Repeat("123456789\n", 8)},
		{"short line", strings.Repeat("123456789\n", 4) + "12345\n" + strings.Repeat("123456789\n", 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Read(strings.NewReader(tc.in))
			if !errors.Is(err, ErrNoGrid) {
				t.Fatalf("err = %v, want ErrNoGrid", err)
			}
			if g != nil {
				t.Fatalf("expected no grid, got %v", g)
			}
		})
	}
}

func TestStringRendering(t *testing.T) {
	g := &Grid{}
	g.Cells[0] = [9]uint8{5, 3, 0, 0, 7, 0, 0, 0, 0}
	out := g.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d:\n%s", len(lines), out)
	}
	border := "+-------+-------+-------+"
	for _, i := range []int{0, 4, 8, 12} {
		if lines[i] != border {
			t.Fatalf("line %d = %q, want border", i, lines[i])
		}
	}
	if lines[1] != "| 5 3 _ | _ 7 _ | _ _ _ |" {
		t.Fatalf("row 0 rendered as %q", lines[1])
	}
	if lines[2] != "| _ _ _ | _ _ _ | _ _ _ |" {
		t.Fatalf("empty row rendered as %q", lines[2])
	}
}
