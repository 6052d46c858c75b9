package plan

import (
	"strings"
	"testing"

	"github.com/pvoss/raceline/internal/track"
)

func mustParse(t *testing.T, text string) *track.Grid {
	t.Helper()
	g, err := track.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return g
}

func TestLinePositions_IncludesBothEndpoints(t *testing.T) {
	a := track.Pos{Row: 1, Col: 1}
	b := track.Pos{Row: 4, Col: 7}
	cells := LinePositions(a, b)
	if cells[0] != a {
		t.Fatalf("first cell %v, want %v", cells[0], a)
	}
	if cells[len(cells)-1] != b {
		t.Fatalf("last cell %v, want %v", cells[len(cells)-1], b)
	}
}

func TestLinePositions_HorizontalCoversEveryColumn(t *testing.T) {
	cells := LinePositions(track.Pos{Row: 2, Col: 0}, track.Pos{Row: 2, Col: 4})
	if len(cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(cells))
	}
	for i, c := range cells {
		if c.Row != 2 || c.Col != i {
			t.Fatalf("cell %d is %v, want (2,%d)", i, c, i)
		}
	}
}

func TestLinePositions_SingleCell(t *testing.T) {
	p := track.Pos{Row: 3, Col: 3}
	cells := LinePositions(p, p)
	if len(cells) != 1 || cells[0] != p {
		t.Fatalf("degenerate line should be just the endpoint, got %v", cells)
	}
}

func TestLinePositions_SymmetricCellSet(t *testing.T) {
	a := track.Pos{Row: 0, Col: 0}
	b := track.Pos{Row: 3, Col: 5}
	fwd := LinePositions(a, b)
	rev := LinePositions(b, a)
	if len(fwd) != len(rev) {
		t.Fatalf("length differs by direction: %d vs %d", len(fwd), len(rev))
	}
	seen := make(map[track.Pos]bool, len(fwd))
	for _, c := range fwd {
		seen[c] = true
	}
	for _, c := range rev {
		if !seen[c] {
			t.Fatalf("reverse traversal crosses %v which forward does not", c)
		}
	}
}

func TestClearLine_BlockedByInterveningWall(t *testing.T) {
	g := mustParse(t, "OOOOO\nO O O\nOOOOO\n")
	a := track.Pos{Row: 1, Col: 1}
	b := track.Pos{Row: 1, Col: 3}
	if !g.IsOpen(a) || !g.IsOpen(b) {
		t.Fatal("test grid endpoints must be open")
	}
	if ClearLine(g, a, b) {
		t.Fatal("line crossing a wall cell must not be clear")
	}
}

func TestClearLine_OpenCorridor(t *testing.T) {
	g := mustParse(t, "OOOOOO\nOS  FO\nOOOOOO\n")
	if !ClearLine(g, track.Pos{Row: 1, Col: 1}, track.Pos{Row: 1, Col: 4}) {
		t.Fatal("corridor line should be clear")
	}
}

func TestClearLine_OutOfBounds(t *testing.T) {
	g := mustParse(t, "  \n  \n")
	if ClearLine(g, track.Pos{Row: 0, Col: 0}, track.Pos{Row: 0, Col: 5}) {
		t.Fatal("line leaving the grid must not be clear")
	}
}
