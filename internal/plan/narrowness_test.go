package plan

import (
	"testing"

	"github.com/pvoss/raceline/internal/track"
)

func TestNarrowness_InteriorFullWindow(t *testing.T) {
	// 7x7 all-road grid; radius 2 gives a 5x5 window. The centre cell sits
	// at least radius away from every boundary, so the window is complete.
	g := mustParse(t, "       \n       \n       \n       \n       \n       \n       \n")
	f := NewNarrownessField(g, 2)
	if got := f.At(track.Pos{Row: 3, Col: 3}); got != 25 {
		t.Fatalf("interior count = %d, want 25", got)
	}
}

func TestNarrowness_BoundaryClipping(t *testing.T) {
	g := mustParse(t, "   \n   \n   \n")
	f := NewNarrownessField(g, 1)
	// Corner cell: only the 2x2 in-bounds quadrant counts.
	if got := f.At(track.Pos{Row: 0, Col: 0}); got != 4 {
		t.Fatalf("corner count = %d, want 4", got)
	}
}

func TestNarrowness_WallsShrinkTheCount(t *testing.T) {
	g := mustParse(t, "OOO\nO O\nOOO\n")
	f := NewNarrownessField(g, 1)
	if got := f.At(track.Pos{Row: 1, Col: 1}); got != 1 {
		t.Fatalf("boxed-in count = %d, want 1 (only the centre itself)", got)
	}
}

func TestNarrowness_WallCentresNotApplicable(t *testing.T) {
	g := mustParse(t, "O \n  \n")
	f := NewNarrownessField(g, 1)
	if f.At(track.Pos{Row: 0, Col: 0}) != Unreachable {
		t.Fatal("wall cell must not carry a narrowness count")
	}
}

func TestNarrowness_Penalty(t *testing.T) {
	g := mustParse(t, "O  \n   \n   \n")
	f := NewNarrownessField(g, 1)

	open := track.Pos{Row: 1, Col: 1}
	n := f.At(open)
	if n <= 0 {
		t.Fatalf("expected a positive count at %v, got %d", open, n)
	}
	if got, want := f.Penalty(open), 1.0/float64(n); got != want {
		t.Fatalf("penalty = %v, want %v", got, want)
	}
	// Wall centres pay the fixed maximum.
	if got := f.Penalty(track.Pos{Row: 0, Col: 0}); got != narrowPenaltyMax {
		t.Fatalf("wall penalty = %v, want %v", got, narrowPenaltyMax)
	}
}
