package advanced

import (
	"testing"

	"sudoku-classifier/internal/grid"
)

// spec.md §8 scenario 7: X-Wing isolated.
func TestXWingEliminates(t *testing.T) {
	g := grid.NewGrid()
	// Confine candidate 1 in rows 0 and 1 to columns 0 and 2.
	for _, row := range []int{0, 1} {
		for c := 0; c < 9; c++ {
			if c == 0 || c == 2 {
				continue
			}
			g.Eliminate(row, c, 1)
		}
	}
	changed, err := XWing{}.Apply(g)
	if err != nil || !changed {
		t.Fatalf("expected XWing to fire, got (%v,%v)", changed, err)
	}
	for r := 2; r < 9; r++ {
		if g.Candidates(r, 0).Has(1) || g.Candidates(r, 2).Has(1) {
			t.Fatalf("expected digit 1 eliminated from columns 0,2 in row %d", r)
		}
	}
}

func TestYWingEliminates(t *testing.T) {
	g := grid.NewGrid()
	// Pivot (0,0)={1,2}; wing1 (0,4)={1,3} shares row with pivot;
	// wing2 (4,0)={2,3} shares column with pivot. Both wings see (4,4).
	setCands := func(r, c int, digits ...int) {
		full := grid.Full
		for _, d := range full.Digits() {
			present := false
			for _, want := range digits {
				if d == want {
					present = true
				}
			}
			if !present {
				g.Eliminate(r, c, d)
			}
		}
	}
	setCands(0, 0, 1, 2)
	setCands(0, 4, 1, 3)
	setCands(4, 0, 2, 3)
	// ensure target cell has candidate 3 to eliminate
	if !g.Candidates(4, 4).Has(3) {
		t.Fatalf("setup: target cell should carry candidate 3")
	}
	changed, err := YWing{}.Apply(g)
	if err != nil || !changed {
		t.Fatalf("expected YWing to fire, got (%v,%v)", changed, err)
	}
	if g.Candidates(4, 4).Has(3) {
		t.Fatalf("expected candidate 3 eliminated from (4,4)")
	}
}

func TestBugNoFalsePositiveOnOpenGrid(t *testing.T) {
	g := grid.NewGrid()
	changed, err := Bug{}.Apply(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatalf("Bug must not fire when cells don't match the all-bivalue-plus-one-triple shape")
	}
}

func TestSimpleColoringNoFalsePositiveOnOpenGrid(t *testing.T) {
	g := grid.NewGrid()
	changed, err := SimpleColoring{}.Apply(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatalf("SimpleColoring must not fire on a grid with no conjugate pairs")
	}
}

func TestXYZWingEliminates(t *testing.T) {
	g := grid.NewGrid()
	restrictTo := func(r, c int, digits ...int) {
		want := grid.NewCandidateSet(digits...)
		for _, d := range grid.Full.Digits() {
			if !want.Has(d) {
				g.Eliminate(r, c, d)
			}
		}
	}
	// Pivot (0,0)={1,2,3} sees both wings. wing1 (0,1)={1,3} shares its
	// row; wing2 (1,0)={2,3} shares its column. All three lie in box 0, so
	// box 0's other cells, such as (1,1), are peers of all three and lose
	// the shared digit 3.
	restrictTo(0, 0, 1, 2, 3)
	restrictTo(0, 1, 1, 3)
	restrictTo(1, 0, 2, 3)
	if !g.Candidates(0, 1).Has(3) || !g.Candidates(1, 0).Has(3) {
		t.Fatalf("setup: wings must carry shared digit 3")
	}
	changed, err := XYZWing{}.Apply(g)
	if err != nil || !changed {
		t.Fatalf("expected XYZWing to fire, got (%v,%v)", changed, err)
	}
	if g.Candidates(1, 1).Has(3) {
		t.Fatalf("expected candidate 3 eliminated from (1,1)")
	}
}

func TestUniqueRectangleEliminatesExtra(t *testing.T) {
	g := grid.NewGrid()
	restrictTo := func(r, c int, digits ...int) {
		want := grid.NewCandidateSet(digits...)
		for _, d := range grid.Full.Digits() {
			if !want.Has(d) {
				g.Eliminate(r, c, d)
			}
		}
	}
	restrictTo(0, 0, 1, 2)
	restrictTo(0, 1, 1, 2)
	restrictTo(3, 0, 1, 2)
	restrictTo(3, 1, 1, 2, 5)

	changed, err := UniqueRectangle{}.Apply(g)
	if err != nil || !changed {
		t.Fatalf("expected UniqueRectangle to fire, got (%v,%v)", changed, err)
	}
	if !g.Candidates(3, 1).EqualsDigits(1, 2) {
		t.Fatalf("expected (3,1) candidates == {1,2}, got %s", g.Candidates(3, 1))
	}
}
