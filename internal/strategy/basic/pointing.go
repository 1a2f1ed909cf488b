package basic

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// boxLineCollinearElim checks whether digit's candidate positions within
// box are confined to a single row or column and number between 2 and
// maxCount inclusive; if so it eliminates digit from the rest of that
// row/column outside the box and reports whether anything changed.
func boxLineCollinearElim(g *grid.Grid, box, digit, maxCount int) (bool, error) {
	positions := g.BoxCandidatePositions(box, digit)
	if len(positions) < 2 || len(positions) > maxCount {
		return false, nil
	}
	sameRow, row := true, positions[0].Row
	sameCol, col := true, positions[0].Col
	for _, p := range positions[1:] {
		if p.Row != row {
			sameRow = false
		}
		if p.Col != col {
			sameCol = false
		}
	}
	inBox := func(r, c int) bool {
		return (grid.Unit{Kind: grid.UnitBox, Index: box}).Contains(r, c)
	}
	changed := false
	if sameRow {
		for c := 0; c < 9; c++ {
			if inBox(row, c) {
				continue
			}
			ok, err := g.Eliminate(row, c, digit)
			if err != nil {
				return true, err
			}
			if ok {
				changed = true
			}
		}
	} else if sameCol {
		for r := 0; r < 9; r++ {
			if inBox(r, col) {
				continue
			}
			ok, err := g.Eliminate(r, col, digit)
			if err != nil {
				return true, err
			}
			if ok {
				changed = true
			}
		}
	}
	return changed, nil
}

// PointingPair: if a box's candidates for digit d are confined to a
// single row or column of that box (exactly 2 positions), eliminate d
// from the rest of that row/column outside the box.
type PointingPair struct{}

func (PointingPair) Kind() strategy.Kind { return strategy.PointingPair }

func (PointingPair) Apply(g *grid.Grid) (bool, error) {
	for box := 0; box < 9; box++ {
		for d := 1; d <= 9; d++ {
			changed, err := boxLineCollinearElim(g, box, d, 2)
			if err != nil {
				return changed, err
			}
			if changed {
				return true, nil
			}
		}
	}
	return false, nil
}

// BoxLineReduction generalizes PointingPair to 2 or 3 collinear
// candidates within the box.
type BoxLineReduction struct{}

func (BoxLineReduction) Kind() strategy.Kind { return strategy.BoxLineReduction }

func (BoxLineReduction) Apply(g *grid.Grid) (bool, error) {
	for box := 0; box < 9; box++ {
		for d := 1; d <= 9; d++ {
			changed, err := boxLineCollinearElim(g, box, d, 3)
			if err != nil {
				return changed, err
			}
			if changed {
				return true, nil
			}
		}
	}
	return false, nil
}
