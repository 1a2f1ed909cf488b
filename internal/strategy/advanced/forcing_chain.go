package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// ForcingChain picks the unsolved cell with the fewest candidates
// (preferring a bivalue cell outright), then for each of its candidates
// in turn runs the restricted solver on a clone with that candidate
// placed. If exactly one candidate completes the puzzle, it is placed in
// the real grid. If none or more than one succeed, ForcingChain makes no
// change.
type ForcingChain struct{}

func (ForcingChain) Kind() strategy.Kind { return strategy.ForcingChain }

func (ForcingChain) Apply(g *grid.Grid) (bool, error) {
	cell, ok := fewestCandidatesCell(g)
	if !ok {
		return false, nil
	}
	digits := g.Candidates(cell.Row, cell.Col).Digits()

	successes := 0
	successDigit := 0
	for _, d := range digits {
		clone := g.Clone()
		clone.Set(cell.Row, cell.Col, d)
		if err := reduceRestricted(clone); err == nil {
			successes++
			successDigit = d
		}
	}
	if successes == 1 {
		g.Set(cell.Row, cell.Col, successDigit)
		return true, nil
	}
	return false, nil
}

// fewestCandidatesCell returns the first bivalue cell in row-major order,
// or else the row-major-first cell with the smallest candidate count.
func fewestCandidatesCell(g *grid.Grid) (grid.Coord, bool) {
	var best grid.Coord
	bestCount := 10
	found := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, solved := g.Get(r, c); solved {
				continue
			}
			n := g.Candidates(r, c).Count()
			if n == 0 {
				continue
			}
			if n == 2 {
				return grid.Coord{Row: r, Col: c}, true
			}
			if n < bestCount {
				bestCount = n
				best = grid.Coord{Row: r, Col: c}
				found = true
			}
		}
	}
	return best, found
}
