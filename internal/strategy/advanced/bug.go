package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// Bug implements the Binary Universal Grave pattern: if every unsolved
// cell has exactly two candidates except one cell with three, and the
// "extra" digit in the triple appears exactly three times across all
// cells' candidates (once in the triple plus one pair), place that digit
// at the triple's cell.
type Bug struct{}

func (Bug) Kind() strategy.Kind { return strategy.Bug }

func (Bug) Apply(g *grid.Grid) (bool, error) {
	tripleFound := false
	var triple grid.Coord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, solved := g.Get(r, c); solved {
				continue
			}
			n := g.Candidates(r, c).Count()
			switch {
			case n == 2:
				continue
			case n == 3 && !tripleFound:
				tripleFound = true
				triple = grid.Coord{Row: r, Col: c}
			default:
				return false, nil
			}
		}
	}
	if !tripleFound {
		return false, nil
	}

	for _, d := range g.Candidates(triple.Row, triple.Col).Digits() {
		count := 0
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g.Candidates(r, c).Has(d) {
					count++
				}
			}
		}
		if count == 3 {
			g.Set(triple.Row, triple.Col, d)
			return true, nil
		}
	}
	return false, nil
}
