package basic

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// HiddenSingle finds a digit that appears in exactly one cell's candidate
// set within a unit, and places it there.
type HiddenSingle struct{}

func (HiddenSingle) Kind() strategy.Kind { return strategy.HiddenSingle }

func (HiddenSingle) Apply(g *grid.Grid) (bool, error) {
	for _, u := range grid.AllUnits() {
		for d := 1; d <= 9; d++ {
			positions := g.UnitCandidatePositions(u, d)
			if len(positions) == 1 {
				p := positions[0]
				g.Set(p.Row, p.Col, d)
				return true, nil
			}
		}
	}
	return false, nil
}
