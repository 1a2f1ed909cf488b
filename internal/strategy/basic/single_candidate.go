// Package basic holds the ten local-elimination strategies of §4.4: each
// operates on a single unit or box at a time. Grounded on the teacher's
// human/techniques_simple.go, human/techniques_pairs.go, and
// human/techniques_triples.go scanning idioms, generalized against the
// shared grid.Grid / strategy.Strategy contract instead of Board/Move.
package basic

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// Single is the Single Candidate strategy: any unsolved cell whose
// candidate set has cardinality 1 can be placed immediately.
type Single struct{}

func (Single) Kind() strategy.Kind { return strategy.SingleCandidate }

func (Single) Apply(g *grid.Grid) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, solved := g.Get(r, c); solved {
				continue
			}
			if d, ok := g.Candidates(r, c).Only(); ok {
				g.Set(r, c, d)
				return true, nil
			}
		}
	}
	return false, nil
}
