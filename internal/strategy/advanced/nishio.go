package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// Nishio tries, for each unsolved cell with 2 to 4 candidates and each of
// its candidates in turn, placing that candidate on a clone and running
// the restricted solver. Only a restricted-solver *grid.Contradiction
// counts as proof the candidate is impossible — a plain Unsolvable result
// is not (spec.md §9's stricter reading of the Open Question: a restricted
// solver stalling unsolved does not mean the branch is truly impossible,
// only that this strategy set could not finish it). On a contradiction,
// the candidate is eliminated from the original cell and Nishio returns
// immediately.
type Nishio struct{}

func (Nishio) Kind() strategy.Kind { return strategy.Nishio }

func (Nishio) Apply(g *grid.Grid) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, solved := g.Get(r, c); solved {
				continue
			}
			cands := g.Candidates(r, c)
			n := cands.Count()
			if n < 2 || n > 4 {
				continue
			}
			for _, d := range cands.Digits() {
				clone := g.Clone()
				clone.Set(r, c, d)
				err := reduceRestricted(clone)
				if _, isContradiction := err.(*grid.Contradiction); !isContradiction {
					continue
				}
				ok, eerr := g.Eliminate(r, c, d)
				if eerr != nil {
					return true, eerr
				}
				if ok {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
