package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
	"sudoku-classifier/internal/strategy/basic"
)

// restrictedStrategies returns every strategy except ForcingChain and
// Nishio, in canonical order. ForcingChain and Nishio each invoke a
// solver built from this list on a cloned grid, which caps their
// recursion depth at 1 by construction (spec.md §5, §9): neither
// speculative strategy can ever call itself.
func restrictedStrategies() []strategy.Strategy {
	return []strategy.Strategy{
		basic.Single{},
		basic.HiddenSingle{},
		basic.NakedPair{},
		basic.NakedTriple{},
		basic.NakedQuad{},
		basic.HiddenPair{},
		basic.HiddenTriple{},
		basic.HiddenQuad{},
		basic.PointingPair{},
		basic.BoxLineReduction{},
		XWing{},
		YWing{},
		Swordfish{},
		Jellyfish{},
		UniqueRectangle{},
		XYZWing{},
		XYChain{},
		XYWing{},
		SimpleColoring{},
		Bug{},
	}
}

// reduceRestricted runs restrictedStrategies() to fixpoint on g, exactly
// as the fixed-order solver would: on any success, restart from the top
// of the list. Returns nil if g ends up solved, grid.ErrUnsolvable if
// propagation stalls unsolved, or the *grid.Contradiction a strategy
// raised.
func reduceRestricted(g *grid.Grid) error {
	if !g.IsValid() {
		return grid.ErrInvalidBoard
	}
	strategies := restrictedStrategies()
	for {
		progressed := false
		for _, s := range strategies {
			changed, err := s.Apply(g)
			if err != nil {
				return err
			}
			if changed {
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	if g.IsSolved() {
		return nil
	}
	return grid.ErrUnsolvable
}
