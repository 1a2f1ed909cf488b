package solver

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// FixedOrder drives a fixed list of strategies, always restarting from the
// top of the list after any strategy reports progress so that cheap
// deductions run before expensive ones on the new grid state.
type FixedOrder struct {
	strategies []strategy.Strategy
}

// NewFixedOrder returns a FixedOrder holding every known strategy in
// strategy.CanonicalOrder.
func NewFixedOrder() *FixedOrder {
	return &FixedOrder{strategies: AllStrategies()}
}

// Reduce repeatedly passes over the strategy list, applying the first one
// that reports progress and restarting from the top, until a full pass
// makes no change. Unlike Solve, it does not require the grid end up
// solved and does not track which kinds fired.
func (f *FixedOrder) Reduce(g *grid.Grid) error {
	for {
		progressed := false
		for _, s := range f.strategies {
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
			return nil
		}
	}
}

// Solve rejects an invalid initial grid, then reduces it to fixpoint. If
// the grid ends up solved, it returns the kinds that fired at least once,
// in first-use order. Otherwise it returns grid.ErrUnsolvable.
// Contradictions propagate unchanged.
func (f *FixedOrder) Solve(g *grid.Grid) ([]strategy.Kind, error) {
	if !g.IsValid() {
		return nil, grid.ErrInvalidBoard
	}

	var used []strategy.Kind
	seen := make(map[strategy.Kind]bool)

	for {
		progressed := false
		for _, s := range f.strategies {
			changed, err := s.Apply(g)
			if err != nil {
				return nil, err
			}
			if changed {
				if !seen[s.Kind()] {
					seen[s.Kind()] = true
					used = append(used, s.Kind())
				}
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}

	if g.IsSolved() {
		return used, nil
	}
	return nil, grid.ErrUnsolvable
}
