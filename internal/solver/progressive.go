package solver

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// Progressive discovers the minimal (by strategy.CanonicalOrder) set of
// strategies a puzzle requires, by starting from the two simplest
// strategies and admitting one more at a time only when it demonstrably
// advances a stalled grid.
type Progressive struct {
	byKind map[strategy.Kind]strategy.Strategy
}

// NewProgressive builds a Progressive over every known strategy kind.
func NewProgressive() *Progressive {
	byKind := make(map[strategy.Kind]strategy.Strategy, len(strategy.CanonicalOrder))
	for _, s := range AllStrategies() {
		byKind[s.Kind()] = s
	}
	return &Progressive{byKind: byKind}
}

// reduce runs reduce-to-fixpoint using exactly the strategies named in
// active, in strategy.CanonicalOrder, restarting from the top after every
// success (mirroring FixedOrder.Reduce but over a restricted subset).
func (p *Progressive) reduce(g *grid.Grid, active map[strategy.Kind]bool) error {
	for {
		progressed := false
		for _, k := range strategy.CanonicalOrder {
			if !active[k] {
				continue
			}
			changed, err := p.byKind[k].Apply(g)
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

// Solve returns the minimal witness set of strategies required to solve g,
// in the order each was first admitted, or grid.ErrUnsolvable if no
// admission sequence completes the grid.
func (p *Progressive) Solve(g *grid.Grid) ([]strategy.Kind, error) {
	if !g.IsValid() {
		return nil, grid.ErrInvalidBoard
	}

	active := []strategy.Kind{strategy.SingleCandidate, strategy.HiddenSingle}
	activeSet := map[strategy.Kind]bool{
		strategy.SingleCandidate: true,
		strategy.HiddenSingle:    true,
	}

	for {
		if err := p.reduce(g, activeSet); err != nil {
			return nil, err
		}
		if g.IsSolved() {
			return active, nil
		}

		snapshot := g.Clone()
		baseline := snapshot.TotalCandidates()
		admitted := false

		for _, k := range strategy.CanonicalOrder {
			if activeSet[k] {
				continue
			}
			trial := make(map[strategy.Kind]bool, len(activeSet)+1)
			for kk := range activeSet {
				trial[kk] = true
			}
			trial[k] = true

			// A trial that raises a contradiction does not admit its kind.
			clone := snapshot.Clone()
			if err := p.reduce(clone, trial); err != nil {
				continue
			}
			if clone.TotalCandidates() != baseline {
				active = append(active, k)
				activeSet[k] = true
				admitted = true
				break
			}
		}

		if !admitted {
			return nil, grid.ErrUnsolvable
		}
	}
}
