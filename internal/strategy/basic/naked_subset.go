package basic

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
	"sudoku-classifier/internal/strategy/setutil"
)

// nakedSubset finds size cells within a unit whose candidate sets union
// to exactly size digits, then removes those digits from every other
// cell of the unit. For size==2 it additionally requires the shared
// candidate set to appear as the exact candidate set of at least two
// cells in the unit, so it does not fire on incidentally-equal unrelated
// singles (spec.md §4.4).
func nakedSubset(g *grid.Grid, size int) (bool, error) {
	for _, u := range grid.AllUnits() {
		cells := u.Cells()
		var candidates []grid.Coord
		for _, co := range cells {
			n := g.Candidates(co.Row, co.Col).Count()
			if n >= 1 && n <= size {
				candidates = append(candidates, co)
			}
		}
		if len(candidates) < size {
			continue
		}
		found, err := setutil.CoordCombinations(candidates, size, func(combo []grid.Coord) (bool, error) {
			union := grid.CandidateSet(0)
			for _, co := range combo {
				union = union.Union(g.Candidates(co.Row, co.Col))
			}
			if union.Count() != size {
				return false, nil
			}
			if size == 2 {
				matches := 0
				for _, co := range cells {
					if g.Candidates(co.Row, co.Col).Equals(union) {
						matches++
					}
				}
				if matches < 2 {
					return false, nil
				}
			}
			changed := false
			inCombo := func(co grid.Coord) bool {
				for _, m := range combo {
					if m == co {
						return true
					}
				}
				return false
			}
			for _, co := range cells {
				if inCombo(co) {
					continue
				}
				for _, d := range union.Digits() {
					ok, err := g.Eliminate(co.Row, co.Col, d)
					if err != nil {
						return true, err
					}
					if ok {
						changed = true
					}
				}
			}
			return changed, nil
		})
		if err != nil {
			return found, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// NakedPair is the Naked Pair strategy.
type NakedPair struct{}

func (NakedPair) Kind() strategy.Kind             { return strategy.NakedPair }
func (NakedPair) Apply(g *grid.Grid) (bool, error) { return nakedSubset(g, 2) }

// NakedTriple is the Naked Triple strategy.
type NakedTriple struct{}

func (NakedTriple) Kind() strategy.Kind             { return strategy.NakedTriple }
func (NakedTriple) Apply(g *grid.Grid) (bool, error) { return nakedSubset(g, 3) }

// NakedQuad is the Naked Quad strategy.
type NakedQuad struct{}

func (NakedQuad) Kind() strategy.Kind             { return strategy.NakedQuad }
func (NakedQuad) Apply(g *grid.Grid) (bool, error) { return nakedSubset(g, 4) }
