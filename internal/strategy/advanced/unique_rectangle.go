package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// UniqueRectangle implements type 1 only (spec.md §9 Open Question):
// four cells forming a rectangle across two rows and two columns where
// three cells have exactly candidates {A,B} and the fourth has {A,B,...};
// eliminate every non-{A,B} digit from the fourth cell.
type UniqueRectangle struct{}

func (UniqueRectangle) Kind() strategy.Kind { return strategy.UniqueRectangle }

func (UniqueRectangle) Apply(g *grid.Grid) (bool, error) {
	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					cells := [4]grid.Coord{{r1, c1}, {r1, c2}, {r2, c1}, {r2, c2}}
					var cands [4]grid.CandidateSet
					for i, co := range cells {
						cands[i] = g.Candidates(co.Row, co.Col)
					}
					for i := 0; i < 4; i++ {
						ab := cands[i]
						if ab.Count() != 2 {
							continue
						}
						matches := 0
						var odd int = -1
						for j := 0; j < 4; j++ {
							if cands[j].Equals(ab) {
								matches++
							} else {
								odd = j
							}
						}
						if matches != 3 || odd == -1 {
							continue
						}
						fourth := cands[odd]
						if fourth.Intersect(ab).Count() != 2 || fourth.Count() <= 2 {
							continue
						}
						extra := fourth.Subtract(ab)
						changed := false
						for _, d := range extra.Digits() {
							ok, err := g.Eliminate(cells[odd].Row, cells[odd].Col, d)
							if err != nil {
								return true, err
							}
							if ok {
								changed = true
							}
						}
						if changed {
							return true, nil
						}
					}
				}
			}
		}
	}
	return false, nil
}
