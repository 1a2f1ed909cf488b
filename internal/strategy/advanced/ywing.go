package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// detectYWing implements the Y-Wing / XY-Wing topology: a pivot cell with
// candidates {A,B}; a peer wing1 with {A,C}; a peer wing2 with {B,C};
// wing1 != wing2. It eliminates C from every cell that is simultaneously
// a peer of both wings. spec.md treats Y-Wing and XY-Wing as identical
// topology, so both strategy kinds dispatch here (spec.md §4.5, §9).
func detectYWing(g *grid.Grid) (bool, error) {
	for pr := 0; pr < 9; pr++ {
		for pc := 0; pc < 9; pc++ {
			pivot := grid.Coord{Row: pr, Col: pc}
			pivotCands := g.Candidates(pr, pc)
			if pivotCands.Count() != 2 {
				continue
			}
			digits := pivotCands.Digits()
			a, b := digits[0], digits[1]

			for w1r := 0; w1r < 9; w1r++ {
				for w1c := 0; w1c < 9; w1c++ {
					wing1 := grid.Coord{Row: w1r, Col: w1c}
					if wing1 == pivot || !grid.ArePeers(pivot, wing1) {
						continue
					}
					c1 := g.Candidates(w1r, w1c)
					if c1.Count() != 2 {
						continue
					}
					shared := c1.Intersect(pivotCands)
					if shared.Count() != 1 {
						continue
					}
					other := c1.Subtract(pivotCands)
					if other.Count() != 1 {
						continue
					}
					sharedDigit, _ := shared.Only()
					z, _ := other.Only()
					var pivotOther int
					if sharedDigit == a {
						pivotOther = b
					} else {
						pivotOther = a
					}
					want := grid.NewCandidateSet(pivotOther, z)

					for w2r := 0; w2r < 9; w2r++ {
						for w2c := 0; w2c < 9; w2c++ {
							wing2 := grid.Coord{Row: w2r, Col: w2c}
							if wing2 == pivot || wing2 == wing1 || !grid.ArePeers(pivot, wing2) {
								continue
							}
							c2 := g.Candidates(w2r, w2c)
							if !c2.Equals(want) {
								continue
							}
							changed := false
							for r := 0; r < 9; r++ {
								for c := 0; c < 9; c++ {
									target := grid.Coord{Row: r, Col: c}
									if target == pivot || target == wing1 || target == wing2 {
										continue
									}
									if !grid.ArePeers(wing1, target) || !grid.ArePeers(wing2, target) {
										continue
									}
									ok, err := g.Eliminate(r, c, z)
									if err != nil {
										return true, err
									}
									if ok {
										changed = true
									}
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
	}
	return false, nil
}

// YWing is the Y-Wing strategy.
type YWing struct{}

func (YWing) Kind() strategy.Kind             { return strategy.YWing }
func (YWing) Apply(g *grid.Grid) (bool, error) { return detectYWing(g) }

// XYWing is the XY-Wing strategy: identical topology to YWing here.
type XYWing struct{}

func (XYWing) Kind() strategy.Kind             { return strategy.XYWing }
func (XYWing) Apply(g *grid.Grid) (bool, error) { return detectYWing(g) }
