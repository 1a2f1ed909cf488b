package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// XYZWing: pivot has three candidates {X,Y,Z}; two peer wings have {X,Z}
// and {Y,Z}; eliminate Z from cells that are peers of both wings and the
// pivot.
type XYZWing struct{}

func (XYZWing) Kind() strategy.Kind { return strategy.XYZWing }

func (XYZWing) Apply(g *grid.Grid) (bool, error) {
	for pr := 0; pr < 9; pr++ {
		for pc := 0; pc < 9; pc++ {
			pivot := grid.Coord{Row: pr, Col: pc}
			pivotCands := g.Candidates(pr, pc)
			if pivotCands.Count() != 3 {
				continue
			}
			triple := pivotCands.Digits()

			for zi, z := range triple {
				others := make([]int, 0, 2)
				for oi, d := range triple {
					if oi != zi {
						others = append(others, d)
					}
				}
				want1 := grid.NewCandidateSet(others[0], z)
				want2 := grid.NewCandidateSet(others[1], z)

				for w1r := 0; w1r < 9; w1r++ {
					for w1c := 0; w1c < 9; w1c++ {
						wing1 := grid.Coord{Row: w1r, Col: w1c}
						if wing1 == pivot || !grid.ArePeers(pivot, wing1) {
							continue
						}
						if !g.Candidates(w1r, w1c).Equals(want1) {
							continue
						}
						for w2r := 0; w2r < 9; w2r++ {
							for w2c := 0; w2c < 9; w2c++ {
								wing2 := grid.Coord{Row: w2r, Col: w2c}
								if wing2 == pivot || wing2 == wing1 || !grid.ArePeers(pivot, wing2) {
									continue
								}
								if !g.Candidates(w2r, w2c).Equals(want2) {
									continue
								}
								changed := false
								for r := 0; r < 9; r++ {
									for c := 0; c < 9; c++ {
										target := grid.Coord{Row: r, Col: c}
										if target == pivot || target == wing1 || target == wing2 {
											continue
										}
										if !grid.ArePeers(pivot, target) || !grid.ArePeers(wing1, target) || !grid.ArePeers(wing2, target) {
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
	}
	return false, nil
}
