package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// maxChainHops bounds the breadth-first search depth for XYChain so a
// pathological grid cannot make the search unbounded; no legitimate chain
// over 81 bivalue cells needs more hops than this.
const maxChainHops = 16

// chainStep is one frontier entry of the breadth-first XY-Chain search:
// the cell reached, and the digit that must be found shared with the
// next hop to continue the chain.
type chainStep struct {
	cell      grid.Coord
	needDigit int
	visited   map[grid.Coord]bool
}

// XYChain builds an alternating chain of shared digits over the graph of
// bivalue cells, seeded at each bivalue cell and each of its two digits.
// A chain that loops back to a peer of the start cell carrying the
// start's entry digit yields an elimination of that digit from every
// cell that is a peer of both the start and the closing cell. Breadth-
// first; terminates at the first elimination (spec.md §4.5).
type XYChain struct{}

func (XYChain) Kind() strategy.Kind { return strategy.XYChain }

func (XYChain) Apply(g *grid.Grid) (bool, error) {
	for sr := 0; sr < 9; sr++ {
		for sc := 0; sc < 9; sc++ {
			start := grid.Coord{Row: sr, Col: sc}
			startCands := g.Candidates(sr, sc)
			if startCands.Count() != 2 {
				continue
			}
			digits := startCands.Digits()
			for _, entryDigit := range digits {
				exitDigit := digits[0]
				if exitDigit == entryDigit {
					exitDigit = digits[1]
				}
				if changed, err := searchXYChain(g, start, entryDigit, exitDigit); changed || err != nil {
					return changed, err
				}
			}
		}
	}
	return false, nil
}

// searchXYChain breadth-first searches for a chain starting at start that
// closes back on entryDigit via a peer of start.
func searchXYChain(g *grid.Grid, start grid.Coord, entryDigit, exitDigit int) (bool, error) {
	rootVisited := map[grid.Coord]bool{start: true}
	queue := []chainStep{{cell: start, needDigit: exitDigit, visited: rootVisited}}

	for hop := 0; hop < maxChainHops && len(queue) > 0; hop++ {
		var next []chainStep
		for _, step := range queue {
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					cand := grid.Coord{Row: r, Col: c}
					if step.visited[cand] || !grid.ArePeers(step.cell, cand) {
						continue
					}
					cs := g.Candidates(r, c)
					if cs.Count() != 2 || !cs.Has(step.needDigit) {
						continue
					}
					other := cs.Digits()[0]
					if other == step.needDigit {
						other = cs.Digits()[1]
					}

					if other == entryDigit && grid.ArePeers(start, cand) {
						changed := false
						for er := 0; er < 9; er++ {
							for ec := 0; ec < 9; ec++ {
								target := grid.Coord{Row: er, Col: ec}
								if target == start || target == cand {
									continue
								}
								if !grid.ArePeers(start, target) || !grid.ArePeers(cand, target) {
									continue
								}
								ok, err := g.Eliminate(er, ec, entryDigit)
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
						continue
					}

					visited := make(map[grid.Coord]bool, len(step.visited)+1)
					for v := range step.visited {
						visited[v] = true
					}
					visited[cand] = true
					next = append(next, chainStep{cell: cand, needDigit: other, visited: visited})
				}
			}
		}
		queue = next
	}
	return false, nil
}
