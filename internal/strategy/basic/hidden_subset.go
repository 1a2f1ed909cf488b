package basic

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
	"sudoku-classifier/internal/strategy/setutil"
)

// hiddenSubset finds size digits whose candidate positions within a unit
// union to exactly size cells, then strips every other digit from those
// cells. Because cellSet is built from each combo digit's own position
// list (never from an independently-sized candidate-count scan), every
// participating digit is confined to the chosen cells by construction —
// the stricter Hidden Triple condition spec.md §9 calls for, as opposed
// to a naive variant that matches three cells of low candidate count
// without checking which digits actually sit in them.
func hiddenSubset(g *grid.Grid, size int) (bool, error) {
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for _, u := range grid.AllUnits() {
		var pool []int
		for _, d := range digits {
			n := len(g.UnitCandidatePositions(u, d))
			if n >= 1 && n <= size {
				pool = append(pool, d)
			}
		}
		if len(pool) < size {
			continue
		}
		found, err := setutil.IntCombinations(pool, size, func(combo []int) (bool, error) {
			cellSet := map[grid.Coord]bool{}
			for _, d := range combo {
				for _, co := range g.UnitCandidatePositions(u, d) {
					cellSet[co] = true
				}
			}
			if len(cellSet) != size {
				return false, nil
			}
			digitSet := grid.NewCandidateSet(combo...)
			changed := false
			for co := range cellSet {
				cur := g.Candidates(co.Row, co.Col)
				for _, d := range cur.Digits() {
					if digitSet.Has(d) {
						continue
					}
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

// HiddenPair is the Hidden Pair strategy.
type HiddenPair struct{}

func (HiddenPair) Kind() strategy.Kind             { return strategy.HiddenPair }
func (HiddenPair) Apply(g *grid.Grid) (bool, error) { return hiddenSubset(g, 2) }

// HiddenTriple is the Hidden Triple strategy.
type HiddenTriple struct{}

func (HiddenTriple) Kind() strategy.Kind             { return strategy.HiddenTriple }
func (HiddenTriple) Apply(g *grid.Grid) (bool, error) { return hiddenSubset(g, 3) }

// HiddenQuad is the Hidden Quad strategy.
type HiddenQuad struct{}

func (HiddenQuad) Kind() strategy.Kind             { return strategy.HiddenQuad }
func (HiddenQuad) Apply(g *grid.Grid) (bool, error) { return hiddenSubset(g, 4) }
