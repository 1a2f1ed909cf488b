// Package advanced holds the twelve strategies of §4.5: fish patterns,
// wings, chains, coloring, uniqueness, and the two speculative
// techniques. Grounded on the teacher's human/techniques_fish.go,
// human/techniques_wings.go, human/techniques_xcycles.go,
// human/techniques_medusa.go, human/techniques/ur.go, bug.go, and
// human/techniques_forcing.go, generalized against grid.Grid /
// strategy.Strategy instead of Board / *core.Move.
package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
	"sudoku-classifier/internal/strategy/setutil"
)

// fish implements the X-Wing/Swordfish/Jellyfish family: n rows (resp.
// columns) each with between 1 and n candidate positions for digit,
// whose candidate columns (rows) union to exactly n, eliminate digit
// from those columns (rows) in every other row (column).
func fish(g *grid.Grid, n int) (bool, error) {
	for d := 1; d <= 9; d++ {
		if changed, err := fishDirection(g, d, n, true); changed || err != nil {
			return changed, err
		}
		if changed, err := fishDirection(g, d, n, false); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

// fishDirection tries the row-basis (rowBasis=true, eliminating within
// columns) or column-basis (rowBasis=false, eliminating within rows)
// variant for one digit.
func fishDirection(g *grid.Grid, digit, n int, rowBasis bool) (bool, error) {
	var lines []int
	linePositions := func(line int) []grid.Coord {
		if rowBasis {
			return g.RowCandidatePositions(line, digit)
		}
		return g.ColCandidatePositions(line, digit)
	}
	crossIndex := func(co grid.Coord) int {
		if rowBasis {
			return co.Col
		}
		return co.Row
	}
	for line := 0; line < 9; line++ {
		n2 := len(linePositions(line))
		if n2 >= 1 && n2 <= n {
			lines = append(lines, line)
		}
	}
	if len(lines) < n {
		return false, nil
	}
	return setutil.IntCombinations(lines, n, func(combo []int) (bool, error) {
		cross := map[int]bool{}
		for _, line := range combo {
			for _, co := range linePositions(line) {
				cross[crossIndex(co)] = true
			}
		}
		if len(cross) != n {
			return false, nil
		}
		inCombo := map[int]bool{}
		for _, line := range combo {
			inCombo[line] = true
		}
		changed := false
		for otherLine := 0; otherLine < 9; otherLine++ {
			if inCombo[otherLine] {
				continue
			}
			for cr := range cross {
				var r, c int
				if rowBasis {
					r, c = otherLine, cr
				} else {
					r, c = cr, otherLine
				}
				ok, err := g.Eliminate(r, c, digit)
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
}

// XWing is the two-row (or two-column) fish pattern.
type XWing struct{}

func (XWing) Kind() strategy.Kind             { return strategy.XWing }
func (XWing) Apply(g *grid.Grid) (bool, error) { return fish(g, 2) }

// Swordfish is the three-row (or three-column) fish pattern.
type Swordfish struct{}

func (Swordfish) Kind() strategy.Kind             { return strategy.Swordfish }
func (Swordfish) Apply(g *grid.Grid) (bool, error) { return fish(g, 3) }

// Jellyfish is the four-row (or four-column) fish pattern.
type Jellyfish struct{}

func (Jellyfish) Kind() strategy.Kind             { return strategy.Jellyfish }
func (Jellyfish) Apply(g *grid.Grid) (bool, error) { return fish(g, 4) }
