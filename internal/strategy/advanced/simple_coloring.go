package advanced

import (
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/strategy"
)

// SimpleColoring builds, per digit, the conjugate-pair graph (units with
// exactly two candidate positions for the digit are edges) and
// two-colors each connected component. A color class with two cells
// sharing a unit is invalid and loses the digit entirely; a cell outside
// the component that is peer to both colors also loses the digit.
// Grounded on the teacher's human/techniques_medusa.go two-coloring
// construction, restricted to single-digit (non-3D) coloring.
type SimpleColoring struct{}

func (SimpleColoring) Kind() strategy.Kind { return strategy.SimpleColoring }

func (SimpleColoring) Apply(g *grid.Grid) (bool, error) {
	for d := 1; d <= 9; d++ {
		if changed, err := simpleColorDigit(g, d); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

func simpleColorDigit(g *grid.Grid, d int) (bool, error) {
	adj := map[grid.Coord][]grid.Coord{}
	addEdge := func(a, b grid.Coord) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for _, u := range grid.AllUnits() {
		positions := g.UnitCandidatePositions(u, d)
		if len(positions) == 2 {
			addEdge(positions[0], positions[1])
		}
	}
	if len(adj) == 0 {
		return false, nil
	}

	visited := map[grid.Coord]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			root := grid.Coord{Row: r, Col: c}
			if visited[root] || adj[root] == nil {
				continue
			}
			color := map[grid.Coord]int{root: 0}
			queue := []grid.Coord{root}
			visited[root] = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, next := range adj[cur] {
					if visited[next] {
						continue
					}
					visited[next] = true
					color[next] = 1 - color[cur]
					queue = append(queue, next)
				}
			}

			var class [2][]grid.Coord
			for co, cl := range color {
				class[cl] = append(class[cl], co)
			}

			for cl := 0; cl < 2; cl++ {
				invalid := false
				for i := 0; i < len(class[cl]) && !invalid; i++ {
					for j := i + 1; j < len(class[cl]); j++ {
						if grid.ArePeers(class[cl][i], class[cl][j]) {
							invalid = true
							break
						}
					}
				}
				if invalid {
					changed := false
					for _, co := range class[cl] {
						ok, err := g.Eliminate(co.Row, co.Col, d)
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

			changed := false
			for r2 := 0; r2 < 9; r2++ {
				for c2 := 0; c2 < 9; c2++ {
					co := grid.Coord{Row: r2, Col: c2}
					if _, inComponent := color[co]; inComponent {
						continue
					}
					if !g.Candidates(r2, c2).Has(d) {
						continue
					}
					seesColor0, seesColor1 := false, false
					for _, co0 := range class[0] {
						if grid.ArePeers(co, co0) {
							seesColor0 = true
							break
						}
					}
					for _, co1 := range class[1] {
						if grid.ArePeers(co, co1) {
							seesColor1 = true
							break
						}
					}
					if seesColor0 && seesColor1 {
						ok, err := g.Eliminate(r2, c2, d)
						if err != nil {
							return true, err
						}
						if ok {
							changed = true
						}
					}
				}
			}
			if changed {
				return true, nil
			}
		}
	}
	return false, nil
}
