// Package grid implements the candidate-state data model shared by every
// deduction strategy: a 9x9 cell matrix where each unsolved cell's
// effective candidate set is computed on demand from its peers' solved
// digits plus an explicitly stored elimination mask. This three-layer
// computation (peer scan + stored eliminations) is the key invariant:
// eliminations survive across calls without requiring a strategy to
// re-derive them, while peer-implied eliminations are always fresh.
package grid

// cell holds the state of a single Sudoku cell. Eliminated is only
// meaningful while the cell is unsolved.
type cell struct {
	solved     bool
	value      int
	eliminated CandidateSet
}

// Grid is a 9x9 Sudoku board. The zero value is an empty grid, as returned
// by NewGrid; NewGridFromDigits builds one from givens.
type Grid struct {
	cells [81]cell
}

// NewGrid returns an empty 9x9 grid (no cells solved).
func NewGrid() *Grid {
	return &Grid{}
}

// NewGridFromDigits builds a grid from 81 givens in row-major order; 0
// marks an empty cell.
func NewGridFromDigits(digits [81]int) *Grid {
	g := &Grid{}
	for i, d := range digits {
		if d != 0 {
			g.cells[i] = cell{solved: true, value: d}
		}
	}
	return g
}

func idx(r, c int) int { return r*9 + c }

// Get returns the digit at (r, c) and whether the cell is solved.
func (g *Grid) Get(r, c int) (int, bool) {
	cl := g.cells[idx(r, c)]
	if !cl.solved {
		return 0, false
	}
	return cl.value, true
}

// Set places digit at (r, c). The cell becomes solved and its eliminated
// mask is cleared.
func (g *Grid) Set(r, c, digit int) {
	g.cells[idx(r, c)] = cell{solved: true, value: digit}
}

// Candidates returns the effective candidate set at (r, c): Full minus
// every peer's solved digit minus the cell's stored eliminations. A
// solved cell has an empty candidate set. The result is always computed
// fresh — it is never cached, so it can never go stale after a peer's
// Set call.
func (g *Grid) Candidates(r, c int) CandidateSet {
	cl := g.cells[idx(r, c)]
	if cl.solved {
		return 0
	}
	cs := Full
	for _, p := range PeerCoords(r, c) {
		if v, ok := g.Get(p.Row, p.Col); ok {
			cs = cs.Remove(v)
		}
	}
	return cs.Subtract(cl.eliminated)
}

// Eliminate removes digit from the candidate set at (r, c).
//
//   - (true, nil)  the mask changed and the cell retains >=1 candidate.
//   - (false, nil) digit was already absent from the effective candidate
//     set (already eliminated, or the cell is solved): no-op.
//   - (false, err) where err is *Contradiction: removing digit would have
//     emptied the cell's candidate set. The caller must treat this as
//     terminal for the current propagation.
func (g *Grid) Eliminate(r, c, digit int) (bool, error) {
	i := idx(r, c)
	if g.cells[i].solved {
		return false, nil
	}
	before := g.Candidates(r, c)
	if !before.Has(digit) {
		return false, nil
	}
	g.cells[i].eliminated = g.cells[i].eliminated.Add(digit)
	after := before.Remove(digit)
	if after.IsEmpty() {
		return false, &Contradiction{Row: r, Col: c}
	}
	return true, nil
}

// RowCandidatePositions returns, in ascending column order, the
// coordinates in row r whose candidate set contains digit.
func (g *Grid) RowCandidatePositions(r, digit int) []Coord {
	var out []Coord
	for c := 0; c < 9; c++ {
		if g.Candidates(r, c).Has(digit) {
			out = append(out, Coord{r, c})
		}
	}
	return out
}

// ColCandidatePositions returns, in ascending row order, the coordinates
// in column c whose candidate set contains digit.
func (g *Grid) ColCandidatePositions(c, digit int) []Coord {
	var out []Coord
	for r := 0; r < 9; r++ {
		if g.Candidates(r, c).Has(digit) {
			out = append(out, Coord{r, c})
		}
	}
	return out
}

// BoxCandidatePositions returns, in row-major order, the coordinates in
// box b (0-8) whose candidate set contains digit.
func (g *Grid) BoxCandidatePositions(b, digit int) []Coord {
	var out []Coord
	for _, co := range (Unit{Kind: UnitBox, Index: b}).Cells() {
		if g.Candidates(co.Row, co.Col).Has(digit) {
			out = append(out, co)
		}
	}
	return out
}

// UnitCandidatePositions is a convenience dispatcher over a Unit,
// equivalent to Row/Col/BoxCandidatePositions depending on u.Kind.
func (g *Grid) UnitCandidatePositions(u Unit, digit int) []Coord {
	switch u.Kind {
	case UnitRow:
		return g.RowCandidatePositions(u.Index, digit)
	case UnitCol:
		return g.ColCandidatePositions(u.Index, digit)
	default:
		return g.BoxCandidatePositions(u.Index, digit)
	}
}

// UnitIter returns the 9 coordinates of u, in ascending order.
func (g *Grid) UnitIter(u Unit) [9]Coord {
	return u.Cells()
}

// PeerCoords returns the 20 peer coordinates of (r, c).
func (g *Grid) PeerCoords(r, c int) []Coord {
	return PeerCoords(r, c)
}

// IsValid reports whether the grid currently has no duplicate digit
// within any row, column, or box. Unsolved cells are ignored.
func (g *Grid) IsValid() bool {
	for _, u := range AllUnits() {
		var seen CandidateSet
		for _, co := range u.Cells() {
			v, ok := g.Get(co.Row, co.Col)
			if !ok {
				continue
			}
			if seen.Has(v) {
				return false
			}
			seen = seen.Add(v)
		}
	}
	return true
}

// IsSolved reports whether every cell is filled and the grid is valid.
func (g *Grid) IsSolved() bool {
	for i := range g.cells {
		if !g.cells[i].solved {
			return false
		}
	}
	return g.IsValid()
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	ng := &Grid{}
	ng.cells = g.cells
	return ng
}

// TotalCandidates sums the candidate-set cardinality across every unsolved
// cell. The progressive solver compares it against a snapshot's count to
// detect whether a trial reduction changed the grid.
func (g *Grid) TotalCandidates() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			n += g.Candidates(r, c).Count()
		}
	}
	return n
}

// SolvedCount returns the number of solved cells.
func (g *Grid) SolvedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].solved {
			n++
		}
	}
	return n
}
