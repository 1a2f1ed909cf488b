// Package puzzle parses and formats the 81-character puzzle string form
// used by the command line and HTTP surfaces, on top of internal/grid.
package puzzle

import (
	"fmt"
	"strings"

	"sudoku-classifier/internal/grid"
	"sudoku-classifier/pkg/constants"
)

// InvalidLength is returned when the input, after whitespace is stripped,
// is not exactly 81 characters.
type InvalidLength struct {
	N int
}

func (e *InvalidLength) Error() string {
	return fmt.Sprintf("invalid puzzle length: got %d characters, want 81", e.N)
}

// InvalidChar is returned for the first character outside 1-9, '.', '0'.
type InvalidChar struct {
	Char  rune
	Index int
}

func (e *InvalidChar) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Char, e.Index)
}

// Parse strips whitespace from s and builds a Grid from the remaining 81
// characters. '1'-'9' are givens; '.' and '0' are empty cells. Any other
// character fails with *InvalidChar; wrong length fails with
// *InvalidLength.
func Parse(s string) (*grid.Grid, error) {
	stripped := strings.Join(strings.Fields(s), "")
	if len(stripped) != constants.TotalCells {
		return nil, &InvalidLength{N: len(stripped)}
	}

	var digits [81]int
	for i, ch := range stripped {
		switch {
		case ch >= '1' && ch <= '9':
			digits[i] = int(ch - '0')
		case ch == '.' || ch == '0':
			digits[i] = 0
		default:
			return nil, &InvalidChar{Char: ch, Index: i}
		}
	}
	return grid.NewGridFromDigits(digits), nil
}

// Format renders g as the canonical 81-character form, using '.' for
// every unsolved cell and no line breaks.
func Format(g *grid.Grid) string {
	var b strings.Builder
	b.Grow(constants.TotalCells)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v, ok := g.Get(r, c); ok {
				b.WriteByte(byte('0' + v))
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
