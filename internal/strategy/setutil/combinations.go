// Package setutil holds the small combination-enumeration helpers shared
// by strategies that pattern-match over subsets of cells, digits, or
// lines (naked/hidden subsets, fish patterns). Iteration is always in
// ascending index order over the input slice, so callers that pass
// already-sorted input get the deterministic, reproducible tuple order
// spec.md §5 requires.
package setutil

import "sudoku-classifier/internal/grid"

// IntCombinations calls fn on every size-length ascending combination of
// items, stopping at the first call that reports a change or an error.
func IntCombinations(items []int, size int, fn func([]int) (bool, error)) (bool, error) {
	combo := make([]int, size)
	var rec func(start, depth int) (bool, error)
	rec = func(start, depth int) (bool, error) {
		if depth == size {
			return fn(combo)
		}
		for i := start; i < len(items); i++ {
			combo[depth] = items[i]
			if changed, err := rec(i+1, depth+1); changed || err != nil {
				return changed, err
			}
		}
		return false, nil
	}
	return rec(0, 0)
}

// CoordCombinations calls fn on every size-length ascending combination of
// items, stopping at the first call that reports a change or an error.
func CoordCombinations(items []grid.Coord, size int, fn func([]grid.Coord) (bool, error)) (bool, error) {
	combo := make([]grid.Coord, size)
	var rec func(start, depth int) (bool, error)
	rec = func(start, depth int) (bool, error) {
		if depth == size {
			return fn(combo)
		}
		for i := start; i < len(items); i++ {
			combo[depth] = items[i]
			if changed, err := rec(i+1, depth+1); changed || err != nil {
				return changed, err
			}
		}
		return false, nil
	}
	return rec(0, 0)
}
