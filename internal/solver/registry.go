// Package solver implements the two orchestrators described by the
// specification: a fixed-order solver that always restarts from the
// simplest strategy after any progress, and a progressive solver that
// discovers the minimal set of strategies a puzzle requires.
package solver

import (
	"sudoku-classifier/internal/strategy"
	"sudoku-classifier/internal/strategy/advanced"
	"sudoku-classifier/internal/strategy/basic"
)

// AllStrategies returns one instance of every strategy kind, in
// strategy.CanonicalOrder. This is the full, unrestricted list both
// solvers in this package drive.
func AllStrategies() []strategy.Strategy {
	return []strategy.Strategy{
		basic.Single{},
		basic.HiddenSingle{},
		basic.NakedPair{},
		basic.NakedTriple{},
		basic.NakedQuad{},
		basic.HiddenPair{},
		basic.HiddenTriple{},
		basic.HiddenQuad{},
		basic.PointingPair{},
		basic.BoxLineReduction{},
		advanced.XWing{},
		advanced.YWing{},
		advanced.Swordfish{},
		advanced.Jellyfish{},
		advanced.UniqueRectangle{},
		advanced.XYZWing{},
		advanced.XYChain{},
		advanced.XYWing{},
		advanced.SimpleColoring{},
		advanced.Bug{},
		advanced.ForcingChain{},
		advanced.Nishio{},
	}
}
