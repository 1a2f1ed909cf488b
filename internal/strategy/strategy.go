// Package strategy defines the uniform contract every deduction technique
// implements, and the closed catalogue of technique kinds. Individual
// techniques live in the basic and advanced subpackages; this package
// only holds the shared contract so both subpackages, and the solvers
// that drive them, can depend on it without a cycle.
package strategy

import "sudoku-classifier/internal/grid"

// Kind is the closed enumeration of named deduction techniques.
type Kind int

const (
	SingleCandidate Kind = iota
	HiddenSingle
	NakedPair
	NakedTriple
	NakedQuad
	HiddenPair
	HiddenTriple
	HiddenQuad
	PointingPair
	BoxLineReduction
	XWing
	YWing
	Swordfish
	Jellyfish
	UniqueRectangle
	XYZWing
	XYChain
	XYWing
	SimpleColoring
	Bug
	ForcingChain
	Nishio
)

var names = map[Kind]string{
	SingleCandidate:  "SingleCandidate",
	HiddenSingle:     "HiddenSingle",
	NakedPair:        "NakedPair",
	NakedTriple:      "NakedTriple",
	NakedQuad:        "NakedQuad",
	HiddenPair:       "HiddenPair",
	HiddenTriple:     "HiddenTriple",
	HiddenQuad:       "HiddenQuad",
	PointingPair:     "PointingPair",
	BoxLineReduction: "BoxLineReduction",
	XWing:            "XWing",
	YWing:            "YWing",
	Swordfish:        "Swordfish",
	Jellyfish:        "Jellyfish",
	UniqueRectangle:  "UniqueRectangle",
	XYZWing:          "XYZWing",
	XYChain:          "XYChain",
	XYWing:           "XYWing",
	SimpleColoring:   "SimpleColoring",
	Bug:              "Bug",
	ForcingChain:     "ForcingChain",
	Nishio:           "Nishio",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "Unknown"
}

// CanonicalOrder is the fixed simplest-to-hardest ordering of every
// strategy kind. It is the contract the progressive solver uses to admit
// strategies one at a time, and the order the fixed-order solver restarts
// from after every successful step. The order is data, not type identity.
var CanonicalOrder = []Kind{
	SingleCandidate, HiddenSingle, NakedPair, NakedTriple, NakedQuad,
	HiddenPair, HiddenTriple, HiddenQuad, PointingPair, BoxLineReduction,
	XWing, YWing, Swordfish, Jellyfish, UniqueRectangle, XYZWing,
	XYChain, XYWing, SimpleColoring, Bug, ForcingChain, Nishio,
}

// Strategy is the uniform contract every deduction technique implements.
// Apply must perform at most one logically atomic step: either a single
// placement, or the full set of eliminations implied by one detected
// pattern. It returns true iff the grid changed. A *grid.Contradiction
// surfaces unchanged from whatever grid.Eliminate call produced it.
type Strategy interface {
	Kind() Kind
	Apply(g *grid.Grid) (bool, error)
}
