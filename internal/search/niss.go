// Package search implements the per-stage depth-first search engine and
// its NISS (Normal-Inverse-Scramble-Swap) controller.
package search

import "github.com/ehrlich-b/fmc-solver/internal/cube"

// NissPolicy controls when a stage's DFS may swap to working on the
// inverse of the scrambled state instead of the state itself.
type NissPolicy int

const (
	// Never: only the normal side is searched.
	Never NissPolicy = iota
	// AtStart: at most one swap, before any move of this stage —
	// equivalent to trying both the state and its inverse and keeping
	// whichever yields a shorter stage solution.
	AtStart
	// Before: a swap may occur only at the boundary between the
	// previous stage and this one.
	Before
	// During: swaps are allowed at any move boundary during the stage.
	During
)

func (p NissPolicy) String() string {
	return [...]string{"Never", "AtStart", "Before", "During"}[p]
}

// niss tracks the two logical move lists and the current side while a
// DFS frame is in flight. A swap inverts the cube (cube.CubieCube.Invert)
// and toggles side; it is counted as zero moves of the stage itself.
type niss struct {
	normal  []cube.Move
	inverse []cube.Move
	onNormal bool
}
