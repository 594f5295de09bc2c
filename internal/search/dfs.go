package search

import (
	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/moveset"
	"github.com/ehrlich-b/fmc-solver/internal/prune"
)

// PostStepCheck is consulted only once the pruning coordinate reaches
// zero; it may reject a candidate ending (e.g. "don't end EO on a move
// that trivially belongs to DR"). A nil check accepts everything.
type PostStepCheck func(state cube.CubieCube, alg cube.Alg) bool

// Params configures one stage's DFS.
type Params struct {
	MoveSet       moveset.MoveSet
	Table         *prune.Table
	Coord         coords.Coord
	Min, Max      int
	Niss          NissPolicy
	PostStepCheck PostStepCheck
}

// Seq is a lazy, pull-based stream of results, consumed with
// `for alg := range seq { ... }`; a false return from yield stops
// iteration early (the caller dropped the stream).
type Seq func(yield func(cube.Alg) bool)

// Search enumerates every algorithm that drives start into the stage's
// subgroup (pruning coordinate 0) with move count in [Min, Max],
// honoring the move set's transitions/end-mask and the NISS policy.
// Iterative deepening over length makes the stream non-decreasing in
// move count; within one length, moves are tried in the move set's
// fixed order, making the stream stable.
func Search(start cube.CubieCube, p Params) Seq {
	return func(yield func(cube.Alg) bool) {
		for depth := p.Min; depth <= p.Max; depth++ {
			if !runDepth(start, depth, p, yield) {
				return
			}
		}
	}
}

// runDepth runs one iterative-deepening level; returns false if the
// caller asked to stop (yield returned false).
func runDepth(start cube.CubieCube, depth int, p Params, yield func(cube.Alg) bool) bool {
	switch p.Niss {
	case Never:
		return dfs(start, depth, -1, niss{onNormal: true}, p, yield)
	case AtStart, Before:
		if !dfs(start, depth, -1, niss{onNormal: true}, p, yield) {
			return false
		}
		return dfs(start.Invert(), depth, -1, niss{onNormal: false}, p, yield)
	case During:
		return dfs(start, depth, -1, niss{onNormal: true}, p, yield)
	}
	return true
}

// dfs is the recursive core described in spec §4.E: check goal, check
// prune bound, else branch over every transition-legal move. Goal
// acceptance requires remaining == 0 so each iterative-deepening level
// yields only the solutions of its own exact length; accepting early
// would re-surface a shorter solution after runDepth has already moved
// on to a longer length, breaking the stream's non-decreasing order.
func dfs(state cube.CubieCube, remaining int, lastID int, n niss, p Params, yield func(cube.Alg) bool) bool {
	coord := p.Coord.Encode(state)
	dist := p.Table.Lookup(coord)
	if remaining == 0 {
		if dist != 0 {
			return true
		}
		alg := cube.Alg{Normal: append([]cube.Move(nil), n.normal...), Inverse: append([]cube.Move(nil), n.inverse...)}
		endOK := lastID < 0 || p.MoveSet.MayEnd(cube.MoveFromID(lastID))
		if endOK && (p.PostStepCheck == nil || p.PostStepCheck(state, alg)) {
			if !yield(alg) {
				return false
			}
		}
		return true
	}
	if int(dist) > remaining {
		return true
	}

	// lastID -2 marks a frame entered by a swap, so a second swap at the
	// same move boundary (which would only undo the first) is skipped.
	if p.Niss == During && lastID != -2 {
		swapped := n
		swapped.onNormal = !n.onNormal
		if !dfs(state.Invert(), remaining, -2, swapped, p, yield) {
			return false
		}
	}

	for _, m := range p.MoveSet.Moves {
		if !p.MoveSet.AllowedAfter(lastID, m) {
			continue
		}
		next := state.Apply(m)
		nextN := n
		if n.onNormal {
			nextN.normal = append(append([]cube.Move(nil), n.normal...), m)
		} else {
			nextN.inverse = append(append([]cube.Move(nil), n.inverse...), m)
		}
		if !dfs(next, remaining-1, m.ID(), nextN, p, yield) {
			return false
		}
	}
	return true
}
