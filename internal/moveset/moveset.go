// Package moveset builds, per DR-method stage, the legal turns and the
// precomputed "which moves may follow move X" transition tables.
package moveset

import "github.com/ehrlich-b/fmc-solver/internal/cube"

// MoveSet names the turns available in a stage, plus the transition and
// end masks governing the DFS engine's enumeration order.
type MoveSet struct {
	Moves       []cube.Move
	Transitions [cube.NumMoves]uint32 // bit i set => move i may follow
	EndMask     uint32                // bit i set => move i may end the stage
}

// NewMoveSet builds the transition table for an arbitrary set of moves:
// a move may follow another unless it shares the same face (redundant),
// and if its face is opposite the previous move's face, it must have a
// numerically greater face index (canonicalizes commuting pairs so e.g.
// "U D" is allowed but "D U" is not, eliminating the duplicate ordering).
func NewMoveSet(moves []cube.Move, endAllowed func(cube.Move) bool) MoveSet {
	allowed := make(map[int]bool, len(moves))
	for _, m := range moves {
		allowed[m.ID()] = true
	}
	ms := MoveSet{Moves: moves}
	for _, prev := range moves {
		var mask uint32
		for _, next := range moves {
			if next.Face == prev.Face {
				continue
			}
			if next.Face.Opposite() == prev.Face && next.Face <= prev.Face {
				continue
			}
			mask |= 1 << uint(next.ID())
		}
		ms.Transitions[prev.ID()] = mask
	}
	for _, m := range moves {
		if endAllowed == nil || endAllowed(m) {
			ms.EndMask |= 1 << uint(m.ID())
		}
	}
	return ms
}

// AllowedAfter reports whether next may directly follow prev. A negative
// prev ID (used for "no previous move yet", i.e. the first move of the
// stage) allows any move in the set.
func (ms MoveSet) AllowedAfter(prevID int, next cube.Move) bool {
	if prevID < 0 {
		for _, m := range ms.Moves {
			if m.ID() == next.ID() {
				return true
			}
		}
		return false
	}
	return ms.Transitions[prevID]&(1<<uint(next.ID())) != 0
}

// MayEnd reports whether m is a legal final move of the stage.
func (ms MoveSet) MayEnd(m cube.Move) bool {
	return ms.EndMask&(1<<uint(m.ID())) != 0
}

func allAny() bool { return true }

// all18 lists every outer turn, face order U,D,F,B,L,R, turns 1,2,3 —
// the fixed enumeration order the DFS relies on for stable output.
func all18() []cube.Move {
	moves := make([]cube.Move, 0, 18)
	for _, f := range cube.AllFaces {
		for turns := 1; turns <= 3; turns++ {
			moves = append(moves, cube.Move{Face: f, Turns: turns})
		}
	}
	return moves
}

// EO is the Edge Orientation stage's move set: all 18 outer turns, any
// may end the stage. The orchestrator attaches no post-step check to EO
// stages, so an EO may also end on a move that trivially belongs to DR.
func EO() MoveSet {
	return NewMoveSet(all18(), func(cube.Move) bool { return allAny() })
}

// DR's move set is also all 18 outer turns; the restriction to the
// reduced subgroup is enforced by the pruning table and post-step
// check, not by the move set itself.
func DR() MoveSet {
	return NewMoveSet(all18(), func(cube.Move) bool { return allAny() })
}

// RZP shares DR's move set; it differs only in its pruning table and
// post-step (trigger) check.
func RZP() MoveSet {
	return DR()
}

// htrMoves returns the half-turn-only-by-face-pair moves HTR is
// restricted to: full U/D turns, half turns only on F/B/L/R.
func htrMoves() []cube.Move {
	moves := []cube.Move{
		{Face: cube.Up, Turns: 1}, {Face: cube.Up, Turns: 2}, {Face: cube.Up, Turns: 3},
		{Face: cube.Down, Turns: 1}, {Face: cube.Down, Turns: 2}, {Face: cube.Down, Turns: 3},
		{Face: cube.Front, Turns: 2}, {Face: cube.Back, Turns: 2},
		{Face: cube.Left, Turns: 2}, {Face: cube.Right, Turns: 2},
	}
	return moves
}

// HTR is the Half-Turn Reduction stage's move set.
func HTR() MoveSet {
	return NewMoveSet(htrMoves(), func(cube.Move) bool { return allAny() })
}

// halfTurnsOnly lists the 6 half turns, one per face.
func halfTurnsOnly() []cube.Move {
	moves := make([]cube.Move, 0, 6)
	for _, f := range cube.AllFaces {
		moves = append(moves, cube.Move{Face: f, Turns: 2})
	}
	return moves
}

// FR is the Floppy Reduction stage's move set: half turns only, already
// restricted from HTR's set (U/D quarter turns leave the floppy
// subgroup).
func FR() MoveSet {
	return NewMoveSet(halfTurnsOnly(), func(cube.Move) bool { return allAny() })
}

// FRLeaveSlice shares FR's move set; the axis left un-reduced is chosen
// by the stage's substep configuration, not the move set.
func FRLeaveSlice() MoveSet {
	return FR()
}

// Finish is restricted to half turns only, mirroring the source
// material's finish_transitions(): every half turn may end the stage
// (the uniform "any" end mask — see DESIGN.md open question log).
func Finish() MoveSet {
	return NewMoveSet(halfTurnsOnly(), func(cube.Move) bool { return allAny() })
}
