package cube

import (
	"fmt"
	"strings"
)

// Turns counts 90-degree clockwise quarter turns: 1 = CW, 2 = half turn,
// 3 = CCW (three CW quarters, the group-theoretic equivalent of a single
// CCW quarter).
type Move struct {
	Face  Face
	Turns int
}

// ID returns the move's position in the fixed 0..17 enumeration used by
// move sets and transition tables: face order U,D,F,B,L,R, each with
// turns 1,2,3.
func (m Move) ID() int {
	return int(m.Face)*3 + (m.Turns - 1)
}

// MoveFromID is the inverse of Move.ID.
func MoveFromID(id int) Move {
	return Move{Face: Face(id / 3), Turns: (id % 3) + 1}
}

// NumMoves is the size of the fixed move enumeration.
const NumMoves = 18

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: 4 - m.Turns}
}

// SameFace reports whether both moves turn the same face.
func (m Move) SameFace(o Move) bool {
	return m.Face == o.Face
}

func (m Move) String() string {
	switch m.Turns {
	case 1:
		return m.Face.String()
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	}
	return fmt.Sprintf("<bad move %d,%d>", m.Face, m.Turns)
}

// ParseMove parses a single WCA move token such as "R", "U2", "F'".
func ParseMove(tok string) (Move, error) {
	if len(tok) == 0 {
		return Move{}, fmt.Errorf("cube: empty move token")
	}
	face, ok := faceFromByte(tok[0])
	if !ok {
		return Move{}, fmt.Errorf("cube: unknown face %q", tok)
	}
	rest := tok[1:]
	switch rest {
	case "":
		return Move{Face: face, Turns: 1}, nil
	case "2":
		return Move{Face: face, Turns: 2}, nil
	case "'":
		return Move{Face: face, Turns: 3}, nil
	}
	return Move{}, fmt.Errorf("cube: malformed move token %q", tok)
}

// ParseMoves parses a whitespace-separated sequence of move tokens, no
// parenthesized groups (see ParseAlg for that).
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// RenderMoves renders a move slice as whitespace-separated tokens.
func RenderMoves(moves []Move) string {
	toks := make([]string, len(moves))
	for i, m := range moves {
		toks[i] = m.String()
	}
	return strings.Join(toks, " ")
}
