package cube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel wrapped by every Alg/move parse failure.
var ErrParse = errors.New("cube: parse error")

// Alg is a NISS-aware algorithm: a normal move sequence and an inverse
// move sequence, rendered with the inverse half parenthesized.
type Alg struct {
	Normal  []Move
	Inverse []Move
}

// Len is the total move count across both halves.
func (a Alg) Len() int {
	return len(a.Normal) + len(a.Inverse)
}

// ParseAlg parses whitespace-separated move tokens, optionally grouped
// in a single pair of parentheses denoting the inverse-scramble segment,
// e.g. "F (B) F (B F) B". Nesting or mismatched parens are parse errors.
func ParseAlg(s string) (Alg, error) {
	var a Alg
	inInverse := false
	depth := 0
	var tok strings.Builder
	flush := func() error {
		if tok.Len() == 0 {
			return nil
		}
		m, err := ParseMove(tok.String())
		tok.Reset()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		if inInverse {
			a.Inverse = append(a.Inverse, m)
		} else {
			a.Normal = append(a.Normal, m)
		}
		return nil
	}
	for _, r := range s {
		switch {
		case r == '(':
			if err := flush(); err != nil {
				return Alg{}, err
			}
			depth++
			if depth > 1 {
				return Alg{}, fmt.Errorf("%w: nested parentheses not allowed", ErrParse)
			}
			inInverse = true
		case r == ')':
			if err := flush(); err != nil {
				return Alg{}, err
			}
			depth--
			if depth < 0 {
				return Alg{}, fmt.Errorf("%w: unmatched closing parenthesis", ErrParse)
			}
			inInverse = false
		case r == ' ' || r == '\t' || r == '\n':
			if err := flush(); err != nil {
				return Alg{}, err
			}
		default:
			tok.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return Alg{}, err
	}
	if depth != 0 {
		return Alg{}, fmt.Errorf("%w: unclosed parenthesis group", ErrParse)
	}
	return a, nil
}

// String renders normal moves bare and the inverse half parenthesized,
// matching the teacher material's "normal (inverse)" convention.
func (a Alg) String() string {
	normal := RenderMoves(a.Normal)
	if len(a.Inverse) == 0 {
		return normal
	}
	inverse := "(" + RenderMoves(a.Inverse) + ")"
	if len(a.Normal) == 0 {
		return inverse
	}
	return normal + " " + inverse
}

// Invert swaps and inverts both halves: inverting an algorithm reverses
// each sequence and inverts each move's direction.
func (a Alg) Invert() Alg {
	return Alg{Normal: invertSeq(a.Inverse), Inverse: invertSeq(a.Normal)}
}

func invertSeq(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Mirror reflects the algorithm across the given axis: a move whose
// face lies on the axis is replaced by its opposite face (direction
// inverted); any other move keeps its face but has its direction
// inverted. Used to reuse a solution found for one mirror-image scramble.
func (a Alg) Mirror(axis Axis) Alg {
	return Alg{Normal: mirrorSeq(a.Normal, axis), Inverse: mirrorSeq(a.Inverse, axis)}
}

func mirrorSeq(moves []Move, axis Axis) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		if m.Face.IsOnAxis(axis) {
			out[i] = Move{Face: m.Face.Opposite(), Turns: 4 - m.Turns}
		} else {
			out[i] = Move{Face: m.Face, Turns: 4 - m.Turns}
		}
	}
	return out
}

// Apply applies a to a cube: normal moves in order, then the inverse of
// the inverse half (so an Alg with only an inverse half can still be
// applied to a concrete cube state by a caller that has already
// swapped sides).
func (a Alg) Apply(c CubieCube) CubieCube {
	c = c.ApplyMoves(a.Normal)
	c = c.ApplyMoves(invertSeq(a.Inverse))
	return c
}

// Step is one named stage result within a Solution.
type Step struct {
	Name string
	Alg  Alg
}

// Solution is an ordered list of named stage algorithms plus which side
// (normal/inverse) the next stage should continue on.
type Solution struct {
	Steps        []Step
	EndsOnNormal bool
}

// AddStep appends a stage result and updates EndsOnNormal using the
// exact asymmetric rule: an empty normal half means the stage produced
// only inverse moves (EndsOnNormal = false); an empty inverse half
// means the opposite (EndsOnNormal = true); a mixed stage flips the
// previous side. An entirely empty stage counts as an empty normal half.
func (s *Solution) AddStep(name string, alg Alg) {
	switch {
	case len(alg.Normal) == 0:
		s.EndsOnNormal = false
	case len(alg.Inverse) == 0:
		s.EndsOnNormal = true
	default:
		s.EndsOnNormal = !s.EndsOnNormal
	}
	s.Steps = append(s.Steps, Step{Name: name, Alg: alg})
}

// TotalLen is the sum of every step's move count.
func (s Solution) TotalLen() int {
	total := 0
	for _, st := range s.Steps {
		total += st.Alg.Len()
	}
	return total
}

// String renders each step on its own line with a cumulative
// "(step-len/total)" suffix, then a final line with the concatenated
// algorithm and its total length.
func (s Solution) String() string {
	var b strings.Builder
	total := s.TotalLen()
	cum := 0
	var names []string
	var full []Move
	for _, st := range s.Steps {
		cum += st.Alg.Len()
		fmt.Fprintf(&b, "%s  //%s (%d/%d)\n", st.Alg.String(), st.Name, cum, total)
		names = append(names, st.Name)
		full = append(full, st.Alg.Normal...)
		full = append(full, invertSeq(st.Alg.Inverse)...)
	}
	fmt.Fprintf(&b, "\nSolution (%d): %s", total, RenderMoves(full))
	return b.String()
}
