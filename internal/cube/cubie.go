package cube

// CornerPos names the eight corner slots, in the standard cubie-level
// numbering also used by the move tables in movetables.go.
type CornerPos int

const (
	URF CornerPos = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// EdgePos names the twelve edge slots.
type EdgePos int

const (
	UR EdgePos = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// Corner is one corner cubie: which piece identity occupies the slot,
// and its orientation (0 = correctly oriented relative to U/D, 1/2 = the
// two twisted states).
type Corner struct {
	ID          uint8
	Orientation uint8
}

// Edge is one edge cubie. OrientedUD is the canonical single-bit edge
// orientation (flips only under quarter turns of F or B); OrientedFB and
// OrientedLR are the same notion conjugated onto the other two axes,
// kept precomputed so per-move updates stay table lookups rather than
// recomputation (spec's "shuffle and XOR, not arithmetic").
type Edge struct {
	ID         uint8
	OrientedUD bool
	OrientedFB bool
	OrientedLR bool
}

// CubieCube is the full cubie-level state: eight corners, twelve edges.
type CubieCube struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// NewSolved returns a solved cube: identity permutation, zero orientation.
func NewSolved() CubieCube {
	var c CubieCube
	for i := range c.Corners {
		c.Corners[i] = Corner{ID: uint8(i), Orientation: 0}
	}
	for i := range c.Edges {
		c.Edges[i] = Edge{ID: uint8(i), OrientedUD: true, OrientedFB: true, OrientedLR: true}
	}
	return c
}

// Clone returns an independent copy (the struct is fixed-size and
// already a value type, but Clone documents the copy-on-branch contract
// used throughout the search engine).
func (c CubieCube) Clone() CubieCube {
	return c
}

// IsSolved reports whether every slot holds its home piece, correctly
// oriented.
func (c CubieCube) IsSolved() bool {
	for i, cn := range c.Corners {
		if cn.ID != uint8(i) || cn.Orientation != 0 {
			return false
		}
	}
	for i, e := range c.Edges {
		if e.ID != uint8(i) || !e.OrientedUD {
			return false
		}
	}
	return true
}

// FromAlg builds the cube reached by applying moves, in order, to a
// solved cube (an initial scramble has no inverse half).
func FromAlg(moves []Move) CubieCube {
	c := NewSolved()
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Apply returns the cube reached by applying a single move.
func (c CubieCube) Apply(m Move) CubieCube {
	t := moveTableFor(m)
	var out CubieCube
	for pos := 0; pos < 8; pos++ {
		src := t.cornerSrc[pos]
		cn := c.Corners[src]
		cn.Orientation = (cn.Orientation + t.cornerTwist[pos]) % 3
		out.Corners[pos] = cn
	}
	for pos := 0; pos < 12; pos++ {
		src := t.edgeSrc[pos]
		e := c.Edges[src]
		if t.edgeFlip[pos] {
			e.OrientedUD = !e.OrientedUD
			e.OrientedFB = !e.OrientedFB
			e.OrientedLR = !e.OrientedLR
		}
		out.Edges[pos] = e
	}
	return out
}

// ApplyMoves applies a sequence of moves in order.
func (c CubieCube) ApplyMoves(moves []Move) CubieCube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Invert returns the cube whose application to solved yields the state
// that, applied to c, yields solved: the permutation inverse with
// negated corner orientation (edge orientation is a toggle, self-inverse).
func (c CubieCube) Invert() CubieCube {
	var out CubieCube
	for pos := 0; pos < 8; pos++ {
		for src := 0; src < 8; src++ {
			if int(c.Corners[src].ID) == pos {
				inv := (3 - c.Corners[src].Orientation) % 3
				out.Corners[pos] = Corner{ID: uint8(src), Orientation: inv}
				break
			}
		}
	}
	for pos := 0; pos < 12; pos++ {
		for src := 0; src < 12; src++ {
			if int(c.Edges[src].ID) == pos {
				e := c.Edges[src]
				out.Edges[pos] = Edge{ID: uint8(src), OrientedUD: e.OrientedUD, OrientedFB: e.OrientedFB, OrientedLR: e.OrientedLR}
				break
			}
		}
	}
	return out
}
