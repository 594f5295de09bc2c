package cube

// moveTable is the per-move shuffle+orientation-update table: applying a
// move is "read each destination slot's source slot, copy, adjust
// orientation" — the portable array-of-struct equivalent of the SIMD
// shuffle+XOR kernel described by the source material.
type moveTable struct {
	cornerSrc   [8]int
	cornerTwist [8]uint8
	edgeSrc     [12]int
	edgeFlip    [12]bool
}

// quarterTurnDef describes one face's single 90-degree clockwise turn:
// the 4-cycle of corners and edges it moves, whether it twists corners
// (every face except U/D), and whether it flips edge orientation (F/B
// only — the standard definition of edge orientation used throughout
// DR-method literature: "only quarter turns of F or B flip an edge").
type quarterTurnDef struct {
	corners   [4]CornerPos
	edges     [4]EdgePos
	twists    bool
	flipsEdge bool
}

// quarterDefs gives the standard cubie-level 4-cycles for each face's
// clockwise quarter turn (the well-known cubie-level move definitions
// used throughout portable cube-solving implementations).
var quarterDefs = [6]quarterTurnDef{
	Up:    {corners: [4]CornerPos{URF, UBR, ULB, UFL}, edges: [4]EdgePos{UR, UB, UL, UF}, twists: false, flipsEdge: false},
	Down:  {corners: [4]CornerPos{DFR, DLF, DBL, DRB}, edges: [4]EdgePos{DR, DF, DL, DB}, twists: false, flipsEdge: false},
	Front: {corners: [4]CornerPos{URF, UFL, DLF, DFR}, edges: [4]EdgePos{UF, FL, DF, FR}, twists: true, flipsEdge: true},
	Back:  {corners: [4]CornerPos{UBR, DRB, DBL, ULB}, edges: [4]EdgePos{UB, BL, DB, BR}, twists: true, flipsEdge: true},
	Left:  {corners: [4]CornerPos{UFL, ULB, DBL, DLF}, edges: [4]EdgePos{UL, BL, DL, FL}, twists: true, flipsEdge: false},
	Right: {corners: [4]CornerPos{URF, DFR, DRB, UBR}, edges: [4]EdgePos{UR, FR, DR, BR}, twists: true, flipsEdge: false},
}

var moveTables [18]moveTable

func init() {
	for _, f := range AllFaces {
		q := buildQuarter(f)
		moveTables[Move{Face: f, Turns: 1}.ID()] = q
		moveTables[Move{Face: f, Turns: 2}.ID()] = composeTable(q, q)
		moveTables[Move{Face: f, Turns: 3}.ID()] = composeTable(composeTable(q, q), q)
	}
}

// buildQuarter constructs the identity-based move table for a face's
// clockwise quarter turn from its 4-cycle definition. For a cycle
// (a,b,c,d) the piece at a moves to b, b to c, c to d, d to a, so the
// destination's source is the previous element in the listed order.
// Corner twist deltas alternate +1,+2 around the cycle, which is self
// consistent: their sum is 0 (mod 3), preserving the orientation-sum
// invariant.
func buildQuarter(f Face) moveTable {
	var t moveTable
	for i := 0; i < 8; i++ {
		t.cornerSrc[i] = i
	}
	for i := 0; i < 12; i++ {
		t.edgeSrc[i] = i
	}
	d := quarterDefs[f]
	twistOf := [4]uint8{1, 2, 1, 2}
	for i := 0; i < 4; i++ {
		from := d.corners[i]
		to := d.corners[(i+1)%4]
		t.cornerSrc[to] = int(from)
		if d.twists {
			t.cornerTwist[to] = twistOf[i]
		}
	}
	for i := 0; i < 4; i++ {
		from := d.edges[i]
		to := d.edges[(i+1)%4]
		t.edgeSrc[to] = int(from)
		if d.flipsEdge {
			t.edgeFlip[to] = true
		}
	}
	return t
}

// composeTable returns the table for "apply first, then second" —
// used to derive half-turn and counter-clockwise tables from the
// clockwise quarter-turn table so the group structure is correct by
// construction rather than hand re-derived.
func composeTable(first, second moveTable) moveTable {
	var out moveTable
	for pos := 0; pos < 8; pos++ {
		mid := second.cornerSrc[pos]
		out.cornerSrc[pos] = first.cornerSrc[mid]
		out.cornerTwist[pos] = (first.cornerTwist[mid] + second.cornerTwist[pos]) % 3
	}
	for pos := 0; pos < 12; pos++ {
		mid := second.edgeSrc[pos]
		out.edgeSrc[pos] = first.edgeSrc[mid]
		out.edgeFlip[pos] = first.edgeFlip[mid] != second.edgeFlip[pos]
	}
	return out
}

func moveTableFor(m Move) moveTable {
	return moveTables[m.ID()]
}
