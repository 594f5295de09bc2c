package cube

// Transformation is one of the nine whole-cube reorientations: rotate
// the entire cube about an axis so that a move sequence written for one
// axis (say EO on UD) can be reused on another (FB, LR) by conjugation
// — apply the transform, apply the algorithm using the fixed U/D/F/B/L/R
// labels, apply the inverse transform.
type Transformation struct {
	Axis  Axis
	Turns int
}

// transformDef is the geometric description of one axis's clockwise
// quarter rotation (viewed from the positive end of the axis), reusing
// the same 4-cycle shape as quarterTurnDef but spanning all three
// layers instead of one face's slice.
type transformDef struct {
	cornerCycles [2][4]CornerPos
	edgeCycles   [3][4]EdgePos
	// flagPerm permutes the (UD,FB,LR) orientation-flag roles: flagPerm[i]
	// says which flag slot feeds slot i after the rotation.
	flagPerm [3]int
	// twistMap relabels the corner-orientation trit: reorienting the
	// whole cube about an axis other than UD changes which of a corner's
	// three stickers counts as its "U/D-facing" one. twistMap always
	// fixes 0 (a solved cube stays solved under any whole-cube rotation);
	// non-UD axes swap the two twisted states.
	twistMap [3]uint8
}

var transformDefs = [3]transformDef{
	AxisUD: {
		cornerCycles: [2][4]CornerPos{{URF, UBR, ULB, UFL}, {DFR, DLF, DBL, DRB}},
		edgeCycles:   [3][4]EdgePos{{UR, UB, UL, UF}, {FR, BR, FL, BL}, {DR, DF, DL, DB}},
		flagPerm:     [3]int{0, 2, 1}, // UD fixed; FB/LR roles swap
		twistMap:     [3]uint8{0, 1, 2},
	},
	AxisFB: {
		cornerCycles: [2][4]CornerPos{{URF, UFL, DLF, DFR}, {UBR, DRB, DBL, ULB}},
		edgeCycles:   [3][4]EdgePos{{UF, FL, DF, FR}, {UR, UL, DL, DR}, {UB, BR, DB, BL}},
		flagPerm:     [3]int{2, 1, 0}, // FB fixed; UD/LR roles swap
		twistMap:     [3]uint8{0, 2, 1},
	},
	AxisLR: {
		cornerCycles: [2][4]CornerPos{{UFL, ULB, DBL, DLF}, {URF, DFR, DRB, UBR}},
		edgeCycles:   [3][4]EdgePos{{UL, BL, DL, FL}, {UF, UB, DB, DF}, {UR, BR, DR, FR}},
		flagPerm:     [3]int{1, 0, 2}, // LR fixed; UD/FB roles swap
		twistMap:     [3]uint8{0, 2, 1},
	},
}

// Apply returns the cube reoriented according to t.
func (t Transformation) Apply(c CubieCube) CubieCube {
	out := c
	for i := 0; i < t.Turns; i++ {
		out = applyTransformQuarter(out, t.Axis)
	}
	return out
}

func applyTransformQuarter(c CubieCube, axis Axis) CubieCube {
	d := transformDefs[axis]
	var out CubieCube
	// Conjugation: pieces move to the rotated slots and their identities
	// are relabelled by the same rotation, so a solved cube stays solved.
	cornerSrc := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	cornerDst := cornerSrc
	for _, cyc := range d.cornerCycles {
		for i := 0; i < 4; i++ {
			from := cyc[i]
			to := cyc[(i+1)%4]
			cornerSrc[to] = int(from)
			cornerDst[from] = int(to)
		}
	}
	for pos := 0; pos < 8; pos++ {
		cn := c.Corners[cornerSrc[pos]]
		cn.ID = uint8(cornerDst[cn.ID])
		cn.Orientation = d.twistMap[cn.Orientation]
		out.Corners[pos] = cn
	}

	edgeSrc := [12]int{}
	for i := range edgeSrc {
		edgeSrc[i] = i
	}
	edgeDst := edgeSrc
	for _, cyc := range d.edgeCycles {
		for i := 0; i < 4; i++ {
			from := cyc[i]
			to := cyc[(i+1)%4]
			edgeSrc[to] = int(from)
			edgeDst[from] = int(to)
		}
	}
	for pos := 0; pos < 12; pos++ {
		e := c.Edges[edgeSrc[pos]]
		e.ID = uint8(edgeDst[e.ID])
		flags := [3]bool{e.OrientedUD, e.OrientedFB, e.OrientedLR}
		e.OrientedUD = flags[d.flagPerm[0]]
		e.OrientedFB = flags[d.flagPerm[1]]
		e.OrientedLR = flags[d.flagPerm[2]]
		out.Edges[pos] = e
	}
	return out
}

// AllTransformations enumerates the nine whole-cube reorientations (the
// identity, Turns=0 on any axis, is omitted since it is a no-op).
var AllTransformations = [9]Transformation{
	{AxisUD, 1}, {AxisUD, 2}, {AxisUD, 3},
	{AxisFB, 1}, {AxisFB, 2}, {AxisFB, 3},
	{AxisLR, 1}, {AxisLR, 2}, {AxisLR, 3},
}
