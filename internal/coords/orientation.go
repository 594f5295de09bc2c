package coords

import "github.com/ehrlich-b/fmc-solver/internal/cube"

// EOAxis encodes the 11 independent edge-orientation bits on one axis
// as a base-2 integer (the twelfth is determined by the other eleven,
// since edge-orientation parity is always even).
type EOAxis struct{ Axis cube.Axis }

func (EOAxis) Size() int { return 2048 }

func (e EOAxis) Encode(c cube.CubieCube) int {
	val := 0
	for i := 0; i < 11; i++ {
		if !orientedOn(c.Edges[i], e.Axis) {
			val |= 1 << uint(i)
		}
	}
	return val
}

func orientedOn(edge cube.Edge, axis cube.Axis) bool {
	switch axis {
	case cube.AxisUD:
		return edge.OrientedUD
	case cube.AxisFB:
		return edge.OrientedFB
	case cube.AxisLR:
		return edge.OrientedLR
	}
	return true
}

// COAxis encodes the 7 independent corner-orientation trits on one axis
// as a base-3 integer (the eighth corner's orientation is determined by
// the other seven, since the orientation sum is always 0 mod 3).
//
// The cube's stored corner orientation trits are relative to a single
// fixed UD reference. CO on another axis is obtained the same way the
// source material reuses a single-axis algorithm across axes — by
// conjugating with a cube.Transformation before reading it off: a
// quarter turn around LR swaps the UD and FB reference roles, and a
// quarter turn around FB swaps UD and LR (see transformDefs' flagPerm
// in internal/cube/transform.go), so "CO of a transformed state == CO
// on that axis of the original state".
type COAxis struct{ Axis cube.Axis }

func (COAxis) Size() int { return 2187 }

func (a COAxis) Encode(c cube.CubieCube) int {
	switch a.Axis {
	case cube.AxisFB:
		c = cube.Transformation{Axis: cube.AxisLR, Turns: 1}.Apply(c)
	case cube.AxisLR:
		c = cube.Transformation{Axis: cube.AxisFB, Turns: 1}.Apply(c)
	}
	val := 0
	pow := 1
	for i := 0; i < 7; i++ {
		val += int(c.Corners[i].Orientation) * pow
		pow *= 3
	}
	return val
}
