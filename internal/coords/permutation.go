package coords

import "github.com/ehrlich-b/fmc-solver/internal/cube"

var cpFactorial = [7]int{1, 2, 6, 24, 120, 720, 5040}

// CP encodes the permutation of the 8 corners as an integer in
// [0, 40320), using the same triangular inversion-count formula as the
// source material: for each position i from 1..7, count how many
// earlier positions hold a corner whose identity is numerically larger,
// and weight that count by the falling factorial of i.
type CP struct{}

func (CP) Size() int { return 40320 }

func (CP) Encode(c cube.CubieCube) int {
	val := 0
	for i := 1; i < 8; i++ {
		higher := 0
		for j := 0; j < i; j++ {
			if c.Corners[i].ID < c.Corners[j].ID {
				higher++
			}
		}
		val += cpFactorial[i-1] * higher
	}
	return val
}

var epFactorial = [11]int{1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800}

// EP encodes the full permutation of the 12 edges as an integer in
// [0, 12!), using the same inversion-count construction as CP.
type EP struct{}

func (EP) Size() int { return 479001600 }

func (EP) Encode(c cube.CubieCube) int {
	val := 0
	for i := 1; i < 12; i++ {
		higher := 0
		for j := 0; j < i; j++ {
			if c.Edges[i].ID < c.Edges[j].ID {
				higher++
			}
		}
		val += epFactorial[i-1] * higher
	}
	return val
}

// sliceIDs names, per axis, the four edge identities that make up that
// axis's equatorial slice (the edges that never touch either face on
// the axis — e.g. the UD axis's slice is the four edges that never
// touch U or D).
var sliceIDs = map[cube.Axis][4]uint8{
	cube.AxisUD: {uint8(cube.FR), uint8(cube.FL), uint8(cube.BL), uint8(cube.BR)},
	cube.AxisFB: {uint8(cube.UR), uint8(cube.UL), uint8(cube.DR), uint8(cube.DL)},
	cube.AxisLR: {uint8(cube.UF), uint8(cube.UB), uint8(cube.DF), uint8(cube.DB)},
}

// SliceUnsorted encodes which 4 of 12 edge positions currently hold the
// axis's slice edges, as a combinadic index in [0, 495), shifted so that
// the slice edges sitting in their own home positions encode as 0.
type SliceUnsorted struct{ Axis cube.Axis }

func (SliceUnsorted) Size() int { return 495 }

func (s SliceUnsorted) Encode(c cube.CubieCube) int {
	ids := sliceIDs[s.Axis]
	var positions []int
	for pos, e := range c.Edges {
		for _, id := range ids {
			if e.ID == id {
				positions = append(positions, pos)
				break
			}
		}
	}
	home := combinadic([]int{int(ids[0]), int(ids[1]), int(ids[2]), int(ids[3])}, 4)
	return (combinadic(positions, 4) - home + 495) % 495
}

// htrSecondaryAxis names, for a DR axis already reduced (its slice
// fixed in place), which of the other two axes' edge families
// HTRSliceUnsorted tracks the arrangement of among the 8 remaining
// positions. The choice is arbitrary (either remaining family pins the
// other down too) but fixed, matching the source material's
// FBSliceUnsortedCoord convention of always reading off the FB family
// once DR has been done on UD.
var htrSecondaryAxis = map[cube.Axis]cube.Axis{
	cube.AxisUD: cube.AxisFB,
	cube.AxisFB: cube.AxisLR,
	cube.AxisLR: cube.AxisUD,
}

// HTRSliceUnsorted encodes, assuming the DR axis's own slice edges
// already occupy their 4 home positions, which 4 of the remaining 8
// edge positions hold the secondary family's identities — a
// combinadic index in [0, 70), shifted so that the solved arrangement
// encodes as 0. Adapted from the source material's
// FBSliceUnsortedCoord (original_source/cubelib/src/coords/htr.rs):
// "position of edges that belong into the FB slice, assuming the UD
// slice is already correct". Unlike SliceUnsorted{Axis: drAxis}, which
// degenerates to a constant once DR holds (the DR axis's own slice
// positions never change under the HTR move set), this coordinate
// stays informative through HTR: a quarter U/D turn can move a
// secondary-family edge in or out of the 8 remaining positions even
// though it can never disturb the DR axis's own slice.
type HTRSliceUnsorted struct{ Axis cube.Axis }

func (HTRSliceUnsorted) Size() int { return 70 }

func (s HTRSliceUnsorted) Encode(c cube.CubieCube) int {
	ownIDs := sliceIDs[s.Axis]
	secondaryIDs := sliceIDs[htrSecondaryAxis[s.Axis]]
	rank := func(c cube.CubieCube) int {
		var positions []int
		local := 0
		for _, e := range c.Edges {
			own := false
			for _, id := range ownIDs {
				if e.ID == id {
					own = true
					break
				}
			}
			if own {
				continue
			}
			for _, id := range secondaryIDs {
				if e.ID == id {
					positions = append(positions, local)
					break
				}
			}
			local++
		}
		return combinadic(positions, 4)
	}
	return (rank(c) - rank(cube.NewSolved()) + 70) % 70
}

// permRank4 ranks a length-4 sequence of distinct small identities
// among themselves as an index in [0, 24), using the same
// inversion-count construction as CP and EP.
func permRank4(ids [4]uint8) int {
	val := 0
	mul := 1
	for i := 1; i < 4; i++ {
		higher := 0
		for j := 0; j < i; j++ {
			if ids[i] < ids[j] {
				higher++
			}
		}
		val += higher * mul
		mul *= (i + 1)
	}
	return val
}
