package coords

import "github.com/ehrlich-b/fmc-solver/internal/cube"

// composite is a generic mixed-radix combination of parts, the
// highest-cardinality part as the most-significant digit — mirroring
// the source material's HTR composite formula
// (val = low + mid*size(low) + high*size(low)*size(mid) + ...).
type composite struct {
	parts []Coord
}

func (m composite) Size() int {
	size := 1
	for _, p := range m.parts {
		size *= p.Size()
	}
	return size
}

func (m composite) Encode(c cube.CubieCube) int {
	val := 0
	mul := 1
	for _, p := range m.parts {
		val += p.Encode(c) * mul
		mul *= p.Size()
	}
	return val
}

// DRComposite combines EO on the stage axis with the axis's
// slice-unsorted coordinate into the coordinate the DR (and RZP)
// pruning tables are built over. The full EO*CO*slice product would be
// 2048*2187*495 ≈ 2.2e9 entries — far past the tens-of-MB table
// budget and practically non-terminating to BFS-populate — so CO is
// deliberately left out of the dense coordinate (a truncated DR
// coordinate, per the source material's sizing note) and checked
// separately: DR/RZP stages attach a PostStepCheck (see
// internal/solve/orchestrator.go) that requires COAxis{Axis:
// axis}.Encode(state) == 0 before accepting a candidate ending. EO and
// slice alone are still a valid admissible lower bound on the true
// distance to DR, since every state that reaches DR has also reached
// EO+slice; the search just explores a few more dead-end branches
// than an untruncated coordinate would prune.
func DRComposite(axis cube.Axis) Coord {
	return composite{parts: []Coord{EOAxis{Axis: axis}, SliceUnsorted{Axis: axis}}}
}

// cornerOrbit1 is the "odd" checkerboard tetrad of corner identities:
// the four corners that form one of the two orbits preserved by the
// half turns <U2,D2,F2,B2,L2,R2> (corners split by the parity of their
// three axis bits — this is the standard HTR orbit partition). A U or D
// quarter turn moves corners between the two tetrads.
var cornerOrbit1 = [4]uint8{uint8(cube.URF), uint8(cube.ULB), uint8(cube.DLF), uint8(cube.DRB)}

// cornerOrbit2 is the complementary checkerboard tetrad: the other 4
// corner positions, fixed as a set by the same half turns that fix
// cornerOrbit1.
var cornerOrbit2 = [4]uint8{uint8(cube.UFL), uint8(cube.UBR), uint8(cube.DFR), uint8(cube.DBL)}

// CPOrbitUnsorted encodes which 4 of 8 corner positions currently hold
// the cornerOrbit1 identities, as a combinadic index in [0, 70),
// shifted so that the orbit sitting in its own home positions encodes
// as 0.
type CPOrbitUnsorted struct{}

func (CPOrbitUnsorted) Size() int { return 70 }

func (CPOrbitUnsorted) Encode(c cube.CubieCube) int {
	var positions []int
	for pos, cn := range c.Corners {
		for _, id := range cornerOrbit1 {
			if cn.ID == id {
				positions = append(positions, pos)
				break
			}
		}
	}
	o := cornerOrbit1
	home := combinadic([]int{int(o[0]), int(o[1]), int(o[2]), int(o[3])}, 4)
	return (combinadic(positions, 4) - home + 70) % 70
}

// CPOrbitTwist encodes the relative arrangement of the orbit-1 corners
// among themselves as a value in [0, 6) (3! arrangements, used alongside
// CPOrbitUnsorted and a parity bit to build the pure HTR coordinate —
// see PureHTRDRUD).
type CPOrbitTwist struct{}

func (CPOrbitTwist) Size() int { return 6 }

func (CPOrbitTwist) Encode(c cube.CubieCube) int {
	var order []uint8
	for _, cn := range c.Corners {
		for _, id := range cornerOrbit1 {
			if cn.ID == id {
				order = append(order, cn.ID)
				break
			}
		}
	}
	// rank the 4 observed identities (in position order) among
	// themselves as a Lehmer-style index into the remaining 3, dropping
	// the last (determined) entry — a 3!=6 value.
	rank := 0
	mul := 1
	for i := 1; i < len(order); i++ {
		higher := 0
		for j := 0; j < i; j++ {
			if order[i] < order[j] {
				higher++
			}
		}
		rank += higher * mul
		mul *= (i + 1)
	}
	return rank % 6
}

// Parity encodes the shared corner/edge permutation parity as a single
// bit (0 or 1): flips with every quarter turn, invariant under half
// turns, so it is fixed once the cube enters the HTR-reachable subgroup.
type Parity struct{}

func (Parity) Size() int { return 2 }

func (Parity) Encode(c cube.CubieCube) int {
	parity := 0
	visited := [8]bool{}
	for i := range c.Corners {
		if visited[i] {
			continue
		}
		j := i
		length := 0
		for !visited[j] {
			visited[j] = true
			j = int(c.Corners[j].ID)
			length++
		}
		if length > 0 {
			parity += length - 1
		}
	}
	return parity % 2
}

// PureHTRDRUD is the "pure" HTR coordinate for the given DR axis:
// parity + orbit twist + orbit-unsorted + that axis's HTR slice
// coordinate, combined mixed-radix (2*6*70*70). Implemented for
// completeness; the default pipeline wires ImpureHTRDRUD instead, matching
// the source material's `HTRDRUDCoord = ImpureHTRDRUDCoord` type alias
// (see DESIGN.md open question log).
func PureHTRDRUD(axis cube.Axis) Coord {
	return composite{parts: []Coord{Parity{}, CPOrbitTwist{}, CPOrbitUnsorted{}, HTRSliceUnsorted{Axis: axis}}}
}

// ImpureHTRDRUD is the coordinate actually wired into the HTR stage's
// pruning table: the full corner permutation (CP, 40320) combined with
// the given DR axis's HTR slice coordinate (HTRSliceUnsorted, 70-valued
// — see its doc comment for why SliceUnsorted{Axis: axis} alone would
// be a constant here and silently degenerate the whole coordinate down
// to corner permutation).
func ImpureHTRDRUD(axis cube.Axis) Coord {
	return composite{parts: []Coord{CP{}, HTRSliceUnsorted{Axis: axis}}}
}

// FRLeaveSlice is the Floppy-Reduction-leave-slice coordinate: whether
// each of the two remaining non-slice corner/edge groups is reduced to
// its two-orientation floppy subgroup, approximated here as corner
// permutation restricted to the orbit pairing plus the slice coordinate
// already fixed by HTR.
func FRLeaveSlice(axis cube.Axis) Coord {
	return composite{parts: []Coord{CPOrbitUnsorted{}, SliceUnsorted{Axis: axis}}}
}

// FR is the full Floppy Reduction coordinate for the given axis: corner
// permutation plus that axis's edge slice-unsorted coordinate.
func FR(axis cube.Axis) Coord {
	return composite{parts: []Coord{CP{}, SliceUnsorted{Axis: axis}}}
}

// CornerOrbitPerm ranks the arrangement of one corner checkerboard
// orbit's own 4 identities among its own 4 positions, as a value in
// [0, 24). Orbit 1 reads cornerOrbit1's positions, any other value
// reads cornerOrbit2's. Valid once FR has fixed both orbits as
// position-sets (every half turn maps each orbit to itself).
type CornerOrbitPerm struct{ Orbit int }

func (CornerOrbitPerm) Size() int { return 24 }

func (o CornerOrbitPerm) Encode(c cube.CubieCube) int {
	ids := cornerOrbit1
	if o.Orbit != 1 {
		ids = cornerOrbit2
	}
	var order [4]uint8
	for i, pos := range ids {
		order[i] = c.Corners[pos].ID
	}
	return permRank4(order)
}

// EdgeFamilyPerm ranks the arrangement of one axis's 4 slice-edge
// identities among their own 4 home positions, as a value in [0, 24).
// Valid once FR has fixed all three edge families as position-sets
// (every half turn maps each family to itself — see HTRSliceUnsorted).
type EdgeFamilyPerm struct{ Axis cube.Axis }

func (EdgeFamilyPerm) Size() int { return 24 }

func (e EdgeFamilyPerm) Encode(c cube.CubieCube) int {
	ids := sliceIDs[e.Axis]
	var order [4]uint8
	for i, pos := range ids {
		order[i] = c.Edges[pos].ID
	}
	return permRank4(order)
}

// Finish is the residual coordinate inside the half-turn-only subgroup
// reached after FR. FR leaves exactly 5 independent arrangements: the
// 2 corner checkerboard orbits and the 3 edge slice families, each
// permuted only among its own 4 home positions (CP*EP, the naive
// unrestricted corner/edge permutation product, is ~1.93e13 and
// crashes the pruning table allocation — see DESIGN.md). Combining the
// 5 real degrees of freedom instead gives an exact, lossless
// coordinate of size 24^5 = 7,962,624, safely within the table budget.
func Finish() Coord {
	return composite{parts: []Coord{
		CornerOrbitPerm{Orbit: 1},
		CornerOrbitPerm{Orbit: 2},
		EdgeFamilyPerm{Axis: cube.AxisUD},
		EdgeFamilyPerm{Axis: cube.AxisFB},
		EdgeFamilyPerm{Axis: cube.AxisLR},
	}}
}
