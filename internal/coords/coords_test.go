package coords

import (
	"testing"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

func TestSolvedEncodesToZero(t *testing.T) {
	solved := cube.NewSolved()
	tests := []struct {
		name string
		c    Coord
	}{
		{"EOAxis-ud", EOAxis{Axis: cube.AxisUD}},
		{"EOAxis-fb", EOAxis{Axis: cube.AxisFB}},
		{"COAxis", COAxis{Axis: cube.AxisUD}},
		{"CP", CP{}},
		{"EP", EP{}},
		{"SliceUnsorted-ud", SliceUnsorted{Axis: cube.AxisUD}},
		{"CPOrbitUnsorted", CPOrbitUnsorted{}},
		{"CPOrbitTwist", CPOrbitTwist{}},
		{"Parity", Parity{}},
		{"PureHTRDRUD", PureHTRDRUD(cube.AxisUD)},
		{"ImpureHTRDRUD", ImpureHTRDRUD(cube.AxisUD)},
		{"Finish", Finish()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Encode(solved); got != 0 {
				t.Errorf("Encode(solved) = %d, want 0", got)
			}
		})
	}
}

func TestEncodeInRange(t *testing.T) {
	moves, err := cube.ParseMoves("R U R' U' F' U F B L' B' R D2 L F2 R2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	c := cube.FromAlg(moves)
	coordsList := []Coord{
		EOAxis{Axis: cube.AxisUD}, COAxis{Axis: cube.AxisUD}, CP{}, EP{},
		SliceUnsorted{Axis: cube.AxisUD}, CPOrbitUnsorted{}, CPOrbitTwist{},
		Parity{}, PureHTRDRUD(cube.AxisUD), ImpureHTRDRUD(cube.AxisUD), Finish(),
	}
	for _, co := range coordsList {
		v := co.Encode(c)
		if v < 0 || v >= co.Size() {
			t.Errorf("%T: Encode = %d, out of range [0,%d)", co, v, co.Size())
		}
	}
}

func TestCombinadicMonotone(t *testing.T) {
	a := combinadic([]int{0, 1, 2, 3}, 4)
	b := combinadic([]int{8, 9, 10, 11}, 4)
	if a != 0 {
		t.Errorf("combinadic of the first 4 positions = %d, want 0", a)
	}
	if b <= a {
		t.Errorf("combinadic(%v) = %d should exceed combinadic of the lowest positions", []int{8, 9, 10, 11}, b)
	}
}
