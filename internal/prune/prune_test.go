package prune

import (
	"context"
	"testing"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/moveset"
)

func TestBuildGoalIsZero(t *testing.T) {
	ms := moveset.EO()
	coord := coords.EOAxis{Axis: cube.AxisUD}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup(coord.Encode(cube.NewSolved())); got != 0 {
		t.Errorf("Lookup(solved) = %d, want 0", got)
	}
}

func TestBuildTriangleInequality(t *testing.T) {
	ms := moveset.EO()
	coord := coords.EOAxis{Axis: cube.AxisUD}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c := cube.NewSolved()
	for _, m := range ms.Moves {
		next := c.Apply(m)
		d0 := table.Lookup(coord.Encode(c))
		d1 := table.Lookup(coord.Encode(next))
		if d1 > d0+1 {
			t.Errorf("triangle inequality violated: dist(solved)=%d, dist(neighbor)=%d", d0, d1)
		}
	}
}

// TestBuildDRComposite exercises the truncated DR coordinate (Comment
// 1-4 fix: EO+slice only, CO checked separately by the orchestrator)
// end to end through a real BFS, confirming it stays small and that
// the solved state is still its unique depth-0 representative.
func TestBuildDRComposite(t *testing.T) {
	ms := moveset.DR()
	coord := coords.DRComposite(cube.AxisUD)
	if got, want := coord.Size(), 2048*495; got != want {
		t.Fatalf("DRComposite size = %d, want %d", got, want)
	}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup(coord.Encode(cube.NewSolved())); got != 0 {
		t.Errorf("Lookup(solved) = %d, want 0", got)
	}
}

// TestBuildImpureHTRDRUD exercises the HTR coordinate fix (Comment 2):
// CP combined with the 70-valued HTRSliceUnsorted, not the degenerate
// 495-valued SliceUnsorted{AxisUD}, which never varies once DR holds.
func TestBuildImpureHTRDRUD(t *testing.T) {
	ms := moveset.HTR()
	coord := coords.ImpureHTRDRUD(cube.AxisUD)
	if got, want := coord.Size(), 70*40320; got != want {
		t.Fatalf("ImpureHTRDRUD size = %d, want %d", got, want)
	}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup(coord.Encode(cube.NewSolved())); got != 0 {
		t.Errorf("Lookup(solved) = %d, want 0", got)
	}
}

// TestBuildFinish exercises the Finish coordinate fix (Comment 1): the
// 24^5 corner-orbit/edge-family permutation composite, not the
// ~1.93e13 unrestricted CP*EP product that would crash the
// make([]uint8, ...) allocation below.
func TestBuildFinish(t *testing.T) {
	ms := moveset.Finish()
	coord := coords.Finish()
	if got, want := coord.Size(), 24*24*24*24*24; got != want {
		t.Fatalf("Finish size = %d, want %d", got, want)
	}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup(coord.Encode(cube.NewSolved())); got != 0 {
		t.Errorf("Lookup(solved) = %d, want 0", got)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	ms := moveset.EO()
	coord := coords.EOAxis{Axis: cube.AxisUD}
	table, err := Build(context.Background(), coord, ms, []cube.CubieCube{cube.NewSolved()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup(-1); got != Unreachable {
		t.Errorf("Lookup(-1) = %d, want Unreachable", got)
	}
	if got := table.Lookup(table.Size()); got != Unreachable {
		t.Errorf("Lookup(Size()) = %d, want Unreachable", got)
	}
}
