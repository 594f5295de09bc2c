package moveset

import (
	"testing"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

func TestSameFaceForbidden(t *testing.T) {
	ms := EO()
	u1 := cube.Move{Face: cube.Up, Turns: 1}
	u2 := cube.Move{Face: cube.Up, Turns: 2}
	if ms.AllowedAfter(u1.ID(), u2) {
		t.Error("same-face move should never be allowed to follow")
	}
}

func TestOppositeFaceCanonicalOrder(t *testing.T) {
	ms := EO()
	u := cube.Move{Face: cube.Up, Turns: 1}
	d := cube.Move{Face: cube.Down, Turns: 1}
	if !ms.AllowedAfter(u.ID(), d) {
		t.Error("D should be allowed to follow U (opposite faces, canonical order)")
	}
	if ms.AllowedAfter(d.ID(), u) {
		t.Error("U should not be allowed to follow D (reverse of canonical order)")
	}
}

func TestFirstMoveAllowsAny(t *testing.T) {
	ms := EO()
	for _, m := range ms.Moves {
		if !ms.AllowedAfter(-1, m) {
			t.Errorf("first move should allow %v", m)
		}
	}
}

func TestHTRMoveSetExcludesQuarterTurns(t *testing.T) {
	ms := HTR()
	for _, m := range ms.Moves {
		switch m.Face {
		case cube.Front, cube.Back, cube.Left, cube.Right:
			if m.Turns != 2 {
				t.Errorf("HTR move set should only contain half turns on %v, got %v", m.Face, m)
			}
		}
	}
}

func TestFinishIsHalfTurnsOnly(t *testing.T) {
	ms := Finish()
	if len(ms.Moves) != 6 {
		t.Fatalf("Finish() move set = %d moves, want 6", len(ms.Moves))
	}
	for _, m := range ms.Moves {
		if m.Turns != 2 {
			t.Errorf("Finish() move set should be half turns only, got %v", m)
		}
	}
}
