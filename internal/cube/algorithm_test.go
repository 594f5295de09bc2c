package cube

import (
	"errors"
	"testing"
)

func TestParseAlg(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantNormal  int
		wantInverse int
		wantErr     bool
	}{
		{"empty", "", 0, 0, false},
		{"normal only", "R U R' U'", 4, 0, false},
		{"inverse only", "(R U R' U')", 0, 4, false},
		{"multi switch", "F (B) F (B F) B", 3, 3, false},
		{"invalid move", "P", 0, 0, true},
		{"invalid move inverse", "(P)", 0, 0, true},
		{"unclosed group", "(R", 0, 0, true},
		{"unmatched close", "R)", 0, 0, true},
		{"nested", "(R (U))", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlg(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlg(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Errorf("error %v does not wrap ErrParse", err)
				}
				return
			}
			if len(got.Normal) != tt.wantNormal || len(got.Inverse) != tt.wantInverse {
				t.Errorf("ParseAlg(%q) = normal=%d inverse=%d, want normal=%d inverse=%d",
					tt.in, len(got.Normal), len(got.Inverse), tt.wantNormal, tt.wantInverse)
			}
		})
	}
}

func TestParseAlgRenderRoundTrip(t *testing.T) {
	for _, s := range []string{"R U R' U'", "(R U R' U')", "F (B) F (B F) B", ""} {
		a, err := ParseAlg(s)
		if err != nil {
			t.Fatalf("ParseAlg(%q): %v", s, err)
		}
		b, err := ParseAlg(a.String())
		if err != nil {
			t.Fatalf("ParseAlg(render(%q)) = %q: %v", s, a.String(), err)
		}
		if len(a.Normal) != len(b.Normal) || len(a.Inverse) != len(b.Inverse) {
			t.Errorf("round trip mismatch for %q: %q", s, a.String())
		}
	}
}

func TestAlgInvert(t *testing.T) {
	a := Alg{Normal: mustParseMoves(t, "R U"), Inverse: mustParseMoves(t, "F B")}
	inv := a.Invert()
	want := Alg{Normal: mustParseMoves(t, "B' F'"), Inverse: mustParseMoves(t, "U' R'")}
	if inv.String() != want.String() {
		t.Errorf("Invert() = %q, want %q", inv.String(), want.String())
	}
}

func TestSolutionAddStepEndsOnNormal(t *testing.T) {
	var s Solution
	s.AddStep("EO", Alg{Normal: mustParseMoves(t, "R U")})
	if !s.EndsOnNormal {
		t.Error("normal-only step should set EndsOnNormal = true")
	}
	s.AddStep("DR", Alg{Inverse: mustParseMoves(t, "F")})
	if s.EndsOnNormal {
		t.Error("inverse-only step should set EndsOnNormal = false")
	}
	s.AddStep("HTR", Alg{Normal: mustParseMoves(t, "U"), Inverse: mustParseMoves(t, "D")})
	if !s.EndsOnNormal {
		t.Error("mixed step should flip the previous EndsOnNormal (false -> true)")
	}
}

func TestAlgMirror(t *testing.T) {
	a := Alg{Normal: mustParseMoves(t, "R U F")}
	m := a.Mirror(AxisLR)
	want := mustParseMoves(t, "L' U' F'")
	for i, mv := range m.Normal {
		if mv != want[i] {
			t.Errorf("Mirror(AxisLR) move %d = %v, want %v", i, mv, want[i])
		}
	}
}
