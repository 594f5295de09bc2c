package solve

import (
	"context"
	"errors"
	"testing"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/search"
)

func TestValidateStagesOrder(t *testing.T) {
	tests := []struct {
		name    string
		stages  []StageConfig
		wantErr bool
	}{
		{"empty ok", nil, false},
		{"eo first ok", []StageConfig{{Kind: EO, Max: 5}}, false},
		{"dr first bad", []StageConfig{{Kind: DR, Max: 5}}, true},
		{"eo then dr ok", []StageConfig{{Kind: EO, Max: 5}, {Kind: DR, Max: 10}}, false},
		{"eo then htr bad", []StageConfig{{Kind: EO, Max: 5}, {Kind: HTR, Max: 10}}, true},
		{"full pipeline ok", []StageConfig{
			{Kind: EO, Max: 5}, {Kind: DR, Max: 12}, {Kind: HTR, Max: 14},
			{Kind: FR, Max: 16}, {Kind: FIN, Max: 20},
		}, false},
		{"min greater than max", []StageConfig{{Kind: EO, Min: 5, Max: 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStages(tt.stages)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrStageOrder) && !errors.Is(err, ErrConfigInvalid) {
				t.Errorf("error %v does not wrap a solve sentinel", err)
			}
		})
	}
}

func TestEffectiveStepLimit(t *testing.T) {
	tests := []struct {
		cfg  StageConfig
		want int
	}{
		{StageConfig{Quality: 0, StepLimit: 0}, 0},
		{StageConfig{Quality: 0, StepLimit: 7}, 7},
		{StageConfig{Quality: 5, StepLimit: 0}, 5},
		{StageConfig{Quality: 5, StepLimit: 3}, 3},
	}
	for _, tt := range tests {
		if got := effectiveStepLimit(tt.cfg); got != tt.want {
			t.Errorf("effectiveStepLimit(%+v) = %d, want %d", tt.cfg, got, tt.want)
		}
	}
}

func TestEmptyScrambleSingleStageYieldsEmptySolution(t *testing.T) {
	o, err := New(context.Background(), cube.NewSolved(), []StageConfig{{Kind: EO, Min: 0, Max: 2, Niss: search.Never}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	found := false
	for sol := range o.Solve() {
		if sol.TotalLen() == 0 {
			found = true
		}
		break
	}
	if !found {
		t.Error("solving an empty scramble should yield a zero-length solution first")
	}
}

func TestSingleMoveScrambleEOReachesSubgroup(t *testing.T) {
	scrambled := cube.NewSolved().Apply(cube.Move{Face: cube.Right, Turns: 1})
	o, err := New(context.Background(), scrambled, []StageConfig{{Kind: EO, Min: 0, Max: 4, Niss: search.Never}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var got cube.Solution
	for sol := range o.Solve() {
		got = sol
		break
	}
	if len(got.Steps) != 1 {
		t.Fatalf("expected exactly one stage in the solution, got %d", len(got.Steps))
	}
	eo := coords.EOAxis{Axis: cube.AxisUD}
	if v := eo.Encode(got.Steps[0].Alg.Apply(scrambled)); v != 0 {
		t.Errorf("EOAxis(result) = %d, want 0 (not in the EO subgroup)", v)
	}
}

// TestCanonicalScrambleEODRReachesSubgroup: a canonical WCA scramble
// through stages EO(0-5)+DR(0-14) must yield a stream whose first
// element has total length <= 14, and
// applying that solution after the scramble must leave the cube in the
// DR subgroup, i.e. both DRComposite == 0 and corner orientation on
// the DR axis == 0 (corner orientation is deliberately checked
// separately — see DRComposite's doc comment on why it is left out of
// the dense pruning coordinate).
func TestCanonicalScrambleEODRReachesSubgroup(t *testing.T) {
	scramble, err := cube.ParseMoves("R' U' F U F2 D U2 L2 D R2 U' L2 R U' F2 L' U2 L' F' L2 U2 L F R' U' F")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	scrambled := cube.FromAlg(scramble)

	o, err := New(context.Background(), scrambled, []StageConfig{
		{Kind: EO, Min: 0, Max: 5, Niss: search.Never},
		{Kind: DR, Min: 0, Max: 14, Niss: search.Never},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var got cube.Solution
	found := false
	for sol := range o.Solve() {
		got = sol
		found = true
		break
	}
	if !found {
		t.Fatal("expected at least one solution for the canonical scramble")
	}
	if got.TotalLen() > 14 {
		t.Errorf("first solution length = %d, want <= 14", got.TotalLen())
	}

	result := scrambled
	for _, step := range got.Steps {
		result = step.Alg.Apply(result)
	}

	drCoord := coords.DRComposite(cube.AxisUD)
	if v := drCoord.Encode(result); v != 0 {
		t.Errorf("DRComposite(result) = %d, want 0 (not in the DR subgroup)", v)
	}
	if v := (coords.COAxis{Axis: cube.AxisUD}).Encode(result); v != 0 {
		t.Errorf("COAxis(result) = %d, want 0 (not in the DR subgroup)", v)
	}
}
