package solve

import (
	"context"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/search"
)

// Seq is a lazy stream of complete solutions, pull-based like
// search.Seq: `for sol := range seq { ... }`.
type Seq func(yield func(cube.Solution) bool)

// Orchestrator chains a sequence of stage configurations into a single
// solution stream for one scramble. Pruning tables are built once at
// construction and shared read-only by every DFS spawned during Solve.
type Orchestrator struct {
	scramble cube.CubieCube
	stages   []StageConfig
	descs    []stageDescriptor
}

// New validates the stage order, builds every stage's pruning table
// (a fatal configuration error if any stage names an unsupported kind),
// and returns a ready-to-run Orchestrator.
func New(ctx context.Context, scramble cube.CubieCube, stages []StageConfig) (*Orchestrator, error) {
	if err := ValidateStages(stages); err != nil {
		return nil, err
	}
	descs := make([]stageDescriptor, len(stages))
	for i, cfg := range stages {
		d, err := buildDescriptor(ctx, cfg)
		if err != nil {
			return nil, err
		}
		descs[i] = d
	}
	return &Orchestrator{scramble: scramble, stages: stages, descs: descs}, nil
}

// Solve streams every Solution the pipeline can produce, depth-first
// across stages: each stage-1 candidate is fully expanded through every
// later stage before the next stage-1 candidate begins. Within a single
// stage this is non-decreasing in length (search.Search's contract);
// composed this way the overall stream is not a perfect global k-way
// merge, but every element is a genuine complete solution and shorter
// first-stage solutions are explored first, which is sufficient for an
// FMC search that is bounded by a caller-chosen total move budget
// rather than run to exhaustion.
func (o *Orchestrator) Solve() Seq {
	return func(yield func(cube.Solution) bool) {
		o.step(0, o.scramble, cube.Solution{}, yield)
	}
}

func (o *Orchestrator) step(i int, state cube.CubieCube, partial cube.Solution, yield func(cube.Solution) bool) bool {
	if i == len(o.stages) {
		return yield(partial)
	}
	cfg := o.stages[i]
	d := o.descs[i]
	check := postStepCheckFor(cfg)
	params := search.Params{
		MoveSet:       d.moveSet,
		Table:         d.table,
		Coord:         d.coord,
		Min:           cfg.Min,
		Max:           cfg.Max,
		Niss:          cfg.Niss,
		PostStepCheck: check,
	}
	count := 0
	limit := effectiveStepLimit(cfg)
	for alg := range search.Search(state, params) {
		if limit > 0 && count >= limit {
			break
		}
		count++
		next := alg.Apply(state)
		extended := cube.Solution{Steps: append([]cube.Step(nil), partial.Steps...), EndsOnNormal: partial.EndsOnNormal}
		extended.AddStep(cfg.Kind.String(), alg)
		if !o.step(i+1, next, extended, yield) {
			return false
		}
	}
	return true
}

// postStepCheckFor builds each stage's post-step check.
//
// RZP and DR both search over coords.DRComposite, which deliberately
// leaves corner orientation out of the dense pruning coordinate (see
// DRComposite's doc comment): every candidate ending must additionally
// satisfy CO == 0 on the stage axis, checked directly against the
// state rather than baked into the table. RZP layers the trigger
// check (supplemented feature, see SPEC_FULL.md §12) on top: when
// params["triggers"] names a trigger list, the stage may only end in a
// state from which one of the named triggers, applied, would complete
// DR in few moves. Other stages default to accepting any ending.
func postStepCheckFor(cfg StageConfig) search.PostStepCheck {
	switch cfg.Kind {
	case RZP, DR:
	default:
		return nil
	}

	axis := axisFor(cfg.Substeps)
	coReached := func(state cube.CubieCube) bool {
		return coords.COAxis{Axis: axis}.Encode(state) == 0
	}

	if cfg.Kind != RZP {
		return func(state cube.CubieCube, alg cube.Alg) bool {
			return coReached(state)
		}
	}

	raw, ok := cfg.Params["triggers"]
	if !ok || raw == "" {
		return func(state cube.CubieCube, alg cube.Alg) bool {
			return coReached(state)
		}
	}
	triggers, err := cube.ParseTriggerList(raw)
	if err != nil {
		return func(state cube.CubieCube, alg cube.Alg) bool {
			return coReached(state)
		}
	}
	return func(state cube.CubieCube, alg cube.Alg) bool {
		if !coReached(state) {
			return false
		}
		for _, moves := range triggers {
			if state.ApplyMoves(moves).IsSolved() {
				return true
			}
		}
		return len(triggers) == 0
	}
}
