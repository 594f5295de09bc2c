// Package solve implements the step orchestrator: it chains per-stage
// DFS streams into a single lazy stream of complete Solution values.
// Each stage's own stream is non-decreasing in length, but the combined
// stream is not sorted by total move count (see Orchestrator.Solve).
package solve

import (
	"errors"
	"fmt"

	"github.com/ehrlich-b/fmc-solver/internal/search"
)

// StageKind names one pipeline stage.
type StageKind int

const (
	EO StageKind = iota
	RZP
	DR
	HTR
	FR
	FRLeaveSlice
	FIN
)

func (k StageKind) String() string {
	return [...]string{"EO", "RZP", "DR", "HTR", "FR", "FRLeaveSlice", "FIN"}[k]
}

// StageConfig is the caller-supplied per-stage configuration (spec §6).
type StageConfig struct {
	Kind                   StageKind
	Substeps               []string
	Min, Max               int
	AbsoluteMin, AbsoluteMax int
	StepLimit              int
	Quality                int
	Niss                   search.NissPolicy
	Params                 map[string]string
}

// Sentinel configuration errors, wrapped with stage-specific context at
// the point they are raised — the sentinel/wrap style used by
// katalvlaran/lvlath's graph package (ErrVertexNotFound).
var (
	ErrConfigInvalid = errors.New("solve: invalid stage configuration")
	ErrTableMissing  = errors.New("solve: required pruning table missing")
	ErrStageOrder    = errors.New("solve: illegal stage order")
)

// effectiveStepLimit translates quality into a step_limit per the
// source material: quality == 0 disables the default, otherwise the
// step limit defaults to the quality value unless already set.
func effectiveStepLimit(cfg StageConfig) int {
	if cfg.Quality == 0 {
		return cfg.StepLimit
	}
	if cfg.StepLimit != 0 {
		return cfg.StepLimit
	}
	return cfg.Quality
}

// validateOrder checks one predecessor -> this-stage transition against
// the exhaustive table named in spec §4.G, ported from the source
// material's `build_steps` match.
func validateOrder(prev *StageKind, this StageKind) error {
	if prev == nil {
		if this == EO {
			return nil
		}
		return fmt.Errorf("%w: %v not supported as first stage", ErrStageOrder, this)
	}
	ok := false
	switch *prev {
	case EO:
		ok = this == DR || this == RZP
	case RZP:
		ok = this == DR
	case DR:
		ok = this == HTR
	case HTR:
		ok = this == FR || this == FRLeaveSlice
	case FR:
		ok = this == FIN
	case FRLeaveSlice:
		ok = this == FIN
	}
	if !ok {
		return fmt.Errorf("%w: %v -> %v", ErrStageOrder, *prev, this)
	}
	return nil
}

// ValidateStages checks an entire configured pipeline's stage order and
// basic field sanity (min <= max, non-negative quality) before
// any table is requested.
func ValidateStages(stages []StageConfig) error {
	var prev *StageKind
	for _, cfg := range stages {
		if cfg.Min > cfg.Max {
			return fmt.Errorf("%w: stage %v has min %d > max %d", ErrConfigInvalid, cfg.Kind, cfg.Min, cfg.Max)
		}
		if cfg.Quality < 0 {
			return fmt.Errorf("%w: stage %v has negative quality", ErrConfigInvalid, cfg.Kind)
		}
		if err := validateOrder(prev, cfg.Kind); err != nil {
			return err
		}
		k := cfg.Kind
		prev = &k
	}
	return nil
}
