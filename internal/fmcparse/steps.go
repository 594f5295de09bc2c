// Package fmcparse parses the CLI/HTTP stage-configuration mini
// language ("eo:0-5,dr:0-14:niss=during") into []solve.StageConfig
// values, the way the teacher's CLI flags and JSON request bodies are
// turned into typed configuration.
package fmcparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ehrlich-b/fmc-solver/internal/search"
	"github.com/ehrlich-b/fmc-solver/internal/solve"
)

// ErrParse is the sentinel wrapped by every malformed stage-spec error.
var ErrParse = errors.New("fmcparse: parse error")

var kindNames = map[string]solve.StageKind{
	"eo":           solve.EO,
	"rzp":          solve.RZP,
	"dr":           solve.DR,
	"htr":          solve.HTR,
	"fr":           solve.FR,
	"frls":         solve.FRLeaveSlice,
	"fr-leave-slice": solve.FRLeaveSlice,
	"fin":          solve.FIN,
	"finish":       solve.FIN,
}

var nissNames = map[string]search.NissPolicy{
	"never":   search.Never,
	"atstart": search.AtStart,
	"before":  search.Before,
	"during":  search.During,
}

// ParseSteps parses a comma-separated list of stage specs, each of the
// form "kind:min-max[:key=value]*".
func ParseSteps(s string) ([]solve.StageConfig, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []solve.StageConfig
	for _, part := range strings.Split(s, ",") {
		cfg, err := parseOne(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

func parseOne(spec string) (solve.StageConfig, error) {
	fields := strings.Split(spec, ":")
	if len(fields) < 2 {
		return solve.StageConfig{}, fmt.Errorf("%w: stage spec %q needs kind:min-max", ErrParse, spec)
	}
	kind, ok := kindNames[strings.ToLower(fields[0])]
	if !ok {
		return solve.StageConfig{}, fmt.Errorf("%w: unknown stage kind %q", ErrParse, fields[0])
	}
	minMax := strings.SplitN(fields[1], "-", 2)
	if len(minMax) != 2 {
		return solve.StageConfig{}, fmt.Errorf("%w: malformed range %q", ErrParse, fields[1])
	}
	min, err := strconv.Atoi(minMax[0])
	if err != nil {
		return solve.StageConfig{}, fmt.Errorf("%w: bad min in %q", ErrParse, fields[1])
	}
	max, err := strconv.Atoi(minMax[1])
	if err != nil {
		return solve.StageConfig{}, fmt.Errorf("%w: bad max in %q", ErrParse, fields[1])
	}
	cfg := solve.StageConfig{Kind: kind, Min: min, Max: max, Params: map[string]string{}}
	for _, kv := range fields[2:] {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			return solve.StageConfig{}, fmt.Errorf("%w: malformed option %q", ErrParse, kv)
		}
		switch strings.ToLower(k) {
		case "niss":
			policy, ok := nissNames[strings.ToLower(v)]
			if !ok {
				return solve.StageConfig{}, fmt.Errorf("%w: unknown niss policy %q", ErrParse, v)
			}
			cfg.Niss = policy
		case "quality":
			n, err := strconv.Atoi(v)
			if err != nil {
				return solve.StageConfig{}, fmt.Errorf("%w: bad quality %q", ErrParse, v)
			}
			cfg.Quality = n
		case "steplimit":
			n, err := strconv.Atoi(v)
			if err != nil {
				return solve.StageConfig{}, fmt.Errorf("%w: bad steplimit %q", ErrParse, v)
			}
			cfg.StepLimit = n
		case "substeps":
			cfg.Substeps = strings.Split(v, "|")
		default:
			cfg.Params[k] = v
		}
	}
	return cfg, nil
}
