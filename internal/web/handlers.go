package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/search"
	"github.com/ehrlich-b/fmc-solver/internal/solve"
)

// stageConfigJSON mirrors spec §6's caller-supplied stage configuration
// for JSON decoding (the teacher's web/handlers.go already decodes
// request bodies this way with encoding/json, no separate config
// library).
type stageConfigJSON struct {
	Kind          string            `json:"kind"`
	Substeps      []string          `json:"substeps"`
	Min           int               `json:"min"`
	Max           int               `json:"max"`
	AbsoluteMin   int               `json:"absolute_min"`
	AbsoluteMax   int               `json:"absolute_max"`
	StepLimit     int               `json:"step_limit"`
	Quality       int               `json:"quality"`
	Niss          string            `json:"niss"`
	Params        map[string]string `json:"params"`
}

var kindFromJSON = map[string]solve.StageKind{
	"EO": solve.EO, "RZP": solve.RZP, "DR": solve.DR, "HTR": solve.HTR,
	"FR": solve.FR, "FR-leave-slice": solve.FRLeaveSlice, "FIN": solve.FIN,
}

var nissFromJSON = map[string]search.NissPolicy{
	"Never": search.Never, "AtStart": search.AtStart, "Before": search.Before, "During": search.During,
}

func (s stageConfigJSON) toStageConfig() (solve.StageConfig, error) {
	kind, ok := kindFromJSON[s.Kind]
	if !ok {
		return solve.StageConfig{}, solve.ErrConfigInvalid
	}
	niss := search.Never
	if s.Niss != "" {
		n, ok := nissFromJSON[s.Niss]
		if !ok {
			return solve.StageConfig{}, solve.ErrConfigInvalid
		}
		niss = n
	}
	return solve.StageConfig{
		Kind: kind, Substeps: s.Substeps, Min: s.Min, Max: s.Max,
		AbsoluteMin: s.AbsoluteMin, AbsoluteMax: s.AbsoluteMax,
		StepLimit: s.StepLimit, Quality: s.Quality, Niss: niss, Params: s.Params,
	}, nil
}

// SolveRequest is the request body for POST /api/solve.
type SolveRequest struct {
	Scramble string             `json:"scramble"`
	Steps    []stageConfigJSON  `json:"steps"`
}

// solutionJSON is the wire representation of a cube.Solution.
type solutionJSON struct {
	Steps    []stepJSON `json:"steps"`
	Total    int        `json:"total"`
	Rendered string     `json:"rendered"`
}

type stepJSON struct {
	Name string `json:"name"`
	Alg  string `json:"alg"`
}

// streamRecord is one NDJSON line of the response stream: a solution,
// or a final {done:true} record with no solution.
type streamRecord struct {
	Solution *solutionJSON `json:"solution,omitempty"`
	Done     bool          `json:"done"`
}

func toSolutionJSON(sol cube.Solution) solutionJSON {
	steps := make([]stepJSON, len(sol.Steps))
	for i, st := range sol.Steps {
		steps[i] = stepJSON{Name: st.Name, Alg: st.Alg.String()}
	}
	return solutionJSON{Steps: steps, Total: sol.TotalLen(), Rendered: sol.String()}
}

// handleSolve decodes a SolveRequest, builds the orchestrator, and
// streams one NDJSON record per solution, flushing after each so a
// client that drops the connection cancels the remaining work the
// moment the handler's next write fails.
func handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	moves, err := cube.ParseMoves(req.Scramble)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stages := make([]solve.StageConfig, len(req.Steps))
	for i, s := range req.Steps {
		cfg, err := s.toStageConfig()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stages[i] = cfg
	}

	ctx := r.Context()
	orch, err := solve.New(ctx, cube.FromAlg(moves), stages)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)

	for sol := range orch.Solve() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		dto := toSolutionJSON(sol)
		if err := enc.Encode(streamRecord{Solution: &dto}); err != nil {
			log.Printf("solve stream: write failed: %v", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	_ = enc.Encode(streamRecord{Done: true})
	if flusher != nil {
		flusher.Flush()
	}
}
