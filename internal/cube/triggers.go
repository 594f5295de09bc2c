package cube

import "strings"

// Trigger is a short named move sequence recognized as completing a DR
// stage from an RZP-reduced state (or useful for lookup/reference).
// Adapted from the teacher's named-algorithm database: the fields that
// made sense for an NxN sticker-pattern algorithm (Recognition,
// Probability, Variants) are dropped, the identity ones kept.
type Trigger struct {
	Name     string
	Category string
	Moves    []Move
}

// TriggerSet is the built-in DR-trigger catalog, keyed by name.
var TriggerSet = buildTriggerSet()

func buildTriggerSet() map[string]Trigger {
	raw := []struct {
		name, category, alg string
	}{
		{"Sune", "DR-TRIGGER", "R U R' U R U2 R'"},
		{"Anti-Sune", "DR-TRIGGER", "R U2 R' U' R U' R'"},
		{"Sexy Move", "DR-TRIGGER", "R U R' U'"},
		{"Niklas", "DR-TRIGGER", "R U' L' U R' U' L"},
		{"Six Mover", "DR-TRIGGER", "R U R' F' R U R' U'"},
	}
	out := make(map[string]Trigger, len(raw))
	for _, r := range raw {
		moves, err := ParseMoves(r.alg)
		if err != nil {
			// built-in catalog entries are constants; a parse error here
			// is a programming error, not a runtime condition to recover from.
			panic("cube: built-in trigger " + r.name + ": " + err.Error())
		}
		out[r.name] = Trigger{Name: r.name, Category: r.category, Moves: moves}
	}
	return out
}

// LookupTrigger returns the named trigger, if present.
func LookupTrigger(name string) (Trigger, bool) {
	t, ok := TriggerSet[name]
	return t, ok
}

// ParseTriggerList parses a stage's comma-separated params["triggers"]
// value ("ABC,DEF") into move sequences, looking each name up in
// TriggerSet first and falling back to parsing it directly as a move
// sequence so callers may also pass raw algorithms.
func ParseTriggerList(s string) ([][]Move, error) {
	var out [][]Move
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if t, ok := LookupTrigger(name); ok {
			out = append(out, t.Moves)
			continue
		}
		moves, err := ParseMoves(name)
		if err != nil {
			return nil, err
		}
		out = append(out, moves)
	}
	return out, nil
}

// FuzzyLookupTrigger finds the trigger whose name most closely matches
// query by longest-common-substring style scoring, adapted from the
// teacher's fuzzy algorithm lookup.
func FuzzyLookupTrigger(query string) (Trigger, bool) {
	query = strings.ToLower(query)
	best := ""
	bestScore := -1
	for name := range TriggerSet {
		score := fuzzyScore(strings.ToLower(name), query)
		if score > bestScore {
			bestScore = score
			best = name
		}
	}
	if bestScore <= 0 {
		return Trigger{}, false
	}
	return TriggerSet[best], true
}

func fuzzyScore(candidate, query string) int {
	if candidate == query {
		return 1000
	}
	if strings.Contains(candidate, query) {
		return 500 + len(query)
	}
	score := 0
	for _, w := range strings.Fields(query) {
		if strings.Contains(candidate, w) {
			score += len(w)
		}
	}
	return score
}
