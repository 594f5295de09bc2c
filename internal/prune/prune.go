// Package prune builds and queries dense pruning tables: distance-from
// goal maps over a coordinate space, populated once at startup by
// breadth-first expansion from the goal states.
package prune

import (
	"context"
	"errors"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/moveset"
)

// ErrCoordSizeMismatch names a coordinate value outside the range a
// table was built for. Lookup does not return it; it reports such a
// value as Unreachable.
var ErrCoordSizeMismatch = errors.New("prune: coordinate out of range")

// Unreachable is the sentinel distance for a coordinate value never
// reached by the BFS — it should never be observed at runtime for a
// scramble reachable from a solved cube.
const Unreachable = 0xFF

// Table is a dense distance-to-goal map indexed by an integer
// coordinate, built once and shared read-only across every DFS
// instance for the stage it serves.
type Table struct {
	coord coords.Coord
	dist  []uint8
}

// Size is the coordinate range the table was built for.
func (t *Table) Size() int { return len(t.dist) }

// Lookup returns the pruning distance for coord, or Unreachable if it
// is out of range or was never visited during construction.
func (t *Table) Lookup(coord int) uint8 {
	if coord < 0 || coord >= len(t.dist) {
		return Unreachable
	}
	return t.dist[coord]
}

// Build runs a BFS from the coordinate value of every seed state — the
// goal set (0 for the solved cube under each coordinate in package
// coords) — expanding by applying every move in ms to a representative
// cube for each visited coordinate, same queue-and-frontier shape as a
// standard graph BFS (context-cancellable, a distance map keyed by
// coordinate instead of by vertex ID, dense array instead of map since
// the coordinate space is small and fully enumerable).
//
// seed supplies one representative CubieCube per goal coordinate value
// (there may be many cube states mapping to coordinate 0; any one
// representative is sufficient to discover every reachable neighbor).
func Build(ctx context.Context, coord coords.Coord, ms moveset.MoveSet, seed []cube.CubieCube) (*Table, error) {
	t := &Table{coord: coord, dist: make([]uint8, coord.Size())}
	for i := range t.dist {
		t.dist[i] = Unreachable
	}

	type item struct {
		state cube.CubieCube
		depth int
	}
	var queue []item
	for _, s := range seed {
		c := coord.Encode(s)
		if t.dist[c] == Unreachable {
			t.dist[c] = 0
			queue = append(queue, item{state: s, depth: 0})
		}
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return t, ctx.Err()
		default:
		}

		it := queue[0]
		queue = queue[1:]

		for _, m := range ms.Moves {
			next := it.state.Apply(m)
			nc := coord.Encode(next)
			if t.dist[nc] != Unreachable {
				continue
			}
			nd := it.depth + 1
			if nd > 255 {
				nd = 255
			}
			t.dist[nc] = uint8(nd)
			queue = append(queue, item{state: next, depth: nd})
		}
	}

	return t, nil
}
