// Package coords implements the coordinate encoders that project a
// cubie.CubieCube onto each DR-method subgroup's state space: small
// fixed-range integers suitable for dense pruning-table indices.
package coords

import "github.com/ehrlich-b/fmc-solver/internal/cube"

// Coord is a pure state -> integer projection with a compile-time-known
// range. Implementations never mutate the cube they encode.
type Coord interface {
	Size() int
	Encode(c cube.CubieCube) int
}

// binomial is a small precomputed Pascal's-triangle table, used by the
// combinadic (k-of-n unordered choice) encoders below.
var binomial [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1]
			if k <= n-1 {
				binomial[n][k] += binomial[n-1][k]
			}
		}
	}
}

// combinadic encodes "which k of n positions are occupied" as an index
// in [0, C(n,k)) given the sorted ascending list of occupied positions.
func combinadic(positions []int, k int) int {
	idx := 0
	for i, p := range positions {
		idx += binomial[p][i+1]
	}
	_ = k
	return idx
}
