// Package aco - distance model.
//
// The distance matrix is built exactly once per run and is read-only
// thereafter; every other component treats it as immutable shared state.
package aco

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceFloor is the minimum value stored in the distance matrix.
//
// The diagonal holds this epsilon instead of zero so the inverse-distance
// desirability term 1/d stays finite. The floor also applies to coincident
// input points (zero off-diagonal distance): without it, duplicate stops
// would turn the roulette weights into Inf/Inf = NaN.
const DistanceFloor = 1e-9

// BuildDistanceMatrix builds the n×n symmetric Euclidean distance matrix
// for the given points.
//
// Contracts:
//   - D is symmetric by construction (*mat.SymDense).
//   - D[i][i] == DistanceFloor for every i.
//   - Every entry is ≥ DistanceFloor; no entry is zero, NaN, or infinite
//     for finite inputs.
//   - n == 0 returns nil; n == 0 and n == 1 matrices are never consumed by
//     tour construction (Solve short-circuits first).
//
// No error conditions: any finite input yields a valid matrix. Coordinate
// finiteness is the caller's boundary check (see validatePoints).
//
// Complexity: O(n²) time, O(n²) space.
func BuildDistanceMatrix(points []Point) *mat.SymDense {
	var n = len(points)
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)

	var (
		i, j   int
		dx, dy float64
		w      float64
	)
	for i = 0; i < n; i++ {
		d.SetSym(i, i, DistanceFloor)
		for j = i + 1; j < n; j++ {
			dx = points[i].Lat - points[j].Lat
			dy = points[i].Lon - points[j].Lon
			w = math.Hypot(dx, dy) // stable sqrt(dx²+dy²)
			if w < DistanceFloor {
				w = DistanceFloor // coincident stops stay selectable
			}
			d.SetSym(i, j, w)
		}
	}

	return d
}
