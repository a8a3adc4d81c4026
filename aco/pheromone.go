// Package aco - mutable pheromone trail state.
//
// One trailMatrix is owned by exactly one run; it is never shared across
// concurrent optimizations. Within an iteration ants only read it; both
// mutations below happen strictly after the iteration's fan-out has joined.
package aco

import "gonum.org/v1/gonum/mat"

// trailMatrix holds the n×n directed pheromone levels. The matrix starts
// symmetric (uniform 1.0) and evaporation preserves symmetry, but deposits
// touch only the traversed directed entry, so exact symmetry is not
// enforced - in practice the two directions stay close because ant tours
// traverse edges in both orientations across a run.
type trailMatrix struct {
	m *mat.Dense
}

// newTrailMatrix returns an n×n trail matrix with every entry at 1.0.
//
// Complexity: O(n²) time and space.
func newTrailMatrix(n int) *trailMatrix {
	data := make([]float64, n*n)
	var i int
	for i = range data {
		data[i] = 1.0
	}

	return &trailMatrix{m: mat.NewDense(n, n, data)}
}

// at returns the trail level of the directed edge i→j.
func (t *trailMatrix) at(i, j int) float64 {
	return t.m.At(i, j)
}

// evaporate multiplies every entry by (1 - rate), rate ∈ [0, 1).
// Entries stay nonnegative; rate==1 is rejected upstream by validation.
//
// Complexity: O(n²).
func (t *trailMatrix) evaporate(rate float64) {
	t.m.Scale(1-rate, t.m)
}

// deposit reinforces every directed edge of an open tour, closing edge
// included, by q/length. Shorter tours deposit more per edge.
//
// No upper bound is enforced: a long run with weak evaporation can grow
// trails without limit. Acceptable for the intended small-n, fixed-budget
// use; documented limitation.
//
// Contracts:
//   - tour is a permutation of {0..n-1} with len(tour) ≥ 2 (guaranteed by
//     construction; not revalidated on this hot path).
//   - length > 0 (tour lengths are sums of positive distances).
//
// Complexity: O(n).
func (t *trailMatrix) deposit(tour []int, length, q float64) {
	var (
		contribution = q / length
		i            int
		u, v         int
		last         = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u, v = tour[i], tour[i+1]
		t.m.Set(u, v, t.m.At(u, v)+contribution)
	}
	// Closing edge back to the start.
	u, v = tour[last], tour[0]
	t.m.Set(u, v, t.m.At(u, v)+contribution)
}
