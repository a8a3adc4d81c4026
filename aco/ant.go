// Package aco - stochastic tour construction (one ant, one tour).
//
// Construction is pheromone-biased, nearest-neighbor-like, and sampled -
// never argmax. Exploitation strength is tuned through Alpha and Beta only.
package aco

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// constructTour builds exactly one tour: a uniformly random start, then
// repeated roulette-wheel steps over the unvisited stops until all n are
// placed. The cycle length (closing edge included) is accumulated along
// the way.
//
// Contracts:
//   - dist has order n ≥ 2 with positive off-diagonal entries (validated
//     upstream); trails has the same order.
//   - rng is owned by this ant; it is never touched by another goroutine.
//
// Errors: ErrDegenerateWeights if the candidate weight mass is not positive
// and finite (unreachable for validated matrices; explicit guard).
//
// Complexity: O(n²) time, O(n) space.
func constructTour(dist *mat.SymDense, trails *trailMatrix, opts Options, rng *rand.Rand) ([]int, float64, error) {
	var (
		n       = dist.SymmetricDim()
		tour    = make([]int, n)
		visited = make([]bool, n)
		weights = make([]float64, n) // reused across steps
		current = rng.Intn(n)
		length  float64
	)
	tour[0] = current
	visited[current] = true

	var (
		step int
		next int
		err  error
	)
	for step = 1; step < n; step++ {
		next, err = selectNext(dist, trails, opts, rng, current, visited, weights)
		if err != nil {
			return nil, 0, err
		}
		tour[step] = next
		length += dist.At(current, next)
		visited[next] = true
		current = next
	}
	// Close the cycle back to the start.
	length += dist.At(current, tour[0])

	return tour, round1e9(length), nil
}

// selectNext samples the next stop from the weight distribution
//
//	weight(j) = tau(current,j)^Alpha * (1/dist(current,j))^Beta
//
// over unvisited j, normalized to probabilities. With a single remaining
// candidate the choice is deterministic (its probability is 1).
//
// The weights slice is caller-owned scratch of length n; entries for
// visited stops are zeroed each call.
//
// Complexity: O(n).
func selectNext(dist *mat.SymDense, trails *trailMatrix, opts Options, rng *rand.Rand, current int, visited []bool, weights []float64) (int, error) {
	var (
		n    = len(visited)
		j    int
		tau  float64
		eta  float64
		last = -1 // highest-index candidate, fallback for the FP tail
	)
	for j = 0; j < n; j++ {
		if visited[j] {
			weights[j] = 0
			continue
		}
		tau = math.Pow(trails.at(current, j), opts.Alpha)
		eta = math.Pow(1/dist.At(current, j), opts.Beta)
		weights[j] = tau * eta
		last = j
	}

	// Defensive guard: an exhausted candidate set means the loop invariant
	// in constructTour broke; a non-finite or zero mass means the matrix
	// slipped past validation. Neither is silently sampled.
	var total = floats.Sum(weights)
	if last < 0 || math.IsInf(total, 0) || !(total > 0) {
		return 0, ErrDegenerateWeights
	}

	// Roulette wheel over normalized weights.
	var (
		r   = rng.Float64()
		cum float64
	)
	for j = 0; j < n; j++ {
		if weights[j] <= 0 {
			continue
		}
		cum += weights[j] / total
		if r < cum {
			return j, nil
		}
	}

	// Rounding pushed the cumulative sum fractionally below 1; the tail
	// mass belongs to the last candidate.
	return last, nil
}
