// Package aco - colony orchestration: the canonical entry points.
//
// State machine per run:
//
//	Initialize → {construct ants → update best → evaporate → deposit}×Iterations → best
//
// Ordering guarantees (the load-bearing ones):
//   - Within an iteration, ants are independent: each reads the read-only
//     distance matrix and the pheromone levels fixed at iteration start.
//     No ordering exists between ants of the same iteration.
//   - Across iterations there is a hard barrier: every deposit of iteration
//     k completes before any construction of iteration k+1 begins.
//
// Determinism: per-ant RNG substreams are derived from the base seed on the
// loop goroutine before the fan-out, and candidates are compared in ant
// index order afterwards - so the result is bit-identical for any Workers
// setting, including full parallelism.
package aco

import (
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Solve optimizes a visiting order over the given stops.
//
// Degenerate inputs short-circuit before any matrix is built:
// n==0 ⇒ empty tour with length 0; n==1 ⇒ tour [0] with length 0.
// For n==2 the single possible cycle is returned (the stochastic machinery
// still runs, but cannot produce anything else).
//
// Errors: ErrInvalidOptions, ErrBadCoordinate.
//
// Complexity: O(Iterations · Ants · n²) time, O(n²) space.
func Solve(points []Point, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validatePoints(points); err != nil {
		return Result{}, err
	}

	switch len(points) {
	case 0:
		return Result{Tour: []int{}}, nil
	case 1:
		return Result{Tour: []int{0}}, nil
	}

	return SolveWithMatrix(BuildDistanceMatrix(points), opts)
}

// SolveWithMatrix runs the colony against a prebuilt distance matrix for
// callers that already hold one (n ≥ 2).
//
// Contracts:
//   - dist is symmetric by type; every entry finite, off-diagonal entries
//     strictly positive (see validateDistMatrix).
//   - dist is not mutated and not read after return; the pheromone state is
//     created here and owned exclusively by this run.
//
// The returned best length is monotonically non-increasing over the run:
// the result can never be worse than the best tour of the first iteration.
//
// Errors: ErrInvalidOptions, ErrDimensionMismatch, ErrNonPositiveDistance,
// ErrDegenerateWeights.
//
// Complexity: O(Iterations · Ants · n²) time, O(Ants · n + n²) space.
func SolveWithMatrix(dist *mat.SymDense, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := validateDistMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	var (
		trails = newTrailMatrix(n)
		base   = rngFromSeed(opts.Seed)
		best   = Result{Length: math.Inf(1)}

		// Per-iteration scratch, reused across rounds.
		tours   = make([][]int, opts.Ants)
		lengths = make([]float64, opts.Ants)
		rngs    = make([]*rand.Rand, opts.Ants)
	)

	var (
		iter int
		a    int
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		// Stage 1 - derive this round's substreams in ant order on the
		// loop goroutine (sequential, so replays are exact).
		for a = 0; a < opts.Ants; a++ {
			rngs[a] = deriveRNG(base, uint64(a))
		}

		// Stage 2 - fan out the constructions; join is the barrier that
		// protects the trail update below.
		g := new(errgroup.Group)
		if opts.Workers > 0 {
			g.SetLimit(opts.Workers)
		}
		for a = 0; a < opts.Ants; a++ {
			ant := a
			g.Go(func() error {
				var cerr error
				tours[ant], lengths[ant], cerr = constructTour(dist, trails, opts, rngs[ant])

				return cerr
			})
		}
		if err = g.Wait(); err != nil {
			return Result{}, err
		}

		// Stage 3 - global best, strict improvement only; scanning in ant
		// index order keeps the earliest-found tour on ties.
		for a = 0; a < opts.Ants; a++ {
			if lengths[a] < best.Length {
				best.Length = lengths[a]
				best.Tour = append([]int(nil), tours[a]...)
			}
		}

		// Stage 4 - one evaporation, then every ant deposits Q/length.
		trails.evaporate(opts.Evaporation)
		for a = 0; a < opts.Ants; a++ {
			trails.deposit(tours[a], lengths[a], opts.Q)
		}
	}

	return best, nil
}
