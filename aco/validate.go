// Package aco - validation shared by the public entry points.
//
// Staged, side-effect free checks: options first, then inputs. Only
// sentinel errors from types.go; no logging, no panics on user input.
package aco

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateOptions checks every tunable against its documented range.
// Invalid configuration is a boundary error, never a silent degenerate run.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Ants <= 0 {
		return ErrInvalidOptions
	}
	if opts.Iterations <= 0 {
		return ErrInvalidOptions
	}
	if opts.Alpha <= 0 || math.IsNaN(opts.Alpha) || math.IsInf(opts.Alpha, 0) {
		return ErrInvalidOptions
	}
	if opts.Beta <= 0 || math.IsNaN(opts.Beta) || math.IsInf(opts.Beta, 0) {
		return ErrInvalidOptions
	}
	// Evaporation==1 would collapse all trails to zero each iteration and
	// divide the roulette mass by zero pheromone; the boundary is rejected.
	if opts.Evaporation < 0 || opts.Evaporation >= 1 || math.IsNaN(opts.Evaporation) {
		return ErrInvalidOptions
	}
	if opts.Q <= 0 || math.IsNaN(opts.Q) || math.IsInf(opts.Q, 0) {
		return ErrInvalidOptions
	}
	if opts.Workers < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// validatePoints rejects NaN/±Inf coordinates. Any finite point set of any
// size (including 0 and 1) is acceptable input.
//
// Complexity: O(n).
func validatePoints(points []Point) error {
	var (
		i int
		p Point
	)
	for i = 0; i < len(points); i++ {
		p = points[i]
		if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
			return ErrBadCoordinate
		}
		if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
			return ErrBadCoordinate
		}
	}

	return nil
}

// validateDistMatrix verifies an externally supplied distance matrix:
// order n ≥ 2, every entry finite, off-diagonal entries strictly positive.
// Symmetry is structural (*mat.SymDense), so it is not re-checked. The
// diagonal only needs to be finite and nonnegative - construction never
// reads self-edges.
//
// Returns n on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist *mat.SymDense) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var n = dist.SymmetricDim()
	if n < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		w = dist.At(i, i)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrDimensionMismatch
		}
		for j = i + 1; j < n; j++ {
			w = dist.At(i, j)
			if math.IsNaN(w) {
				return 0, ErrDimensionMismatch
			}
			if w <= 0 || math.IsInf(w, 0) {
				return 0, ErrNonPositiveDistance
			}
		}
	}

	return n, nil
}
