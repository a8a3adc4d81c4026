// Package aco - tour utilities shared by the colony and by callers.
//
// A tour throughout this package is an OPEN permutation of {0..n-1}; the
// closing edge back to tour[0] is implicit and included in every reported
// length.
package aco

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// roundScale controls length stabilization precision (1e-9). It removes
// tiny FP drift across platforms without affecting which tour wins.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n: no duplicates, no omissions, no out-of-range indices.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourLength computes the closed-cycle length of an open tour against a
// distance matrix: the sum of consecutive edges plus the closing edge.
//
// Contracts:
//   - dist must be non-nil with order n == len(tour), n ≥ 2.
//   - tour must be a permutation of {0..n-1} (ErrDimensionMismatch).
//   - NaN entries ⇒ ErrDimensionMismatch; non-positive or infinite
//     off-diagonal entries ⇒ ErrNonPositiveDistance.
//
// The result is stabilized with round1e9.
//
// Complexity: O(n).
func TourLength(dist *mat.SymDense, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var n = dist.SymmetricDim()
	if n < 2 || len(tour) != n {
		return 0, ErrDimensionMismatch
	}
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		w   float64
	)
	for i = 0; i < n; i++ {
		// tour[(i+1)%n] closes the cycle on the final step.
		w = dist.At(tour[i], tour[(i+1)%n])
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if w <= 0 || math.IsInf(w, 0) {
			return 0, ErrNonPositiveDistance
		}
		sum += w
	}

	return round1e9(sum), nil
}
