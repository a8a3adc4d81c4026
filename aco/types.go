// Package aco - core types and strict sentinel errors.
//
// Design principles (shared across the package):
//   - Strict sentinels: callers match failures with errors.Is; no fmt.Errorf
//     where a sentinel suffices.
//   - No panics on user input, no logging: behavior is observable through
//     returned values only.
package aco

import "errors"

var (
	// ErrInvalidOptions is returned when any Options field is out of range:
	// non-positive Ants/Iterations/Alpha/Beta/Q, Evaporation outside [0,1),
	// or negative Workers.
	ErrInvalidOptions = errors.New("aco: invalid options")

	// ErrBadCoordinate is returned when an input point carries a NaN or
	// infinite coordinate.
	ErrBadCoordinate = errors.New("aco: coordinate is NaN or infinite")

	// ErrDimensionMismatch is returned on malformed shapes: a distance
	// matrix of order < 2 handed to SolveWithMatrix, a tour that is not a
	// permutation of {0..n-1}, or a NaN matrix entry.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrNonPositiveDistance is returned when an off-diagonal distance
	// entry is zero, negative, or infinite. BuildDistanceMatrix never
	// produces such a matrix (the epsilon floor keeps every entry positive
	// and finite); the sentinel guards externally supplied matrices.
	ErrNonPositiveDistance = errors.New("aco: off-diagonal distances must be positive and finite")

	// ErrDegenerateWeights is returned when the roulette-wheel weight mass
	// over the remaining candidates is not positive and finite. Unreachable
	// for matrices accepted by validation; kept as an explicit guard rather
	// than an assumed invariant.
	ErrDegenerateWeights = errors.New("aco: degenerate selection weights")
)

// Point is a stop location in planar degree coordinates. Distances are
// plain Euclidean over (Lat, Lon) - a deliberate flat-area approximation,
// not great-circle geometry.
type Point struct {
	Lat float64
	Lon float64
}

// Result holds the outcome of one optimization run.
type Result struct {
	// Tour is an open permutation of the input indices {0..n-1}: each stop
	// appears exactly once and the closing edge back to Tour[0] is implicit.
	Tour []int

	// Length is the full cycle length, closing edge included, expressed in
	// input coordinate units and stabilized to 1e-9 absolute precision.
	Length float64
}

// ClosedTour returns the explicit cycle form of the tour: a fresh slice of
// length n+1 whose last element repeats the first. Presentation layers that
// draw the route usually want this form. Returns nil for an empty tour.
//
// Complexity: O(n) time, O(n) space.
func (r Result) ClosedTour() []int {
	var n = len(r.Tour)
	if n == 0 {
		return nil
	}
	out := make([]int, n+1)
	copy(out, r.Tour)
	out[n] = r.Tour[0]

	return out
}
