// Package aco_test provides lightweight helpers shared across *_test.go
// files in this package. Intentionally minimal and stdlib-only.
package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ecoroute/aco"
)

const (
	// seedDet is the deterministic seed used across tests (0 selects the
	// package's fixed default stream).
	seedDet = int64(0)

	// lenTol absorbs the 1e-9 length stabilization plus the distance floor
	// contribution on tiny instances.
	lenTol = 1e-6
)

// rectPoints is the convex-quadrilateral scenario: the unique minimal
// Hamiltonian cycle is the rectangle boundary with perimeter 14.
func rectPoints() []aco.Point {
	return []aco.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 3},
		{Lat: 4, Lon: 3},
		{Lat: 4, Lon: 0},
	}
}

// colinearPoints puts three stops on one line at x = 0, 1, 3; every cycle
// over them has the same round-trip length 6.
func colinearPoints() []aco.Point {
	return []aco.Point{
		{Lat: 0, Lon: 2},
		{Lat: 1, Lon: 2},
		{Lat: 3, Lon: 2},
	}
}

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustPermutation fails the test unless tour is a permutation of {0..n-1}.
func mustPermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	if err := aco.ValidatePermutation(tour, n); err != nil {
		t.Fatalf("tour %v is not a permutation of 0..%d: %v", tour, n-1, err)
	}
}

// mustFloatClose asserts |got-want| <= tol.
func mustFloatClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (tol=%.1e)", got, want, tol)
	}
}
