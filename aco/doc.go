// Package aco solves the closed-loop Euclidean Travelling Salesman Problem
// with Ant Colony Optimization.
//
// It is the combinatorial core of a waste-collection routing system: given
// an ordered set of stop coordinates, it returns a visiting order (a
// Hamiltonian cycle over the stop indices) together with the cycle length.
//
// Model in one paragraph: a distance matrix is built once per run; a
// pheromone matrix starts uniform at 1.0; every iteration a fixed number of
// ants each construct one candidate tour by roulette-wheel sampling, where
// the attractiveness of moving from stop i to stop j is
//
//	tau(i,j)^Alpha * (1/dist(i,j))^Beta
//
// over the not-yet-visited stops. After every ant has finished, the trails
// evaporate once and every ant deposits Q/length along its tour, so shorter
// tours reinforce their edges more. The shortest tour seen over all
// iterations is returned.
//
// Entry points:
//
//   - Solve accepts raw coordinates, builds the distance matrix, and runs
//     the colony. Degenerate inputs (0 or 1 stops) short-circuit.
//   - SolveWithMatrix accepts a prebuilt *mat.SymDense distance matrix
//     (n ≥ 2) for callers that already hold one.
//
// Determinism: randomness comes exclusively from Options.Seed. Identical
// inputs and options produce bit-identical results, sequential or parallel
// (each ant owns an independently derived substream fixed before the
// iteration's fan-out starts).
//
// Effort is fixed: Options.Iterations rounds, no convergence detection, no
// early stopping. Intended for tens of stops; cost grows combinatorially
// with n.
//
// All functions return strict sentinel errors from types.go; no panics on
// user input, no logging.
package aco
