// Package ecoroute computes efficient visiting orders for waste-collection
// stops and reports the operational savings of the optimized route.
//
// 🚀 What is ecoroute?
//
//	A compact, deterministic-by-seed library that brings together:
//		• Ant Colony Optimization for the closed-loop Euclidean TSP (aco/)
//		• Operational savings reporting: fuel, time, trips (savings/)
//
// ✨ Why choose ecoroute?
//
//   - Predictable – injected seeds, bit-identical reruns, no ambient state
//   - Rock-solid guarantees – strict sentinel errors, no panics on input
//   - Concurrent where it pays – per-iteration ants fan out and join at a
//     barrier before every pheromone update
//   - Small surface – two packages, in-memory calls, in-memory results
//
// Everything is organized under two subpackages:
//
//	aco/     — distance model, pheromone trails, ant construction, colony loop
//	savings/ — static-vs-optimized route savings estimation
//
// Quick sketch:
//
//	stops := []aco.Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 3}, {Lat: 4, Lon: 3}, {Lat: 4, Lon: 0}}
//	res, err := aco.Solve(stops, aco.DefaultOptions())
//	// res.Tour is a permutation of stop indices; res.Length the cycle length.
//	rep, err := savings.Estimate(naiveLength, res.Length)
//	// rep.FuelLiters, rep.TimeHours, rep.Trips, rep.StaticKm, rep.OptimizedKm
//
// Start with aco.Solve, then feed its Length to savings.Estimate together
// with the length of the unoptimized (insertion-order) route.
package ecoroute
