// Package savings converts the gap between an unoptimized and an optimized
// closed-tour distance into operational savings: fuel liters, driving
// hours, and whole trips.
//
// Both inputs are expressed in coordinate-degree units (the aco package's
// output); a flat-area approximation of 111 km per degree converts them to
// kilometers before the derived metrics are computed. Every savings field
// is clamped to zero when the optimized route is not actually shorter -
// the report never goes negative.
//
// The constants are fixed fleet-level assumptions, not tunables: per-km
// fuel burn, average speed, and the distance threshold that amounts to one
// avoided collection trip.
package savings
