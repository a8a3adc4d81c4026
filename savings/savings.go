// Package savings - the estimator and its fixed conversion constants.
package savings

import (
	"errors"
	"math"
)

// Conversion constants. Flat-area fleet assumptions shared with the
// presentation layer; exported so reports stay explainable.
const (
	// KmPerDegree converts coordinate-degree distances to kilometers
	// (≈111 km per degree of latitude; flat-area approximation).
	KmPerDegree = 111.0

	// FuelLitersPerKm is the assumed collection-vehicle fuel burn.
	FuelLitersPerKm = 0.3

	// AvgSpeedKmh is the assumed average driving speed on a route.
	AvgSpeedKmh = 30.0

	// KmPerTrip is the distance that amounts to one avoided trip.
	KmPerTrip = 50.0
)

// ErrBadDistance is returned when either input distance is negative, NaN,
// or infinite.
var ErrBadDistance = errors.New("savings: distance must be a nonnegative finite number")

// Report holds the named metrics consumed by the presentation layer.
// All values are rounded to 2 decimals; savings fields are never negative.
type Report struct {
	// FuelLiters is the fuel saved by driving the shorter route.
	FuelLiters float64

	// TimeHours is the driving time saved at the assumed average speed.
	TimeHours float64

	// Trips is the number of whole avoided trips (floor of km saved over
	// KmPerTrip).
	Trips int

	// StaticKm and OptimizedKm report both route lengths in kilometers,
	// regardless of which one is shorter.
	StaticKm    float64
	OptimizedKm float64
}

// Estimate compares a static (insertion-order) closed-tour distance against
// an optimized one, both in coordinate-degree units, and derives the
// savings report.
//
// If the optimized distance is not strictly shorter, every savings field
// is zero - never negative - while StaticKm/OptimizedKm still report the
// converted lengths.
//
// Errors: ErrBadDistance for negative, NaN, or infinite inputs.
//
// Complexity: O(1).
func Estimate(staticDist, optimizedDist float64) (Report, error) {
	if !validDistance(staticDist) || !validDistance(optimizedDist) {
		return Report{}, ErrBadDistance
	}

	var (
		staticKm    = staticDist * KmPerDegree
		optimizedKm = optimizedDist * KmPerDegree
		deltaKm     = staticKm - optimizedKm
	)
	if deltaKm < 0 {
		deltaKm = 0
	}

	return Report{
		FuelLiters:  round2(deltaKm * FuelLitersPerKm),
		TimeHours:   round2(deltaKm / AvgSpeedKmh),
		Trips:       int(deltaKm / KmPerTrip),
		StaticKm:    round2(staticKm),
		OptimizedKm: round2(optimizedKm),
	}, nil
}

// Metrics returns the report as the named-metric mapping expected by the
// presentation layer. Trips is widened to float64 for uniformity.
func (r Report) Metrics() map[string]float64 {
	return map[string]float64{
		"Fuel Saved (Liters)":     r.FuelLiters,
		"Time Saved (Hours)":      r.TimeHours,
		"Trips Saved":             float64(r.Trips),
		"Static Distance (km)":    r.StaticKm,
		"Optimized Distance (km)": r.OptimizedKm,
	}
}

// validDistance accepts nonnegative finite values only.
func validDistance(d float64) bool {
	return d >= 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

// round2 rounds to 2 decimals - the report is a presentation contract.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
