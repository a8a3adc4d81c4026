// Package savings_test contains unit tests for the savings estimator:
// proportionality, clamping, rounding, the named-metric mapping, and
// boundary rejection of malformed distances.
package savings_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoroute/savings"
)

func TestEstimate_PositiveSavings(t *testing.T) {
	// static 2°, optimized 1° ⇒ 222 km vs 111 km, delta 111 km.
	rep, err := savings.Estimate(2, 1)
	require.NoError(t, err)

	require.Equal(t, 222.0, rep.StaticKm)
	require.Equal(t, 111.0, rep.OptimizedKm)
	require.Equal(t, 33.3, rep.FuelLiters) // 111 km × 0.3 L/km
	require.Equal(t, 3.7, rep.TimeHours)   // 111 km ÷ 30 km/h
	require.Equal(t, 2, rep.Trips)         // floor(111 / 50)
}

func TestEstimate_ProportionalToDelta(t *testing.T) {
	small, err := savings.Estimate(1.1, 1.0)
	require.NoError(t, err)
	large, err := savings.Estimate(2.0, 1.0)
	require.NoError(t, err)

	require.Positive(t, small.FuelLiters)
	require.Positive(t, small.TimeHours)
	require.Greater(t, large.FuelLiters, small.FuelLiters)
	require.Greater(t, large.TimeHours, small.TimeHours)
}

func TestEstimate_NoImprovementClampsToZero(t *testing.T) {
	// Equal distances and a longer "optimized" route both report zero
	// savings - never negative - while the km fields stay truthful.
	for _, optimized := range []float64{2.0, 2.5} {
		rep, err := savings.Estimate(2.0, optimized)
		require.NoError(t, err)

		require.Zero(t, rep.FuelLiters)
		require.Zero(t, rep.TimeHours)
		require.Zero(t, rep.Trips)
		require.Equal(t, 222.0, rep.StaticKm)
		require.Equal(t, savingsRound2(optimized*savings.KmPerDegree), rep.OptimizedKm)
	}
}

func TestEstimate_ZeroInputs(t *testing.T) {
	rep, err := savings.Estimate(0, 0)
	require.NoError(t, err)
	require.Equal(t, savings.Report{}, rep)
}

func TestEstimate_TripsFloor(t *testing.T) {
	// Whole trips only: 20 km saved is none, 55 km is one, 120 km is two.
	under, err := savings.Estimate(20.0/savings.KmPerDegree, 0)
	require.NoError(t, err)
	require.Equal(t, 0, under.Trips)

	one, err := savings.Estimate(55.0/savings.KmPerDegree, 0)
	require.NoError(t, err)
	require.Equal(t, 1, one.Trips)

	two, err := savings.Estimate(120.0/savings.KmPerDegree, 0)
	require.NoError(t, err)
	require.Equal(t, 2, two.Trips)
}

func TestEstimate_RejectsBadDistances(t *testing.T) {
	bad := [][2]float64{
		{-1, 0},
		{0, -0.5},
		{math.NaN(), 1},
		{1, math.NaN()},
		{math.Inf(1), 1},
		{1, math.Inf(-1)},
	}
	for _, pair := range bad {
		_, err := savings.Estimate(pair[0], pair[1])
		require.ErrorIs(t, err, savings.ErrBadDistance, "inputs %v", pair)
	}
}

func TestReport_Metrics(t *testing.T) {
	rep, err := savings.Estimate(2, 1)
	require.NoError(t, err)

	m := rep.Metrics()
	require.Len(t, m, 5)
	require.Equal(t, rep.FuelLiters, m["Fuel Saved (Liters)"])
	require.Equal(t, rep.TimeHours, m["Time Saved (Hours)"])
	require.Equal(t, float64(rep.Trips), m["Trips Saved"])
	require.Equal(t, rep.StaticKm, m["Static Distance (km)"])
	require.Equal(t, rep.OptimizedKm, m["Optimized Distance (km)"])
}

// savingsRound2 mirrors the estimator's 2-decimal presentation rounding.
func savingsRound2(x float64) float64 {
	return math.Round(x*100) / 100
}
