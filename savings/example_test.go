// Package savings_test provides a runnable example with a stable output.
package savings_test

import (
	"fmt"

	"github.com/katalvlaran/ecoroute/savings"
)

// ExampleEstimate reports the savings of halving a two-degree route.
func ExampleEstimate() {
	rep, err := savings.Estimate(2.0, 1.0)
	if err != nil {
		fmt.Println("estimate:", err)
		return
	}

	fmt.Printf("route: %.0f km -> %.0f km\n", rep.StaticKm, rep.OptimizedKm)
	fmt.Printf("saved: %.2f L fuel, %.2f h, %d trips\n", rep.FuelLiters, rep.TimeHours, rep.Trips)
	// Output:
	// route: 222 km -> 111 km
	// saved: 33.30 L fuel, 3.70 h, 2 trips
}
