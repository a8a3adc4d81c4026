// Package aco - colony configuration.
package aco

// Recognized defaults for every tunable. Exported so callers and tests can
// reference the canonical values instead of repeating literals.
const (
	// DefaultAnts is the number of tours constructed per iteration.
	DefaultAnts = 10

	// DefaultIterations is the fixed iteration budget of a run.
	DefaultIterations = 50

	// DefaultAlpha weights trust in accumulated pheromone.
	DefaultAlpha = 1.0

	// DefaultBeta weights trust in raw inverse-distance desirability.
	DefaultBeta = 2.0

	// DefaultEvaporation is the per-iteration trail decay fraction.
	DefaultEvaporation = 0.5

	// DefaultQ is the deposit constant: each ant adds Q/length per edge.
	DefaultQ = 100.0
)

// Options configures one optimization run.
//
// Fields:
//   - Ants        - tours constructed per iteration; must be > 0.
//   - Iterations  - iteration budget; must be > 0. No early stopping.
//   - Alpha       - pheromone exponent; must be > 0.
//   - Beta        - desirability (inverse distance) exponent; must be > 0.
//   - Evaporation - trail decay rate in [0, 1). A rate of 1 would collapse
//     all trails immediately (memoryless search) and is rejected.
//   - Q           - deposit constant; must be > 0.
//   - Seed        - RNG seed. Seed==0 selects a fixed default stream, so
//     the zero value is already reproducible; any other value is used
//     verbatim. There is no time-based mode.
//   - Workers     - cap on concurrent ant constructions within one
//     iteration. 0 means no cap (every ant fans out); must be ≥ 0.
//     The result does not depend on Workers.
//
// The zero value is NOT usable; start from DefaultOptions and override.
type Options struct {
	Ants        int
	Iterations  int
	Alpha       float64
	Beta        float64
	Evaporation float64
	Q           float64
	Seed        int64
	Workers     int
}

// DefaultOptions returns the recognized defaults: 10 ants, 50 iterations,
// Alpha=1, Beta=2, Evaporation=0.5, Q=100, deterministic seed, no worker cap.
func DefaultOptions() Options {
	return Options{
		Ants:        DefaultAnts,
		Iterations:  DefaultIterations,
		Alpha:       DefaultAlpha,
		Beta:        DefaultBeta,
		Evaporation: DefaultEvaporation,
		Q:           DefaultQ,
	}
}
