// Package builder provides helper functions for configuring edge-weight
// distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeight returns a WeightFn that always yields value.
// Negative values are allowed; they exercise Bellman-Ford.
func ConstantWeight(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeight returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min. If rng is nil, yields min so deterministic
// constructors stay deterministic.
func UniformWeight(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeight: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeight returns a WeightFn sampling integers uniformly in [min, max].
// Integer weights keep sums exact, which makes cross-algorithm comparisons
// independent of summation order. Panics if max < min.
func IntWeight(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeight: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
