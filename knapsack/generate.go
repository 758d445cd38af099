// Package knapsack - deterministic instance generator.
//
// GenerateItems produces reproducible random instances for tests, benchmarks
// and demos. Weights and values are integral so sums are exact in float64.
//
// Determinism: same (n, cfg) ⇒ identical items on every platform. Seed 0
// maps to a fixed default seed; no time-based randomness anywhere.
package knapsack

import (
	"fmt"
	"math/rand"
)

// defaultGenSeed is used when GenerateConfig.Seed == 0.
const defaultGenSeed int64 = 1

// GenerateConfig controls GenerateItems.
//   - MaxWeight, MaxValue: inclusive upper bounds (≥ 1); lower bound is 1.
//   - Correlated: if true, value = weight + U[0, MaxValue/10], the classic
//     "strongly correlated" family that makes bounds weak and search long.
//   - Seed: RNG seed; 0 ⇒ defaultGenSeed.
type GenerateConfig struct {
	MaxWeight  int
	MaxValue   int
	Correlated bool
	Seed       int64
}

// DefaultGenerateConfig returns weights and values in [1, 100], uncorrelated, seed 0.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{MaxWeight: 100, MaxValue: 100}
}

// GenerateItems returns n random items. n must be ≥ 1 and the bounds ≥ 1,
// otherwise ErrOptionViolation is returned.
//
// Complexity: O(n).
func GenerateItems(n int, cfg GenerateConfig) ([]Item, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: item count must be positive (%d)", ErrOptionViolation, n)
	}
	if cfg.MaxWeight < 1 || cfg.MaxValue < 1 {
		return nil, fmt.Errorf("%w: MaxWeight and MaxValue must be ≥ 1 (%d, %d)",
			ErrOptionViolation, cfg.MaxWeight, cfg.MaxValue)
	}

	rng := rngFromSeed(cfg.Seed)
	items := make([]Item, n)
	var w, v int
	for i := range items {
		w = 1 + rng.Intn(cfg.MaxWeight)
		if cfg.Correlated {
			v = w + rng.Intn(cfg.MaxValue/10+1)
		} else {
			v = 1 + rng.Intn(cfg.MaxValue)
		}
		items[i] = Item{Weight: float64(w), Value: float64(v)}
	}

	return items, nil
}

// HalfCapacity returns half the total weight of items, the usual capacity
// for generated instances (roughly half the items fit).
func HalfCapacity(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Weight
	}

	return total / 2
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 ⇒ defaultGenSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultGenSeed
	}

	return rand.New(rand.NewSource(seed))
}
