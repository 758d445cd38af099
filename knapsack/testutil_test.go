// Package knapsack_test provides oracles and fixtures shared across the
// *_test.go files of this package.
package knapsack_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbnb/knapsack"
)

const (
	// epsTiny is the tolerance for comparing solver values to oracles.
	epsTiny = 1e-9

	// maxOracleItems caps exhaustive enumeration in property tests.
	maxOracleItems = 14
)

// scenario is one fixture from testdata/scenarios.yaml.
type scenario struct {
	Name      string    `yaml:"name"`
	Weights   []float64 `yaml:"weights"`
	Values    []float64 `yaml:"values"`
	Capacity  float64   `yaml:"capacity"`
	BestValue float64   `yaml:"best_value"`
	Selected  []int     `yaml:"selected"`
}

// loadScenarios reads testdata/scenarios.yaml.
func loadScenarios(t testing.TB) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Scenarios)

	return doc.Scenarios
}

// bruteForce enumerates all 2ⁿ subsets and returns the best feasible value.
func bruteForce(items []knapsack.Item, capacity float64) float64 {
	n := len(items)
	best := 0.0
	var mask, i int
	var w, v float64
	for mask = 0; mask < 1<<n; mask++ {
		w, v = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				v += items[i].Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// bestCompletion is bruteForce restricted to completions of a path over ranked items.
// ok is false when the path's own inclusions exceed capacity.
func bestCompletion(ranked []knapsack.Item, capacity float64, p knapsack.Path) (best float64, ok bool) {
	var fw, fv float64
	for _, b := range p.Branches() {
		if b.Included {
			fw += ranked[b.Item-1].Weight
			fv += ranked[b.Item-1].Value
		}
	}
	if fw > capacity {
		return 0, false
	}

	rest := ranked[p.Len():]

	return fv + bruteForce(rest, capacity-fw), true
}

// dpTable is the bottom-up table method for integral weights and capacity:
// F[i][j] = max(F[i-1][j], v_i + F[i-1][j-w_i]).
func dpTable(items []knapsack.Item, capacity int) float64 {
	n := len(items)
	F := make([][]float64, n+1)
	for i := range F {
		F[i] = make([]float64, capacity+1)
	}
	var i, j, wi int
	for i = 1; i <= n; i++ {
		wi = int(items[i-1].Weight)
		for j = 1; j <= capacity; j++ {
			F[i][j] = F[i-1][j]
			if j >= wi && items[i-1].Value+F[i-1][j-wi] > F[i][j] {
				F[i][j] = items[i-1].Value + F[i-1][j-wi]
			}
		}
	}

	return F[n][capacity]
}

// toItems zips parallel slices.
func toItems(weights, values []float64) []knapsack.Item {
	items := make([]knapsack.Item, len(weights))
	for i := range items {
		items[i] = knapsack.Item{Weight: weights[i], Value: values[i]}
	}

	return items
}

// genInstance returns a deterministic instance with an integral capacity of
// about half the total weight.
func genInstance(t testing.TB, n int, seed int64, correlated bool) ([]knapsack.Item, float64) {
	t.Helper()
	cfg := knapsack.DefaultGenerateConfig()
	cfg.Seed = seed
	cfg.Correlated = correlated
	items, err := knapsack.GenerateItems(n, cfg)
	require.NoError(t, err)

	return items, math.Floor(knapsack.HalfCapacity(items))
}

// sumSelected returns the weight and value of the selected input indices.
func sumSelected(items []knapsack.Item, selected []int) (w, v float64) {
	for _, i := range selected {
		w += items[i].Weight
		v += items[i].Value
	}

	return w, v
}
