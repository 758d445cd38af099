// Package knapsack - Item Ranker.
//
// The LP bound in bound.go is only valid when items are ordered by
// descending value/weight ratio: v1/w1 ≥ v2/w2 ≥ … ≥ vn/wn.
// Ranking is stable (ties keep input order) so solves are reproducible,
// and ranking an already-ranked list is the identity permutation.
package knapsack

import (
	"cmp"
	"slices"
)

// Rank returns items ordered by descending ratio together with the
// permutation order, where ranked[r] == items[order[r]].
// The input slice is not modified.
//
// Complexity: O(n log n).
func Rank(items []Item) (ranked []Item, order []int) {
	order = rankOrder(len(items), func(i int) float64 { return items[i].Ratio() })
	ranked = make([]Item, len(items))
	for r, i := range order {
		ranked[r] = items[i]
	}

	return ranked, order
}

// RankSlices reorders weights and values in lockstep so that values[i]/weights[i]
// is non-increasing, and returns the applied permutation (new position r held
// input index order[r]). Mismatched lengths leave both slices untouched and return nil.
//
// Complexity: O(n log n) time, O(n) extra space.
func RankSlices(weights, values []float64) []int {
	if len(weights) != len(values) {
		return nil
	}
	order := rankOrder(len(weights), func(i int) float64 { return values[i] / weights[i] })

	w := make([]float64, len(weights))
	v := make([]float64, len(values))
	for r, i := range order {
		w[r], v[r] = weights[i], values[i]
	}
	copy(weights, w)
	copy(values, v)

	return order
}

// IsRanked reports whether items are ordered by non-increasing ratio.
//
// Complexity: O(n).
func IsRanked(items []Item) bool {
	for i := 1; i < len(items); i++ {
		if items[i].Ratio() > items[i-1].Ratio() {
			return false
		}
	}

	return true
}

// rankOrder returns the stable descending-ratio permutation of 0..n-1.
func rankOrder(n int, ratio func(i int) float64) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(ratio(b), ratio(a))
	})

	return order
}
