// Package knapsack - Bound Calculator.
//
// For a node whose Path decides items 1..k (ranked order):
//
//  1. Decided items keep their decision; undecided items k+1..n are
//     tentatively included.
//  2. If the decided-included items alone exceed capacity the node is
//     infeasible.
//  3. upper = fixed value + greedy fill of k+1..n in ranked order, skipping
//     items that do not fit. This is a real packing, so upper is achievable.
//  4. cost = fixed value + LP relaxation of k+1..n: whole items while they
//     fit, then residual·ratio of the first item that does not fit.
//
// Because k+1..n is a ranked suffix, the LP relaxation is the fractional
// optimum of the remaining subproblem, hence cost ≥ value of every
// completion of the path (and cost ≥ upper).
//
// Precondition: items are ranked by descending ratio. NewBoundCalculator
// asserts it and returns ErrNotRanked otherwise.
package knapsack

import (
	"math"
	"slices"
)

// BoundCalculator scores paths over a fixed, ranked item list and capacity.
// It is read-only after construction and safe for concurrent use.
type BoundCalculator struct {
	items    []Item
	capacity float64
}

// NewBoundCalculator copies ranked and binds it to capacity.
// Returns ErrNotRanked if ranked is not ordered by descending ratio.
func NewBoundCalculator(ranked []Item, capacity float64) (*BoundCalculator, error) {
	if !IsRanked(ranked) {
		return nil, ErrNotRanked
	}

	return &BoundCalculator{items: slices.Clone(ranked), capacity: capacity}, nil
}

// Len returns the number of items.
func (b *BoundCalculator) Len() int { return len(b.items) }

// Capacity returns the knapsack capacity.
func (b *BoundCalculator) Capacity() float64 { return b.capacity }

// Bound returns (upper, cost) for p. Infeasible paths return (-Inf, -Inf, false).
//
// Complexity: O(n).
func (b *BoundCalculator) Bound(p Path) (upper, cost float64, feasible bool) {
	w, v := b.fixed(p)
	if w > b.capacity {
		return math.Inf(-1), math.Inf(-1), false
	}

	upper = v + b.fill(p.Len(), w, nil)
	cost = v + b.relax(p.Len(), w)
	// Guards float rounding; mathematically LP ≥ greedy already.
	if cost < upper {
		cost = upper
	}

	return upper, cost, true
}

// Pack returns the 0-based ranked indices of the packing that realises upper
// for p, with its total weight and value. ok is false for infeasible paths.
//
// Complexity: O(n).
func (b *BoundCalculator) Pack(p Path) (selected []int, weight, value float64, ok bool) {
	w, v := b.fixed(p)
	if w > b.capacity {
		return nil, 0, 0, false
	}
	for _, br := range p.branches {
		if br.Included {
			selected = append(selected, br.Item-1)
		}
	}

	gained := b.fill(p.Len(), w, func(i int) {
		selected = append(selected, i)
		w += b.items[i].Weight
	})

	return selected, w, v + gained, true
}

// fixed sums weight and value of the decided-included items.
func (b *BoundCalculator) fixed(p Path) (w, v float64) {
	for _, br := range p.branches {
		if br.Included {
			it := b.items[br.Item-1]
			w += it.Weight
			v += it.Value
		}
	}

	return w, v
}

// fill greedily adds items k..n-1 (0-based) that still fit on top of weight w,
// reporting each taken index to take (if non-nil). Returns the value gained.
func (b *BoundCalculator) fill(k int, w float64, take func(i int)) float64 {
	var gained float64
	for i := k; i < len(b.items); i++ {
		it := b.items[i]
		if w+it.Weight > b.capacity {
			continue
		}
		w += it.Weight
		gained += it.Value
		if take != nil {
			take(i)
		}
	}

	return gained
}

// relax is the LP relaxation of items k..n-1 on top of weight w.
func (b *BoundCalculator) relax(k int, w float64) float64 {
	var gained float64
	for i := k; i < len(b.items); i++ {
		it := b.items[i]
		if w+it.Weight <= b.capacity {
			w += it.Weight
			gained += it.Value
			continue
		}

		return gained + (b.capacity-w)*it.Ratio()
	}

	return gained
}
