package knapsack_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvbnb/knapsack"
)

// ExampleSolve packs the classic four-item instance into capacity 10.
func ExampleSolve() {
	res, err := knapsack.Solve(
		[]float64{7, 5, 4, 3},
		[]float64{42, 25, 40, 12},
		10,
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.BestValue, res.Selected, res.Weight, res.Optimal)
	// Output: 65 [1 2] 9 true
}

// ExampleRank shows the ratio order used by the search.
func ExampleRank() {
	items := []knapsack.Item{
		{Weight: 2, Value: 12},
		{Weight: 1, Value: 10},
		{Weight: 3, Value: 20},
		{Weight: 2, Value: 15},
	}
	_, order := knapsack.Rank(items)
	fmt.Println(order)
	// Output: [1 3 2 0]
}

// ExampleSolve_expansionLimit stops the search after a single expansion and
// still reports the incumbent found so far.
func ExampleSolve_expansionLimit() {
	res, err := knapsack.Solve(
		[]float64{2, 4, 6, 9},
		[]float64{10, 10, 12, 18},
		15,
		knapsack.WithMaxExpansions(1),
	)
	fmt.Println(err)
	fmt.Println(res.Optimal, res.BestValue > 0)
	// Output:
	// knapsack: expansion limit exceeded
	// false true
}
