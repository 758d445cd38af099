// Package lvbnb is a small, dependency-light playground for exact 0/1
// knapsack optimisation by best-first Branch-and-Bound.
//
// What is inside?
//
//	knapsack/   item ranking, LP-relaxation bounds, the best-first frontier
//	            and the Solve driver with limits, hooks and logr logging
//	metrics/    Prometheus implementation of knapsack.Recorder
//	examples/   runnable demo on the classic hardcoded instances
//
// Quick example:
//
//	res, _ := knapsack.Solve(
//		[]float64{7, 5, 4, 3},    // weights
//		[]float64{42, 25, 40, 12}, // values
//		10,                        // capacity
//	)
//	// res.BestValue == 65, res.Selected == [1 2]
//
// The search explores include/exclude decisions over items ranked by
// value/weight ratio, always expanding the live node with the highest bound
// and pruning every node that can no longer beat the incumbent.
//
//	go get github.com/katalvlaran/lvbnb/knapsack
package lvbnb
