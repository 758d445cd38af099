// Package knapsack solves the 0/1 knapsack problem exactly with best-first
// Branch-and-Bound.
//
// Overview:
//
//   - Items are ranked by descending value/weight ratio (Rank, RankSlices).
//   - Each node of the implicit include/exclude tree is scored by a
//     BoundCalculator: Upper is the value of a real packing that honours the
//     node's decisions, Cost is the LP-relaxation bound on every completion.
//   - A Frontier of live nodes hands out the node with the highest Cost
//     (FIFO among ties) and drops nodes that can no longer beat the incumbent.
//   - Solve drives the loop until the frontier is empty.
//
// API reference:
//
//	func Solve(weights, values []float64, capacity float64, opts ...Option) (Result, error)
//	func SolveItems(items []Item, capacity float64, opts ...Option) (Result, error)
//
//	  - weights, values: equal-length, non-empty, positive and finite.
//	  - capacity:        positive and finite.
//	  - opts:
//	      • WithContext(ctx)         cancellation.
//	      • WithTimeLimit(d)         wall-clock budget for the search loop.
//	      • WithMaxExpansions(n)     expansion budget.
//	      • WithEps(eps)             pruning tolerance (default 1e-9).
//	      • WithLogger(logr.Logger)  V(1) summaries, V(2) incumbent updates.
//	      • WithRecorder(Recorder)   per-solve statistics (see package metrics).
//	      • WithOnNode / WithOnIncumbent / WithOnPrune  observation hooks.
//
// Result.Selected holds 0-based indices into the caller's input; Result.Path
// holds the incumbent's decisions in ranked order (Result.Order maps back).
//
// Errors (sentinel):
//
//   - ErrInvalidInput:    malformed arguments; the error is an *InputError
//     naming the argument and, for per-item failures, the index.
//   - ErrNotRanked:       NewBoundCalculator got items out of ratio order.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - ErrTimeLimit, ErrExpansionLimit: a budget was exhausted; the Result
//     still carries the best packing found so far (Optimal == false).
//
// Complexity:
//
//   - Worst case O(2ⁿ) nodes, O(n) per bound, O(log N) per frontier operation.
//     The LP bound prunes most of the tree on typical instances.
//
// Thread safety:
//
//   - Every solve owns its frontier and incumbent; concurrent solves are safe.
//   - A Frontier on its own is not safe for concurrent use.
//
// Example:
//
//	res, err := knapsack.Solve(
//	    []float64{7, 5, 4, 3},
//	    []float64{42, 25, 40, 12},
//	    10,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.BestValue, res.Selected) // 65 [1 2]
package knapsack
