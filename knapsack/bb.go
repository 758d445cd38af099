// Package knapsack - Branch-and-Bound search driver.
//
// Solve finds the most valuable subset of items whose total weight fits the
// capacity, using best-first Branch-and-Bound over the binary include/exclude
// tree of ranked items.
//
// Loop (RUNNING while the frontier is non-empty):
//  1. current = frontier.ExtractBest()   (highest Cost, FIFO among ties)
//  2. If current.Cost < bestValue−Eps, current is dominated: drop it.
//  3. If current.Upper ≥ bestValue, current becomes the incumbent and the
//     frontier is pruned below bestValue−Eps.
//  4. If current is not a leaf, both children (include / exclude the next
//     item) are bounded and inserted, whatever their bound.
//
// The prune threshold is the incumbent's achievable value, not its Cost:
// a live node with bestValue ≤ Cost < incumbent.Cost can still hold a better
// packing, so pruning at the incumbent's Cost would lose optimality.
//
// Limits: context cancellation, a wall-clock TimeLimit and MaxExpansions. On
// cutoff the incumbent found so far is returned with Optimal=false together
// with ctx.Err(), ErrTimeLimit or ErrExpansionLimit.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes; each costs O(n) to bound and O(log N) to queue.
//   - Memory: O(N·n) for N live nodes (each holds its own Path).
package knapsack

import (
	"slices"
	"time"

	"github.com/go-logr/logr"
)

// limitCheckMask spaces out context/deadline checks (every 256 iterations,
// starting with the first).
const limitCheckMask = 255

// Solve validates the parallel weights/values slices and capacity, ranks the
// items internally and runs the Branch-and-Bound search.
//
// Errors:
//   - *InputError (errors.Is ErrInvalidInput) for malformed arguments.
//   - ErrOptionViolation for invalid options.
//   - ErrTimeLimit, ErrExpansionLimit or the context error on cutoff; the
//     Result then holds the best packing found so far.
//
// The caller's slices are not modified.
func Solve(weights, values []float64, capacity float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if err := validateProblem(weights, values, capacity); err != nil {
		cfg.Recorder.RecordSolve(Stats{}, 0, err)
		return Result{}, err
	}

	items := make([]Item, len(weights))
	for i := range items {
		items[i] = Item{Weight: weights[i], Value: values[i]}
	}

	return solve(items, capacity, cfg)
}

// SolveItems is Solve for a slice of Items. Validation errors name the
// weights/values of the offending item.
func SolveItems(items []Item, capacity float64, opts ...Option) (Result, error) {
	weights := make([]float64, len(items))
	values := make([]float64, len(items))
	for i, it := range items {
		weights[i], values[i] = it.Weight, it.Value
	}

	return Solve(weights, values, capacity, opts...)
}

// solve runs one search over validated items. Every call owns a fresh
// engine, frontier and incumbent.
func solve(items []Item, capacity float64, cfg Options) (Result, error) {
	start := time.Now()

	ranked, order := Rank(items)
	bounds, err := NewBoundCalculator(ranked, capacity)
	if err != nil {
		return Result{}, err
	}

	e := &bbEngine{
		bounds:   bounds,
		order:    order,
		n:        len(ranked),
		eps:      cfg.Eps,
		opts:     cfg,
		log:      cfg.Logger,
		frontier: NewFrontier(2 * len(ranked)),
	}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(cfg.TimeLimit)
	}

	res, err := e.run()
	res.Order = order

	elapsed := time.Since(start)
	cfg.Recorder.RecordSolve(res.Stats, elapsed, err)
	e.log.V(1).Info("knapsack solve finished",
		"items", e.n,
		"capacity", capacity,
		"bestValue", res.BestValue,
		"optimal", res.Optimal,
		"iterations", res.Stats.Iterations,
		"created", res.Stats.Created,
		"pruned", res.Stats.Pruned,
		"elapsed", elapsed,
		"error", err,
	)

	return res, err
}

// bbEngine holds all state of one solve. The frontier and incumbent are the
// only mutable parts and are never shared between solves.
type bbEngine struct {
	bounds *BoundCalculator
	order  []int
	n      int
	eps    float64
	opts   Options
	log    logr.Logger

	useDeadline bool
	deadline    time.Time

	frontier *Frontier

	incumbent    Node
	hasIncumbent bool
	bestValue    float64
	bestCost     float64

	stats Stats
}

// run drives the best-first loop until the frontier empties or a limit trips.
func (e *bbEngine) run() (Result, error) {
	e.push(e.newNode(Path{}))

	var cur Node
	for e.frontier.Len() > 0 {
		if e.stats.Iterations&limitCheckMask == 0 {
			if err := e.checkLimits(); err != nil {
				return e.result(false), err
			}
		}

		cur, _ = e.frontier.ExtractBest()
		e.stats.Iterations++

		if cur.Cost < e.bestValue-e.eps {
			e.stats.Discarded++
			continue
		}
		if cur.Upper >= e.bestValue {
			e.adopt(cur)
		}
		if cur.IsLeaf(e.n) {
			continue
		}
		if e.opts.MaxExpansions > 0 && e.stats.Expanded >= e.opts.MaxExpansions {
			return e.result(false), ErrExpansionLimit
		}
		e.expand(cur)
	}

	return e.result(true), nil
}

// checkLimits reports context cancellation or an expired deadline.
func (e *bbEngine) checkLimits() error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// newNode bounds p and reports the node to OnNode.
func (e *bbEngine) newNode(p Path) Node {
	var nd Node
	upper, cost, feasible := e.bounds.Bound(p)
	if feasible {
		nd = Node{Path: p, Upper: upper, Cost: cost, Feasible: true}
	} else {
		nd = infeasibleNode(p)
	}
	e.stats.Created++
	e.opts.OnNode(nd)

	return nd
}

// push inserts nd and tracks the peak frontier size.
func (e *bbEngine) push(nd Node) {
	e.frontier.Insert(nd)
	if l := e.frontier.Len(); l > e.stats.MaxFrontier {
		e.stats.MaxFrontier = l
	}
}

// expand creates the include and exclude children of cur.
func (e *bbEngine) expand(cur Node) {
	e.push(e.newNode(cur.Path.Child(true)))
	e.push(e.newNode(cur.Path.Child(false)))
	e.stats.Expanded++
}

// adopt makes cur the incumbent and prunes dominated live nodes.
func (e *bbEngine) adopt(cur Node) {
	e.incumbent = cur
	e.hasIncumbent = true
	e.bestValue = cur.Upper
	e.bestCost = cur.Cost
	e.stats.IncumbentUpdates++
	e.opts.OnIncumbent(cur)

	threshold := e.bestValue - e.eps
	removed := e.frontier.PruneBelow(threshold)
	e.stats.Pruned += removed
	e.opts.OnPrune(threshold, removed)

	if lg := e.log.V(2); lg.Enabled() {
		lg.Info("incumbent updated",
			"path", cur.Path.String(),
			"upper", cur.Upper,
			"cost", cur.Cost,
			"pruned", removed,
			"live", e.frontier.Len(),
		)
	}
}

// result materialises the incumbent's packing in input indices.
func (e *bbEngine) result(optimal bool) Result {
	res := Result{Optimal: optimal, Stats: e.stats}
	if !e.hasIncumbent {
		return res
	}

	ranked, weight, value, ok := e.bounds.Pack(e.incumbent.Path)
	if !ok {
		return res
	}
	selected := make([]int, len(ranked))
	for i, r := range ranked {
		selected[i] = e.order[r]
	}
	slices.Sort(selected)

	res.BestValue = value
	res.BestCost = e.bestCost
	res.Weight = weight
	res.Selected = selected
	res.Path = e.incumbent.Path

	return res
}
