package knapsack

import (
	"fmt"
	"math"
)

// Item is one candidate for the knapsack. Weight and Value must be positive and finite.
type Item struct {
	Weight float64
	Value  float64
}

// Ratio returns the value per unit of weight.
func (it Item) Ratio() float64 { return it.Value / it.Weight }

// Node is a partial solution in the implicit state-space tree.
//
//   - Upper: value of a feasible packing that honours Path's decisions
//     (undecided items filled greedily by ratio).
//   - Cost:  optimistic bound, ≥ the best value of any completion of Path.
//   - Feasible: false when the items included by Path already exceed capacity;
//     such nodes carry Upper == Cost == -Inf and never become the incumbent.
//
// Nodes are values; nothing mutates them after the driver creates them.
type Node struct {
	Path     Path
	Upper    float64
	Cost     float64
	Feasible bool
}

// IsLeaf reports whether the node has decided all n items.
func (nd Node) IsLeaf(n int) bool { return nd.Path.Len() >= n }

// String renders the node the way the demo program reports it.
func (nd Node) String() string {
	if !nd.Feasible {
		return fmt.Sprintf("node{path=%s infeasible}", nd.Path)
	}

	return fmt.Sprintf("node{path=%s upper=%g cost=%g}", nd.Path, nd.Upper, nd.Cost)
}

// infeasibleNode builds the canonical dead node for path p.
func infeasibleNode(p Path) Node {
	return Node{Path: p, Upper: math.Inf(-1), Cost: math.Inf(-1), Feasible: false}
}

// Stats counts the work done by one solve.
type Stats struct {
	Iterations       int // nodes extracted from the frontier
	Created          int // nodes bounded (root included)
	Expanded         int // nodes whose two children were generated
	Pruned           int // nodes removed by PruneBelow
	Discarded        int // dominated nodes dropped on extraction
	IncumbentUpdates int
	MaxFrontier      int
}

// Result is the outcome of a solve.
type Result struct {
	// BestValue is the total value of Selected.
	BestValue float64

	// BestCost is the incumbent's optimistic bound at the time it was adopted.
	BestCost float64

	// Weight is the total weight of Selected (≤ capacity).
	Weight float64

	// Selected lists 0-based indices into the caller's input, ascending.
	Selected []int

	// Path holds the incumbent's decisions, in ranked order.
	Path Path

	// Order maps ranked position r to the caller's input index Order[r].
	Order []int

	// Optimal is false when a limit stopped the search before the frontier emptied.
	Optimal bool

	Stats Stats
}
