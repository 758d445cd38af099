// Package knapsack - Search Frontier.
//
// The frontier is the set of live nodes. It is a binary max-heap keyed by
// Cost, with insertion sequence as a FIFO tie-break, so ExtractBest always
// returns the most promising node and equal bounds are served oldest first.
//
// Complexity:
//   - Insert, ExtractBest: O(log N).
//   - PruneBelow: O(N) filter + O(N) heapify.
package knapsack

import "container/heap"

// Frontier holds live nodes for one solve. It is not safe for concurrent use.
type Frontier struct {
	pq  nodePQ
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacityHint nodes.
func NewFrontier(capacityHint int) *Frontier {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Frontier{pq: make(nodePQ, 0, capacityHint)}
}

// Len returns the number of live nodes.
func (f *Frontier) Len() int { return f.pq.Len() }

// Insert adds n to the live set.
func (f *Frontier) Insert(n Node) {
	heap.Push(&f.pq, &frontierItem{node: n, seq: f.seq})
	f.seq++
}

// ExtractBest removes and returns the node with the highest Cost
// (earliest inserted among equals). ok is false when the frontier is empty.
func (f *Frontier) ExtractBest() (n Node, ok bool) {
	if f.pq.Len() == 0 {
		return Node{}, false
	}
	item := heap.Pop(&f.pq).(*frontierItem)

	return item.node, true
}

// PeekBest returns the node ExtractBest would return without removing it.
func (f *Frontier) PeekBest() (n Node, ok bool) {
	if f.pq.Len() == 0 {
		return Node{}, false
	}

	return f.pq[0].node, true
}

// PruneBelow removes every node with Cost < threshold and returns how many
// were removed. Removed nodes are gone for good.
func (f *Frontier) PruneBelow(threshold float64) int {
	kept := f.pq[:0]
	for _, it := range f.pq {
		if it.node.Cost < threshold {
			continue
		}
		kept = append(kept, it)
	}
	removed := len(f.pq) - len(kept)
	if removed == 0 {
		return 0
	}
	for i := len(kept); i < len(f.pq); i++ {
		f.pq[i] = nil
	}
	f.pq = kept
	heap.Init(&f.pq)

	return removed
}

// frontierItem is a live node plus its insertion sequence.
type frontierItem struct {
	node Node
	seq  uint64
}

// nodePQ is a max-heap of *frontierItem by node.Cost, then min seq.
type nodePQ []*frontierItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].node.Cost == pq[j].node.Cost {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].node.Cost > pq[j].node.Cost
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
