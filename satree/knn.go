package satree

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/satree/point"
)

// KNN returns the k points of the tree with smallest dist(query, ·), sorted
// ascending by distance. If the tree holds fewer than k points, the
// shorter sorted sequence is returned. k == 0 returns an empty slice.
//
// Fails with ErrInvalidK if k is negative.
//
// Algorithm: best-first traversal (DESIGN.md / package doc) driven by a
// frontier min-heap keyed on the admissible lower bound
// lb(a) = max(0, dist(query,a.Point) - a.CoveringRadius), and a bounded
// max-heap result set of size <= k that yields the current worst
// candidate for eviction and the dynamic search radius tau.
func (t *Tree) KNN(query point.Point, k int) ([]Neighbor, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if k == 0 || t == nil || t.Root == nil {
		return []Neighbor{}, nil
	}

	dRoot, err := point.Distance(query, t.Root.Point)
	if err != nil {
		return nil, err
	}

	frontier := &frontierHeap{{node: t.Root, lb: lowerBound(dRoot, t.Root.CoveringRadius)}}
	heap.Init(frontier)

	results := &resultHeap{}
	heap.Init(results)

	tau := math.Inf(1)

	for frontier.Len() > 0 {
		if (*frontier)[0].lb > tau {
			break
		}
		item := heap.Pop(frontier).(frontierItem)
		a := item.node

		dA, err := point.Distance(query, a.Point)
		if err != nil {
			return nil, err
		}

		if results.Len() < k || dA < tau {
			heap.Push(results, resultItem{p: a.Point, d: dA})
			if results.Len() > k {
				heap.Pop(results)
			}
			if results.Len() == k {
				tau = (*results)[0].d
			}
		}

		for _, c := range a.Neighbours {
			dC, err := point.Distance(query, c.Point)
			if err != nil {
				return nil, err
			}
			lb := lowerBound(dC, c.CoveringRadius)
			if lb <= tau {
				heap.Push(frontier, frontierItem{node: c, lb: lb})
			}
		}
	}

	n := results.Len()
	out := make([]Neighbor, n)
	for i := n - 1; i >= 0; i-- {
		item := heap.Pop(results).(resultItem)
		out[i] = Neighbor{Point: item.p, Distance: item.d}
	}

	return out, nil
}

// lowerBound is the admissible minimum distance any point in a subtree
// rooted at a pivot dA away from the query, with covering radius cr, could
// achieve.
func lowerBound(dA, cr float64) float64 {
	return math.Max(0, dA-cr)
}

// resultItem is a candidate held in the bounded k-NN result set.
type resultItem struct {
	p point.Point
	d float64
}

// resultHeap is a max-heap of resultItem ordered by descending distance,
// so the current worst candidate sits at the root and can be evicted in
// O(log k) once the result set grows past k.
type resultHeap []resultItem

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].d > h[j].d }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(resultItem)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontierItem is a subtree awaiting exploration, keyed by its lower
// bound on the distance any of its points could achieve to the query.
type frontierItem struct {
	node *Node
	lb   float64
}

// frontierHeap is a min-heap of frontierItem ordered by ascending lower
// bound, so the most promising unexplored subtree is popped first.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].lb < h[j].lb }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
