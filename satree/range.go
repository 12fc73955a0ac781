package satree

import (
	"math"

	"github.com/katalvlaran/satree/point"
)

// RangeSearch returns some point p stored in the tree with dist(query, p)
// <= radius, or ok == false if no such point exists. It is not required to
// return all qualifying points, nor the closest one — it is a membership
// witness query — but it is deterministic for a given tree and query.
//
// Fails with ErrInvalidRadius if radius is negative or NaN.
func (t *Tree) RangeSearch(query point.Point, radius float64) (point.Point, bool, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, false, ErrInvalidRadius
	}
	if t == nil || t.Root == nil {
		return nil, false, nil
	}

	return rangeSearchNode(t.Root, query, radius, math.Inf(1))
}

// rangeSearchNode implements the pruned DFS with digression bound
// described by the SA-Tree property: digression tracks the smallest
// dist(query, pivot) observed along the current ancestor chain, and bounds
// how far off the true nearest path a child's pivot may be.
func rangeSearchNode(a *Node, query point.Point, radius, digression float64) (point.Point, bool, error) {
	dA, err := point.Distance(query, a.Point)
	if err != nil {
		return nil, false, err
	}
	if dA <= radius {
		return a.Point, true, nil
	}
	if dA < digression {
		digression = dA
	}

	for _, c := range a.Neighbours {
		dC, err := point.Distance(query, c.Point)
		if err != nil {
			return nil, false, err
		}
		if dC > c.CoveringRadius+radius {
			continue // covering-radius prune: no point in c's subtree can qualify
		}
		if dC > 2*digression+radius {
			continue // SA-Tree digression prune
		}
		if p, ok, err := rangeSearchNode(c, query, radius, digression); err != nil {
			return nil, false, err
		} else if ok {
			return p, true, nil
		}
	}

	return nil, false, nil
}
