package satree

import (
	"sort"

	"github.com/katalvlaran/satree/point"
)

// Build constructs a Tree from a batch of points.
//
// Pivot selection: the root pivot is the last point of the batch, and
// BuildSubtree recurses on the remaining points in their original relative
// order. This matches the canonical construction traces the property
// tests hold the tree to (see DESIGN.md, "root pivot selection") even
// though the narrative description of the reference algorithm speaks of
// "the first point" — the worked traces are the authoritative contract.
//
// Build fails with ErrEmptyInput if points is empty, or with
// point.ErrDimensionMismatch as soon as two points of differing dimension
// are compared.
func Build(points []point.Point) (*Tree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	last := len(points) - 1
	rootPoint := points[last]
	rest := make([]point.Point, last)
	copy(rest, points[:last])

	root := &Node{Point: rootPoint}
	if err := buildSubtree(root, rest); err != nil {
		return nil, err
	}

	return &Tree{Root: root, dim: rootPoint.Dim(), size: len(points)}, nil
}

// scoredPoint pairs a candidate point with its distance to the current
// pivot, precomputed once before sorting and neighbour admission.
type scoredPoint struct {
	p point.Point
	d float64
}

// buildSubtree builds the neighbour set and descendants of pivot node a
// from the bag S, per the SA-Tree neighbour admission and Voronoi
// assignment rules.
func buildSubtree(a *Node, S []point.Point) error {
	if len(S) == 0 {
		a.CoveringRadius = 0

		return nil
	}

	scored := make([]scoredPoint, len(S))
	for i, p := range S {
		d, err := point.Distance(a.Point, p)
		if err != nil {
			return err
		}
		scored[i] = scoredPoint{p: p, d: d}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].d < scored[j].d })

	// Every point in S is, by construction, a descendant of a (either an
	// admitted neighbour or assigned to one below); the covering radius
	// is therefore exactly the largest distance already computed above.
	a.CoveringRadius = scored[len(scored)-1].d

	var neighbours []*Node
	remaining := make([]scoredPoint, 0, len(scored))
	for _, c := range scored {
		admitted := true
		for _, nb := range neighbours {
			dNbC, err := point.Distance(nb.Point, c.p)
			if err != nil {
				return err
			}
			if !(c.d < dNbC) {
				admitted = false

				break
			}
		}
		if admitted {
			neighbours = append(neighbours, &Node{Point: c.p})
		} else {
			remaining = append(remaining, c)
		}
	}
	a.Neighbours = neighbours

	buckets := make([][]point.Point, len(neighbours))
	for _, c := range remaining {
		best := -1
		var bestD float64
		for i, nb := range neighbours {
			d, err := point.Distance(c.p, nb.Point)
			if err != nil {
				return err
			}
			if best == -1 || d < bestD {
				best = i
				bestD = d
			}
		}
		buckets[best] = append(buckets[best], c.p)
	}

	for i, nb := range neighbours {
		if err := buildSubtree(nb, buckets[i]); err != nil {
			return err
		}
	}

	return nil
}
