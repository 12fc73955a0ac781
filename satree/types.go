package satree

import "github.com/katalvlaran/satree/point"

// Node is a single vertex of a built Tree. It owns its Neighbours; there
// are no parent back-pointers in the core.
type Node struct {
	// Point is the pivot this node represents.
	Point point.Point

	// Neighbours holds this node's children in construction (admission)
	// order. Order carries no query semantics; it is only observable via
	// DumpText.
	Neighbours []*Node

	// CoveringRadius is the maximum distance from Point to any point in
	// the subtree rooted here, or 0 for a leaf.
	CoveringRadius float64
}

// Tree is a rooted SA-Tree built once from a batch of points and
// thereafter read-only. Destroying a Tree releases every Node beneath it;
// no Node is shared between trees.
type Tree struct {
	Root *Node
	dim  int
	size int
}

// Len returns the number of points stored in the tree.
func (t *Tree) Len() int { return t.size }

// Dim returns the coordinate dimension shared by every point in the tree.
func (t *Tree) Dim() int { return t.dim }

// Neighbor pairs a point returned by KNN with its distance to the query.
type Neighbor struct {
	Point    point.Point
	Distance float64
}
