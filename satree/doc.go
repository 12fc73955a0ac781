// Package satree implements a Spatial Approximation Tree (SA-Tree): an
// in-memory metric-space index over a static set of points under the
// Euclidean metric. Build the tree once from a batch of points, then issue
// any number of read-only range or k-nearest-neighbour queries against it.
//
// Overview:
//
//   - Construction recursively partitions a point set into a pivot and a
//     small set of "neighbour" pivots chosen so that every neighbour is
//     closer to the current pivot than to any other neighbour already
//     chosen (the SA-Tree property). Points that fail that admission test
//     become descendants of whichever neighbour they are closest to
//     (a Voronoi-like assignment), and are recursed into in turn.
//   - Range search does a pruned depth-first walk: a subtree is skipped
//     once its covering radius proves no point in it can satisfy the
//     query, or once the SA-Tree digression bound proves the same.
//   - k-NN search is a best-first traversal driven by two priority
//     queues — a bounded max-heap holding the current k best candidates,
//     and a min-heap frontier of unexplored subtrees ordered by an
//     admissible lower bound on the distance any of their points could
//     achieve.
//
// When to use:
//
//   - Any application that builds a point index once from a static batch
//     and then runs many similarity queries against it — nearest-neighbour
//     classification, duplicate/near-duplicate detection, spatial joins.
//
// Complexity:
//
//   - Build:       O(n^2) worst case (pivot selection scans the remaining
//     bag at every level); typically much better on well-distributed data.
//   - RangeSearch: sublinear in practice via covering-radius and digression
//     pruning; O(n) worst case on adversarial layouts.
//   - KNN:         sublinear in practice via the lower-bound frontier;
//     O(n log n) worst case.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput:          Build was called with zero points.
//   - ErrInvalidRadius:       RangeSearch was called with radius < 0 or NaN.
//   - ErrInvalidK:            KNN was called with k < 0.
//   - point.ErrDimensionMismatch: a query or input point's dimension does
//     not match the tree's dimension.
//
// Thread safety:
//
//   - A *Tree is immutable after Build returns. Concurrent RangeSearch and
//     KNN calls against the same *Tree from multiple goroutines are safe:
//     both allocate query-local frontiers and result heaps and touch no
//     shared mutable state.
//
// See also:
//
//   - point.Point / point.Distance: the coordinate type and metric this
//     package indexes.
package satree
