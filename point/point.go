// Package point defines the fixed-dimension real vector and the Euclidean
// metric that the satree package indexes.
package point

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch indicates that two points were compared with
// different numbers of coordinates.
var ErrDimensionMismatch = errors.New("point: dimension mismatch")

// Point is an immutable fixed-length sequence of real coordinates.
// Two points are equal iff coordinate-wise equal.
type Point []float64

// New builds a Point from the given coordinates.
func New(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)

	return p
}

// Dim returns the dimension of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Equal reports whether a and b have identical coordinates.
func Equal(a, b Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Distance computes the Euclidean distance between a and b via gonum's
// general Lp-norm helper with L=2. Returns ErrDimensionMismatch if a and b
// do not share a dimension.
func Distance(a, b Point) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 2), nil
}
