package edges

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge enumeration and the priority queue.
var (
	// ErrExhaustedEdges indicates the queue emptied before a result was reached.
	ErrExhaustedEdges = errors.New("edges: queue exhausted before termination")

	// ErrSelfPair indicates a pair whose two indices are equal.
	ErrSelfPair = errors.New("edges: pair endpoints must differ")

	// ErrNonFiniteDistance indicates an edge weight that is NaN or infinite.
	ErrNonFiniteDistance = errors.New("edges: non-finite distance")
)

// Pair is an unordered pair of point indices stored with I < J.
// Pair is comparable and can be used as a map key.
type Pair struct {
	I, J int
}

// NewPair returns the canonical Pair for a and b, in either order.
func NewPair(a, b int) (Pair, error) {
	if a == b {
		return Pair{}, fmt.Errorf("%w: %d", ErrSelfPair, a)
	}
	if a > b {
		a, b = b, a
	}

	return Pair{I: a, J: b}, nil
}

// Less orders pairs lexicographically by I, then J.
func (p Pair) Less(q Pair) bool {
	if p.I != q.I {
		return p.I < q.I
	}

	return p.J < q.J
}

// String renders the pair as "I-J".
func (p Pair) String() string { return fmt.Sprintf("%d-%d", p.I, p.J) }

// Edge is a weighted Pair.
type Edge struct {
	// Weight is the Euclidean distance between the two endpoints.
	Weight float64

	// Pair holds the canonical endpoint indices.
	Pair
}

// Less reports whether a sorts before b: smaller Weight first, and for equal
// weights the lexicographically smaller Pair first.
func Less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Pair.Less(b.Pair)
}
