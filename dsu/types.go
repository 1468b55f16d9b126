package dsu

import "errors"

// Sentinel errors for dsu operations.
var (
	// ErrNegativeSize indicates New was asked for a negative number of elements.
	ErrNegativeSize = errors.New("dsu: negative forest size")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("dsu: index out of range")
)

// Forest is a disjoint-set forest over the indices [0, n).
//
// parent[i] is the immediate ancestor of i (parent[r] == r at a root).
// size[r] is meaningful only while r is a root.
// count is the number of distinct groups.
//
// A Forest is not safe for concurrent use: Find mutates parent pointers.
type Forest struct {
	parent []int
	size   []int
	count  int
}
