package cluster

import "errors"

// ErrInvalidK indicates a TopK capacity below 1.
var ErrInvalidK = errors.New("cluster: k must be at least 1")

// DefaultK is the number of largest components multiplied by default.
const DefaultK = 3

// Result is the outcome of Analyze.
type Result struct {
	// Sizes holds the K largest component sizes in descending order.
	// It is shorter than K when the forest has fewer components.
	Sizes []int

	// Product is the product of Sizes (1 when Sizes is empty).
	Product int

	// Components is the number of distinct components in the forest.
	Components int
}
