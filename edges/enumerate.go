package edges

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlink/geom"
)

// Metric computes the weight of the edge between two points.
type Metric func(a, b geom.Point) float64

// Enumerate returns every unordered pair {i, j}, i < j, of points exactly once,
// weighted by geom.Distance. The result has len(points)·(len(points)−1)/2
// edges, in row-major (i, then j) order; it is not sorted.
//
// Enumerate panics with an error wrapping ErrNonFiniteDistance if any weight
// is NaN or infinite.
func Enumerate(points []geom.Point) []Edge {
	return EnumerateWith(points, geom.Distance)
}

// EnumerateWith is Enumerate with a caller-supplied metric.
//
// Error Conditions:
//   - panics with an error wrapping ErrNonFiniteDistance when metric returns
//     NaN or ±Inf for any pair. geom.Distance never does; only a custom
//     Metric can.
//
// Steps:
//  1. Fewer than two points yield an empty slice.
//  2. Allocate exactly n·(n−1)/2 edges.
//  3. For i < j, weight pair {i, j} with metric(points[i], points[j]).
//
// Complexity: O(n²) time and memory.
func EnumerateWith(points []geom.Point, metric Metric) []Edge {
	n := len(points)
	if n < 2 {
		return []Edge{}
	}

	out := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := metric(points[i], points[j])
			if math.IsNaN(w) || math.IsInf(w, 0) {
				panic(fmt.Errorf("%w: points %d (%v) and %d (%v)", ErrNonFiniteDistance, i, points[i], j, points[j]))
			}
			out = append(out, Edge{Weight: w, Pair: Pair{I: i, J: j}})
		}
	}

	return out
}
