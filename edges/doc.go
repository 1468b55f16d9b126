// Package edges turns a point set into the globally sorted edge stream that
// drives the linkage engine.
//
// What:
//
//   - Pair: an unordered pair of point indices in canonical form (I < J).
//   - Edge: a Pair weighted by the Euclidean distance of its endpoints.
//   - Enumerate: every pair of a point set exactly once, N·(N−1)/2 edges.
//   - Queue: a min-heap yielding the smallest remaining edge on each PopMin.
//
// Ordering:
//
//	Edges are ordered by Weight first. Equal weights fall back to comparing
//	the canonical pairs lexicographically (I, then J), so two runs over the
//	same input always pop edges in the same order, even when several pairs
//	sit at exactly the same distance.
//
// Errors:
//
//   - ErrExhaustedEdges: PopMin on an empty queue.
//   - ErrSelfPair: NewPair with identical indices.
//   - ErrNonFiniteDistance: an enumerated weight is NaN or ±Inf. This is an
//     invariant violation (input escaped validation) and Enumerate panics with
//     an error wrapping it instead of returning it.
//
// Complexity:
//
//   - Enumerate: O(N²) time and memory.
//   - NewQueue:  O(E) heapify; PopMin/Push: O(log E).
package edges
