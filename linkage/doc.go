// Package linkage wires junction boxes together shortest-link-first and
// observes the growing circuits along the way. It is Kruskal's minimum
// spanning forest construction, driven one edge at a time, with two places
// where the run may stop and report.
//
// Pipeline
//
//	[]geom.Point → edges.Enumerate → edges.Queue → Linker.Step → dsu.Forest
//	                                                     ↓
//	                                           Ledger of accepted pairs
//
// Every Step pops the globally smallest edge (ties broken by canonical pair),
// skips it if its pair is already in the Ledger, otherwise records the pair
// and unions both endpoints. A link whose endpoints were already connected is
// still accepted and still counts: it just does not merge anything.
//
// Modes
//
//   - ClusterProduct (bounded links): stop once the Ledger holds exactly the
//     link budget, then multiply the sizes of the K largest circuits
//     (cluster.Analyze, K defaults to 3).
//   - CompletingEdge (full connectivity): stop at the first accepted link
//     after which one circuit spans all N points, and multiply the chosen
//     coordinate (default X) of its two endpoints. That link is the last edge
//     Kruskal's algorithm adds to the minimum spanning tree.
//
// State machine
//
//	StateRunning ──(termination condition)──▶ StateDone
//	     └────────(queue empty)─────────────▶ StateFailed (ErrExhaustedEdges)
//
// Errors
//
//   - ErrNoPoints: the point set is empty.
//   - ErrInvalidBudget: negative link budget.
//   - ErrExhaustedEdges: the queue emptied before the mode's condition held,
//     e.g. a budget larger than N·(N−1)/2.
//   - ErrProductOverflow: the completing edge's coordinate product does not
//     fit in an int64.
//   - ErrNotRunning: Step called after the run finished.
//
// A Linker owns its forest, ledger and queue exclusively and is meant for a
// single goroutine and a single run.
//
// Complexity: O(N² log N) time and O(N²) memory, dominated by the edge queue.
package linkage
