// Package dsu provides a disjoint-set forest (union-find) over the fixed
// universe of indices [0, n).
//
// What & Why
//
//   - A Forest partitions n elements into disjoint groups and answers "which
//     group is x in?" and "how big is that group?" in near-constant amortized
//     time. The linkage engine uses it to track which junction boxes are
//     already wired together while edges stream in shortest-first.
//
// Heuristics
//
//   - Path compression: Find walks to the root, then re-points every visited
//     node directly at the root. It is iterative (follow-then-relink), so deep
//     chains cannot exhaust the stack.
//   - Union by size: the root of the smaller group is attached under the root
//     of the larger one. Equal sizes attach y's root under x's root, so the
//     surviving root is always predictable.
//
// Invariants
//
//   - The parent relation is acyclic and Find always terminates.
//   - For every root r, size[r] equals the number of indices whose root is r.
//   - The sizes of all roots sum to n at all times.
//
// Errors
//
//   - ErrNegativeSize: New was called with n < 0.
//   - ErrIndexOutOfRange: an index outside [0, n) was passed to any query or
//     merge. It signals a construction bug upstream and is never retried.
//
// Complexity: O(α(n)) amortized per Find/Union, O(n) memory.
package dsu
