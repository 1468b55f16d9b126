// Package lvlink is an in-memory engine for wiring 3-D junction boxes
// together shortest-link-first and watching the circuits grow.
//
// What is lvlink?
//
//	A small, zero-service library built around one idea: stream every pair of
//	points in ascending Euclidean distance into a disjoint-set forest, the
//	way Kruskal's algorithm builds a minimum spanning tree, and stop to look
//	at the forest at well-defined moments.
//
// Subpackages:
//
//	geom/          — Point, Axis, Euclidean distance, "x,y,z" loader
//	dsu/           — disjoint-set forest: path compression + union by size
//	edges/         — canonical pairs, full pair enumeration, min-priority queue
//	cluster/       — top-K largest components and their product
//	linkage/       — the Linker state machine and its two run modes
//	config/        — YAML run configuration
//	cmd/junctions/ — command-line front end
//
// Run modes:
//
//   - linkage.ClusterProduct: accept exactly K shortest links, then multiply
//     the sizes of the three largest circuits.
//   - linkage.CompletingEdge: keep linking until one circuit spans every
//     point and report the link that closed it.
//
// Determinism: equal distances are ordered by their canonical index pair, so
// identical inputs always produce identical answers.
//
// Scale: pair enumeration is exhaustive, O(N²) time and memory.
package lvlink
