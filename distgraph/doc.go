// Package distgraph resolves an edge-record table into an all-pairs
// shortest-distance matrix.
//
// Each input row (id_start, id_end, distance) describes a bidirectional
// connection; the resolver builds an undirected weighted graph and runs a
// Floyd–Warshall closure over it, returning a square symmetric
// matrix.Labeled indexed by the sorted node set.
//
// Policy:
//
//   - +Inf (math.Inf(1)) is the "no path" sentinel for node pairs in
//     disconnected components; the diagonal is always 0.
//   - Duplicate edges between the same pair follow the configured conflict
//     policy: last-write-wins (default), min-wins, or error-on-conflict.
//   - An empty edge table resolves to an empty 0×0 matrix, not an error.
//
// Complexity:
//
//	– Time:  O(V³) for the closure (fixed k→i→j loop order, deterministic)
//	– Space: O(V²) for the distance matrix
//
// This is the performance-sensitive path of the library for large node
// sets; every other tolltab transform is linear in input size.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight if an edge distance is negative (or NaN).
//	– ErrEdgeConflict   if WithErrorOnConflict is set and two records give
//	  the same pair different distances.
package distgraph
