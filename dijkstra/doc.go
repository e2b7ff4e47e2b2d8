// Package dijkstra provides Dijkstra's single-source shortest-path algorithm over
// dense weight matrices with non-negative entries.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source index to every
//     other index of an n×n matrix, treating entry (u,v) for u ≠ v as a directed
//     edge u→v. Diagonal entries are ignored (no self-loops).
//   - It relies on a min-heap (priority queue) keyed on tentative distance, with
//     ties broken by the lower vertex index so that runs are reproducible.
//   - AllPairs runs one search per source and collects the rows into a matrix.
//     The salesman shortest-path constructor uses it on the complete Euclidean
//     graph, where every shortest path is the direct edge; the search still
//     performs every relaxation and heap operation.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: also return the predecessor slice to rebuild each path.
//   - WithMaxDistance: stop exploring beyond a distance cap.
//   - WithInfEdgeThreshold: treat any entry ≥ threshold as a missing edge.
//     +Inf entries are always missing edges.
//
// Performance and complexity (dense input, V = n):
//
//   - Time:  O(V² log V) per source; each extracted vertex relaxes V−1 entries and
//     each successful relaxation pushes one heap item (lazy decrease-key).
//   - Space: O(V²) worst-case heap entries, O(V) for dist/prev/visited.
//   - AllPairs: V runs, O(V³ log V) time and an O(V²) result.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:        the matrix argument is nil.
//   - ErrNonSquare:        Rows() != Cols().
//   - ErrSourceOutOfRange: Source is not in [0, n).
//   - ErrNegativeWeight:   an off-diagonal entry is negative (O(V²) pre-scan, fail fast).
//   - ErrNaNWeight:        an off-diagonal entry is NaN.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option constructors.
//
// Thread safety:
//
//   - Each call allocates its own state. Concurrent calls are safe as long as
//     nobody mutates the matrix they share.
package dijkstra
