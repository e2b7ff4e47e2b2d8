// Package prim_kruskal defines sentinel errors and shared types for minimum
// spanning tree computation over dense, symmetric weight matrices.
//
// Prim grows a single tree from a root and reports it as a parent slice, which
// is the shape the salesman MST constructor walks in preorder. Kruskal sorts all
// edges and merges components with union-find; it is kept as an independent
// oracle for the total tree weight.
//
// Complexity: O(V² log V) for Prim on a dense matrix (lazy heap),
// O(V² log V) for Kruskal (sorting V² edges dominates).
package prim_kruskal

import "errors"

// ErrNilMatrix indicates that a nil matrix was passed to an MST algorithm.
var ErrNilMatrix = errors.New("prim_kruskal: matrix is nil")

// ErrNonSquare indicates that the weight matrix is not n×n.
var ErrNonSquare = errors.New("prim_kruskal: matrix is not square")

// ErrRootOutOfRange indicates that Prim's root index is outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root index out of range")

// ErrNegativeWeight indicates that an edge weight is negative or NaN.
var ErrNegativeWeight = errors.New("prim_kruskal: negative or NaN edge weight")

// ErrDisconnected indicates that a spanning tree covering all vertices cannot be
// formed because some vertices are only joined by +Inf (missing) edges.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// NoParent marks the root in a parent slice.
const NoParent = -1

// Edge is an undirected tree edge between vertex indices U < V.
type Edge struct {
	U      int
	V      int
	Weight float64
}
