package prim_kruskal

import (
	"math"
	"sort"

	"github.com/katalvlaran/salesman/matrix"
)

// Kruskal computes a Minimum Spanning Tree of the undirected graph described by
// the upper triangle of m. It returns the tree edges in the order they were
// accepted and their total weight.
//
// Steps:
//  1. Validate shape and weights (same sentinels as Prim).
//  2. Collect every finite edge (u,v) with u < v.
//  3. Sort edges by (Weight, U, V) for deterministic tie-breaking.
//  4. Union-find: accept an edge iff it joins two different components.
//  5. If fewer than n−1 edges were accepted → ErrDisconnected.
//
// Complexity: O(V² log V) time, O(V²) memory for the edge list.
func Kruskal(m matrix.Matrix) ([]Edge, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	w, n, err := matrix.Flatten(m)
	if err != nil {
		return nil, 0, ErrNonSquare
	}
	if n <= 1 {
		return []Edge{}, 0, nil
	}
	if err = scanWeights(w, n); err != nil {
		return nil, 0, err
	}

	// 2. Collect finite edges.
	edges := make([]Edge, 0, n*(n-1)/2)
	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if math.IsInf(w[u*n+v], 1) {
				continue
			}
			edges = append(edges, Edge{U: u, V: v, Weight: w[u*n+v]})
		}
	}

	// 3. Deterministic order.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	// 4. Union-find merge.
	dsu := newDisjointSet(n)
	tree := make([]Edge, 0, n-1)
	var (
		total float64
		e     Edge
	)
	for _, e = range edges {
		if dsu.union(e.U, e.V) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == n-1 {
				break
			}
		}
	}

	// 5. Connectivity check.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	var i int
	for i = range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}
