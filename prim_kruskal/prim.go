package prim_kruskal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// Prim computes a Minimum Spanning Tree of the undirected graph described by the
// symmetric weight matrix m, growing it from root with a min-heap.
//
// Returns:
//   - parent: parent[v] is v's parent in the tree, NoParent for root.
//   - weight: the total weight of the tree.
//
// Error Conditions:
//   - ErrNilMatrix      : m is nil.
//   - ErrNonSquare      : m is not n×n.
//   - ErrRootOutOfRange : root ∉ [0, n) for n ≥ 1.
//   - ErrNegativeWeight : an off-diagonal entry is negative or NaN.
//   - ErrDisconnected   : some vertex cannot be reached through finite edges.
//
// Steps:
//  1. Validate shape, root and weights.
//  2. Initialize key[v] = +Inf, parent[v] = NoParent; key[root] = 0 and push root.
//  3. While vertices remain outside the tree:
//     a. Pop the smallest (key, index) entry; skip it if already included (stale).
//     b. Include it and add key to the total weight.
//     c. For every not-yet-included v with w(u,v) < key[v]: update key/parent, push (v, key).
//  4. If the heap runs dry before all vertices are included → ErrDisconnected.
//
// Ties between equal keys resolve to the lower vertex index; relaxation only
// happens on strict improvement, so the first discovered edge wins.
//
// An empty matrix yields an empty tree and no error.
//
// Complexity: O(V² log V) time, O(V²) worst-case heap memory.
func Prim(m matrix.Matrix, root int) ([]int, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	w, n, err := matrix.Flatten(m)
	if err != nil {
		return nil, 0, ErrNonSquare
	}
	if n == 0 {
		return []int{}, 0, nil
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	if err = scanWeights(w, n); err != nil {
		return nil, 0, err
	}

	// 2. Initialize key, parent and the inclusion set.
	var (
		key      = make([]float64, n)
		parent   = make([]int, n)
		inTree   = make([]bool, n)
		pq       = make(keyPQ, 0, n)
		included int
		total    float64
		v        int
	)
	for v = 0; v < n; v++ {
		key[v] = math.Inf(1)
		parent[v] = NoParent
	}
	key[root] = 0
	heap.Init(&pq)
	heap.Push(&pq, keyItem{v: root, key: 0})

	// 3. Extract-min / relax loop.
	var (
		item keyItem
		row  []float64
		wt   float64
	)
	for pq.Len() > 0 && included < n {
		item = heap.Pop(&pq).(keyItem)
		if inTree[item.v] {
			continue // stale entry
		}
		inTree[item.v] = true
		included++
		total += item.key

		row = w[item.v*n : (item.v+1)*n]
		for v = 0; v < n; v++ {
			if inTree[v] || v == item.v {
				continue
			}
			wt = row[v]
			if wt < key[v] {
				key[v] = wt
				parent[v] = item.v
				heap.Push(&pq, keyItem{v: v, key: wt})
			}
		}
	}

	// 4. Every vertex must have joined the tree.
	if included < n {
		return nil, 0, ErrDisconnected
	}

	return parent, total, nil
}

// scanWeights rejects negative and NaN off-diagonal entries.
func scanWeights(w []float64, n int) error {
	var (
		u, v int
		x    float64
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			x = w[u*n+v]
			if math.IsNaN(x) || x < 0 {
				return fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, u, v, x)
			}
		}
	}

	return nil
}

// keyItem is a (vertex, key) candidate in Prim's priority queue.
type keyItem struct {
	v   int
	key float64
}

// keyPQ implements heap.Interface for a min-heap of keyItem ordered by key, then index.
type keyPQ []keyItem

// Len returns the number of items in the priority queue.
func (pq keyPQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq keyPQ) Less(i, j int) bool {
	if pq[i].key == pq[j].key {
		return pq[i].v < pq[j].v
	}

	return pq[i].key < pq[j].key
}

// Swap swaps elements at indices i and j.
func (pq keyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new keyItem to the heap. Called by heap.Push.
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(keyItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
