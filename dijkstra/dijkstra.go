// Package dijkstra implements Dijkstra's shortest-path algorithm on dense weight matrices.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all entries (O(V²)) to detect negative or NaN
//     weights and fail fast.
//   - We treat any entry ≥ InfEdgeThreshold (and every +Inf entry) as a missing edge.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of the weight matrix m.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source to v (+Inf if unreachable).
//   - prev: optional predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     prev[Source] and prev[unreachable] are NoPredecessor.
//   - err:  error if inputs are invalid or if a negative/NaN weight is detected.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. m must be square (ErrNonSquare).
//  3. Source must be in [0, n) (ErrSourceOutOfRange).
//  4. No off-diagonal entry may be negative (ErrNegativeWeight) or NaN (ErrNaNWeight).
//
// Complexity:
//
//   - Time:  O(V² log V)
//   - Space: O(V²)
func Dijkstra(m matrix.Matrix, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate matrix is non-nil and square
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, nil, ErrNonSquare
	}

	// 3) Validate Source exists
	n := m.Rows()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, ErrSourceOutOfRange
	}

	// 4) Prefetch weights into a flat buffer and pre-scan for invalid entries.
	w, _, err := matrix.Flatten(m)
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}
	if err = scanWeights(w, n); err != nil {
		return nil, nil, err
	}

	// 5) Initialize runner state and run main loop.
	r := &runner{
		n:       n,
		w:       w,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// AllPairs runs Dijkstra from every vertex of m and returns the n×n table of
// shortest distances; row i holds the distances from source i.
// Any Source option in opts is overridden per run. An empty matrix yields an
// empty result.
//
// Complexity: O(V³ log V) time, O(V²) space for the result.
func AllPairs(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}
	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	runOpts := make([]Option, len(opts), len(opts)+1)
	copy(runOpts, opts)
	runOpts = append(runOpts, nil) // slot for the per-run Source option

	var (
		src, v int
		dist   []float64
	)
	for src = 0; src < n; src++ {
		runOpts[len(runOpts)-1] = Source(src)
		if dist, _, err = Dijkstra(m, runOpts...); err != nil {
			return nil, fmt.Errorf("dijkstra: all-pairs source %d: %w", src, err)
		}
		for v = 0; v < n; v++ {
			_ = out.Set(src, v, dist[v])
		}
	}

	return out, nil
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
			if math.IsNaN(x) {
				return fmt.Errorf("%w: edge %d→%d", ErrNaNWeight, u, v)
			}
			if x < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, x)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	n       int       // number of vertices
	w       []float64 // flat weights, w[u*n+v]
	options Options   // configuration (Source, thresholds, etc.)
	dist    []float64 // current best distance from Source
	prev    []int     // predecessor on the shortest path
	visited []bool    // whether a vertex's distance is finalized
	pq      nodePQ    // min-heap for the lazy priority queue
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	var v int
	for v = 0; v < r.n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance from the
// source and relaxes its outgoing edges. It ends when the heap is empty or the
// smallest tentative distance exceeds MaxDistance.
func (r *runner) process() {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)

		// Stale heap entry: the vertex was finalized through a shorter path.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax examines every edge u→v and pushes an improved entry for v when the
// path through u is strictly shorter than the best known one.
func (r *runner) relax(u int) {
	var (
		v       int
		wt      float64
		newDist float64
		row     = r.w[u*r.n : (u+1)*r.n]
	)
	for v = 0; v < r.n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		wt = row[v]
		// +Inf and threshold-exceeding entries are missing edges.
		if math.IsInf(wt, 1) || wt >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + wt
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates when distances are equal.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a (vertex, tentative distance) pair stored in the priority queue.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by vertex index.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first; equal distances fall back to the lower index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
