package tsp

import (
	"github.com/katalvlaran/salesman/dfs"
	"github.com/katalvlaran/salesman/prim_kruskal"
)

// SolveMST builds a tour from a minimum spanning tree and refines it with 2-opt.
//
// Steps:
//  1. Prim's algorithm rooted at index 0 (ties broken toward the lower index).
//  2. Preorder walk of the tree, children in increasing index order.
//  3. Close the walk at the root.
//  4. 2-opt until no improving move remains (see TwoOpt, Options).
//
// Before refinement the walk is at most twice the optimum on metric input;
// 2-opt only shortens it.
//
// Complexity: O(n² log n) for the tree plus O(k·n²) for k improving passes.
func SolveMST(cities []City, opts ...Option) Tour {
	if t, ok := degenerate(cities); ok {
		return t
	}
	cfg := buildOptions(opts)

	dist, w := distanceTable(cities)
	n := len(cities)

	// 1–3. Tree walk; an unusable table (non-finite coordinates) falls back to
	// input order so the result is still a valid closed tour.
	tour := identityTour(n)
	if parent, _, err := prim_kruskal.Prim(dist, 0); err == nil {
		if order, perr := dfs.Preorder(parent, 0); perr == nil {
			tour = append(order, order[0])
		}
	}

	// 4. Local improvement.
	twoOptFlat(w, n, tour, cfg)

	return toCities(cities, tour)
}

// SpanningTreeBound returns the weight of the minimum spanning tree over the
// cities, rounded to 1e-9. No tour can be shorter, so it is a cheap lower
// bound for judging a tour's quality. Fewer than two cities give 0.
func SpanningTreeBound(cities []City) (float64, error) {
	if len(cities) < 2 {
		return 0, nil
	}
	dist, _ := distanceTable(cities)
	_, weight, err := prim_kruskal.Prim(dist, 0)
	if err != nil {
		return 0, err
	}

	return round1e9(weight), nil
}

// identityTour returns 0,1,...,n-1,0.
func identityTour(n int) []int {
	t := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}

	return t
}
