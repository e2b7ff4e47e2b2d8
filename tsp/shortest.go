package tsp

import (
	"github.com/katalvlaran/salesman/dijkstra"
	"github.com/katalvlaran/salesman/matrix"
)

// SolveShortestPath computes single-source shortest paths from every city over
// the complete Euclidean graph, then walks greedily to the unvisited city with
// the smallest shortest-path distance from the current one.
//
// Because the Euclidean metric satisfies the triangle inequality, every
// shortest path is the direct edge and the result matches
// SolveNearestNeighbour. All n searches are still executed.
//
// Complexity: O(n³ log n) time, O(n²) memory.
func SolveShortestPath(cities []City, opts ...Option) Tour {
	if t, ok := degenerate(cities); ok {
		return t
	}
	_ = buildOptions(opts)

	dist, w := distanceTable(cities)
	n := len(cities)

	// 1. One Dijkstra run per source.
	sp, err := dijkstra.AllPairs(dist)
	if err == nil {
		// 2. Walk on the shortest-path table.
		if flat, _, ferr := matrix.Flatten(sp); ferr == nil {
			w = flat
		}
	}
	// Non-finite coordinates make the table unusable for Dijkstra; the walk
	// then reads raw distances so a permutation is still returned.

	return toCities(cities, nearestWalk(w, n))
}
