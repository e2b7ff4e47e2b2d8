package tsp

// SolveNearestNeighbour starts at cities[0] and repeatedly moves to the closest
// unvisited city, closing the loop at the start. Ties go to the city that comes
// first in input order. Options are accepted for signature symmetry and ignored.
//
// Complexity: O(n²) time, O(n²) memory for the distance table.
func SolveNearestNeighbour(cities []City, opts ...Option) Tour {
	if t, ok := degenerate(cities); ok {
		return t
	}
	_ = buildOptions(opts)

	_, w := distanceTable(cities)

	return toCities(cities, nearestWalk(w, len(cities)))
}

// nearestWalk performs the greedy walk over a flat n×n table from vertex 0 and
// returns the closed index tour. Strict '<' keeps the first minimum, and a
// vertex is always chosen even if every remaining entry is +Inf or NaN.
func nearestWalk(w []float64, n int) []int {
	var (
		tour    = make([]int, 0, n+1)
		visited = make([]bool, n)
		cur     = 0
		next, j int
		best, d float64
		step    int
	)
	tour = append(tour, cur)
	visited[cur] = true

	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = w[cur*n+j]
			if next == -1 || d < best {
				next, best = j, d
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return append(tour, tour[0])
}
