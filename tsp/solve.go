package tsp

import "fmt"

// Solve dispatches to the constructor selected by algo and reports the tour
// with its rounded length. It is the single entry point used by the CLI and
// the interactive menu.
//
// Errors:
//   - ErrUnsupportedAlgorithm for an unknown algo.
func Solve(cities []City, algo Algorithm, opts ...Option) (Result, error) {
	var tour Tour
	switch algo {
	case NearestNeighbour:
		tour = SolveNearestNeighbour(cities, opts...)
	case ShortestPath:
		tour = SolveShortestPath(cities, opts...)
	case MinimumSpanningTree:
		tour = SolveMST(cities, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algo)
	}

	return Result{Algorithm: algo, Tour: tour, Length: tour.Length()}, nil
}
