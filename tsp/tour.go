package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
)

// ValidateTour checks the index form of a closed tour over n vertices:
//   - n == 0 requires an empty tour;
//   - len(tour) == n+1;
//   - tour[0] == tour[n] == start;
//   - tour[0..n-1] is a permutation of 0..n-1.
//
// Complexity: O(n).
func ValidateTour(tour []int, n, start int) error {
	if n == 0 {
		if len(tour) != 0 {
			return fmt.Errorf("%w: %d elements for 0 vertices", ErrDimensionMismatch, len(tour))
		}

		return nil
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrDimensionMismatch, len(tour), n+1)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: endpoints %d,%d, want %d", ErrTourNotClosed, tour[0], tour[n], start)
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d", ErrDimensionMismatch, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated", ErrTourNotPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// ValidateCityTour checks that tour is a closed tour over cities starting at
// cities[0]: n+1 elements, first == last == cities[0], and every input city
// identifier appearing exactly once among the first n elements.
func ValidateCityTour(tour Tour, cities []City) error {
	n := len(cities)
	if n == 0 {
		if len(tour) != 0 {
			return fmt.Errorf("%w: %d elements for 0 cities", ErrDimensionMismatch, len(tour))
		}

		return nil
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrDimensionMismatch, len(tour), n+1)
	}
	if tour[0] != cities[0] || tour[n] != cities[0] {
		return fmt.Errorf("%w: endpoints %d,%d, want %d", ErrTourNotClosed, tour[0].ID, tour[n].ID, cities[0].ID)
	}

	// Count identifiers so duplicate ids in the input are still balanced.
	want := make(map[int]int, n)
	var i int
	for i = 0; i < n; i++ {
		want[cities[i].ID]++
	}
	for i = 0; i < n; i++ {
		want[tour[i].ID]--
	}
	var id, c int
	for id, c = range want {
		if c != 0 {
			return fmt.Errorf("%w: city %d count off by %d", ErrTourNotPermutation, id, -c)
		}
	}

	return nil
}

// points projects cities onto their coordinates, preserving order.
func points(cities []City) []geom.Point {
	out := make([]geom.Point, len(cities))
	var i int
	for i = range cities {
		out[i] = cities[i].Point
	}

	return out
}

// distanceTable builds the flat row-major Euclidean table for cities.
func distanceTable(cities []City) (*matrix.Dense, []float64) {
	// DistanceMatrix and Flatten only fail on negative or non-square shapes,
	// neither of which a slice length can produce.
	m, _ := geom.DistanceMatrix(points(cities))
	w, _, _ := matrix.Flatten(m)

	return m, w
}

// toCities maps an index tour back onto the input cities.
func toCities(cities []City, idx []int) Tour {
	out := make(Tour, len(idx))
	var k int
	for k = range idx {
		out[k] = cities[idx[k]]
	}

	return out
}

// degenerate returns the fixed tour for n <= 2 and reports whether it applied.
func degenerate(cities []City) (Tour, bool) {
	switch len(cities) {
	case 0:
		return Tour{}, true
	case 1:
		return Tour{cities[0], cities[0]}, true
	case 2:
		return Tour{cities[0], cities[1], cities[0]}, true
	default:
		return nil, false
	}
}
