package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/matrix"
)

// TwoOpt improves an open or closed tour (a sequence of vertex indices into
// dist) with the 2-opt exchange and returns the improved copy and the number
// of passes that applied at least one move.
//
// A pass scans every i in [0, m-4] and j in [i+2, m-2] in increasing order and
// reverses tour[i+1..j] in place whenever
//
//	d(t[i],t[j]) + d(t[i+1],t[j+1]) < d(t[i],t[i+1]) + d(t[j],t[j+1]) - Eps.
//
// Passes repeat until one makes no move, or Options.MaxPasses improving passes
// have run. The endpoints tour[0] and tour[m-1] never move, so a closed tour
// stays closed at the same start. Each applied move shortens the tour by more
// than Eps, so the result is never longer than the input and a second call
// returns it unchanged.
//
// Errors:
//   - ErrDimensionMismatch for a nil/non-square matrix or an out-of-range index.
//
// Complexity: O(m²) per pass.
func TwoOpt(dist matrix.Matrix, tour []int, opts ...Option) ([]int, int, error) {
	cfg := buildOptions(opts)

	// 1. Validate shape and indices.
	if dist == nil {
		return nil, 0, fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	var k int
	for k = range tour {
		if tour[k] < 0 || tour[k] >= n {
			return nil, 0, fmt.Errorf("%w: tour[%d]=%d with n=%d", ErrDimensionMismatch, k, tour[k], n)
		}
	}

	// 2. Work on a copy.
	out := make([]int, len(tour))
	copy(out, tour)
	passes := twoOptFlat(w, n, out, cfg)

	return out, passes, nil
}

// RefineTour applies TwoOpt to a city tour. A tour whose first and last cities
// are equal is treated as closed over its first len-1 cities; otherwise it is
// an open path with fixed endpoints. The input is not modified.
func RefineTour(tour Tour, opts ...Option) Tour {
	cfg := buildOptions(opts)

	m := len(tour)
	out := make(Tour, m)
	copy(out, tour)
	if m < 4 {
		return out
	}

	// Distinct positions: drop the repeated endpoint of a closed tour.
	distinct := tour
	closed := tour[0] == tour[m-1]
	if closed {
		distinct = tour[:m-1]
	}
	_, w := distanceTable(distinct)

	idx := make([]int, m)
	var k int
	for k = range distinct {
		idx[k] = k
	}
	if closed {
		idx[m-1] = 0
	}
	twoOptFlat(w, len(distinct), idx, cfg)

	return toCities(distinct, idx)
}

// twoOptFlat runs 2-opt passes in place over t on a flat n×n table and returns
// the number of improving passes.
func twoOptFlat(w []float64, n int, t []int, cfg Options) int {
	m := len(t)
	if m < 4 {
		return 0
	}

	var (
		passes     int
		improved   bool
		i, j       int
		a, b, c, d int
		before     float64
		after      float64
	)
	for {
		improved = false
		for i = 0; i <= m-4; i++ {
			for j = i + 2; j <= m-2; j++ {
				a, b = t[i], t[i+1]
				c, d = t[j], t[j+1]
				before = w[a*n+b] + w[c*n+d]
				after = w[a*n+c] + w[b*n+d]
				if after < before-cfg.Eps {
					reverse(t, i+1, j)
					improved = true
				}
			}
		}
		if !improved {
			return passes
		}
		passes++
		if cfg.MaxPasses > 0 && passes >= cfg.MaxPasses {
			return passes
		}
	}
}

// reverse flips t[lo..hi] inclusive.
func reverse(t []int, lo, hi int) {
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}
