package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// TourLength returns the sum of dist[tour[k]][tour[k+1]] over consecutive
// positions, rounded to 1e-9. The tour is read as given: pass a closed tour to
// include the return leg. Tours shorter than two elements have length 0.
//
// Errors:
//   - ErrDimensionMismatch if dist is nil, not square, or a tour index is out of range.
//
// Complexity: O(len(tour)).
func TourLength(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return 0, fmt.Errorf("%w: %dx%d matrix", ErrDimensionMismatch, n, dist.Cols())
	}
	if len(tour) < 2 {
		return 0, nil
	}

	var (
		sum, w float64
		k      int
		err    error
	)
	for k = 0; k < len(tour); k++ {
		if tour[k] < 0 || tour[k] >= n {
			return 0, fmt.Errorf("%w: tour[%d]=%d with n=%d", ErrDimensionMismatch, k, tour[k], n)
		}
	}
	for k = 1; k < len(tour); k++ {
		if w, err = dist.At(tour[k-1], tour[k]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 rounds to 1e-9 so reported lengths are stable across runs and
// platforms; infinities and NaN pass through unchanged.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
