// Package geom holds the planar metric the solvers are built on.
//
// Distance is the Euclidean metric between two points; DistanceMatrix turns an
// ordered point set into the symmetric n×n table every constructor reads from.
// Both are pure functions: no state, no I/O, safe for concurrent use.
//
// Complexity:
//   - Distance:       O(1).
//   - DistanceMatrix: O(n²) time and memory; each unordered pair is computed
//     once and mirrored, so m[i][j] and m[j][i] are bit-identical.
package geom

import (
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceMatrix builds the all-pairs distance table over points in their given order.
//
// Contract:
//   - m[i][i] == 0 for every i.
//   - m[i][j] == m[j][i] == Distance(points[i], points[j]).
//   - len(points) == 0 yields a 0×0 matrix and no error.
func DistanceMatrix(points []Point) (*matrix.Dense, error) {
	n := len(points)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			// Indices are in range by construction; Set cannot fail here.
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}
