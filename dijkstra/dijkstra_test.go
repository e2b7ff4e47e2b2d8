// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, basic functionality, MaxDistance,
// InfEdgeThreshold, path reconstruction and the all-pairs wrapper.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/salesman/dijkstra"
	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilMatrix(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilMatrix)

	_, err = dijkstra.AllPairs(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilMatrix)
}

func TestDijkstra_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = dijkstra.Dijkstra(m)
	require.ErrorIs(t, err, dijkstra.ErrNonSquare)

	_, err = dijkstra.AllPairs(m)
	require.ErrorIs(t, err, dijkstra.ErrNonSquare)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	_, _, err := dijkstra.Dijkstra(m, dijkstra.Source(2))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, _, err = dijkstra.Dijkstra(m, dijkstra.Source(-1))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	// The empty matrix has no valid source at all.
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	_, _, err = dijkstra.Dijkstra(empty)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_InvalidWeights(t *testing.T) {
	neg := mustDense(t, [][]float64{{0, -1}, {1, 0}})
	_, _, err := dijkstra.Dijkstra(neg)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.Contains(t, err.Error(), "edge 0→1")

	nan := mustDense(t, [][]float64{{0, 1}, {math.NaN(), 0}})
	_, _, err = dijkstra.Dijkstra(nan)
	require.ErrorIs(t, err, dijkstra.ErrNaNWeight)

	// A negative diagonal is ignored: self-loops are not edges.
	diag := mustDense(t, [][]float64{{-5, 1}, {1, 0}})
	_, _, err = dijkstra.Dijkstra(diag)
	require.NoError(t, err)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	require.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDijkstra_IndirectPathBeatsDirectEdge(t *testing.T) {
	// 0→2 directly costs 10, but 0→1→2 costs 3.
	m := mustDense(t, [][]float64{
		{0, 1, 10},
		{1, 0, 2},
		{10, 2, 0},
	})
	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 3}, dist)
	require.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, prev)
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 4}, {4, 0}})
	dist, prev, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Nil(t, prev)
	require.Equal(t, []float64{0, 4}, dist)
}

func TestDijkstra_Directed(t *testing.T) {
	// Only 0→1 and 1→2 exist; nothing leads back to 0.
	m := mustDense(t, [][]float64{
		{0, 1, inf},
		{inf, 0, 1},
		{inf, inf, 0},
	})
	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(2), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.True(t, math.IsInf(dist[0], 1))
	require.True(t, math.IsInf(dist[1], 1))
	require.Equal(t, 0.0, dist[2])
	require.Equal(t, dijkstra.NoPredecessor, prev[0])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Chain 0-1-2-3 with unit steps, no shortcuts.
	m := mustDense(t, [][]float64{
		{0, 1, inf, inf},
		{1, 0, 1, inf},
		{inf, 1, 0, 1},
		{inf, inf, 1, 0},
	})
	dist, _, err := dijkstra.Dijkstra(m, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist[2])
	require.True(t, math.IsInf(dist[3], 1), "vertex beyond the cap must stay unreached")
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// The direct 0-2 edge weighs 5 and is treated as a wall at threshold 5.
	m := mustDense(t, [][]float64{
		{0, 4, 5},
		{4, 0, 4},
		{5, 4, 0},
	})
	dist, _, err := dijkstra.Dijkstra(m, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, 8.0, dist[2])
}

func TestDijkstra_SingleVertex(t *testing.T) {
	m := mustDense(t, [][]float64{{0}})
	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []float64{0}, dist)
	require.Equal(t, []int{dijkstra.NoPredecessor}, prev)
}

// ------------------------------------------------------------------------
// 3. AllPairs.
// ------------------------------------------------------------------------

func TestAllPairs_EuclideanMatchesDirectDistance(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -2, Y: 7}, {X: 5, Y: -1}, {X: 1, Y: 1}}
	d, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)

	sp, err := dijkstra.AllPairs(d)
	require.NoError(t, err)

	var i, j int
	for i = range pts {
		for j = range pts {
			want, _ := d.At(i, j)
			got, _ := sp.At(i, j)
			// The triangle inequality makes every direct edge a shortest path.
			require.InDelta(t, want, got, 1e-9, "(%d,%d)", i, j)
		}
	}
}

func TestAllPairs_OverridesSource(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 2}, {3, 0}})
	sp, err := dijkstra.AllPairs(m, dijkstra.Source(1))
	require.NoError(t, err)
	v01, _ := sp.At(0, 1)
	v10, _ := sp.At(1, 0)
	require.Equal(t, 2.0, v01)
	require.Equal(t, 3.0, v10)
}

func TestAllPairs_Empty(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	sp, err := dijkstra.AllPairs(m)
	require.NoError(t, err)
	require.Equal(t, 0, sp.Rows())
}
