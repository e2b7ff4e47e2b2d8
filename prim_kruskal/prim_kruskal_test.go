package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// euclid builds the Euclidean distance matrix of pts.
func euclid(t *testing.T, pts ...geom.Point) *matrix.Dense {
	t.Helper()
	m, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)

	return m
}

func TestPrim_Square(t *testing.T) {
	m := euclid(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0},
		geom.Point{X: 10, Y: 10}, geom.Point{X: 0, Y: 10},
	)
	parent, weight, err := prim_kruskal.Prim(m, 0)
	require.NoError(t, err)
	// 1 and 3 tie at 10 from the root; the lower index is extracted first,
	// which then offers 2 at 10 before 3 is taken.
	require.Equal(t, []int{prim_kruskal.NoParent, 0, 1, 0}, parent)
	require.Equal(t, 30.0, weight)
}

func TestPrim_MatchesKruskalWeight(t *testing.T) {
	pts := []geom.Point{
		{X: 3, Y: 1}, {X: 8, Y: 9}, {X: -4, Y: 2}, {X: 6, Y: -7}, {X: 0, Y: 0},
		{X: 12, Y: 3}, {X: -9, Y: -9}, {X: 5, Y: 5}, {X: 1, Y: 11}, {X: 7, Y: 2},
	}
	m := euclid(t, pts...)

	parent, pw, err := prim_kruskal.Prim(m, 0)
	require.NoError(t, err)
	edges, kw, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)

	require.Len(t, edges, len(pts)-1)
	require.InDelta(t, kw, pw, 1e-9)

	// Every non-root vertex has a parent; summing the parent edges gives the tree weight.
	var (
		v   int
		sum float64
	)
	for v = 1; v < len(pts); v++ {
		require.NotEqual(t, prim_kruskal.NoParent, parent[v])
		d, _ := m.At(v, parent[v])
		sum += d
	}
	require.InDelta(t, pw, sum, 1e-9)
}

func TestPrim_NonZeroRoot(t *testing.T) {
	m := euclid(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0})
	parent, weight, err := prim_kruskal.Prim(m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, prim_kruskal.NoParent}, parent)
	require.Equal(t, 2.0, weight)
}

func TestPrim_DegenerateSizes(t *testing.T) {
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	parent, weight, err := prim_kruskal.Prim(empty, 0)
	require.NoError(t, err)
	require.Empty(t, parent)
	require.Zero(t, weight)

	one := euclid(t, geom.Point{X: 4, Y: 4})
	parent, weight, err = prim_kruskal.Prim(one, 0)
	require.NoError(t, err)
	require.Equal(t, []int{prim_kruskal.NoParent}, parent)
	require.Zero(t, weight)
}

func TestPrim_Coincident(t *testing.T) {
	// Zero-distance edges are ordinary minimum edges.
	m := euclid(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 0, Y: 0})
	parent, weight, err := prim_kruskal.Prim(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{prim_kruskal.NoParent, 0, 0}, parent)
	require.Equal(t, 5.0, weight)
}

func TestMST_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Prim(nil, 0)
	require.ErrorIs(t, err, prim_kruskal.ErrNilMatrix)
	_, _, err = prim_kruskal.Kruskal(nil)
	require.ErrorIs(t, err, prim_kruskal.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = prim_kruskal.Prim(rect, 0)
	require.ErrorIs(t, err, prim_kruskal.ErrNonSquare)
	_, _, err = prim_kruskal.Kruskal(rect)
	require.ErrorIs(t, err, prim_kruskal.ErrNonSquare)

	sq := euclid(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	_, _, err = prim_kruskal.Prim(sq, 2)
	require.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	neg, err := matrix.NewDenseFromRows([][]float64{{0, -1}, {-1, 0}})
	require.NoError(t, err)
	_, _, err = prim_kruskal.Prim(neg, 0)
	require.ErrorIs(t, err, prim_kruskal.ErrNegativeWeight)
	_, _, err = prim_kruskal.Kruskal(neg)
	require.ErrorIs(t, err, prim_kruskal.ErrNegativeWeight)

	inf := math.Inf(1)
	split, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	})
	require.NoError(t, err)
	_, _, err = prim_kruskal.Prim(split, 0)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Kruskal(split)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskal_DeterministicOrder(t *testing.T) {
	m := euclid(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0},
		geom.Point{X: 10, Y: 10}, geom.Point{X: 0, Y: 10},
	)
	edges, weight, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	require.Equal(t, 30.0, weight)
	require.Equal(t, []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 10},
		{U: 0, V: 3, Weight: 10},
		{U: 1, V: 2, Weight: 10},
	}, edges)
}
