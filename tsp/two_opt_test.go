package tsp_test

import (
	"testing"

	"github.com/katalvlaran/salesman/generator"
	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/require"
)

func distances(t *testing.T, cities []tsp.City) *matrix.Dense {
	t.Helper()
	pts := make([]geom.Point, len(cities))
	for i := range cities {
		pts[i] = cities[i].Point
	}
	m, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)

	return m
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	dist := distances(t, square())

	// 0→2→1→3→0 crosses both diagonals.
	out, passes, err := tsp.TwoOpt(dist, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, out)
	require.Equal(t, 1, passes)

	l, err := tsp.TourLength(dist, out)
	require.NoError(t, err)
	require.Equal(t, 40.0, l)
}

func TestTwoOpt_Idempotent(t *testing.T) {
	cities := generator.Generate(40, generator.WithSeed(2))
	dist := distances(t, cities)

	start := make([]int, len(cities)+1)
	for i := range cities {
		start[i] = i
	}

	once, _, err := tsp.TwoOpt(dist, start)
	require.NoError(t, err)
	twice, passes, err := tsp.TwoOpt(dist, once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
	require.Zero(t, passes)
	require.NoError(t, tsp.ValidateTour(twice, len(cities), 0))
}

func TestTwoOpt_NeverLengthens(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		cities := generator.Generate(30, generator.WithSeed(seed))
		dist := distances(t, cities)

		nn := tsp.SolveNearestNeighbour(cities)
		before := nn.Length()
		after := tsp.RefineTour(nn).Length()
		require.LessOrEqual(t, after, before+1e-9, "seed %d", seed)
		require.NoError(t, tsp.ValidateCityTour(tsp.RefineTour(nn), cities))

		idx := make([]int, len(cities)+1)
		for i := range cities {
			idx[i] = i
		}
		raw, err := tsp.TourLength(dist, idx)
		require.NoError(t, err)
		out, _, err := tsp.TwoOpt(dist, idx)
		require.NoError(t, err)
		refined, err := tsp.TourLength(dist, out)
		require.NoError(t, err)
		require.LessOrEqual(t, refined, raw+1e-9, "seed %d", seed)
	}
}

func TestTwoOpt_DoesNotModifyInput(t *testing.T) {
	dist := distances(t, square())
	in := []int{0, 2, 1, 3, 0}
	_, _, err := tsp.TwoOpt(dist, in)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 3, 0}, in)
}

func TestTwoOpt_ShortTours(t *testing.T) {
	dist := distances(t, square())
	for _, tour := range [][]int{{}, {0}, {0, 0}, {0, 1, 0}} {
		out, passes, err := tsp.TwoOpt(dist, tour)
		require.NoError(t, err)
		require.Equal(t, tour, out)
		require.Zero(t, passes)
	}
}

func TestTwoOpt_MaxPasses(t *testing.T) {
	cities := generator.Generate(60, generator.WithSeed(4))
	dist := distances(t, cities)
	idx := make([]int, len(cities)+1)
	for i := range cities {
		idx[i] = i
	}

	_, passes, err := tsp.TwoOpt(dist, idx, tsp.WithMaxPasses(1))
	require.NoError(t, err)
	require.LessOrEqual(t, passes, 1)
}

func TestTwoOpt_Errors(t *testing.T) {
	_, _, err := tsp.TwoOpt(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = tsp.TwoOpt(rect, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, _, err = tsp.TwoOpt(distances(t, square()), []int{0, 1, 9, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestRefineTour_OpenPathKeepsEndpoints(t *testing.T) {
	a := tsp.NewCity(1, 0, 0)
	b := tsp.NewCity(2, 1, 0)
	c := tsp.NewCity(3, 2, 0)
	d := tsp.NewCity(4, 3, 0)

	out := tsp.RefineTour(tsp.Tour{a, c, b, d})
	require.Equal(t, []int{1, 2, 3, 4}, out.IDs())
	require.InDelta(t, 3.0, out.Length(), 1e-9)
}

func TestOptions_Validation(t *testing.T) {
	require.Panics(t, func() { tsp.WithEps(-1)(&tsp.Options{}) })
	require.Panics(t, func() { tsp.WithMaxPasses(-1)(&tsp.Options{}) })

	opts := tsp.DefaultOptions()
	tsp.WithEps(0)(&opts)
	tsp.WithMaxPasses(3)(&opts)
	require.Equal(t, tsp.Options{Eps: 0, MaxPasses: 3}, opts)
}
