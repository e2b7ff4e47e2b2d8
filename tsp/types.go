package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/salesman/geom"
)

// Sentinel errors. Constructors never return errors; these surface from the
// validation helpers, the standalone TwoOpt and the Solve dispatcher.
var (
	// ErrDimensionMismatch indicates a nil/non-square matrix or a tour index out of range.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTourNotClosed indicates a tour whose first and last elements differ
	// (or that does not start at the expected vertex).
	ErrTourNotClosed = errors.New("tsp: tour is not closed")

	// ErrTourNotPermutation indicates a tour that skips or repeats a city.
	ErrTourNotPermutation = errors.New("tsp: tour is not a permutation of the cities")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadEps indicates a negative or NaN improvement tolerance.
	ErrBadEps = errors.New("tsp: Eps must be a non-negative number")

	// ErrBadMaxPasses indicates a negative 2-opt pass limit.
	ErrBadMaxPasses = errors.New("tsp: MaxPasses must be non-negative")
)

// DefaultEps is the minimum length reduction a 2-opt move must achieve.
// It keeps floating-point noise from flipping equal-length segments forever.
const DefaultEps = 1e-12

// City is a point in the plane with an identifier unique within one run.
// Identifiers need not be contiguous or sorted.
type City struct {
	ID int
	geom.Point
}

// NewCity is a shorthand for City{ID: id, Point: geom.Point{X: x, Y: y}}.
func NewCity(id int, x, y float64) City {
	return City{ID: id, Point: geom.Point{X: x, Y: y}}
}

// String renders the city like "City [number=1, x=0, y=0]".
func (c City) String() string {
	return fmt.Sprintf("City [number=%d, x=%g, y=%g]", c.ID, c.X, c.Y)
}

// Tour is a closed sequence of cities: for n cities it holds n+1 elements,
// the first n are a permutation of the input and the last repeats the first.
type Tour []City

// IDs returns the city identifiers in tour order.
func (t Tour) IDs() []int {
	out := make([]int, len(t))
	var i int
	for i = range t {
		out[i] = t[i].ID
	}

	return out
}

// String joins the identifiers with hyphens, e.g. "1-2-3-4-1".
func (t Tour) String() string {
	var (
		sb strings.Builder
		i  int
	)
	for i = range t {
		if i > 0 {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "%d", t[i].ID)
	}

	return sb.String()
}

// Length returns the total Euclidean length of consecutive legs, rounded to 1e-9.
func (t Tour) Length() float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(t); i++ {
		sum += geom.Distance(t[i-1].Point, t[i].Point)
	}

	return round1e9(sum)
}

// Options configures the 2-opt refinement used by SolveMST, TwoOpt and RefineTour.
// Nearest-neighbour and shortest-path construction accept and ignore them.
type Options struct {
	// Eps is the strict improvement tolerance: a move is applied only when it
	// shortens the tour by more than Eps.
	Eps float64

	// MaxPasses bounds the number of improving passes; 0 means run to a local optimum.
	MaxPasses int
}

// Option is a functional option for the solvers.
type Option func(*Options)

// DefaultOptions returns Eps = DefaultEps and no pass limit.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxPasses: 0}
}

// WithEps sets the 2-opt improvement tolerance. Negative or NaN values panic with ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// WithMaxPasses limits the number of improving 2-opt passes (0 = unlimited).
// Negative values panic with ErrBadMaxPasses.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxPasses.Error())
		}
		o.MaxPasses = n
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	return cfg
}

// Algorithm selects a tour constructor.
type Algorithm int

const (
	// NearestNeighbour is the greedy nearest-unvisited walk.
	NearestNeighbour Algorithm = iota + 1
	// ShortestPath is the Dijkstra-table guided nearest-unvisited walk.
	ShortestPath
	// MinimumSpanningTree is Prim + preorder + 2-opt.
	MinimumSpanningTree
)

// String returns the canonical short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighbour:
		return "nn"
	case ShortestPath:
		return "dijkstra"
	case MinimumSpanningTree:
		return "mst"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns the human-readable menu label of the algorithm.
func (a Algorithm) Title() string {
	switch a {
	case NearestNeighbour:
		return "Nearest Neighbour"
	case ShortestPath:
		return "Dijkstra's Algorithm"
	case MinimumSpanningTree:
		return "Minimum Spanning Tree"
	default:
		return a.String()
	}
}

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{NearestNeighbour, ShortestPath, MinimumSpanningTree}
}

// ParseAlgorithm maps a name or menu number to an Algorithm (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "nn", "nearest", "nearest-neighbour", "nearest-neighbor":
		return NearestNeighbour, nil
	case "2", "dijkstra", "sp", "shortest-path":
		return ShortestPath, nil
	case "3", "mst", "prim", "spanning-tree":
		return MinimumSpanningTree, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Result is the outcome of Solve.
type Result struct {
	Algorithm Algorithm
	Tour      Tour
	Length    float64
}
