// Package generator produces random city sets for benchmarking the solvers.
//
// Coordinates are drawn uniformly from [0, XMax) × [0, YMax) using a seeded
// golang.org/x/exp/rand source, so a given (n, seed, bounds) triple always
// yields the same cities. Identifiers run 1..n.
package generator

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/salesman/tsp"
)

// ErrBadBounds indicates a non-positive coordinate bound.
var ErrBadBounds = errors.New("generator: bounds must be positive")

// Default bounds and seed.
const (
	DefaultXMax = 1000.0
	DefaultYMax = 1000.0
	DefaultSeed = uint64(1)
)

// Options configures Generate.
type Options struct {
	Seed uint64
	XMax float64
	YMax float64
}

// Option is a functional option for Generate.
type Option func(*Options)

// DefaultOptions returns seed 1 and a 1000×1000 square.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, XMax: DefaultXMax, YMax: DefaultYMax}
}

// WithSeed fixes the random source seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBounds sets the exclusive upper bounds of the coordinates.
// Non-positive bounds panic with ErrBadBounds.
func WithBounds(xMax, yMax float64) Option {
	return func(o *Options) {
		if !(xMax > 0) || !(yMax > 0) {
			panic(ErrBadBounds.Error())
		}
		o.XMax, o.YMax = xMax, yMax
	}
}

// Generate returns n cities with ids 1..n. n <= 0 yields an empty slice.
func Generate(n int, opts ...Option) []tsp.City {
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}
	if n <= 0 {
		return []tsp.City{}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tsp.NewCity(i+1, rng.Float64()*cfg.XMax, rng.Float64()*cfg.YMax)
	}

	return out
}
