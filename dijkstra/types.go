// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on dense weight matrices.
//
// Options:
//
//	– Source:           index of the starting vertex (must be in [0, n)).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond stay at +Inf.
//	– InfEdgeThreshold: entries >= this threshold are treated as missing edges.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Distance to 3: %g, parent: %d\n", dist[3], prev[3])
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil matrix was passed to Dijkstra.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrNonSquare indicates that the weight matrix is not n×n.
	ErrNonSquare = errors.New("dijkstra: matrix is not square")

	// ErrSourceOutOfRange indicates that the source index is outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNaNWeight indicates that an edge weight is NaN and cannot be ordered.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and unreachable vertices in the predecessor slice.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int     // index of the source vertex
	ReturnPath       bool    // whether to return the predecessor slice
	MaxDistance      float64 // maximum distance to explore
	InfEdgeThreshold float64 // weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the index of the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the returned prev is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative value is a programming error and panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which entries
// are considered missing edges. Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Source:           0.
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (only +Inf entries are missing edges).
func DefaultOptions() Options {
	return Options{
		Source:           0,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
