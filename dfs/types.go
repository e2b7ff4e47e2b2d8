// Package dfs defines types and options for depth-first traversal of rooted
// trees given in parent-slice form, as produced by Prim's algorithm.
package dfs

import "errors"

var (
	// ErrRootOutOfRange indicates that the root index is outside [0, n).
	ErrRootOutOfRange = errors.New("dfs: root index out of range")

	// ErrNotATree indicates that the parent slice does not describe a single tree
	// rooted at the requested vertex (out-of-range parent, cycle, or a vertex
	// unreachable from the root).
	ErrNotATree = errors.New("dfs: parent slice is not a tree")
)

// NoParent marks the root in a parent slice.
const NoParent = -1

// Option configures optional behavior of Preorder.
type Option func(*Options)

// Options holds configurable parameters for tree traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
