// Package floodfill defines core types, cell-state constants, functional
// options, and sentinel errors for grid region labeling.
package floodfill

import (
	"errors"
)

// Sentinel errors for Grid construction.
var (
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("floodfill: all rows must have the same length")
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = errors.New("floodfill: dimensions must be non-negative")
)

// Cell states. Every cell of a Grid is in exactly one of three states:
// navigable and unvisited, an obstacle, or labeled as part of a region.
const (
	// Navigable marks a cell that can be traversed and has not been labeled.
	Navigable = 0
	// Obstacle marks an impassable cell; fills never overwrite it.
	Obstacle = 1
	// FirstLabel is the label assigned to the first successfully filled
	// region. Labels count upward from here, one per region.
	FirstLabel = 2
)

// Position addresses one cell as a (row, column) pair.
// It is valid for a given grid iff both coordinates lie in
// [0, Rows()) × [0, Cols()).
type Position struct {
	Row, Col int
}

// Option configures Fill/ColorAll behavior via functional arguments.
type Option func(*Options)

// Options holds observation hooks for a traversal. Hooks never influence
// the traversal itself; they exist for recording, rendering, and testing.
type Options struct {
	// OnColor is called each time a cell is colored, in traversal order.
	// The start cell of a fill is always reported first.
	OnColor func(p Position, label int)

	// OnRegion is called once per successfully filled region, after the
	// region is complete, with the fill's start cell, the assigned label,
	// and the number of cells colored.
	OnRegion func(seed Position, label, size int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnColor:  func(Position, int) {},
		OnRegion: func(Position, int, int) {},
	}
}

// WithOnColor registers a callback to run whenever a cell is colored.
func WithOnColor(fn func(p Position, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnColor = fn
		}
	}
}

// WithOnRegion registers a callback to run after each completed region.
func WithOnRegion(fn func(seed Position, label, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}
