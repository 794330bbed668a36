// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed to New.
var ErrGridNil = errors.New("bfs: grid is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Logger receives run summaries.
	Logger logr.Logger

	// OnEnqueue is called when a node is marked and enqueued.
	// Receives the position and its depth from the start.
	OnEnqueue func(pos grid.Position, depth int)

	// OnVisit is called when a node is dequeued, before the goal check.
	OnVisit func(pos grid.Position, depth int)
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    logr.Discard(),
		OnEnqueue: func(grid.Position, int) {},
		OnVisit:   func(grid.Position, int) {},
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue.
func WithOnVisit(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
