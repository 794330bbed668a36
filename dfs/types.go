// Package dfs defines types and options for depth-first search over a
// grid.Grid.
package dfs

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned when a nil *grid.Grid is passed to New.
var ErrGridNil = errors.New("dfs: grid is nil")

// Option configures optional behavior of DFS.
// Use with New(g, opts...).
type Option func(*Options)

// Options holds the logger and hooks for a DFS run.
type Options struct {
	// Logger receives run summaries; defaults to logr.Discard().
	Logger logr.Logger

	// OnPush is invoked whenever a neighbor is pushed, with the depth it
	// would have if popped next. A cell may be pushed more than once.
	OnPush func(pos grid.Position, depth int)

	// OnVisit is invoked once per cell, when it is first popped.
	OnVisit func(pos grid.Position, depth int)
}

// DefaultOptions returns the default DFS options: a discarding logger and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:  logr.Discard(),
		OnPush:  func(grid.Position, int) {},
		OnVisit: func(grid.Position, int) {},
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnPush sets a hook called on every push.
func WithOnPush(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnVisit sets a pre-order hook called when a cell is visited.
func WithOnVisit(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
