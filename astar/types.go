// Package astar defines options, cost functions and sentinel errors for
// A* search over a grid.Grid.
package astar

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to New.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrNegativeCost indicates that the cost function returned a negative
	// or NaN step cost.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")
)

// CostFunc returns the cost of stepping from one node onto an adjacent one.
// It must return a value ≥ 0. Costs below 1 keep the search correct but can
// make the Manhattan heuristic overestimate, so the path may not be optimal.
type CostFunc func(from, to *grid.Node) float64

// UnitCost charges 1 for every step.
func UnitCost(_, _ *grid.Node) float64 { return 1 }

// TerrainCost charges the entry cost of the destination cell's terrain.
func TerrainCost(_, to *grid.Node) float64 { return to.Terrain.Cost() }

// Option represents a functional option for configuring A*.
type Option func(*Options)

// Options configures an AStar.
//
// Cost    – step cost function (default UnitCost).
// Logger  – receives run summaries (default logr.Discard()).
// OnVisit – called when a node is finalized, with its depth.
// OnPush  – called when a node is pushed onto the open set, with its F.
type Options struct {
	Cost    CostFunc
	Logger  logr.Logger
	OnVisit func(pos grid.Position, depth int)
	OnPush  func(pos grid.Position, f float64)
}

// DefaultOptions returns Options with:
//   - Cost:    UnitCost
//   - Logger:  logr.Discard()
//   - OnVisit, OnPush: no-ops
func DefaultOptions() Options {
	return Options{
		Cost:    UnitCost,
		Logger:  logr.Discard(),
		OnVisit: func(grid.Position, int) {},
		OnPush:  func(grid.Position, float64) {},
	}
}

// WithCostFunc sets the step cost function. A nil fn keeps UnitCost.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit registers a callback run each time a node is finalized.
func WithOnVisit(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a callback run each time a node enters the open set.
func WithOnPush(fn func(pos grid.Position, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
