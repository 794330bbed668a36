// Package search defines the result type, the Finder contract and the
// sentinel errors shared by the astar, bfs and dfs strategies.
package search

import (
	"errors"

	"github.com/hashicorp/go-uuid"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors shared by every strategy.
var (
	// ErrNoPath is returned when the target cannot be reached, including when
	// any leg of a multi-waypoint route is unreachable.
	ErrNoPath = errors.New("search: no path found")

	// ErrStartNotSet is returned when the grid has no start position.
	ErrStartNotSet = grid.ErrStartNotSet

	// ErrGoalNotSet is returned when the grid has no goal position.
	ErrGoalNotSet = grid.ErrGoalNotSet
)

// Finder is the single capability every strategy offers.
//
// FindPath runs one complete search on the strategy's grid. On success it
// returns a Result whose Path starts at the grid's start and ends at its
// goal (a single element when they coincide). When no route exists it
// returns a nil Result and an error wrapping ErrNoPath.
type Finder interface {
	FindPath() (*Result, error)
}

// Result is the outcome of a successful FindPath.
type Result struct {
	// RunID identifies the run in log output.
	RunID string
	// Path lists positions from start to goal.
	Path []grid.Position
	// Explored counts container removals (pops or dequeues) across all legs.
	Explored int
	// Cost is the summed edge cost of Path. Only A* fills it in.
	Cost float64
	// Legs holds one entry per waypoint segment. Only A* fills it in.
	Legs []Leg
}

// Len returns the number of positions in the path.
func (r *Result) Len() int { return len(r.Path) }

// Leg summarizes one point-to-point segment of a chained route.
type Leg struct {
	From, To grid.Position
	// Length is the number of positions in the segment path, both ends included.
	Length   int
	Explored int
	Cost     float64
}

// NewRunID returns a random identifier for tagging a run's log lines.
// It returns "unknown" if the system random source fails.
func NewRunID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return "unknown"
	}
	return id
}
