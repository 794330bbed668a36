// Package pathfind defines the Algorithm selector and its options.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
var ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

// Algorithm names one of the search strategies.
type Algorithm int

const (
	// AStar is cost-optimal A* with waypoint chaining.
	AStar Algorithm = iota
	// BFS is shortest-by-edges breadth-first search.
	BFS
	// DFS is depth-first search with no optimality guarantee.
	DFS
)

// String returns the canonical lowercase name.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name ("astar" or "a*", "bfs",
// "dfs") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options carries the settings New forwards to the chosen strategy.
//
// Cost applies to A* only; nil means astar.UnitCost.
// A zero Logger discards output.
type Options struct {
	Cost   astar.CostFunc
	Logger logr.Logger
}
