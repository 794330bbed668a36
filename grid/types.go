// Package grid defines core types, the terrain tag, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a negative row or column count.
	ErrBadDimensions = errors.New("grid: rows and cols must be non-negative")
	// ErrNodeNotFound indicates a position with no node in the grid.
	ErrNodeNotFound = errors.New("grid: no node at position")
	// ErrUnknownTerrain indicates a terrain name that ParseTerrain does not know.
	ErrUnknownTerrain = errors.New("grid: unknown terrain")
	// ErrStartNotSet indicates a search was requested before SetStart.
	ErrStartNotSet = errors.New("grid: start not set")
	// ErrGoalNotSet indicates a search was requested before SetGoal.
	ErrGoalNotSet = errors.New("grid: goal not set")
	// ErrInvalidPath indicates a path that fails ValidatePath.
	ErrInvalidPath = errors.New("grid: invalid path")
	// ErrBadLayout indicates a text layout that Parse cannot read.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// NoParent marks a node with no predecessor in the current search.
const NoParent = -1

// Position is a (Row, Col) cell coordinate. It identifies nodes, barriers
// and waypoints.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position { return Position{Row: r, Col: c} }

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Adjacent reports whether q is one orthogonal step from p.
func (p Position) Adjacent(q Position) bool { return p.Manhattan(q) == 1 }

// String formats p as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Terrain is the movement class of a cell. It is persistent cell data and is
// never touched by ResetSearch.
type Terrain uint8

const (
	// Plain is the default terrain, cost 1.
	Plain Terrain = iota
	// Grass costs 2.
	Grass
	// Ice costs 1.
	Ice
	// Desert costs 3.
	Desert
	// Mud costs 5.
	Mud
)

var terrainCost = [...]float64{
	Plain:  1,
	Grass:  2,
	Ice:    1,
	Desert: 3,
	Mud:    5,
}

var terrainName = [...]string{
	Plain:  "plain",
	Grass:  "grass",
	Ice:    "ice",
	Desert: "desert",
	Mud:    "mud",
}

// Cost returns the cost of entering a cell of this terrain.
// Every cost is ≥ 1, which keeps the Manhattan heuristic admissible.
// Unknown values cost 1.
func (t Terrain) Cost() float64 {
	if int(t) < len(terrainCost) {
		return terrainCost[t]
	}
	return 1
}

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	if int(t) < len(terrainName) {
		return terrainName[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// ParseTerrain maps a case-insensitive terrain name to its Terrain.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range terrainName {
		if n == name {
			return Terrain(i), nil
		}
	}

	return Plain, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}
