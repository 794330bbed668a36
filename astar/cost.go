package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// PathCost sums cost over consecutive steps of path on g. A nil cost means
// UnitCost. An empty or single-position path costs 0.
// Returns grid.ErrNodeNotFound if a position has no node, or ErrNegativeCost
// if a step costs less than 0 or NaN.
func PathCost(g *grid.Grid, path []grid.Position, cost CostFunc) (float64, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	if cost == nil {
		cost = UnitCost
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		from, ok := g.Node(path[i-1])
		if !ok {
			return 0, fmt.Errorf("%w: %v", grid.ErrNodeNotFound, path[i-1])
		}
		to, ok := g.Node(path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v", grid.ErrNodeNotFound, path[i])
		}
		step := cost(from, to)
		if step < 0 || math.IsNaN(step) {
			return 0, fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, path[i-1], path[i], step)
		}
		total += step
	}

	return total, nil
}
