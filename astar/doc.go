// Package astar provides cost-optimal best-first search (A*) over a
// grid.Grid, with multi-leg routing through the grid's key waypoints.
//
// What
//
//   - Route: [start] + keys + [goal]. Each consecutive pair is one leg, searched
//     independently on freshly reset node state. Leg paths are concatenated
//     with the junction position kept once.
//   - Any unreachable leg fails the whole route (search.ErrNoPath); there is no
//     partial result.
//   - Step costs come from a CostFunc (UnitCost by default, TerrainCost for
//     terrain-weighted grids). The heuristic is the Manhattan distance.
//   - Result.Explored counts every pop from the open set, stale duplicates
//     included. Result.Cost is the sum of leg costs; PathCost recomputes it
//     from a path.
//
// Optimality
//
//	With every step cost ≥ 1 the Manhattan heuristic is admissible and
//	consistent, so each leg is cost-optimal. Sub-unit costs keep the search
//	complete but may give a costlier path. Negative or NaN costs abort the
//	run with ErrNegativeCost.
//
// Complexity (N = cells, E ≤ 4N)
//
//   - Time:   O((N + E) log N) per leg (lazy deletion keeps up to E heap entries)
//   - Memory: O(N + E)
//
// Usage
//
//	g, _ := grid.New(5, 5)
//	_ = g.SetStart(grid.Pos(0, 0))
//	_ = g.SetGoal(grid.Pos(4, 4))
//	a, _ := astar.New(g, astar.WithCostFunc(astar.TerrainCost))
//	res, err := a.FindPath()
//	if errors.Is(err, search.ErrNoPath) {
//	    // blocked
//	}
//
// Options
//
//   - WithCostFunc(fn): step cost (nil keeps UnitCost).
//   - WithLogger(l):    logr.Logger for run summaries.
//   - WithOnVisit(fn):  hook on each finalized node.
//   - WithOnPush(fn):   hook on each open-set push.
//
// Errors
//
//   - ErrGridNil                    from New with a nil grid.
//   - search.ErrStartNotSet/GoalNotSet if the grid lacks a start or goal.
//   - search.ErrNoPath (wrapped)    if a leg is unreachable.
//   - ErrNegativeCost (wrapped)     if the cost function returns < 0 or NaN.
//
// Concurrency
//
//	An AStar and its grid must not be used from more than one goroutine at a
//	time. Every leg resets the grid's search state.
package astar
