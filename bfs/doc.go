// Package bfs provides breadth-first search over a grid.Grid, returning a
// shortest start → goal path by edge count.
//
// What
//
//   - Explores cells in non-decreasing distance from the grid's start.
//   - Marks a cell visited when it is enqueued, so every cell enters the
//     queue at most once and its Depth is the true edge distance.
//   - Operates on start and goal only; key waypoints are ignored.
//   - Result.Explored counts dequeues. After a run, Grid.VisitedCount
//     reports how many cells were enqueued.
//
// Determinism
//
//	Neighbors are enqueued in up, down, left, right order, so the visit
//	sequence and the returned path are reproducible for a given grid.
//
// Complexity (N = cells)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Usage
//
//	b, err := bfs.New(g, bfs.WithOnVisit(func(p grid.Position, d int) {
//	    // draw p
//	}))
//	res, err := b.FindPath()
//
// Errors
//
//   - ErrGridNil                         from New with a nil grid.
//   - search.ErrStartNotSet/ErrGoalNotSet if the grid lacks a start or goal.
//   - search.ErrNoPath (wrapped)          if the goal is unreachable.
package bfs
