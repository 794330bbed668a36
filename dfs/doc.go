// Package dfs implements depth-first search on a grid.Grid.
//
// The walk is iterative over a containers.Stack. A cell is marked visited
// when it is popped, not when it is pushed, so the same cell may be pushed
// several times; later pushes overwrite its Parent and Depth, and stale
// entries are skipped when popped. Neighbors are pushed in up, down, left,
// right order, so the right-hand neighbor is explored first.
//
// DFS finds a valid path when one exists but gives no length guarantee.
// Key waypoints are ignored.
//
// Complexity:
//
//   - Time:   O(N) pops of distinct cells, O(4N) pushes in total.
//   - Memory: O(4N) stack entries in the worst case.
//
// Options:
//
//   - WithLogger(l)   logr.Logger for run summaries.
//   - WithOnPush(fn)  hook on every push.
//   - WithOnVisit(fn) pre-order hook, once per cell.
//
// Errors:
//
//   - ErrGridNil                          if g is nil.
//   - search.ErrStartNotSet/ErrGoalNotSet if the grid lacks a start or goal.
//   - search.ErrNoPath (wrapped)          if the goal is unreachable.
package dfs
