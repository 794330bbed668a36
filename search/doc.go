// Package search holds what the grid search strategies have in common.
//
// Every strategy (astar.AStar, bfs.BFS, dfs.DFS) satisfies Finder:
//
//	res, err := finder.FindPath()
//	switch {
//	case errors.Is(err, search.ErrNoPath):
//	    // target unreachable; res == nil
//	case errors.Is(err, search.ErrStartNotSet), errors.Is(err, search.ErrGoalNotSet):
//	    // configure the grid first
//	case err != nil:
//	    // logic defect (e.g. containers.ErrEmptyContainer) or bad cost function
//	default:
//	    // res.Path, res.Explored
//	}
//
// "No path" is never a zero-length path: when start equals goal the path is
// the single start position.
package search
