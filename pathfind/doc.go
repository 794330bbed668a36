// Package pathfind picks one of the grid search strategies by name.
//
// All three strategies implement search.Finder, so callers that let a user
// choose ("astar", "bfs", "dfs") can stay strategy-agnostic:
//
//	alg, err := pathfind.ParseAlgorithm("a*")
//	f, err := pathfind.New(alg, g, pathfind.Options{Cost: astar.TerrainCost})
//	res, err := f.FindPath()
//
// Only A* honors Options.Cost and key waypoints; BFS and DFS search start →
// goal directly with unit steps.
package pathfind
