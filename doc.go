// Package gridpath finds routes across rectangular grids of cells with
// barriers, terrain and ordered key waypoints.
//
// 🚀 What is gridpath?
//
//	A small, single-threaded path-search engine:
//		• Containers: min-heap, FIFO queue, LIFO stack (generic)
//		• Grid: node arena, barriers, start/goal, key waypoints, terrain
//		• A*: cost-optimal, Manhattan heuristic, multi-leg key routing
//		• BFS: shortest by edge count
//		• DFS: any path, most-recently-discovered first
//
// ✨ Why gridpath?
//
//   - Reusable grids: every run resets node state, so one grid serves many searches
//   - Arena-backed nodes: parents are indices, never pointers
//   - Hooks on every strategy (OnVisit, OnPush, OnEnqueue) for animation
//   - Structured run summaries through go-logr
//
// Packages:
//
//	containers/ — MinHeap, Queue, Stack
//	grid/       — Grid, Node, Position, Terrain, path validation
//	search/     — Finder, Result, shared errors
//	astar/      — A* with waypoint chaining and cost functions
//	bfs/        — breadth-first search
//	dfs/        — depth-first search
//	pathfind/   — choose a strategy by name
//
// Quick ASCII example (S start, G goal, # barrier):
//
//	S . # . .
//	. . # . .
//	. . # . .
//	. . # . .
//	. . . . G
//
//	A* and BFS return 9 positions through the gap at the bottom of the wall;
//	DFS returns a longer but valid route.
//
// Only one search may run against a grid at a time; callers serialize.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
