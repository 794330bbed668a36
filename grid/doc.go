// Package grid treats a rectangular 2D grid of cells as a graph of reusable
// search nodes, the shared substrate of the astar, bfs and dfs strategies.
//
// What:
//
//   - Grid owns exactly one Node per cell for its whole life. Nodes live in an
//     arena of stable pointers, so a *Node stays valid as the grid grows.
//     Predecessors are arena indices.
//   - Barriers are an overlay: a blocked cell keeps its node.
//   - Waypoints: optional start and goal, plus ordered, duplicate-free keys.
//   - Terrain is a closed tag with a fixed entry cost (Plain 1, Ice 1,
//     Grass 2, Desert 3, Mud 5).
//
// Why:
//
//   - Puzzle editors mutate one grid incrementally and rerun searches on it.
//   - Strategies mutate node state in place; ResetSearch makes the next run
//     start from a clean slate without reallocating.
//
// Neighbor order:
//
//	Neighbors and NeighborIndices always yield up, down, left, right.
//	DFS exploration order depends on this, so it is part of the contract.
//
// Complexity:
//
//   - New:         O(R×C) time and memory.
//   - IsValid:     O(1).
//   - Neighbors:   O(1).
//   - ResetSearch: O(R×C).
//
// Errors:
//
//   - ErrBadDimensions: negative rows or cols.
//   - ErrNodeNotFound:  mutation referencing a position with no node.
//   - ErrUnknownTerrain: ParseTerrain on an unknown name.
//   - ErrStartNotSet, ErrGoalNotSet: Waypoints before both ends are set.
//   - ErrInvalidPath: ValidatePath rejects a route.
//   - ErrBadLayout: Parse rejects a text layout.
//
// Text layouts:
//
//	Parse and Render share one symbol set, handy for fixtures and demos:
//
//	S.#.G    '.' plain   '#' barrier   'S' start   'G' goal
//	.g#1.    'g' grass   'i' ice       'd' desert  'm' mud
//	.....    '1'…'9' keys in visit order; Render adds '*' for a path
//
// Concurrency:
//
//	A Grid is not locked. Run one search at a time and do not mutate the grid
//	while a search is in flight.
package grid
