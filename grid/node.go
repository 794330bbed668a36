package grid

// Node is the per-cell search record. Grids own their nodes; a node lives as
// long as its grid and is reused by every search run on it.
//
// Only G, H, F, Parent, Visited, Discovered and Depth are transient. They are
// mutated in place by the strategies and cleared by Grid.ResetSearch.
type Node struct {
	pos Position

	// G is the best known cost from the current search origin.
	G float64
	// H is the heuristic estimate to the current search target.
	H float64
	// F = G + H. The only field that orders the open set.
	F float64

	// Parent is the arena index of the predecessor, or NoParent.
	Parent int
	// Visited marks the node as finalized (or, for BFS, enqueued).
	Visited bool
	// Discovered marks that some route to the node has been recorded.
	Discovered bool
	// Depth counts edges from the origin.
	Depth int

	// Terrain is persistent cell data.
	Terrain Terrain
}

// Position returns the node's cell coordinate.
func (n *Node) Position() Position { return n.pos }

// RecalcF sets F = G + H.
func (n *Node) RecalcF() { n.F = n.G + n.H }

// Reset clears the transient search state.
func (n *Node) Reset() {
	n.G, n.H, n.F = 0, 0, 0
	n.Parent = NoParent
	n.Visited = false
	n.Discovered = false
	n.Depth = 0
}
