package grid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// neighborOffsets is the 4-connected step order: up, down, left, right.
// DFS exploration order depends on it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid owns the node arena, the barrier overlay and the waypoints.
//
// Grids normally come from New or Parse. The zero value is an empty grid
// with no dimensions, ready for AddNode.
type Grid struct {
	rows, cols int

	// Each node is allocated once; arena growth moves only the pointers, so
	// a *Node handed out earlier stays live for the grid's lifetime.
	nodes []*Node
	index map[Position]int

	barriers mapset.Set[Position]

	start, goal       Position
	hasStart, hasGoal bool
	keys              []Position
}

// New builds a rows×cols grid where every cell holds a fresh Plain node.
// New(0, 0) yields an empty grid to be filled with AddNode.
// Returns ErrBadDimensions if rows or cols is negative.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, rows, cols)
	}
	n := rows * cols
	g := &Grid{
		rows:     rows,
		cols:     cols,
		nodes:    make([]*Node, 0, n),
		index:    make(map[Position]int, n),
		barriers: mapset.New[Position](),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(Pos(r, c))
		}
	}

	return g, nil
}

// Rows returns the row count given to New.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count given to New.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of nodes in the arena.
func (g *Grid) Len() int { return len(g.nodes) }

// AddNode creates a fresh node at pos and returns it. An existing node at pos
// is overwritten in place: same arena slot, default search state, Plain
// terrain. Barrier and waypoint references to pos are left alone.
func (g *Grid) AddNode(pos Position) *Node {
	fresh := Node{pos: pos, Parent: NoParent}
	if i, ok := g.index[pos]; ok {
		*g.nodes[i] = fresh
		return g.nodes[i]
	}
	if g.index == nil {
		// zero-value Grid
		g.index = make(map[Position]int)
		g.barriers = mapset.New[Position]()
	}
	n := &fresh
	g.index[pos] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n
}

// HasNode reports whether a node exists at pos.
func (g *Grid) HasNode(pos Position) bool {
	_, ok := g.index[pos]
	return ok
}

// Node returns the node at pos.
func (g *Grid) Node(pos Position) (*Node, bool) {
	i, ok := g.index[pos]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// Index returns the arena index of the node at pos.
func (g *Grid) Index(pos Position) (int, bool) {
	i, ok := g.index[pos]
	return i, ok
}

// At returns the node in arena slot i. It panics if i is out of range.
func (g *Grid) At(i int) *Node { return g.nodes[i] }

// SetStart sets the start waypoint. Returns ErrNodeNotFound if pos has no node.
func (g *Grid) SetStart(pos Position) error {
	if !g.HasNode(pos) {
		return fmt.Errorf("%w: start %v", ErrNodeNotFound, pos)
	}
	g.start, g.hasStart = pos, true
	return nil
}

// SetGoal sets the goal waypoint. Returns ErrNodeNotFound if pos has no node.
func (g *Grid) SetGoal(pos Position) error {
	if !g.HasNode(pos) {
		return fmt.Errorf("%w: goal %v", ErrNodeNotFound, pos)
	}
	g.goal, g.hasGoal = pos, true
	return nil
}

// Start returns the start position and whether it is set.
func (g *Grid) Start() (Position, bool) { return g.start, g.hasStart }

// Goal returns the goal position and whether it is set.
func (g *Grid) Goal() (Position, bool) { return g.goal, g.hasGoal }

// ClearStart unsets the start waypoint.
func (g *Grid) ClearStart() { g.start, g.hasStart = Position{}, false }

// ClearGoal unsets the goal waypoint.
func (g *Grid) ClearGoal() { g.goal, g.hasGoal = Position{}, false }

// AddKey appends pos to the key waypoints. Adding a key twice is a no-op.
// Returns ErrNodeNotFound if pos has no node.
func (g *Grid) AddKey(pos Position) error {
	if !g.HasNode(pos) {
		return fmt.Errorf("%w: key %v", ErrNodeNotFound, pos)
	}
	if !slices.Contains(g.keys, pos) {
		g.keys = append(g.keys, pos)
	}
	return nil
}

// RemoveKey drops pos from the key waypoints, keeping the order of the rest.
// Returns false if pos was not a key.
func (g *Grid) RemoveKey(pos Position) bool {
	i := slices.Index(g.keys, pos)
	if i < 0 {
		return false
	}
	g.keys = slices.Delete(g.keys, i, i+1)
	return true
}

// IsKey reports whether pos is a key waypoint.
func (g *Grid) IsKey(pos Position) bool { return slices.Contains(g.keys, pos) }

// Keys returns a copy of the key waypoints in visiting order.
func (g *Grid) Keys() []Position { return slices.Clone(g.keys) }

// ClearKeys removes every key waypoint.
func (g *Grid) ClearKeys() { g.keys = g.keys[:0] }

// Waypoints returns the full route [start] + keys + [goal].
// Returns ErrStartNotSet or ErrGoalNotSet if either end is missing.
func (g *Grid) Waypoints() ([]Position, error) {
	if !g.hasStart {
		return nil, ErrStartNotSet
	}
	if !g.hasGoal {
		return nil, ErrGoalNotSet
	}
	wps := make([]Position, 0, len(g.keys)+2)
	wps = append(wps, g.start)
	wps = append(wps, g.keys...)

	return append(wps, g.goal), nil
}

// AddBarrier blocks pos. Start, goal and key references to pos are not
// cleared; editors that care must remove them first.
// Returns ErrNodeNotFound if pos has no node.
func (g *Grid) AddBarrier(pos Position) error {
	if !g.HasNode(pos) {
		return fmt.Errorf("%w: barrier %v", ErrNodeNotFound, pos)
	}
	g.barriers.Put(pos)
	return nil
}

// RemoveBarrier unblocks pos. Returns false if pos was not a barrier.
func (g *Grid) RemoveBarrier(pos Position) bool {
	if !g.barriers.Has(pos) {
		return false
	}
	g.barriers.Remove(pos)
	return true
}

// IsBarrier reports whether pos is blocked.
func (g *Grid) IsBarrier(pos Position) bool { return g.barriers.Has(pos) }

// Barriers returns the blocked positions in row-major order.
func (g *Grid) Barriers() []Position {
	out := make([]Position, 0, g.barriers.Size())
	g.barriers.Each(func(p Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, comparePositions)

	return out
}

// ClearBarriers unblocks every cell.
func (g *Grid) ClearBarriers() { g.barriers = mapset.New[Position]() }

// SetTerrain assigns terrain to the node at pos.
// Returns ErrNodeNotFound if pos has no node.
func (g *Grid) SetTerrain(pos Position, t Terrain) error {
	n, ok := g.Node(pos)
	if !ok {
		return fmt.Errorf("%w: terrain %v", ErrNodeNotFound, pos)
	}
	n.Terrain = t
	return nil
}

// Terrain returns the terrain at pos.
func (g *Grid) Terrain(pos Position) (Terrain, bool) {
	n, ok := g.Node(pos)
	if !ok {
		return Plain, false
	}
	return n.Terrain, true
}

// IsValid reports whether pos holds a node that is not a barrier.
func (g *Grid) IsValid(pos Position) bool {
	return g.HasNode(pos) && !g.barriers.Has(pos)
}

// NeighborIndices appends to buf the arena indices of the valid cells one
// step up, down, left and right of node i, in that order, and returns buf.
// Pass buf[:0] to reuse storage across calls.
func (g *Grid) NeighborIndices(i int, buf []int) []int {
	p := g.nodes[i].pos
	for _, d := range neighborOffsets {
		q := Pos(p.Row+d[0], p.Col+d[1])
		if !g.IsValid(q) {
			continue
		}
		buf = append(buf, g.index[q])
	}
	return buf
}

// Neighbors returns the valid nodes adjacent to pos in up, down, left,
// right order. Returns nil if pos has no node.
func (g *Grid) Neighbors(pos Position) []*Node {
	i, ok := g.index[pos]
	if !ok {
		return nil
	}
	idx := g.NeighborIndices(i, make([]int, 0, len(neighborOffsets)))
	out := make([]*Node, len(idx))
	for k, j := range idx {
		out[k] = g.nodes[j]
	}
	return out
}

// ResetSearch clears the transient state of every node. Identity, terrain,
// barriers and waypoints are untouched. Complexity: O(n).
func (g *Grid) ResetSearch() {
	for _, n := range g.nodes {
		n.Reset()
	}
}

// PathTo walks Parent links from node i back to the origin and returns the
// positions origin-first.
func (g *Grid) PathTo(i int) []Position {
	var path []Position
	for at := i; at != NoParent; at = g.nodes[at].Parent {
		path = append(path, g.nodes[at].pos)
	}
	slices.Reverse(path)

	return path
}

// VisitedCount returns how many nodes carry the Visited flag.
func (g *Grid) VisitedCount() int {
	n := 0
	for _, node := range g.nodes {
		if node.Visited {
			n++
		}
	}
	return n
}

// IsVisited reports whether the node at pos was visited by the last search.
func (g *Grid) IsVisited(pos Position) bool {
	n, ok := g.Node(pos)
	return ok && n.Visited
}

func comparePositions(a, b Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
