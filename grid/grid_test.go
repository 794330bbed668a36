package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// newGrid builds an r×c grid or fails the test.
func newGrid(t *testing.T, r, c int) *grid.Grid {
	t.Helper()
	g, err := grid.New(r, c)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"NegativeRows", -1, 3},
		{"NegativeCols", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			if !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestNew_AllCellsExist(t *testing.T) {
	g := newGrid(t, 3, 4)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Len())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			n, ok := g.Node(grid.Pos(r, c))
			require.True(t, ok, "node %d,%d missing", r, c)
			assert.Equal(t, grid.Pos(r, c), n.Position())
			assert.Equal(t, grid.NoParent, n.Parent)
			assert.Equal(t, grid.Plain, n.Terrain)
		}
	}
	assert.False(t, g.HasNode(grid.Pos(3, 0)))
	assert.False(t, g.HasNode(grid.Pos(-1, 0)))
}

func TestNew_EmptyThenAddNode(t *testing.T) {
	g := newGrid(t, 0, 0)
	assert.Equal(t, 0, g.Len())

	g.AddNode(grid.Pos(5, 5))
	g.AddNode(grid.Pos(5, 6))
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.IsValid(grid.Pos(5, 5)))

	nbs := g.Neighbors(grid.Pos(5, 5))
	require.Len(t, nbs, 1)
	assert.Equal(t, grid.Pos(5, 6), nbs[0].Position())
}

// Nodes handed out before the arena grows must stay the grid's nodes.
func TestAddNode_PointersSurviveGrowth(t *testing.T) {
	g := newGrid(t, 0, 0)
	first := g.AddNode(grid.Pos(0, 0))
	for c := 1; c < 64; c++ {
		g.AddNode(grid.Pos(0, c))
	}

	first.Terrain = grid.Mud
	tr, ok := g.Terrain(grid.Pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, grid.Mud, tr)

	n, ok := g.Node(grid.Pos(0, 0))
	require.True(t, ok)
	assert.Same(t, first, n)

	i, _ := g.Index(grid.Pos(0, 0))
	assert.Same(t, first, g.At(i))

	first.Visited = true
	assert.True(t, g.IsVisited(grid.Pos(0, 0)))
	g.ResetSearch()
	assert.False(t, first.Visited)
}

func TestGrid_ZeroValue(t *testing.T) {
	var g grid.Grid
	assert.Zero(t, g.Len())
	assert.False(t, g.IsBarrier(grid.Pos(0, 0)))
	assert.Empty(t, g.Barriers())

	g.AddNode(grid.Pos(0, 0))
	g.AddNode(grid.Pos(0, 1))
	require.NoError(t, g.AddBarrier(grid.Pos(0, 1)))
	assert.True(t, g.IsBarrier(grid.Pos(0, 1)))
	assert.True(t, g.IsValid(grid.Pos(0, 0)))
	assert.Empty(t, g.Neighbors(grid.Pos(0, 0)))
}

func TestAddNode_OverwritesInPlace(t *testing.T) {
	g := newGrid(t, 2, 2)
	p := grid.Pos(1, 1)
	require.NoError(t, g.SetTerrain(p, grid.Mud))
	n, _ := g.Node(p)
	n.G, n.Visited, n.Parent = 4, true, 0
	before, _ := g.Index(p)

	fresh := g.AddNode(p)
	after, _ := g.Index(p)
	assert.Equal(t, before, after, "arena slot must be reused")
	assert.Same(t, n, fresh, "overwrite must keep the node's address")
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, grid.Plain, fresh.Terrain)
	assert.Zero(t, fresh.G)
	assert.False(t, fresh.Visited)
	assert.Equal(t, grid.NoParent, fresh.Parent)
}

//----------------------------------------------------------------------------//
// Waypoints
//----------------------------------------------------------------------------//

func TestStartGoal(t *testing.T) {
	g := newGrid(t, 3, 3)

	_, ok := g.Start()
	assert.False(t, ok)
	assert.ErrorIs(t, g.SetStart(grid.Pos(9, 9)), grid.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetGoal(grid.Pos(0, 3)), grid.ErrNodeNotFound)

	require.NoError(t, g.SetStart(grid.Pos(0, 0)))
	require.NoError(t, g.SetGoal(grid.Pos(2, 2)))
	s, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, grid.Pos(0, 0), s)

	// replacing is atomic
	require.NoError(t, g.SetStart(grid.Pos(1, 0)))
	s, _ = g.Start()
	assert.Equal(t, grid.Pos(1, 0), s)

	g.ClearGoal()
	_, ok = g.Goal()
	assert.False(t, ok)
}

func TestKeys_OrderedSet(t *testing.T) {
	g := newGrid(t, 3, 3)
	require.NoError(t, g.AddKey(grid.Pos(0, 2)))
	require.NoError(t, g.AddKey(grid.Pos(2, 0)))
	require.NoError(t, g.AddKey(grid.Pos(0, 2))) // duplicate ignored
	require.NoError(t, g.AddKey(grid.Pos(1, 1)))
	assert.ErrorIs(t, g.AddKey(grid.Pos(3, 3)), grid.ErrNodeNotFound)

	assert.Equal(t, []grid.Position{grid.Pos(0, 2), grid.Pos(2, 0), grid.Pos(1, 1)}, g.Keys())
	assert.True(t, g.IsKey(grid.Pos(2, 0)))

	assert.True(t, g.RemoveKey(grid.Pos(2, 0)))
	assert.False(t, g.RemoveKey(grid.Pos(2, 0)), "second removal is a no-op")
	assert.Equal(t, []grid.Position{grid.Pos(0, 2), grid.Pos(1, 1)}, g.Keys())

	// Keys returns a copy
	keys := g.Keys()
	keys[0] = grid.Pos(9, 9)
	assert.Equal(t, grid.Pos(0, 2), g.Keys()[0])

	g.ClearKeys()
	assert.Empty(t, g.Keys())
}

func TestWaypoints(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, err := g.Waypoints()
	assert.ErrorIs(t, err, grid.ErrStartNotSet)

	require.NoError(t, g.SetStart(grid.Pos(0, 0)))
	_, err = g.Waypoints()
	assert.ErrorIs(t, err, grid.ErrGoalNotSet)

	require.NoError(t, g.SetGoal(grid.Pos(2, 2)))
	require.NoError(t, g.AddKey(grid.Pos(0, 2)))
	require.NoError(t, g.AddKey(grid.Pos(2, 0)))
	wps, err := g.Waypoints()
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{
		grid.Pos(0, 0), grid.Pos(0, 2), grid.Pos(2, 0), grid.Pos(2, 2),
	}, wps)
}

//----------------------------------------------------------------------------//
// Barriers and validity
//----------------------------------------------------------------------------//

func TestBarriers(t *testing.T) {
	g := newGrid(t, 3, 3)
	assert.ErrorIs(t, g.AddBarrier(grid.Pos(5, 5)), grid.ErrNodeNotFound)

	require.NoError(t, g.AddBarrier(grid.Pos(1, 1)))
	require.NoError(t, g.AddBarrier(grid.Pos(0, 2)))
	assert.True(t, g.IsBarrier(grid.Pos(1, 1)))
	assert.True(t, g.HasNode(grid.Pos(1, 1)), "barrier is an overlay")
	assert.False(t, g.IsValid(grid.Pos(1, 1)))
	assert.True(t, g.IsValid(grid.Pos(1, 0)))
	assert.False(t, g.IsValid(grid.Pos(3, 0)))
	assert.Equal(t, []grid.Position{grid.Pos(0, 2), grid.Pos(1, 1)}, g.Barriers())

	assert.True(t, g.RemoveBarrier(grid.Pos(1, 1)))
	assert.False(t, g.RemoveBarrier(grid.Pos(1, 1)))
	assert.False(t, g.RemoveBarrier(grid.Pos(7, 7)))
	assert.True(t, g.IsValid(grid.Pos(1, 1)))

	g.ClearBarriers()
	assert.Empty(t, g.Barriers())
}

func TestBarrier_KeepsWaypointReferences(t *testing.T) {
	g := newGrid(t, 2, 2)
	require.NoError(t, g.SetStart(grid.Pos(0, 0)))
	require.NoError(t, g.AddKey(grid.Pos(1, 1)))
	require.NoError(t, g.AddBarrier(grid.Pos(0, 0)))
	require.NoError(t, g.AddBarrier(grid.Pos(1, 1)))

	s, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, grid.Pos(0, 0), s)
	assert.True(t, g.IsKey(grid.Pos(1, 1)))
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func TestNeighbors_Order(t *testing.T) {
	g := newGrid(t, 3, 3)
	nbs := g.Neighbors(grid.Pos(1, 1))
	got := make([]grid.Position, len(nbs))
	for i, n := range nbs {
		got[i] = n.Position()
	}
	// up, down, left, right
	assert.Equal(t, []grid.Position{
		grid.Pos(0, 1), grid.Pos(2, 1), grid.Pos(1, 0), grid.Pos(1, 2),
	}, got)
}

func TestNeighbors_EdgesAndBarriers(t *testing.T) {
	g := newGrid(t, 3, 3)
	require.NoError(t, g.AddBarrier(grid.Pos(0, 1)))

	nbs := g.Neighbors(grid.Pos(0, 0))
	require.Len(t, nbs, 1)
	assert.Equal(t, grid.Pos(1, 0), nbs[0].Position())

	assert.Nil(t, g.Neighbors(grid.Pos(4, 4)))

	i, ok := g.Index(grid.Pos(2, 2))
	require.True(t, ok)
	buf := make([]int, 0, 4)
	buf = g.NeighborIndices(i, buf[:0])
	require.Len(t, buf, 2)
	assert.Equal(t, grid.Pos(1, 2), g.At(buf[0]).Position())
	assert.Equal(t, grid.Pos(2, 1), g.At(buf[1]).Position())
}

//----------------------------------------------------------------------------//
// Search state
//----------------------------------------------------------------------------//

func TestResetSearch(t *testing.T) {
	g := newGrid(t, 2, 2)
	require.NoError(t, g.SetTerrain(grid.Pos(0, 1), grid.Desert))
	require.NoError(t, g.AddBarrier(grid.Pos(1, 1)))
	require.NoError(t, g.SetStart(grid.Pos(0, 0)))
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		n.G, n.H = 3, 4
		n.RecalcF()
		n.Parent = 0
		n.Visited = true
		n.Discovered = true
		n.Depth = 2
	}
	assert.Equal(t, 4, g.VisitedCount())

	g.ResetSearch()
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		assert.Zero(t, n.G)
		assert.Zero(t, n.H)
		assert.Zero(t, n.F)
		assert.Equal(t, grid.NoParent, n.Parent)
		assert.False(t, n.Visited)
		assert.False(t, n.Discovered)
		assert.Zero(t, n.Depth)
	}
	assert.Equal(t, 0, g.VisitedCount())
	tr, _ := g.Terrain(grid.Pos(0, 1))
	assert.Equal(t, grid.Desert, tr, "terrain survives reset")
	assert.True(t, g.IsBarrier(grid.Pos(1, 1)), "barriers survive reset")
	_, ok := g.Start()
	assert.True(t, ok, "waypoints survive reset")
}

func TestPathTo(t *testing.T) {
	g := newGrid(t, 1, 3)
	a, _ := g.Index(grid.Pos(0, 0))
	b, _ := g.Index(grid.Pos(0, 1))
	c, _ := g.Index(grid.Pos(0, 2))
	g.At(b).Parent = a
	g.At(c).Parent = b

	assert.Equal(t, []grid.Position{grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(0, 2)}, g.PathTo(c))
	assert.Equal(t, []grid.Position{grid.Pos(0, 0)}, g.PathTo(a))
}

//----------------------------------------------------------------------------//
// Terrain
//----------------------------------------------------------------------------//

func TestTerrain(t *testing.T) {
	assert.Equal(t, 1.0, grid.Plain.Cost())
	assert.Equal(t, 2.0, grid.Grass.Cost())
	assert.Equal(t, 1.0, grid.Ice.Cost())
	assert.Equal(t, 3.0, grid.Desert.Cost())
	assert.Equal(t, 5.0, grid.Mud.Cost())
	assert.Equal(t, 1.0, grid.Terrain(200).Cost())

	for _, tr := range []grid.Terrain{grid.Plain, grid.Grass, grid.Ice, grid.Desert, grid.Mud} {
		got, err := grid.ParseTerrain(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}
	got, err := grid.ParseTerrain("  MUD ")
	require.NoError(t, err)
	assert.Equal(t, grid.Mud, got)

	_, err = grid.ParseTerrain("lava")
	assert.ErrorIs(t, err, grid.ErrUnknownTerrain)

	g := newGrid(t, 1, 1)
	assert.ErrorIs(t, g.SetTerrain(grid.Pos(1, 1), grid.Mud), grid.ErrNodeNotFound)
	_, ok := g.Terrain(grid.Pos(1, 1))
	assert.False(t, ok)
}

func TestPosition(t *testing.T) {
	p := grid.Pos(2, 3)
	assert.Equal(t, 5, p.Manhattan(grid.Pos(0, 0)))
	assert.Equal(t, 5, grid.Pos(0, 0).Manhattan(p))
	assert.True(t, p.Adjacent(grid.Pos(2, 4)))
	assert.False(t, p.Adjacent(grid.Pos(3, 4)))
	assert.False(t, p.Adjacent(p))
	assert.Equal(t, "(2,3)", p.String())
}
