package dfs

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/containers"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// DFS is a reusable depth-first strategy bound to one grid.
type DFS struct {
	g       *grid.Grid
	opts    Options
	stack   *containers.Stack[int]
	visited mapset.Set[grid.Position]
	nbuf    []int
}

var _ search.Finder = (*DFS)(nil)

// New binds a DFS strategy to g. Returns ErrGridNil if g is nil.
func New(g *grid.Grid, opts ...Option) (*DFS, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	return &DFS{
		g:       g,
		opts:    dopts,
		stack:   containers.NewStack[int](),
		visited: mapset.New[grid.Position](),
		nbuf:    make([]int, 0, 4),
	}, nil
}

// FindPath explores most-recently-discovered cells first and returns the
// first start → goal path it reaches. The path is valid but not
// necessarily shortest. Key waypoints are ignored.
func (d *DFS) FindPath() (*search.Result, error) {
	runID := search.NewRunID()
	log := d.opts.Logger.WithValues("run", runID, "algorithm", "dfs")

	start, ok := d.g.Start()
	if !ok {
		log.Error(search.ErrStartNotSet, "cannot search")
		return nil, search.ErrStartNotSet
	}
	goal, ok := d.g.Goal()
	if !ok {
		log.Error(search.ErrGoalNotSet, "cannot search")
		return nil, search.ErrGoalNotSet
	}

	path, explored, err := d.walk(start, goal)
	switch {
	case errors.Is(err, search.ErrNoPath):
		log.Info("no path", "from", start.String(), "to", goal.String(), "explored", explored)
		return nil, fmt.Errorf("%w: %v -> %v", search.ErrNoPath, start, goal)
	case err != nil:
		log.Error(err, "search aborted")
		return nil, err
	}

	log.V(1).Info("path found", "length", len(path), "explored", explored)
	return &search.Result{RunID: runID, Path: path, Explored: explored}, nil
}

// walk runs the stack loop. Cells are marked visited when popped, so a cell
// may sit on the stack several times; each push overwrites its Parent and
// the topmost push wins.
func (d *DFS) walk(start, goal grid.Position) ([]grid.Position, int, error) {
	// 1. Reset state
	d.g.ResetSearch()
	d.stack.Clear()
	d.visited = mapset.New[grid.Position]()

	si, ok := d.g.Index(start)
	if !ok || !d.g.HasNode(goal) {
		return nil, 0, search.ErrNoPath
	}
	d.stack.Push(si)

	// 2. Pop until the goal is visited or the stack drains
	explored := 0
	for !d.stack.IsEmpty() {
		ci, err := d.stack.Pop()
		if err != nil {
			return nil, explored, fmt.Errorf("dfs: stack: %w", err)
		}
		cur := d.g.At(ci)
		pos := cur.Position()
		if d.visited.Has(pos) {
			continue
		}
		d.visited.Put(pos)
		cur.Visited = true
		explored++
		d.opts.OnVisit(pos, cur.Depth)

		if pos == goal {
			return d.g.PathTo(ci), explored, nil
		}

		// 3. Push unvisited neighbors; the last one pushed is explored first
		d.nbuf = d.g.NeighborIndices(ci, d.nbuf[:0])
		for _, ni := range d.nbuf {
			nb := d.g.At(ni)
			if d.visited.Has(nb.Position()) {
				continue
			}
			nb.Parent = ci
			nb.Depth = cur.Depth + 1
			nb.Discovered = true
			d.stack.Push(ni)
			d.opts.OnPush(nb.Position(), nb.Depth)
		}
	}

	return nil, explored, search.ErrNoPath
}
