package bfs

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/containers"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// BFS is a reusable breadth-first strategy bound to one grid.
// It ignores key waypoints and searches start → goal directly.
type BFS struct {
	g       *grid.Grid
	opts    Options
	queue   *containers.Queue[int]
	visited mapset.Set[grid.Position]
	nbuf    []int
}

var _ search.Finder = (*BFS)(nil)

// New binds a BFS strategy to g. Returns ErrGridNil if g is nil.
func New(g *grid.Grid, opts ...Option) (*BFS, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &BFS{
		g:       g,
		opts:    o,
		queue:   containers.NewQueue[int](),
		visited: mapset.New[grid.Position](),
		nbuf:    make([]int, 0, 4),
	}, nil
}

// FindPath returns a shortest start → goal path by edge count.
//
// Returns ErrStartNotSet / ErrGoalNotSet (from search) if the grid is not
// configured, or search.ErrNoPath if the goal is unreachable.
func (b *BFS) FindPath() (*search.Result, error) {
	runID := search.NewRunID()
	log := b.opts.Logger.WithValues("run", runID, "algorithm", "bfs")

	start, goal, err := endpoints(b.g)
	if err != nil {
		log.Error(err, "cannot search")
		return nil, err
	}

	path, explored, err := b.walk(start, goal)
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			log.Info("no path", "from", start.String(), "to", goal.String(), "explored", explored)
			return nil, fmt.Errorf("%w: %v -> %v", search.ErrNoPath, start, goal)
		}
		log.Error(err, "search aborted")
		return nil, err
	}

	log.V(1).Info("path found", "length", len(path), "explored", explored)
	return &search.Result{RunID: runID, Path: path, Explored: explored}, nil
}

// walk runs the queue loop. Nodes are marked visited when enqueued, so each
// is enqueued at most once and its recorded depth is minimal.
func (b *BFS) walk(start, goal grid.Position) ([]grid.Position, int, error) {
	b.g.ResetSearch()
	b.queue.Clear()
	b.visited = mapset.New[grid.Position]()

	si, ok := b.g.Index(start)
	if !ok || !b.g.HasNode(goal) {
		return nil, 0, search.ErrNoPath
	}
	b.enqueue(si, grid.NoParent, 0)

	explored := 0
	for !b.queue.IsEmpty() {
		ci, err := b.queue.Dequeue()
		if err != nil {
			return nil, explored, fmt.Errorf("bfs: queue: %w", err)
		}
		explored++
		cur := b.g.At(ci)
		b.opts.OnVisit(cur.Position(), cur.Depth)

		if cur.Position() == goal {
			return b.g.PathTo(ci), explored, nil
		}

		b.nbuf = b.g.NeighborIndices(ci, b.nbuf[:0])
		for _, ni := range b.nbuf {
			if b.visited.Has(b.g.At(ni).Position()) {
				continue
			}
			b.enqueue(ni, ci, cur.Depth+1)
		}
	}

	return nil, explored, search.ErrNoPath
}

// enqueue marks node i visited at depth d with the given parent and adds it
// to the queue.
func (b *BFS) enqueue(i, parent, d int) {
	n := b.g.At(i)
	n.Visited = true
	n.Discovered = true
	n.Parent = parent
	n.Depth = d
	b.visited.Put(n.Position())
	b.opts.OnEnqueue(n.Position(), d)
	b.queue.Enqueue(i)
}

// endpoints returns the grid's start and goal.
func endpoints(g *grid.Grid) (grid.Position, grid.Position, error) {
	start, ok := g.Start()
	if !ok {
		return grid.Position{}, grid.Position{}, search.ErrStartNotSet
	}
	goal, ok := g.Goal()
	if !ok {
		return grid.Position{}, grid.Position{}, search.ErrGoalNotSet
	}

	return start, goal, nil
}
