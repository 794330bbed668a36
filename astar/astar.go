// Notes on implementation choices:
//
//   - The open set is a containers.MinHeap keyed by F at push time. There is
//     no decrease-key: a cheaper route pushes a new entry and the stale one is
//     dropped when popped (lazy deletion).
//   - Finalized positions live in a mapset; the node's Visited flag mirrors it
//     so callers can inspect exploration after the run.
//   - First discovery is tracked by Node.Discovered rather than by G == 0.
//   - The heuristic is the Manhattan distance to the current leg's target.

package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/containers"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// AStar is a reusable A* strategy bound to one grid. It keeps its open set
// between runs and clears it at the start of every leg.
type AStar struct {
	g      *grid.Grid
	opts   Options
	open   *containers.MinHeap[int, float64]
	closed mapset.Set[grid.Position]
	nbuf   []int
}

// compile-time check
var _ search.Finder = (*AStar)(nil)

// New binds an A* strategy to g. Returns ErrGridNil if g is nil.
func New(g *grid.Grid, opts ...Option) (*AStar, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AStar{
		g:      g,
		opts:   cfg,
		open:   containers.NewMinHeap[int, float64](g.Len()),
		closed: mapset.New[grid.Position](),
		nbuf:   make([]int, 0, 4),
	}, nil
}

// FindPath searches start → key₁ → … → goal, one independent leg at a time,
// and concatenates the legs without repeating junction positions.
//
// Returns:
//
//   - ErrStartNotSet / ErrGoalNotSet (from search) if the grid is not configured.
//   - an error wrapping search.ErrNoPath if any leg is unreachable; no partial
//     route is returned.
//   - an error wrapping ErrNegativeCost if the cost function misbehaves.
//
// After the run, node Visited flags describe the last leg searched.
func (a *AStar) FindPath() (*search.Result, error) {
	runID := search.NewRunID()
	log := a.opts.Logger.WithValues("run", runID, "algorithm", "astar")

	waypoints, err := a.g.Waypoints()
	if err != nil {
		log.Error(err, "cannot search")
		return nil, err
	}

	res := &search.Result{
		RunID: runID,
		Legs:  make([]search.Leg, 0, len(waypoints)-1),
	}
	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		seg, explored, cost, err := a.findSegment(from, to)
		res.Explored += explored
		if err != nil {
			if errors.Is(err, search.ErrNoPath) {
				log.Info("no path", "leg", i, "from", from.String(), "to", to.String(), "explored", res.Explored)
				return nil, fmt.Errorf("%w: leg %d %v -> %v", search.ErrNoPath, i, from, to)
			}
			log.Error(err, "search aborted", "leg", i)
			return nil, err
		}
		res.Legs = append(res.Legs, search.Leg{
			From: from, To: to, Length: len(seg), Explored: explored, Cost: cost,
		})
		res.Cost += cost
		// every leg after the first starts where the previous one ended
		if i > 0 {
			seg = seg[1:]
		}
		res.Path = append(res.Path, seg...)
	}

	log.V(1).Info("path found", "length", len(res.Path), "explored", res.Explored, "cost", res.Cost)
	return res, nil
}

// findSegment runs one A* search from → to on freshly reset grid state.
// It returns the segment path, the number of pops, and the path cost.
func (a *AStar) findSegment(from, to grid.Position) ([]grid.Position, int, float64, error) {
	// 1) fresh state for this leg
	a.g.ResetSearch()
	a.open.Clear()
	a.closed = mapset.New[grid.Position]()

	oi, ok := a.g.Index(from)
	if !ok || !a.g.HasNode(to) {
		return nil, 0, 0, search.ErrNoPath
	}

	// 2) seed the origin
	origin := a.g.At(oi)
	origin.G = 0
	origin.H = heuristic(from, to)
	origin.RecalcF()
	origin.Discovered = true
	a.open.Push(oi, origin.F)

	explored := 0
	for !a.open.IsEmpty() {
		// 3) pop the cheapest entry, dropping stale duplicates
		ci, err := a.open.Pop()
		if err != nil {
			return nil, explored, 0, fmt.Errorf("astar: open set: %w", err)
		}
		explored++
		cur := a.g.At(ci)
		pos := cur.Position()
		if a.closed.Has(pos) {
			continue
		}
		a.closed.Put(pos)
		cur.Visited = true
		a.opts.OnVisit(pos, cur.Depth)

		// 4) target finalized
		if pos == to {
			return a.g.PathTo(ci), explored, cur.G, nil
		}

		// 5) relax neighbors
		if err = a.relax(ci, to); err != nil {
			return nil, explored, 0, err
		}
	}

	// 6) open set exhausted
	return nil, explored, 0, search.ErrNoPath
}

// relax examines every valid, non-finalized neighbor of node ci and adopts
// the route through ci when it is strictly cheaper or the first one found.
// Each adoption pushes a new heap entry.
func (a *AStar) relax(ci int, target grid.Position) error {
	cur := a.g.At(ci)
	a.nbuf = a.g.NeighborIndices(ci, a.nbuf[:0])
	for _, ni := range a.nbuf {
		nb := a.g.At(ni)
		if a.closed.Has(nb.Position()) {
			continue
		}

		step := a.opts.Cost(cur, nb)
		if step < 0 || math.IsNaN(step) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, cur.Position(), nb.Position(), step)
		}

		tentative := cur.G + step
		if nb.Discovered && tentative >= nb.G {
			continue
		}
		nb.Parent = ci
		nb.G = tentative
		nb.H = heuristic(nb.Position(), target)
		nb.Depth = cur.Depth + 1
		nb.RecalcF()
		nb.Discovered = true

		a.open.Push(ni, nb.F)
		a.opts.OnPush(nb.Position(), nb.F)
	}

	return nil
}

// heuristic is the Manhattan distance between p and q.
func heuristic(p, q grid.Position) float64 { return float64(p.Manhattan(q)) }
