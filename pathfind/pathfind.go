package pathfind

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// New binds the strategy alg to g.
//
// Returns ErrUnknownAlgorithm for an out-of-range alg, or the strategy's
// ErrGridNil if g is nil. The returned Finder is never a typed nil.
func New(alg Algorithm, g *grid.Grid, opts Options) (search.Finder, error) {
	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	var (
		f   search.Finder
		err error
	)
	switch alg {
	case AStar:
		var a *astar.AStar
		if a, err = astar.New(g, astar.WithCostFunc(opts.Cost), astar.WithLogger(logger)); err == nil {
			f = a
		}
	case BFS:
		var b *bfs.BFS
		if b, err = bfs.New(g, bfs.WithLogger(logger)); err == nil {
			f = b
		}
	case DFS:
		var d *dfs.DFS
		if d, err = dfs.New(g, dfs.WithLogger(logger)); err == nil {
			f = d
		}
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// FindPath is a one-shot helper: it binds alg to g and runs a single search.
func FindPath(alg Algorithm, g *grid.Grid, opts Options) (*search.Result, error) {
	f, err := New(alg, g, opts)
	if err != nil {
		return nil, err
	}
	return f.FindPath()
}
