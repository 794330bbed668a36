package grid

import "fmt"

// ValidatePath checks that path is a walkable route on g from `from` to `to`:
// non-empty, starts at from, ends at to, every step is one orthogonal move,
// and no position is missing from the grid or blocked.
// Returns nil, or ErrInvalidPath wrapped with the first violation found.
// Complexity: O(len(path)).
func (g *Grid) ValidatePath(path []Position, from, to Position) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != from {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, path[0], from)
	}
	if last := path[len(path)-1]; last != to {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, to)
	}
	for i, p := range path {
		if !g.HasNode(p) {
			return fmt.Errorf("%w: step %d at %v has no node", ErrInvalidPath, i, p)
		}
		if g.IsBarrier(p) {
			return fmt.Errorf("%w: step %d at %v is a barrier", ErrInvalidPath, i, p)
		}
		if i > 0 && !path[i-1].Adjacent(p) {
			return fmt.Errorf("%w: discontinuity %v -> %v", ErrInvalidPath, path[i-1], p)
		}
	}

	return nil
}
