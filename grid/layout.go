package grid

import (
	"fmt"
	"strings"
)

// Layout symbols understood by Parse and emitted by Render.
const (
	SymPlain   = '.'
	SymBarrier = '#'
	SymStart   = 'S'
	SymGoal    = 'G'
	SymGrass   = 'g'
	SymIce     = 'i'
	SymDesert  = 'd'
	SymMud     = 'm'
	SymPath    = '*'
	// SymKey marks keys beyond the ninth in Render output.
	SymKey = 'K'
)

var terrainSym = map[rune]Terrain{
	SymPlain:  Plain,
	SymGrass:  Grass,
	SymIce:    Ice,
	SymDesert: Desert,
	SymMud:    Mud,
}

var symTerrain = [...]rune{
	Plain:  SymPlain,
	Grass:  SymGrass,
	Ice:    SymIce,
	Desert: SymDesert,
	Mud:    SymMud,
}

// Parse builds a grid from a text layout, one string per row.
//
// Symbols: '.' plain, '#' barrier, 'S' start, 'G' goal, '1'…'9' keys
// (visited in numeric order, gaps allowed), and 'g', 'i', 'd', 'm' for
// grass, ice, desert and mud. Surrounding whitespace on a row is ignored.
//
// Returns ErrBadLayout for ragged rows, unknown symbols, or a repeated
// start, goal or key digit.
func Parse(layout []string) (*Grid, error) {
	rows := make([][]rune, 0, len(layout))
	for _, line := range layout {
		rows = append(rows, []rune(strings.TrimSpace(line)))
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	var keys [9]Position
	var hasKey [9]bool
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, len(row), cols)
		}
		for c, sym := range row {
			p := Pos(r, c)
			switch {
			case sym == SymBarrier:
				g.barriers.Put(p)
			case sym == SymStart:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrBadLayout, p)
				}
				g.start, g.hasStart = p, true
			case sym == SymGoal:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: second goal at %v", ErrBadLayout, p)
				}
				g.goal, g.hasGoal = p, true
			case sym >= '1' && sym <= '9':
				k := sym - '1'
				if hasKey[k] {
					return nil, fmt.Errorf("%w: key %c repeated at %v", ErrBadLayout, sym, p)
				}
				keys[k], hasKey[k] = p, true
			default:
				t, ok := terrainSym[sym]
				if !ok {
					return nil, fmt.Errorf("%w: symbol %q at %v", ErrBadLayout, sym, p)
				}
				g.nodes[g.index[p]].Terrain = t
			}
		}
	}
	for k, ok := range hasKey {
		if ok {
			g.keys = append(g.keys, keys[k])
		}
	}

	return g, nil
}

// Render draws the grid as text, one string per row, using the Parse
// symbols. Positions on path are drawn as '*' unless they hold a start,
// goal or key. Cells without a node render as a space.
func (g *Grid) Render(path []Position) []string {
	onPath := make(map[Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	out := make([]string, 0, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.symbolAt(Pos(r, c), onPath))
		}
		out = append(out, sb.String())
	}

	return out
}

func (g *Grid) symbolAt(p Position, onPath map[Position]struct{}) rune {
	n, ok := g.Node(p)
	switch {
	case !ok:
		return ' '
	case g.hasStart && p == g.start:
		return SymStart
	case g.hasGoal && p == g.goal:
		return SymGoal
	}
	for i, k := range g.keys {
		if k == p {
			if i < 9 {
				return rune('1' + i)
			}
			return SymKey
		}
	}
	if g.barriers.Has(p) {
		return SymBarrier
	}
	if _, ok = onPath[p]; ok {
		return SymPath
	}
	if int(n.Terrain) < len(symTerrain) {
		return symTerrain[n.Terrain]
	}
	return SymPlain
}
