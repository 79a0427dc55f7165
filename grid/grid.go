package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze. It is immutable once built and may be shared
// by concurrent readers.
// walls[r][c] reports whether cell (r,c) is impassable.
type Grid struct {
	Height, Width int
	Start, Goal   Position
	walls         [][]bool
}

// New constructs a Grid from a wall matrix and the two endpoints.
// Rows shorter than the widest row are padded with open cells.
// The input is deep-copied so later mutation by the caller has no effect.
//
// Returns ErrEmptyGrid, ErrOutOfBounds, ErrBlockedEndpoint or ErrSameEndpoint,
// all of which match ErrMazeFormat.
// Complexity: O(H×W) time and memory.
func New(walls [][]bool, start, goal Position) (*Grid, error) {
	h := len(walls)
	w := 0
	for _, row := range walls {
		if len(row) > w {
			w = len(row)
		}
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], walls[r])
	}
	g := &Grid{Height: h, Width: w, Start: start, Goal: goal, walls: cells}

	for _, p := range [2]Position{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, h, w)
		}
		if cells[p.Row][p.Col] {
			return nil, fmt.Errorf("%w: %v is a wall", ErrBlockedEndpoint, p)
		}
	}
	if start == goal {
		return nil, fmt.Errorf("%w: both at %v", ErrSameEndpoint, start)
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// IsWall reports whether p is impassable. Out-of-bounds cells are walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.walls[p.Row][p.Col]
}

// IsOpen reports whether p is an in-bounds, non-wall cell.
func (g *Grid) IsOpen(p Position) bool {
	return !g.IsWall(p)
}

// Walls returns a copy of the wall matrix.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for r := range g.walls {
		out[r] = make([]bool, g.Width)
		copy(out[r], g.walls[r])
	}
	return out
}

// Neighbors returns the open, in-bounds cells adjacent to p in the fixed
// order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Step {
	steps := make([]Step, 0, len(Directions))
	for _, d := range Directions {
		next := p.Move(d)
		if g.IsWall(next) {
			continue
		}
		steps = append(steps, Step{Action: d, State: next})
	}
	return steps
}

// OpenCells counts the cells that are not walls.
func (g *Grid) OpenCells() int {
	n := 0
	for _, row := range g.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}
	return n
}

// String renders g in the textual maze format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.Start:
				sb.WriteRune(StartMarker)
			case p == g.Goal:
				sb.WriteRune(GoalMarker)
			case g.walls[r][c]:
				sb.WriteRune(WallMarker)
			default:
				sb.WriteRune(OpenMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
