package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrMazeFormat indicates the maze description cannot form a valid Grid.
	ErrMazeFormat = errors.New("grid: invalid maze format")
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: maze must have at least one row and one column", ErrMazeFormat)
	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: position out of bounds", ErrMazeFormat)
	// ErrBlockedEndpoint indicates start or goal sits on a wall.
	ErrBlockedEndpoint = fmt.Errorf("%w: start and goal must be open cells", ErrMazeFormat)
	// ErrSameEndpoint indicates start and goal share a cell.
	ErrSameEndpoint = fmt.Errorf("%w: start and goal must differ", ErrMazeFormat)
)

// Maze description markers.
const (
	StartMarker = 'A'
	GoalMarker  = 'B'
	OpenMarker  = ' '
	WallMarker  = '#'
)

// Position addresses a single cell.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the position one step away from p in direction d.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction labels the action taken to move between adjacent cells.
type Direction int

const (
	// NoDirection marks the root of a search, which was not reached by a move.
	NoDirection Direction = iota - 1
	Up
	Down
	Left
	Right
)

// Directions lists the four moves in neighbor enumeration order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionOffsets = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var directionNames = [4]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Offset returns the (row, col) delta of a unit move in direction d.
// NoDirection yields (0, 0).
func (d Direction) Offset() (dRow, dCol int) {
	if d < Up || d > Right {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// String returns the lowercase direction label.
func (d Direction) String() string {
	if d < Up || d > Right {
		return "none"
	}
	return directionNames[d]
}

// MarshalText encodes d as its label.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Step is a reachable neighbor together with the move leading to it.
type Step struct {
	Action Direction
	State  Position
}
