// Package grid models a rectangular maze as a read-only matrix of wall flags
// with one start cell and one goal cell.
//
// What:
//
//   - Grid wraps a [][]bool wall matrix together with its Start and Goal.
//   - Position addresses a cell by (Row, Col), 0-indexed from the top-left.
//   - Direction labels a unit move: up, down, left or right.
//   - Parse/Load read the textual maze format:
//
//     'A' start, 'B' goal, ' ' open, any other rune a wall.
//
// Why:
//
//   - Search strategies need a cheap, immutable neighbor oracle.
//   - A single Grid may be shared by several concurrent searches.
//
// Ragged input:
//
//	Rows shorter than the widest row are padded with open cells, so
//
//	    "A#\n B"   and   "A#\n B  "
//
//	describe grids of different widths but identical connectivity.
//
// Complexity:
//
//   - New / Parse:  O(H×W) time and memory.
//   - Neighbors:    O(1), at most four results in the fixed order
//     up, down, left, right.
//
// Errors:
//
//   - ErrMazeFormat: wrong start/goal marker count, or any structural problem.
//   - ErrEmptyGrid, ErrOutOfBounds, ErrBlockedEndpoint, ErrSameEndpoint:
//     structural problems; all of them also match ErrMazeFormat.
package grid
