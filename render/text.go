package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// TextOptions controls which search results Text overlays.
type TextOptions struct {
	ShowSolution bool
	ShowExplored bool
}

// DefaultTextOptions shows the solution but not the explored set.
func DefaultTextOptions() TextOptions {
	return TextOptions{ShowSolution: true}
}

// classify returns the Cell kind of p. res may be nil.
func classify(g *grid.Grid, res *search.Result, p grid.Position, showSolution, showExplored bool) Cell {
	switch {
	case g.IsWall(p):
		return CellWall
	case p == g.Start:
		return CellStart
	case p == g.Goal:
		return CellGoal
	case showSolution && res.OnPath(p):
		return CellSolution
	case showExplored && res.IsExplored(p):
		return CellExplored
	default:
		return CellOpen
	}
}

var textGlyphs = map[Cell]byte{
	CellWall:     '#',
	CellStart:    'A',
	CellGoal:     'B',
	CellSolution: '*',
	CellExplored: '.',
	CellOpen:     ' ',
}

// Text writes g to w using '#', 'A', 'B', '*' for solution cells, '.' for
// explored cells and ' ' otherwise, framed by blank lines. res may be nil.
func Text(w io.Writer, g *grid.Grid, res *search.Result, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('\n')
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := classify(g, res, grid.Position{Row: r, Col: c}, opts.ShowSolution, opts.ShowExplored)
			bw.WriteByte(textGlyphs[cell])
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
