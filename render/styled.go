package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// StyleOptions controls the styled renderer.
type StyleOptions struct {
	ShowSolution bool
	ShowExplored bool
	// Pending highlights frontier cells while a run is in progress.
	Pending []grid.Position
	// Current highlights the most recently removed cell, if set.
	Current *grid.Position
	// Renderer overrides the lipgloss renderer; nil uses the default.
	Renderer *lipgloss.Renderer
}

var styledGlyphs = map[Cell]string{
	CellStart: "A ",
	CellGoal:  "B ",
}

// Styled renders g as a block of two-column cells colored with Palette.
// res may be nil.
func Styled(g *grid.Grid, res *search.Result, opts StyleOptions) string {
	newStyle := lipgloss.NewStyle
	if opts.Renderer != nil {
		newStyle = opts.Renderer.NewStyle
	}
	styles := make(map[Cell]lipgloss.Style, len(Palette))
	for cell, c := range Palette {
		styles[cell] = newStyle().
			Background(lipgloss.Color(hex(c))).
			Foreground(lipgloss.Color("#000000"))
	}

	pending := make(map[grid.Position]struct{}, len(opts.Pending))
	for _, p := range opts.Pending {
		pending[p] = struct{}{}
	}

	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			cell := classify(g, res, p, opts.ShowSolution, opts.ShowExplored)
			if cell == CellOpen || cell == CellExplored {
				if _, ok := pending[p]; ok {
					cell = CellPending
				}
			}
			if opts.Current != nil && *opts.Current == p && cell != CellStart && cell != CellGoal {
				cell = CellCurrent
			}
			glyph, ok := styledGlyphs[cell]
			if !ok {
				glyph = "  "
			}
			sb.WriteString(styles[cell].Render(glyph))
		}
		if r < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
