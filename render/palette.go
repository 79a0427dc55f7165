package render

import (
	"image/color"
	"strings"
)

// Cell classifies a grid cell for drawing.
type Cell int

const (
	CellOpen Cell = iota
	CellWall
	CellStart
	CellGoal
	CellSolution
	CellExplored
	CellPending
	CellCurrent
)

// Palette maps every Cell kind to a color.
var Palette = map[Cell]color.RGBA{
	CellWall:     {40, 40, 40, 255},
	CellStart:    {255, 0, 0, 255},
	CellGoal:     {0, 171, 28, 255},
	CellSolution: {220, 235, 113, 255},
	CellExplored: {212, 97, 85, 255},
	CellOpen:     {237, 240, 252, 255},
	CellPending:  {100, 149, 237, 255},
	CellCurrent:  {255, 165, 0, 255},
}

// hex formats c as "#rrggbb".
func hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range []uint8{c.R, c.G, c.B} {
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0x0f])
	}
	return sb.String()
}

// LabelMode selects the per-cell numbers drawn on images.
type LabelMode int

const (
	// LabelNone draws no numbers.
	LabelNone LabelMode = iota
	// LabelHeuristic draws the distance to goal, "h".
	LabelHeuristic
	// LabelCost draws distance from start plus distance to goal, "g+h".
	LabelCost
)

// LabelsFor returns the label mode matching how a strategy scores cells:
// greedy shows the heuristic, A* shows cost plus heuristic.
func LabelsFor(strategy string) LabelMode {
	switch strategy {
	case "gbfs":
		return LabelHeuristic
	case "astar":
		return LabelCost
	default:
		return LabelNone
	}
}

// ParseLabelMode maps "none", "heuristic" and "cost" to a LabelMode.
func ParseLabelMode(s string) (LabelMode, bool) {
	switch strings.ToLower(s) {
	case "none", "":
		return LabelNone, true
	case "heuristic", "h":
		return LabelHeuristic, true
	case "cost", "g+h":
		return LabelCost, true
	}
	return LabelNone, false
}
