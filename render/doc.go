// Package render draws a grid.Grid and an optional search.Result as plain
// text, styled terminal text, or a PNG image.
//
// Cell precedence, highest first: wall, start, goal, solution cell,
// explored cell, open cell. The same palette is used by the styled and
// image renderers.
package render
