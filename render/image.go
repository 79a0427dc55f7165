package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// ImageOptions controls the PNG renderer.
type ImageOptions struct {
	CellSize     int
	Border       int
	ShowSolution bool
	ShowExplored bool
	Labels       LabelMode
}

// DefaultImageOptions returns 50px cells with a 2px border, showing the
// solution and no labels.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: 50, Border: 2, ShowSolution: true}
}

// Image draws g on an RGBA canvas: a black background with one inset,
// palette-colored square per cell. res may be nil.
func Image(g *grid.Grid, res *search.Result, opts ImageOptions) (*image.RGBA, error) {
	if opts.CellSize <= 0 || opts.Border < 0 || 2*opts.Border >= opts.CellSize {
		return nil, fmt.Errorf("render: invalid cell geometry (size %d, border %d)", opts.CellSize, opts.Border)
	}
	size, border := opts.CellSize, opts.Border
	img := image.NewRGBA(image.Rect(0, 0, g.Width*size, g.Height*size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			cell := classify(g, res, p, opts.ShowSolution, opts.ShowExplored)
			rect := image.Rect(c*size+border, r*size+border, (c+1)*size-border, (r+1)*size-border)
			draw.Draw(img, rect, image.NewUniform(Palette[cell]), image.Point{}, draw.Src)

			if cell != CellWall {
				drawLabel(img, rect, label(g, p, opts.Labels))
			}
		}
	}
	return img, nil
}

// label returns the text drawn in an open cell for mode.
func label(g *grid.Grid, p grid.Position, mode LabelMode) string {
	h := frontier.Heuristic(g.Goal, p)
	switch mode {
	case LabelHeuristic:
		return strconv.Itoa(h)
	case LabelCost:
		return strconv.Itoa(frontier.PathCost(g.Start, p)) + "+" + strconv.Itoa(h)
	default:
		return ""
	}
}

// drawLabel writes s near the left of rect, a third of the way down.
func drawLabel(img draw.Image, rect image.Rectangle, s string) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.P(
			rect.Min.X+rect.Dx()/8,
			rect.Min.Y+rect.Dy()/3+face.Metrics().Ascent.Ceil(),
		),
	}
	d.DrawString(s)
}

// PNG encodes the Image of g to w.
func PNG(w io.Writer, g *grid.Grid, res *search.Result, opts ImageOptions) error {
	img, err := Image(g, res, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the Image of g to path.
func SavePNG(path string, g *grid.Grid, res *search.Result, opts ImageOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := PNG(f, g, res, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
