package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/tui"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/report"
	"github.com/katalvlaran/mazepath/search"
)

// App runs one configured maze solve, comparison or interactive session.
type App struct {
	outW   io.Writer
	inR    io.Reader
	cfg    *Config
	logger *slog.Logger
}

// NewApp builds an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		inR:    os.Stdin,
		cfg:    cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run executes the configured action.
func (a *App) Run(ctx context.Context) error {
	g, err := grid.Load(a.cfg.MazePath)
	if err != nil {
		a.logger.Error("Failed to load maze.", "path", a.cfg.MazePath, "error", err)
		return err
	}
	a.logger.Info("Maze loaded.",
		"path", a.cfg.MazePath, "height", g.Height, "width", g.Width,
		"open_cells", g.OpenCells(), "start", g.Start.String(), "goal", g.Goal.String())

	strategies, err := a.cfg.Strategies()
	if err != nil {
		return err
	}
	opts := a.searchOptions()

	switch {
	case a.cfg.Interactive:
		a.logger.Info("Starting interactive session.", "strategy", strategies[0].Name)
		return tui.Run(ctx, g, strategies[0], a.inR, a.outW, opts...)
	case a.cfg.ReportFormat != "" || len(strategies) > 1:
		if a.cfg.ImagePath != "" {
			a.logger.Warn("Image output is only produced for single-strategy runs.", "image", a.cfg.ImagePath)
		}
		return a.compare(ctx, g, strategies, opts)
	default:
		return a.solve(g, strategies[0], opts)
	}
}

// searchOptions translates config into search options, adding debug tracing.
func (a *App) searchOptions() []search.Option {
	opts := []search.Option{search.WithMaxSteps(a.cfg.MaxSteps)}
	if a.logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, search.WithOnExpand(func(p grid.Position, explored int) error {
			a.logger.Debug("Expanding cell.", "pos", p.String(), "explored", explored)
			return nil
		}))
	}
	return opts
}

// solve runs a single strategy, printing the maze before and after.
func (a *App) solve(g *grid.Grid, s frontier.Strategy, opts []search.Option) error {
	fmt.Fprintln(a.outW, "Maze:")
	if err := a.draw(g, nil); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Solving with %s search...\n", s.Title)

	res, solveErr := search.Solve(g, s, opts...)
	if res != nil {
		fmt.Fprintln(a.outW, "States Explored:", res.ExploredCount)
	}
	if solveErr == nil {
		a.logger.Info("Solution found.", "strategy", s.Name, "steps", res.Solution.Len(), "explored", res.ExploredCount)
		fmt.Fprintln(a.outW, "Solution:")
		if err := a.draw(g, res); err != nil {
			return err
		}
	} else {
		a.logger.Info("Search finished without a solution.", "strategy", s.Name, "error", solveErr)
	}

	if a.cfg.ImagePath != "" && res != nil {
		imgOpts := render.DefaultImageOptions()
		imgOpts.ShowExplored = a.cfg.ShowExplored
		imgOpts.Labels = a.cfg.LabelMode(s)
		if err := render.SavePNG(a.cfg.ImagePath, g, res, imgOpts); err != nil {
			a.logger.Error("Failed to write image.", "path", a.cfg.ImagePath, "error", err)
			return err
		}
		a.logger.Info("Image written.", "path", a.cfg.ImagePath)
	}
	return solveErr
}

// draw prints g and res in the configured style.
func (a *App) draw(g *grid.Grid, res *search.Result) error {
	if !a.cfg.Color {
		return render.Text(a.outW, g, res, render.TextOptions{ShowSolution: true, ShowExplored: a.cfg.ShowExplored})
	}
	out := render.Styled(g, res, render.StyleOptions{ShowSolution: true, ShowExplored: a.cfg.ShowExplored})
	_, err := fmt.Fprintf(a.outW, "\n%s\n\n", out)
	return err
}

// compare runs all strategies concurrently and writes the report.
func (a *App) compare(ctx context.Context, g *grid.Grid, strategies []frontier.Strategy, opts []search.Option) error {
	format := report.FormatTable
	if a.cfg.ReportFormat != "" {
		f, err := report.ParseFormat(a.cfg.ReportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	rows, err := report.Compare(ctx, g, strategies, opts...)
	if err != nil {
		a.logger.Error("Comparison failed.", "error", err)
		return err
	}
	for _, r := range rows {
		a.logger.Info("Strategy finished.", "strategy", r.Strategy, "found", r.Found, "explored", r.Explored, "steps", r.Steps)
	}

	if a.cfg.ReportOut == "" {
		return report.Write(a.outW, rows, format)
	}
	if dir := filepath.Dir(a.cfg.ReportOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(a.cfg.ReportOut)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Write(f, rows, format); err != nil {
		f.Close()
		return err
	}
	a.logger.Info("Report written.", "path", a.cfg.ReportOut, "format", string(format))
	return f.Close()
}
