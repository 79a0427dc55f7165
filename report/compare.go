package report

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Row summarizes one strategy run.
type Row struct {
	Strategy string `json:"strategy" yaml:"strategy" parquet:"strategy,dict"`
	Found    bool   `json:"found" yaml:"found" parquet:"found"`
	Explored int64  `json:"explored" yaml:"explored" parquet:"explored"`
	Steps    int64  `json:"steps" yaml:"steps" parquet:"steps"`
	// Optimal is true when Steps equals the breadth-first step count.
	// It is only meaningful when a bfs row is part of the comparison.
	Optimal bool `json:"optimal" yaml:"optimal" parquet:"optimal"`
}

// Compare runs every strategy on g concurrently and returns one Row per
// strategy in input order. A run that finds no path yields a row with
// Found=false; any other run error aborts the comparison.
// opts are applied to every run.
func Compare(ctx context.Context, g *grid.Grid, strategies []frontier.Strategy, opts ...search.Option) ([]Row, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	rows := make([]Row, len(strategies))
	eg, ctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		i, s := i, s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := search.Solve(g, s, opts...)
			switch {
			case errors.Is(err, search.ErrNoSolution):
			case err != nil:
				return fmt.Errorf("report: %s: %w", s.Name, err)
			}
			rows[i] = Row{
				Strategy: s.Name,
				Found:    res.Found(),
				Explored: int64(res.ExploredCount),
				Steps:    int64(res.Solution.Len()),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	markOptimal(rows)
	return rows, nil
}

// markOptimal flags rows whose path is as short as the bfs row's.
func markOptimal(rows []Row) {
	best := int64(-1)
	for _, r := range rows {
		if r.Strategy == frontier.BFS.Name && r.Found {
			best = r.Steps
		}
	}
	if best < 0 {
		return
	}
	for i := range rows {
		rows[i].Optimal = rows[i].Found && rows[i].Steps == best
	}
}
