package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// walker encapsulates the mutable state of one run.
type walker struct {
	grid     *grid.Grid
	strategy frontier.Strategy
	opts     Options
	frontier frontier.Frontier
	anchors  frontier.Anchors
	nodes    []frontier.Node // dequeued nodes; Node.Parent indexes this slice
	res      *Result
	done     bool
	err      error
}

// Solve runs strategy s on g to completion.
// Returns ErrNilGrid, ErrStrategy or ErrOptionViolation for invalid input
// (with a nil Result), ErrNoSolution or ErrStepLimit with the partial
// Result, ErrInvariant for a frontier bug, or a wrapped OnExpand error.
func Solve(g *grid.Grid, s frontier.Strategy, opts ...Option) (*Result, error) {
	w, err := newWalker(g, s, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.loop()
}

func newWalker(g *grid.Grid, s frontier.Strategy, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if s.New == nil {
		return nil, fmt.Errorf("%w: %q", ErrStrategy, s.Name)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:     g,
		strategy: s,
		opts:     o,
		frontier: s.New(),
		anchors:  frontier.AnchorsFor(s.Requires, g.Start, g.Goal),
		res: &Result{
			Strategy: s.Name,
			Start:    g.Start,
			Goal:     g.Goal,
			Explored: make(map[grid.Position]struct{}),
		},
	}
	w.frontier.Add(frontier.Root(g.Start))
	return w, nil
}

// loop steps until the run succeeds or fails.
func (w *walker) loop() error {
	for !w.done {
		if _, err := w.step(); err != nil {
			return err
		}
	}
	return w.err
}

// finish marks the run terminal with err.
func (w *walker) finish(err error) error {
	w.done = true
	w.err = err
	return err
}

// step performs exactly one removal and, unless it reached the goal,
// expands the removed node.
func (w *walker) step() (frontier.Node, error) {
	if w.done {
		return frontier.Node{}, w.err
	}
	if w.frontier.Empty() {
		return frontier.Node{}, w.finish(ErrNoSolution)
	}
	if w.opts.MaxSteps > 0 && w.res.ExploredCount >= w.opts.MaxSteps {
		return frontier.Node{}, w.finish(fmt.Errorf("%w: %d removals", ErrStepLimit, w.opts.MaxSteps))
	}

	n, err := w.frontier.Remove(w.anchors)
	if err != nil {
		return frontier.Node{}, w.finish(fmt.Errorf("%w: %s frontier: %w", ErrInvariant, w.strategy.Name, err))
	}
	w.opts.OnDequeue(n)

	idx := len(w.nodes)
	w.nodes = append(w.nodes, n)
	w.res.ExploredCount++
	w.res.Explored[n.State] = struct{}{}
	w.res.ExploredOrder = append(w.res.ExploredOrder, n.State)

	if n.State == w.grid.Goal {
		w.res.Solution, w.res.path = w.reconstruct(idx)
		return n, w.finish(nil)
	}

	if err := w.opts.OnExpand(n.State, w.res.ExploredCount); err != nil {
		return n, w.finish(fmt.Errorf("search: OnExpand error at %v: %w", n.State, err))
	}
	w.expand(n, idx)
	return n, nil
}

// expand enqueues every neighbor of n that is neither pending nor explored.
func (w *walker) expand(n frontier.Node, idx int) {
	for _, s := range w.grid.Neighbors(n.State) {
		if w.frontier.ContainsState(s.State) || w.res.IsExplored(s.State) {
			continue
		}
		child := frontier.Node{State: s.State, Parent: idx, Action: s.Action}
		w.opts.OnEnqueue(child)
		w.frontier.Add(child)
	}
}

// reconstruct follows parent links from the node at idx back to the root
// and returns the start→goal solution, excluding the root.
func (w *walker) reconstruct(idx int) (*Solution, map[grid.Position]struct{}) {
	sol := &Solution{}
	cells := make(map[grid.Position]struct{})
	for n := w.nodes[idx]; !n.IsRoot(); n = w.nodes[n.Parent] {
		sol.Actions = append(sol.Actions, n.Action)
		sol.Cells = append(sol.Cells, n.State)
		cells[n.State] = struct{}{}
	}
	slices.Reverse(sol.Actions)
	slices.Reverse(sol.Cells)
	return sol, cells
}

// snapshot captures the state after the last removal of n.
func (w *walker) snapshot(n frontier.Node) Snapshot {
	return Snapshot{
		Step:          w.res.ExploredCount,
		Current:       n.State,
		Action:        n.Action,
		Pending:       w.frontier.States(),
		ExploredCount: w.res.ExploredCount,
		Done:          w.done,
		Found:         w.res.Found(),
	}
}
