package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when the frontier empties before the goal.
	ErrNoSolution = errors.New("search: no solution")

	// ErrStepLimit is returned when WithMaxSteps is exceeded.
	ErrStepLimit = errors.New("search: step limit reached")

	// ErrInvariant wraps frontier failures that correct driver logic never
	// triggers.
	ErrInvariant = errors.New("search: frontier invariant violated")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStrategy is returned for a strategy without a constructor.
	ErrStrategy = errors.New("search: strategy has no frontier constructor")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures a search run.
type Option func(*Options)

// Options holds hooks and limits for a run.
type Options struct {
	// MaxSteps, if > 0, caps the number of removals.
	MaxSteps int

	// OnDequeue is called with every node removed from the frontier.
	OnDequeue func(n frontier.Node)

	// OnEnqueue is called with every child just before it is added.
	OnEnqueue func(n frontier.Node)

	// OnExpand is called before the neighbors of a non-goal node are
	// generated. explored is the running ExploredCount. A non-nil error
	// aborts the run.
	OnExpand func(p grid.Position, explored int) error

	err error
}

// DefaultOptions returns Options with no step limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxSteps:  0,
		OnDequeue: func(frontier.Node) {},
		OnEnqueue: func(frontier.Node) {},
		OnExpand:  func(grid.Position, int) error { return nil },
	}
}

// WithMaxSteps limits the run to n removals.
//
//	n > 0:  limit
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnDequeue registers a removal hook.
func WithOnDequeue(fn func(n frontier.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEnqueue registers an insertion hook.
func WithOnEnqueue(fn func(n frontier.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers an expansion hook; returning an error stops the run.
func WithOnExpand(fn func(p grid.Position, explored int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Solution is the path found by a successful run, ordered start→goal.
// Cells excludes the start and ends at the goal; Actions[i] leads into Cells[i].
type Solution struct {
	Actions []grid.Direction
	Cells   []grid.Position
}

// Len returns the number of moves.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Actions)
}

// Contains reports whether p is one of the solution cells.
func (s *Solution) Contains(p grid.Position) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// Result holds the outcome of a run. It is populated on success and, for
// diagnostics, on ErrNoSolution and ErrStepLimit.
type Result struct {
	Strategy      string
	Start, Goal   grid.Position
	Solution      *Solution
	Explored      map[grid.Position]struct{}
	ExploredOrder []grid.Position
	ExploredCount int

	path map[grid.Position]struct{}
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r != nil && r.Solution != nil
}

// IsExplored reports whether p was removed from the frontier.
func (r *Result) IsExplored(p grid.Position) bool {
	if r == nil {
		return false
	}
	_, ok := r.Explored[p]
	return ok
}

// OnPath reports whether p is a solution cell.
func (r *Result) OnPath(p grid.Position) bool {
	if !r.Found() {
		return false
	}
	if r.path == nil {
		return r.Solution.Contains(p)
	}
	_, ok := r.path[p]
	return ok
}

// Snapshot describes the state of a run after one Stepper.Step.
type Snapshot struct {
	Step          int
	Current       grid.Position
	Action        grid.Direction
	Pending       []grid.Position
	ExploredCount int
	Done          bool
	Found         bool
}
