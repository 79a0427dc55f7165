package search

import (
	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// Stepper drives a run one removal at a time.
type Stepper struct {
	w    *walker
	last frontier.Node
}

// NewStepper prepares a run of s on g without taking any step.
func NewStepper(g *grid.Grid, s frontier.Strategy, opts ...Option) (*Stepper, error) {
	w, err := newWalker(g, s, opts)
	if err != nil {
		return nil, err
	}
	return &Stepper{w: w, last: frontier.Root(g.Start)}, nil
}

// Step performs one removal and returns the resulting snapshot.
// Once the run is over, Step keeps returning the final snapshot together
// with the terminal error (nil on success).
func (s *Stepper) Step() (Snapshot, error) {
	if s.w.done {
		return s.w.snapshot(s.last), s.w.err
	}
	n, err := s.w.step()
	if err == nil {
		s.last = n
	}
	return s.w.snapshot(s.last), err
}

// Run steps until the run is over and returns its outcome.
func (s *Stepper) Run() (*Result, error) {
	return s.w.res, s.w.loop()
}

// Done reports whether the run is over.
func (s *Stepper) Done() bool { return s.w.done }

// Err returns the terminal error, nil while running or after success.
func (s *Stepper) Err() error { return s.w.err }

// Result returns the live result; it is complete once Done reports true.
func (s *Stepper) Result() *Result { return s.w.res }

// Pending lists the pending states in frontier order.
func (s *Stepper) Pending() []grid.Position { return s.w.frontier.States() }

// Strategy returns the strategy being run.
func (s *Stepper) Strategy() frontier.Strategy { return s.w.strategy }
