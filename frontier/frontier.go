package frontier

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Stack is the depth-first frontier: Remove returns the newest node.
type Stack struct{ pool }

// NewStack returns an empty Stack.
func NewStack() *Stack { return &Stack{pool: newPool()} }

// Requires reports NeedsNothing.
func (*Stack) Requires() Requirement { return NeedsNothing }

// Remove pops the most recently added node.
func (s *Stack) Remove(Anchors) (Node, error) {
	if s.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	return s.take(s.Len() - 1), nil
}

// Queue is the breadth-first frontier: Remove returns the oldest node.
type Queue struct{ pool }

// NewQueue returns an empty Queue.
func NewQueue() *Queue { return &Queue{pool: newPool()} }

// Requires reports NeedsNothing.
func (*Queue) Requires() Requirement { return NeedsNothing }

// Remove dequeues the least recently added node.
func (q *Queue) Remove(Anchors) (Node, error) {
	if q.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	return q.take(0), nil
}

// Greedy is the greedy best-first frontier.
type Greedy struct{ pool }

// NewGreedy returns an empty Greedy frontier.
func NewGreedy() *Greedy { return &Greedy{pool: newPool()} }

// Requires reports NeedsGoal.
func (*Greedy) Requires() Requirement { return NeedsGoal }

// Remove takes the first pending node with the smallest Heuristic to a.Goal.
func (g *Greedy) Remove(a Anchors) (Node, error) {
	if g.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	if !a.Set.Has(NeedsGoal) {
		return Node{}, fmt.Errorf("%w: greedy needs %s, got %s", ErrMissingAnchor, NeedsGoal, a.Set)
	}
	i := g.selectMin(func(p grid.Position) int {
		return Heuristic(a.Goal, p)
	})
	return g.take(i), nil
}

// AStar scores nodes by PathCost from start plus Heuristic to goal.
type AStar struct{ pool }

// NewAStar returns an empty AStar frontier.
func NewAStar() *AStar { return &AStar{pool: newPool()} }

// Requires reports NeedsStart|NeedsGoal.
func (*AStar) Requires() Requirement { return NeedsStart | NeedsGoal }

// Remove takes the first pending node with the smallest Estimate.
func (f *AStar) Remove(a Anchors) (Node, error) {
	if f.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	if need := f.Requires(); !a.Set.Has(need) {
		return Node{}, fmt.Errorf("%w: astar needs %s, got %s", ErrMissingAnchor, need, a.Set)
	}
	i := f.selectMin(func(p grid.Position) int {
		return Estimate(a.Start, a.Goal, p)
	})
	return f.take(i), nil
}

// Compile-time interface checks.
var (
	_ Frontier = (*Stack)(nil)
	_ Frontier = (*Queue)(nil)
	_ Frontier = (*Greedy)(nil)
	_ Frontier = (*AStar)(nil)
)
