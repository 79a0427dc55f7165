// Package search runs a graph search over a grid.Grid using any
// frontier.Strategy, producing the solution path and the explored set.
//
// What
//
//   - Solve seeds a fresh frontier with the start cell and repeatedly:
//     1. removes one node according to the strategy,
//     2. records its state as explored,
//     3. stops if it is the goal, rebuilding the path from parent links,
//     4. otherwise enqueues every open neighbor (up, down, left, right)
//     that is neither pending nor explored.
//   - Result carries Solution (actions and cells, start→goal, start
//     excluded), the explored set in dequeue order, and ExploredCount.
//   - Stepper exposes the same loop one removal at a time for UIs.
//
// Node storage
//
//	Dequeued nodes are appended to an arena slice; a child stores its
//	parent's arena index. Parents are always older than their children, so
//	path reconstruction walks strictly decreasing indices and terminates in
//	at most ExploredCount steps.
//
// Determinism
//
//	Neighbor order is fixed and every frontier breaks ties by insertion
//	order, so repeated runs on the same grid yield identical results.
//
// Concurrency
//
//	A run is single-threaded and has no suspension points. Independent runs
//	may share one *grid.Grid.
//
// Options
//
//   - WithMaxSteps(n):   stop with ErrStepLimit after n removals (0 = no limit).
//   - WithOnDequeue(fn): hook called with every removed node.
//   - WithOnEnqueue(fn): hook called with every child before it is added.
//   - WithOnExpand(fn):  hook called before a non-goal node is expanded;
//     returning an error aborts the run.
//
// Errors
//
//   - ErrNilGrid          grid pointer is nil.
//   - ErrStrategy         strategy has no frontier constructor.
//   - ErrOptionViolation  invalid Option (e.g. negative step limit).
//   - ErrNoSolution       frontier exhausted before reaching the goal.
//   - ErrStepLimit        WithMaxSteps budget spent.
//   - ErrInvariant        the frontier refused a removal the driver
//     believed valid; this indicates a bug, not bad input.
//
// On every error except the argument errors, the partial Result is still
// returned for diagnostics and rendering.
package search
