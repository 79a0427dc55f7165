// Package frontier holds the pending nodes of a maze search and decides
// which one is expanded next.
//
// What
//
//   - Node: immutable (state, parent index, action) record.
//   - Frontier: the shared contract Add / Empty / Len / ContainsState / Remove.
//   - Four selection policies:
//   - Stack  (depth-first):       most recently added node.
//   - Queue  (breadth-first):     least recently added node.
//   - Greedy (greedy best-first): minimum Heuristic(goal, state).
//   - AStar:                      minimum Heuristic(goal, state) + PathCost(start, state).
//     Ties go to the earliest pending node.
//   - Strategy: a descriptor naming a policy, its aliases, the anchors its
//     Remove consults (Requirement), and a constructor.
//
// Anchors
//
//	Remove receives an Anchors value carrying start and goal. Its Set field
//	records which of them the caller filled in; a policy that needs an
//	anchor the caller did not set fails with ErrMissingAnchor instead of
//	silently scoring against the zero Position.
//
// A* cost term
//
//	PathCost is the Manhattan distance from start, not the number of moves
//	actually taken. With obstacles forcing detours the two differ, so this
//	A* variant is not admissible and may return a longer path than BFS.
//
// Complexity (n = pending nodes)
//
//   - Add, Empty, Len, ContainsState: O(1) amortized.
//   - Stack.Remove, Queue.Remove:      O(1) amortized.
//   - Greedy.Remove, AStar.Remove:     O(n) scan plus O(n) order-preserving delete.
//
// Errors
//
//   - ErrEmptyFrontier   Remove on a frontier with no pending nodes.
//   - ErrMissingAnchor   Remove without an anchor the policy requires.
//   - ErrUnknownStrategy Lookup of an unregistered strategy name.
package frontier
