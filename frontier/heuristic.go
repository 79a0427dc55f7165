package frontier

import "github.com/katalvlaran/mazepath/grid"

// Heuristic estimates the remaining distance from pos to goal as the
// Manhattan distance |goal.Row-pos.Row| + |goal.Col-pos.Col|.
func Heuristic(goal, pos grid.Position) int {
	return grid.Manhattan(goal, pos)
}

// PathCost approximates the cost already paid to reach pos as the Manhattan
// distance from start. It ignores detours around walls.
func PathCost(start, pos grid.Position) int {
	return grid.Manhattan(pos, start)
}

// Estimate is the A* score PathCost(start, pos) + Heuristic(goal, pos).
func Estimate(start, goal, pos grid.Position) int {
	return PathCost(start, pos) + Heuristic(goal, pos)
}
