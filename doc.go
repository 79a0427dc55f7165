// Package mazepath solves text mazes with classic uninformed and informed
// search strategies, and shows how differently each one explores.
//
// What is in the box?
//
//	grid/      maze model: parsing, bounds, walls, 4-way neighbors
//	frontier/  Stack (DFS), Queue (BFS), Greedy (GBFS) and AStar frontiers,
//	           the strategy registry and Manhattan heuristics
//	search/    the solver loop, Solve and a step-by-step Stepper
//	render/    text, lipgloss-styled and PNG renderings of a result
//	report/    concurrent strategy comparison written as a table,
//	           JSON, YAML or Parquet
//
// The mazepath command under cmd/ wires these together and adds an
// interactive terminal stepper.
//
// Quick example maze ('A' start, 'B' goal, '#' wall):
//
//	A  #
//	 # #
//	 #  B
//
// Solve it:
//
//	g, _ := grid.Load("maze.txt")
//	res, err := search.Solve(g, frontier.AStarSearch)
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
