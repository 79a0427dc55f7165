package frontier

import (
	"fmt"
	"strings"
)

// Strategy describes one search policy: how to name it, which anchors its
// Remove consults, and how to build a fresh frontier for a run.
type Strategy struct {
	Name     string
	Title    string
	Aliases  []string
	Requires Requirement
	New      func() Frontier
}

// String returns s.Name.
func (s Strategy) String() string { return s.Name }

// Registered strategies.
var (
	DFS = Strategy{
		Name:     "dfs",
		Title:    "depth-first",
		Requires: NeedsNothing,
		New:      func() Frontier { return NewStack() },
	}
	BFS = Strategy{
		Name:     "bfs",
		Title:    "breadth-first",
		Requires: NeedsNothing,
		New:      func() Frontier { return NewQueue() },
	}
	GBFS = Strategy{
		Name:     "gbfs",
		Title:    "greedy best-first",
		Aliases:  []string{"greedy"},
		Requires: NeedsGoal,
		New:      func() Frontier { return NewGreedy() },
	}
	AStarSearch = Strategy{
		Name:     "astar",
		Title:    "A*",
		Aliases:  []string{"a*"},
		Requires: NeedsStart | NeedsGoal,
		New:      func() Frontier { return NewAStar() },
	}
)

// Strategies returns every registered strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{DFS, BFS, GBFS, AStarSearch}
}

// Names returns the primary name of every registered strategy.
func Names() []string {
	all := Strategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a strategy by name or alias, ignoring case.
func Lookup(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.Name == key {
			return s, nil
		}
		for _, alias := range s.Aliases {
			if alias == key {
				return s, nil
			}
		}
	}
	return Strategy{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}
