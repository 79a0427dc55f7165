package search_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

// requireValidPath asserts the solution is a chain of adjacent open cells
// from a neighbor of start to goal, consistent with its actions.
func requireValidPath(t *testing.T, g *grid.Grid, sol *search.Solution) {
	t.Helper()
	require.NotNil(t, sol)
	require.Equal(t, len(sol.Actions), len(sol.Cells))
	require.NotEmpty(t, sol.Cells)

	prev := g.Start
	for i, c := range sol.Cells {
		require.True(t, g.IsOpen(c), "cell %v is not open", c)
		require.Equal(t, 1, grid.Manhattan(prev, c), "cell %v not adjacent to %v", c, prev)
		require.Equal(t, prev.Move(sol.Actions[i]), c, "action %v from %v does not reach %v", sol.Actions[i], prev, c)
		prev = c
	}
	require.Equal(t, g.Goal, prev)
}

const openThree = "A  \n # \n  B\n"

const winding = `
##########
#A   #   #
# ## # # #
#  #   # #
## ##### #
#      # #
# #### # #
#    #  B#
##########
`

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestSolve_ThreeByThree checks the 3×3 grid with a center wall.
func TestSolve_ThreeByThree(t *testing.T) {
	g := mustParse(t, openThree)

	res, err := search.Solve(g, frontier.BFS)
	require.NoError(t, err)
	requireValidPath(t, g, res.Solution)
	assert.Equal(t, 4, res.Solution.Len())
	assert.Equal(t, []grid.Direction{grid.Down, grid.Down, grid.Right, grid.Right}, res.Solution.Actions)
	assert.Equal(t, 8, res.ExploredCount)

	res, err = search.Solve(g, frontier.DFS)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.Right, grid.Right, grid.Down, grid.Down}, res.Solution.Actions)
	assert.Equal(t, 5, res.ExploredCount)
}

// TestSolve_AllStrategies runs every strategy on a winding maze.
func TestSolve_AllStrategies(t *testing.T) {
	g := mustParse(t, strings.TrimPrefix(winding, "\n"))

	bfs, err := search.Solve(g, frontier.BFS)
	require.NoError(t, err)

	for _, s := range frontier.Strategies() {
		t.Run(s.Name, func(t *testing.T) {
			res, err := search.Solve(g, s)
			require.NoError(t, err)
			require.True(t, res.Found())
			requireValidPath(t, g, res.Solution)
			assert.LessOrEqual(t, bfs.Solution.Len(), res.Solution.Len())
			assert.Equal(t, len(res.Explored), res.ExploredCount)
			assert.Equal(t, res.ExploredCount, len(res.ExploredOrder))
			assert.Equal(t, g.Start, res.ExploredOrder[0])
			assert.Equal(t, g.Goal, res.ExploredOrder[len(res.ExploredOrder)-1])
			for _, c := range res.Solution.Cells {
				assert.True(t, res.OnPath(c))
				assert.True(t, res.IsExplored(c))
			}
			assert.False(t, res.OnPath(g.Start))
		})
	}
}

// TestSolve_NoSolution keeps explored data on failure.
func TestSolve_NoSolution(t *testing.T) {
	g := mustParse(t, "A#B\n ##\n")
	for _, s := range frontier.Strategies() {
		res, err := search.Solve(g, s)
		require.ErrorIs(t, err, search.ErrNoSolution, s.Name)
		require.NotNil(t, res)
		assert.False(t, res.Found())
		assert.Nil(t, res.Solution)
		assert.Equal(t, 2, res.ExploredCount)
		assert.True(t, res.IsExplored(grid.Position{Row: 1, Col: 0}))
	}
}

// TestSolve_Deterministic verifies repeated runs are identical.
func TestSolve_Deterministic(t *testing.T) {
	g := mustParse(t, strings.TrimPrefix(winding, "\n"))
	for _, s := range frontier.Strategies() {
		first, err := search.Solve(g, s)
		require.NoError(t, err)
		second, err := search.Solve(g, s)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second, cmpopts.IgnoreUnexported(search.Result{})); diff != "" {
			t.Errorf("%s: runs differ (-first +second):\n%s", s.Name, diff)
		}
	}
}

// TestSolve_RandomGrids checks completeness and BFS optimality on random mazes.
func TestSolve_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		h, w := 4+rng.Intn(8), 4+rng.Intn(8)
		walls := make([][]bool, h)
		for r := range walls {
			walls[r] = make([]bool, w)
			for c := range walls[r] {
				walls[r][c] = rng.Float64() < 0.3
			}
		}
		start, goal := grid.Position{}, grid.Position{Row: h - 1, Col: w - 1}
		walls[0][0], walls[h-1][w-1] = false, false
		g, err := grid.New(walls, start, goal)
		require.NoError(t, err)

		bfs, bfsErr := search.Solve(g, frontier.BFS)
		for _, s := range frontier.Strategies() {
			res, err := search.Solve(g, s)
			if bfsErr != nil {
				require.ErrorIs(t, err, search.ErrNoSolution, "grid %d %s", i, s.Name)
				assert.Equal(t, bfs.ExploredCount, res.ExploredCount, "grid %d %s explores the start component", i, s.Name)
				continue
			}
			require.NoError(t, err, "grid %d %s", i, s.Name)
			requireValidPath(t, g, res.Solution)
			assert.LessOrEqual(t, bfs.Solution.Len(), res.Solution.Len(), "grid %d %s", i, s.Name)
		}
	}
}

// TestSolve_PendingExploredDisjoint tracks both sets through hooks.
func TestSolve_PendingExploredDisjoint(t *testing.T) {
	g := mustParse(t, strings.TrimPrefix(winding, "\n"))
	for _, s := range frontier.Strategies() {
		pending := map[grid.Position]bool{g.Start: true}
		explored := map[grid.Position]bool{}
		last := 0
		_, err := search.Solve(g, s,
			search.WithOnEnqueue(func(n frontier.Node) {
				assert.False(t, pending[n.State], "%s: %v enqueued twice", s.Name, n.State)
				assert.False(t, explored[n.State], "%s: %v re-enqueued after exploring", s.Name, n.State)
				pending[n.State] = true
			}),
			search.WithOnDequeue(func(n frontier.Node) {
				assert.True(t, pending[n.State])
				delete(pending, n.State)
				explored[n.State] = true
			}),
			search.WithOnExpand(func(_ grid.Position, count int) error {
				assert.Greater(t, count, last, "explored count must grow")
				last = count
				return nil
			}),
		)
		require.NoError(t, err)
	}
}

//----------------------------------------------------------------------------//
// Options and errors
//----------------------------------------------------------------------------//

// TestSolve_Errors verifies argument validation.
func TestSolve_Errors(t *testing.T) {
	g := mustParse(t, openThree)

	_, err := search.Solve(nil, frontier.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Solve(g, frontier.Strategy{Name: "empty"})
	assert.ErrorIs(t, err, search.ErrStrategy)

	_, err = search.Solve(g, frontier.BFS, search.WithMaxSteps(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSolve_StepLimit verifies the opt-in budget.
func TestSolve_StepLimit(t *testing.T) {
	g := mustParse(t, openThree)
	res, err := search.Solve(g, frontier.BFS, search.WithMaxSteps(3))
	require.ErrorIs(t, err, search.ErrStepLimit)
	assert.Equal(t, 3, res.ExploredCount)
	assert.False(t, res.Found())

	res, err = search.Solve(g, frontier.BFS, search.WithMaxSteps(0))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

// TestSolve_Invariant verifies a descriptor that under-declares its anchors
// surfaces as ErrInvariant rather than a silent wrong answer.
func TestSolve_Invariant(t *testing.T) {
	g := mustParse(t, openThree)
	broken := frontier.Strategy{
		Name:     "broken",
		Requires: frontier.NeedsNothing,
		New:      func() frontier.Frontier { return frontier.NewGreedy() },
	}
	_, err := search.Solve(g, broken)
	require.ErrorIs(t, err, search.ErrInvariant)
	require.ErrorIs(t, err, frontier.ErrMissingAnchor)
}

// TestSolve_OnExpandAbort verifies hook errors stop the run.
func TestSolve_OnExpandAbort(t *testing.T) {
	g := mustParse(t, openThree)
	stop := errors.New("stop")
	res, err := search.Solve(g, frontier.DFS, search.WithOnExpand(func(p grid.Position, n int) error {
		if n == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, res.ExploredCount)
}

//----------------------------------------------------------------------------//
// Stepper
//----------------------------------------------------------------------------//

// TestStepper_MatchesSolve verifies stepping reproduces Solve.
func TestStepper_MatchesSolve(t *testing.T) {
	g := mustParse(t, strings.TrimPrefix(winding, "\n"))
	for _, s := range frontier.Strategies() {
		want, err := search.Solve(g, s)
		require.NoError(t, err)

		st, err := search.NewStepper(g, s)
		require.NoError(t, err)
		assert.Equal(t, s.Name, st.Strategy().Name)
		assert.Equal(t, []grid.Position{g.Start}, st.Pending())

		steps := 0
		for !st.Done() {
			snap, err := st.Step()
			require.NoError(t, err)
			steps++
			assert.Equal(t, steps, snap.Step)
			assert.Equal(t, want.ExploredOrder[steps-1], snap.Current)
		}
		snap, err := st.Step()
		require.NoError(t, err)
		assert.True(t, snap.Done)
		assert.True(t, snap.Found)
		assert.Equal(t, want.ExploredCount, steps)
		assert.Equal(t, want.Solution, st.Result().Solution)
	}
}

// TestStepper_NoSolution verifies the terminal error repeats after the end.
func TestStepper_NoSolution(t *testing.T) {
	g := mustParse(t, "A#B\n")
	st, err := search.NewStepper(g, frontier.BFS)
	require.NoError(t, err)

	_, err = st.Step()
	require.NoError(t, err)
	_, err = st.Step()
	require.ErrorIs(t, err, search.ErrNoSolution)
	snap, err := st.Step()
	require.ErrorIs(t, err, search.ErrNoSolution)
	assert.True(t, snap.Done)
	assert.False(t, snap.Found)
	assert.ErrorIs(t, st.Err(), search.ErrNoSolution)
}

// TestStepper_Run finishes a partially stepped run.
func TestStepper_Run(t *testing.T) {
	g := mustParse(t, openThree)
	st, err := search.NewStepper(g, frontier.AStarSearch)
	require.NoError(t, err)
	_, err = st.Step()
	require.NoError(t, err)

	res, err := st.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, res.Solution.Len())
}
