package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/report"
	"github.com/katalvlaran/mazepath/search"
)

func threeByThree(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader("A  \n # \n  B\n"))
	require.NoError(t, err)
	return g
}

var wantRows = []report.Row{
	{Strategy: "dfs", Found: true, Explored: 5, Steps: 4, Optimal: true},
	{Strategy: "bfs", Found: true, Explored: 8, Steps: 4, Optimal: true},
	{Strategy: "gbfs", Found: true, Explored: 5, Steps: 4, Optimal: true},
	{Strategy: "astar", Found: true, Explored: 8, Steps: 4, Optimal: true},
}

// TestCompare_Order verifies rows follow input order and match single runs.
func TestCompare_Order(t *testing.T) {
	rows, err := report.Compare(context.Background(), threeByThree(t), frontier.Strategies())
	require.NoError(t, err)
	assert.Equal(t, wantRows, rows)
}

// TestCompare_NoSolution reports unsolvable mazes as rows, not errors.
func TestCompare_NoSolution(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("A#B\n"))
	require.NoError(t, err)

	rows, err := report.Compare(context.Background(), g, []frontier.Strategy{frontier.BFS, frontier.GBFS})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.False(t, r.Found)
		assert.False(t, r.Optimal)
		assert.Equal(t, int64(1), r.Explored)
		assert.Zero(t, r.Steps)
	}
}

// TestCompare_Errors propagates real failures.
func TestCompare_Errors(t *testing.T) {
	_, err := report.Compare(context.Background(), nil, frontier.Strategies())
	require.ErrorIs(t, err, search.ErrNilGrid)

	_, err = report.Compare(context.Background(), threeByThree(t), frontier.Strategies(), search.WithMaxSteps(2))
	require.ErrorIs(t, err, search.ErrStepLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = report.Compare(ctx, threeByThree(t), frontier.Strategies())
	require.ErrorIs(t, err, context.Canceled)
}

// TestCompare_OptimalWithoutBFS leaves Optimal unset when there is no baseline.
func TestCompare_OptimalWithoutBFS(t *testing.T) {
	rows, err := report.Compare(context.Background(), threeByThree(t), []frontier.Strategy{frontier.DFS})
	require.NoError(t, err)
	assert.False(t, rows[0].Optimal)
}

//----------------------------------------------------------------------------//
// Writers
//----------------------------------------------------------------------------//

// TestParseFormat covers accepted names and rejects others.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"table": report.FormatTable, "JSON": report.FormatJSON,
		"yml": report.FormatYAML, "parquet": report.FormatParquet,
	} {
		f, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f)
	}
	_, err := report.ParseFormat("csv")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, wantRows, "csv"), report.ErrUnknownFormat)
	assert.True(t, report.FormatParquet.Binary())
	assert.False(t, report.FormatTable.Binary())
}

// TestWriteTable checks header and one row per strategy.
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, wantRows, report.FormatTable))
	out := buf.String()
	assert.Contains(t, out, "STRATEGY")
	for _, r := range wantRows {
		assert.Contains(t, out, r.Strategy)
	}
}

// TestWriteJSON decodes the output back into rows.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, wantRows, report.FormatJSON))
	assert.Contains(t, buf.String(), `"strategy": "astar"`)

	var got []report.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, wantRows, got)
}

// TestWriteYAML decodes the output back into rows.
func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, wantRows, report.FormatYAML))
	assert.True(t, strings.HasPrefix(buf.String(), "- strategy: dfs\n"), buf.String())

	var got []report.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, wantRows, got)
}

// TestWriteParquet reads the written file back.
func TestWriteParquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, wantRows, report.FormatParquet))

	got, err := parquet.Read[report.Row](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, wantRows, got)
}
