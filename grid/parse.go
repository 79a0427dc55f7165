package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a textual maze description.
//
// Every rune other than StartMarker, GoalMarker and OpenMarker is a wall.
// The description must contain exactly one StartMarker and exactly one
// GoalMarker; otherwise the returned error matches ErrMazeFormat.
// Rows are split on '\n' with an optional trailing '\r'. Cells beyond the
// end of a short row are open.
func Parse(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read maze: %w", err)
	}
	contents := string(raw)

	starts := strings.Count(contents, string(StartMarker))
	goals := strings.Count(contents, string(GoalMarker))
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: maze must have exactly one start point and one goal (found %d start, %d goal)",
			ErrMazeFormat, starts, goals)
	}

	lines := splitLines(contents)
	walls := make([][]bool, len(lines))
	var start, goal Position
	for r, line := range lines {
		runes := []rune(line)
		row := make([]bool, len(runes))
		for c, ch := range runes {
			switch ch {
			case StartMarker:
				start = Position{Row: r, Col: c}
			case GoalMarker:
				goal = Position{Row: r, Col: c}
			case OpenMarker:
			default:
				row[c] = true
			}
		}
		walls[r] = row
	}

	return New(walls, start, goal)
}

// Load opens path and parses it with Parse.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open maze: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// splitLines breaks s into lines the way a text editor would: a final
// newline does not start an extra empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
