package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/app"
	"github.com/katalvlaran/mazepath/search"
)

// Exit codes.
const (
	CodeFailure    = 1
	CodeUsage      = 2
	CodeMazeFormat = 3
	CodeNoSolution = 4
)

// Environment variables supplying flag defaults.
const (
	EnvLogLevel  = "MAZEPATH_LOG_LEVEL"
	EnvLogFormat = "MAZEPATH_LOG_FORMAT"
	EnvStrategy  = "MAZEPATH_STRATEGY"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// LoadEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
mazepath - solve text mazes with classic search strategies.

Usage:
  mazepath [options] MAZE_PATH

Arguments:
  MAZE_PATH
    Text maze: '#' walls, ' ' open cells, exactly one 'A' (start) and one 'B' (goal).

Strategies:
  %s, or 'all' to compare them.

Options:
`, strings.Join(frontier.Names(), ", "))
		flagSet.PrintDefaults()
	}

	strategyFlag := flagSet.String("strategy", envOr(EnvStrategy, frontier.BFS.Name), "Search strategy: 'dfs', 'bfs', 'gbfs', 'astar' or 'all'.")
	imageFlag := flagSet.String("image", "", "Write a PNG rendering of the result to this path.")
	exploredFlag := flagSet.Bool("show-explored", false, "Mark explored cells in text and image output.")
	labelsFlag := flagSet.String("labels", "auto", "Image cell labels: 'auto', 'none', 'heuristic' or 'cost'.")
	reportFlag := flagSet.String("report", "", "Write a strategy comparison report: 'table', 'json', 'yaml' or 'parquet'.")
	reportOutFlag := flagSet.String("report-out", "", "Report output file. Defaults to stdout; required for parquet.")
	interactiveFlag := flagSet.Bool("interactive", false, "Step through the search in an interactive terminal view.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Abort after this many frontier removals. 0 is unlimited.")
	colorFlag := flagSet.Bool("color", false, "Render the maze with terminal colors.")
	logFormatFlag := flagSet.String("log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: CodeUsage, Message: "expected exactly one MAZE_PATH argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: CodeUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: CodeUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		MazePath:     flagSet.Arg(0),
		Strategy:     strings.TrimSpace(*strategyFlag),
		ImagePath:    *imageFlag,
		ShowExplored: *exploredFlag,
		Labels:       strings.ToLower(*labelsFlag),
		Color:        *colorFlag,
		ReportFormat: *reportFlag,
		ReportOut:    *reportOutFlag,
		Interactive:  *interactiveFlag,
		MaxSteps:     *maxStepsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	return config, false, nil
}

// FromError maps a run error to an ExitError. It returns nil for nil.
func FromError(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, grid.ErrMazeFormat):
		return &ExitError{Code: CodeMazeFormat, Message: err.Error()}
	case errors.Is(err, search.ErrNoSolution):
		return &ExitError{Code: CodeNoSolution, Message: "No solution"}
	default:
		return &ExitError{Code: CodeFailure, Message: err.Error()}
	}
}
