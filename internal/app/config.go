package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/report"
)

// AllStrategies selects every registered strategy.
const AllStrategies = "all"

// Config holds everything one App run needs.
type Config struct {
	MazePath string
	Strategy string // a frontier strategy name or alias, or "all"

	ImagePath    string
	ShowExplored bool
	Labels       string // "auto", "none", "heuristic" or "cost"
	Color        bool

	ReportFormat string // empty for no report
	ReportOut    string // empty for stdout

	Interactive bool
	MaxSteps    int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MazePath == "" {
		return nil, errors.New("MazePath is a required configuration field and cannot be empty")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = frontier.BFS.Name
	}
	if !strings.EqualFold(cfg.Strategy, AllStrategies) {
		if _, err := frontier.Lookup(cfg.Strategy); err != nil {
			return nil, err
		}
	}
	if cfg.Labels == "" {
		cfg.Labels = "auto"
	}
	if cfg.Labels != "auto" {
		if _, ok := render.ParseLabelMode(cfg.Labels); !ok {
			return nil, fmt.Errorf("invalid labels %q: must be 'auto', 'none', 'heuristic' or 'cost'", cfg.Labels)
		}
	}
	if cfg.ReportFormat != "" {
		f, err := report.ParseFormat(cfg.ReportFormat)
		if err != nil {
			return nil, err
		}
		if f.Binary() && cfg.ReportOut == "" {
			return nil, fmt.Errorf("%s report requires an output file", f)
		}
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps cannot be negative (%d)", cfg.MaxSteps)
	}
	if cfg.Interactive && strings.EqualFold(cfg.Strategy, AllStrategies) {
		return nil, errors.New("interactive mode needs a single strategy")
	}
	return &cfg, nil
}

// Strategies resolves the configured strategy selection.
func (c *Config) Strategies() ([]frontier.Strategy, error) {
	if strings.EqualFold(c.Strategy, AllStrategies) {
		return frontier.Strategies(), nil
	}
	s, err := frontier.Lookup(c.Strategy)
	if err != nil {
		return nil, err
	}
	return []frontier.Strategy{s}, nil
}

// LabelMode resolves the image label mode for strategy s.
func (c *Config) LabelMode(s frontier.Strategy) render.LabelMode {
	if c.Labels == "auto" {
		return render.LabelsFor(s.Name)
	}
	m, _ := render.ParseLabelMode(c.Labels)
	return m
}
