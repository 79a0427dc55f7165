package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// DefaultInterval is the autoplay delay between steps.
const DefaultInterval = 150 * time.Millisecond

// TickMsg advances an autoplaying model.
type TickMsg time.Time

// Model is the bubbletea model driving a search.Stepper.
type Model struct {
	grid     *grid.Grid
	stepper  *search.Stepper
	snap     search.Snapshot
	started  bool
	autoplay bool
	interval time.Duration
	err      error

	// Renderer overrides the lipgloss renderer used by View.
	Renderer *lipgloss.Renderer
}

// NewModel prepares a model for running s on g.
func NewModel(g *grid.Grid, s frontier.Strategy, opts ...search.Option) (Model, error) {
	st, err := search.NewStepper(g, s, opts...)
	if err != nil {
		return Model{}, err
	}
	return Model{
		grid:     g,
		stepper:  st,
		snap:     search.Snapshot{Current: g.Start, Action: grid.NoDirection, Pending: st.Pending()},
		interval: DefaultInterval,
	}, nil
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ":
			m.autoplay = false
			m.step()
		case "r":
			if m.stepper.Done() {
				return m, nil
			}
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, tickCmd(m.interval)
			}
		case "enter":
			m.autoplay = false
			for !m.stepper.Done() {
				m.step()
			}
		}
	case TickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.step()
		if m.stepper.Done() {
			m.autoplay = false
			return m, nil
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

// step advances the stepper once, recording the snapshot and terminal error.
func (m *Model) step() {
	if m.stepper.Done() {
		return
	}
	m.snap, m.err = m.stepper.Step()
	m.started = true
}

func (m Model) View() string {
	var b strings.Builder
	opts := render.StyleOptions{
		ShowSolution: true,
		ShowExplored: true,
		Pending:      m.snap.Pending,
		Renderer:     m.Renderer,
	}
	if m.started && !m.stepper.Done() {
		cur := m.snap.Current
		opts.Current = &cur
	}
	b.WriteString(render.Styled(m.grid, m.stepper.Result(), opts))
	b.WriteString("\n\n")
	b.WriteString(m.Status())
	b.WriteString("\n\nn/space: step  r: autoplay  enter: finish  q: quit\n")
	return b.String()
}

// Status summarizes the run in one line.
func (m Model) Status() string {
	s := m.stepper.Strategy()
	head := fmt.Sprintf("%s | step %d | explored %d | pending %d",
		s.Title, m.snap.Step, m.snap.ExploredCount, len(m.snap.Pending))
	switch {
	case !m.stepper.Done():
		if m.autoplay {
			return head + " | running"
		}
		return head
	case m.snap.Found:
		return fmt.Sprintf("%s | solved in %d steps", head, m.stepper.Result().Solution.Len())
	case errors.Is(m.err, search.ErrNoSolution):
		return head + " | No solution"
	case errors.Is(m.err, search.ErrStepLimit):
		return head + " | step limit reached"
	default:
		return fmt.Sprintf("%s | error: %v", head, m.err)
	}
}

// Err returns the terminal search error once the run is over.
func (m Model) Err() error { return m.err }

// Done reports whether the underlying run is over.
func (m Model) Done() bool { return m.stepper.Done() }

// Run starts an interactive session reading keys from in and drawing to out.
// A run that finished without a solution returns its terminal error.
func Run(ctx context.Context, g *grid.Grid, s frontier.Strategy, in io.Reader, out io.Writer, opts ...search.Option) error {
	m, err := NewModel(g, s, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Done() {
		return fm.Err()
	}
	return nil
}
