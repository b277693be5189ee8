// Package charttui runs the live chart on the Bubble Tea event loop.
//
// All state changes happen in Update, and Bubble Tea renders after every
// update, so a frame is always drawn before the next input is read. A single
// timer is kept armed with whatever is left of the current tick.
package charttui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mtclinton/tui-examples/internal/chart"
	"github.com/mtclinton/tui-examples/internal/logging"
	"github.com/mtclinton/tui-examples/internal/window"
	"github.com/rs/zerolog"
)

const (
	defaultTickInterval = 250 * time.Millisecond
	defaultTitle        = "Chart 2"
	defaultWidth        = 80
	defaultHeight       = 24
	seriesName          = "data"
)

var defaultBounds = [2]float64{0, 5}

// Config controls a chart session.
type Config struct {
	Title        string
	TickInterval time.Duration
	XBounds      [2]float64
	YBounds      [2]float64
	MouseCapture bool

	// Input and Output replace the terminal streams when set.
	Input  io.Reader
	Output io.Writer
}

// TerminalError reports a terminal I/O failure. The terminal has already
// been restored by the time it is returned.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Run takes over the terminal and plots w until the user presses q. It
// returns nil on quit or when ctx is cancelled, and a *TerminalError when
// the terminal fails.
func Run(ctx context.Context, w *window.Window, cfg Config) error {
	cfg = withDefaults(cfg)
	log := logging.Component("charttui")

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.MouseCapture {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	m := newModel(w, cfg, time.Now)
	m.log = log

	log.Info().
		Dur("tick_interval", cfg.TickInterval).
		Int("capacity", w.Len()).
		Msg("chart started")

	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(model); ok {
		log.Info().Int("ticks", fm.ticks).Msg("chart stopped")
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info().Err(ctx.Err()).Msg("chart cancelled")
			return nil
		}
		log.Error().Err(err).Msg("terminal failure")
		return &TerminalError{Op: "run", Err: err}
	}
	return nil
}

func withDefaults(cfg Config) Config {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.XBounds[1] <= cfg.XBounds[0] {
		cfg.XBounds = defaultBounds
	}
	if cfg.YBounds[1] <= cfg.YBounds[0] {
		cfg.YBounds = defaultBounds
	}
	return cfg
}

type tickMsg time.Time

type model struct {
	window       *window.Window
	tickInterval time.Duration
	lastTick     time.Time
	ticks        int
	chart        chart.Chart
	width        int
	height       int
	quitting     bool
	log          zerolog.Logger
}

func newModel(w *window.Window, cfg Config, now func() time.Time) model {
	return model{
		window:       w,
		tickInterval: cfg.TickInterval,
		lastTick:     now(),
		chart: chart.Chart{
			Title:      cfg.Title,
			TitleStyle: titleStyle,
			XAxis:      newAxis("X Axis", cfg.XBounds),
			YAxis:      newAxis("Y Axis", cfg.YBounds),
			Dataset:    chart.Dataset{Name: seriesName, Style: seriesStyle},
		},
		log: zerolog.Nop(),
	}
}

func (m model) Init() tea.Cmd {
	return m.tickCmd(m.tickInterval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		now := time.Time(msg)
		if now.Sub(m.lastTick) >= m.tickInterval {
			m.window.Advance()
			m.lastTick = now
			m.ticks++
			m.log.Debug().Int("tick", m.ticks).Float64("sample", m.window.Last()).Msg("advanced")
		}
		return m, m.tickCmd(m.remaining(now))
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	c := m.chart
	c.Dataset.Points = chartPoints(m.window.Points())
	return c.Render(width, height)
}

// remaining is the time left in the current tick, floored at zero.
func (m model) remaining(now time.Time) time.Duration {
	left := m.tickInterval - now.Sub(m.lastTick)
	if left < 0 {
		return 0
	}
	return left
}

func (m model) tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func chartPoints(points []window.Point) []chart.Point {
	out := make([]chart.Point, len(points))
	for i, p := range points {
		out[i] = chart.Point{X: p.X, Y: p.Y}
	}
	return out
}
