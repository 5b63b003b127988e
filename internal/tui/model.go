package tui

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/display"
	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/logging"
	"github.com/fchimpan/termclock/internal/surface"
)

// DefaultInterval is the pause between two frames.
const DefaultInterval = 200 * time.Millisecond

type Options struct {
	Mode     display.Mode
	Interval time.Duration
	Sampler  *clock.Sampler
	Logger   *slog.Logger
}

type Model struct {
	keys     KeyMap
	interval time.Duration
	sampler  *clock.Sampler
	log      *slog.Logger

	ready bool
	w     int
	h     int

	mode   display.Mode
	grid   *surface.Grid
	engine *engine.Engine

	err error

	viewBuf bytes.Buffer
}

func NewModel(opts Options) *Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Sampler == nil {
		opts.Sampler = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	m := &Model{
		keys:     DefaultKeyMap(),
		interval: opts.Interval,
		sampler:  opts.Sampler,
		log:      opts.Logger.With("subsystem", "tui"),
		grid:     surface.NewGrid(0, 0),
	}
	m.enter(opts.Mode)
	return m
}

// Err is the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) Mode() display.Mode { return m.mode }

// Grid exposes the logical screen for tests.
func (m *Model) Grid() *surface.Grid { return m.grid }

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.grid.Resize(m.h, m.w)
		m.ready = true
		if m.engine != nil {
			m.engine.Coordinator().Notify()
		}
		return m, nil
	case tickMsg:
		if err := m.tick(); err != nil {
			return m, tea.Quit
		}
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Analog):
			m.switchTo(display.ModeAnalog)
		case key.Matches(msg, m.keys.Digital):
			m.switchTo(display.ModeDigital)
		case key.Matches(msg, m.keys.Menu):
			m.switchTo(display.ModeMenu)
		}
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// enter swaps in fresh state for mode. Nothing carries over from the
// previous mode.
func (m *Model) enter(mode display.Mode) {
	m.mode = mode
	m.engine = nil
	m.grid.Clear()
	r, ok := display.NewRenderer(mode)
	if !ok {
		return
	}
	m.engine = engine.New(m.grid, r, m.sampler, engine.WithLogger(m.log))
}

func (m *Model) switchTo(mode display.Mode) {
	if mode == m.mode {
		return
	}
	m.log.Debug("switch mode", "from", m.mode, "to", mode)
	m.enter(mode)
	// Paint right away instead of waiting for the next tick.
	_ = m.tick()
}

func (m *Model) tick() error {
	if m.engine == nil || !m.ready {
		return nil
	}
	if err := m.engine.Tick(); err != nil {
		m.log.Error("render failed", "error", err)
		m.err = err
		return err
	}
	return nil
}
