package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/display"
	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/logging"
	"github.com/fchimpan/termclock/internal/surface"
)

const (
	defaultInterval = 200 * time.Millisecond
	keyBuffer       = 16
)

type Options struct {
	Mode     display.Mode
	Interval time.Duration
	Sampler  *clock.Sampler
	Logger   *slog.Logger
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionAnalog
	actionDigital
	actionMenu
)

func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionAnalog
	case tcell.KeyDown:
		return actionDigital
	case tcell.KeyEscape:
		return actionMenu
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case 'k':
			return actionAnalog
		case 'j':
			return actionDigital
		case 'm':
			return actionMenu
		}
	}
	return actionNone
}

type loop struct {
	screen  tcell.Screen
	surf    *Surface
	resize  *engine.Coordinator
	sampler *clock.Sampler
	log     *slog.Logger

	mode display.Mode
	eng  *engine.Engine
}

// Run draws the clock on screen until a quit key or ctx is done. The caller
// owns screen: it must Init it before and Fini it after Run.
//
// Input and resize events are read on a separate goroutine; that goroutine
// only forwards keys and flags resizes, all drawing happens here.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Sampler == nil {
		opts.Sampler = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	l := &loop{
		screen:  screen,
		surf:    NewSurface(screen),
		resize:  &engine.Coordinator{},
		sampler: opts.Sampler,
		log:     opts.Logger.With("subsystem", "term"),
	}
	l.enter(opts.Mode)

	keys := make(chan *tcell.EventKey, keyBuffer)
	go pollEvents(screen, keys, l.resize)

	timer := time.NewTimer(opts.Interval)
	defer timer.Stop()
	for {
		if err := l.tick(); err != nil {
			return err
		}
		screen.Show()

		if quit := l.drain(keys); quit {
			return nil
		}

		timer.Reset(opts.Interval)
		select {
		case <-ctx.Done():
			l.log.Debug("context done", "error", ctx.Err())
			return nil
		case <-timer.C:
		}
	}
}

func pollEvents(screen tcell.Screen, keys chan<- *tcell.EventKey, resize *engine.Coordinator) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			resize.Notify()
		case *tcell.EventKey:
			select {
			case keys <- ev:
			default:
			}
		}
	}
}

// drain handles every buffered key without blocking and reports whether
// the loop should stop.
func (l *loop) drain(keys <-chan *tcell.EventKey) bool {
	for {
		select {
		case ev := <-keys:
			switch keyAction(ev) {
			case actionQuit:
				return true
			case actionAnalog:
				l.switchTo(display.ModeAnalog)
			case actionDigital:
				l.switchTo(display.ModeDigital)
			case actionMenu:
				l.switchTo(display.ModeMenu)
			}
		default:
			return false
		}
	}
}

func (l *loop) enter(mode display.Mode) {
	l.mode = mode
	l.eng = nil
	r, ok := display.NewRenderer(mode)
	if !ok {
		return
	}
	l.eng = engine.New(l.surf, r, l.sampler, engine.WithCoordinator(l.resize), engine.WithLogger(l.log))
}

func (l *loop) switchTo(mode display.Mode) {
	if mode == l.mode {
		return
	}
	l.log.Debug("switch mode", "from", l.mode, "to", mode)
	l.enter(mode)
	l.surf.Clear()
}

func (l *loop) tick() error {
	if l.eng != nil {
		return l.eng.Tick()
	}
	l.surf.Clear()
	drawMenu(l.surf)
	return nil
}

var menuLines = []string{
	"termclock",
	"",
	"↑/k analog",
	"↓/j digital",
	"",
	"esc/m menu  q quit",
}

func drawMenu(s surface.Surface) {
	size := s.Size()
	top := max((size.Rows-len(menuLines))/2, 0)
	for i, line := range menuLines {
		w := surface.StringWidth(line)
		col := max((size.Cols-w)/2, 0)
		st := surface.StyleLabel
		if i == 0 {
			st = surface.StyleBorder
		}
		surface.PutString(s, surface.CellPoint{Row: top + i, Col: col}, line, st)
	}
}
