package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/surface"
)

// Renderer draws one display mode. Each renderer owns its caches; Reset
// drops them so the next Layout starts from scratch.
type Renderer interface {
	Name() string
	// Layout derives size-dependent metrics. It returns a
	// *SurfaceTooSmallError when size cannot fit the mode.
	Layout(size surface.GridSize) error
	// DrawStatic paints content that only changes on relayout.
	DrawStatic(s surface.Surface)
	// DrawFrame erases what the previous frame painted and paints sample.
	DrawFrame(s surface.Surface, sample clock.Sample)
	Reset()
}

type Phase int

const (
	PhaseStable Phase = iota
	PhasePendingRelayout
	PhaseTooSmall
)

func (p Phase) String() string {
	switch p {
	case PhaseStable:
		return "stable"
	case PhasePendingRelayout:
		return "pending-relayout"
	case PhaseTooSmall:
		return "too-small"
	default:
		return "unknown"
	}
}

// TooSmallMessage is shown while the surface cannot fit the clock.
const TooSmallMessage = "Terminal too small"

// Engine runs one render tick at a time. It is not safe for concurrent use;
// only the Coordinator may be touched from other goroutines.
type Engine struct {
	surface  surface.Surface
	renderer Renderer
	sampler  *clock.Sampler
	resize   *Coordinator
	log      *slog.Logger

	phase    Phase
	size     surface.GridSize
	degraded bool
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithCoordinator shares an existing Coordinator, e.g. one a backend's
// event goroutine already holds.
func WithCoordinator(c *Coordinator) Option {
	return func(e *Engine) {
		if c != nil {
			e.resize = c
		}
	}
}

func New(s surface.Surface, r Renderer, sampler *clock.Sampler, opts ...Option) *Engine {
	e := &Engine{
		surface:  s,
		renderer: r,
		sampler:  sampler,
		resize:   &Coordinator{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		// The first tick lays out like a resize would.
		phase: PhasePendingRelayout,
	}
	for _, o := range opts {
		o(e)
	}
	e.log = e.log.With("subsystem", "engine", "mode", r.Name())
	return e
}

func (e *Engine) Coordinator() *Coordinator { return e.resize }

func (e *Engine) Renderer() Renderer { return e.renderer }

func (e *Engine) Phase() Phase {
	if e.resize.Pending() {
		return PhasePendingRelayout
	}
	return e.phase
}

// Tick renders one frame. The only error it returns is a failure to read
// the clock; a surface that is too small is shown, not returned.
func (e *Engine) Tick() error {
	sample, err := e.sampler.Sample()
	if err != nil {
		return fmt.Errorf("sample time: %w", err)
	}

	if e.resize.consume() {
		e.phase = PhasePendingRelayout
	}
	if e.phase == PhaseTooSmall && e.surface.Size() != e.size {
		e.phase = PhasePendingRelayout
	}
	if e.phase == PhasePendingRelayout {
		if err := e.relayout(); err != nil {
			return err
		}
	}
	if e.phase == PhaseTooSmall {
		return nil
	}

	e.renderer.DrawFrame(e.surface, sample)
	return nil
}

func (e *Engine) relayout() error {
	e.surface.Clear()
	e.renderer.Reset()
	e.size = e.surface.Size()

	if err := e.renderer.Layout(e.size); err != nil {
		if !IsSurfaceTooSmall(err) {
			return fmt.Errorf("layout %s: %w", e.renderer.Name(), err)
		}
		if !e.degraded {
			e.log.Info("surface too small", "rows", e.size.Rows, "cols", e.size.Cols, "error", err)
		}
		e.degraded = true
		e.phase = PhaseTooSmall
		drawTooSmall(e.surface, e.size)
		return nil
	}

	if e.degraded {
		e.log.Info("surface large enough again", "rows", e.size.Rows, "cols", e.size.Cols)
		e.degraded = false
	}
	e.log.Debug("relayout", "rows", e.size.Rows, "cols", e.size.Cols)
	e.renderer.DrawStatic(e.surface)
	e.phase = PhaseStable
	return nil
}

func drawTooSmall(s surface.Surface, size surface.GridSize) {
	w := surface.StringWidth(TooSmallMessage)
	col := max((size.Cols-w)/2, 0)
	surface.PutString(s, surface.CellPoint{Row: size.Rows / 2, Col: col}, TooSmallMessage, surface.StyleMessage)
}
