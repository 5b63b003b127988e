package engine_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fchimpan/termclock/internal/analog"
	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/digital"
	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/surface"
)

func fixedSampler(h, m, s int) *clock.Sampler {
	at := time.Date(2025, 1, 1, h, m, s, 0, time.UTC)
	return &clock.Sampler{Now: func() time.Time { return at }}
}

func screenText(g *surface.Grid) string {
	return strings.Join(g.Lines(), "\n")
}

func TestTick_FirstFrameLaysOut(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(24, 80)
	e := engine.New(g, analog.New(), fixedSampler(3, 0, 0))
	if got := e.Phase(); got != engine.PhasePendingRelayout {
		t.Fatalf("expected pending relayout before first tick, got %v", got)
	}
	if err := e.Tick(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := e.Phase(); got != engine.PhaseStable {
		t.Fatalf("expected stable, got %v", got)
	}
	if !strings.Contains(screenText(g), "O") {
		t.Fatalf("pivot not drawn:\n%s", screenText(g))
	}
}

func TestTick_ClockUnavailableIsFatal(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(24, 80)
	broken := &clock.Sampler{Now: func() time.Time { return time.Time{} }}
	e := engine.New(g, analog.New(), broken)

	err := e.Tick()
	if !errors.Is(err, clock.ErrClockUnavailable) {
		t.Fatalf("expected ErrClockUnavailable, got %v", err)
	}
	if strings.TrimSpace(screenText(g)) != "" {
		t.Fatalf("nothing should be drawn without a clock")
	}
}

func TestTick_ResizeLeavesNoResidue(t *testing.T) {
	t.Parallel()

	for _, r := range []engine.Renderer{analog.New(), digital.New()} {
		g := surface.NewGrid(30, 100)
		e := engine.New(g, r, fixedSampler(10, 10, 10))
		if err := e.Tick(); err != nil {
			t.Fatalf("%s: tick: %v", r.Name(), err)
		}

		g.Resize(24, 80)
		// Leftovers a real terminal may keep after resizing.
		for col := 0; col < 80; col += 3 {
			g.SetCell(surface.CellPoint{Row: col % 24, Col: col}, 'x', surface.StyleHand)
		}
		e.Coordinator().Notify()
		if got := e.Phase(); got != engine.PhasePendingRelayout {
			t.Fatalf("%s: expected pending relayout after notify, got %v", r.Name(), got)
		}

		if err := e.Tick(); err != nil {
			t.Fatalf("%s: tick: %v", r.Name(), err)
		}
		if got := e.Phase(); got != engine.PhaseStable {
			t.Fatalf("%s: expected stable, got %v", r.Name(), got)
		}
		if strings.ContainsRune(screenText(g), 'x') {
			t.Fatalf("%s: residue left after relayout:\n%s", r.Name(), screenText(g))
		}
	}
}

func TestTick_TooSmallThenRecovers(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(8, 80)
	e := engine.New(g, analog.New(), fixedSampler(1, 2, 3))
	if err := e.Tick(); err != nil {
		t.Fatalf("too small must not be an error, got %v", err)
	}
	if got := e.Phase(); got != engine.PhaseTooSmall {
		t.Fatalf("expected too-small phase, got %v", got)
	}
	text := screenText(g)
	if !strings.Contains(text, engine.TooSmallMessage) {
		t.Fatalf("message missing:\n%s", text)
	}
	if strings.ContainsAny(text, "O|/\\") {
		t.Fatalf("no partial clock should be drawn:\n%s", text)
	}

	// Still too small: stays degraded.
	if err := e.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := e.Phase(); got != engine.PhaseTooSmall {
		t.Fatalf("expected too-small phase, got %v", got)
	}

	// Growing the surface is picked up even without a notification.
	g.Resize(24, 80)
	if err := e.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := e.Phase(); got != engine.PhaseStable {
		t.Fatalf("expected stable after growing, got %v", got)
	}
	text = screenText(g)
	if strings.Contains(text, engine.TooSmallMessage) {
		t.Fatalf("message should be gone:\n%s", text)
	}
	if !strings.Contains(text, "O") {
		t.Fatalf("clock not drawn after recovery:\n%s", text)
	}
}

func TestTick_DigitalTooSmall(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(4, 30)
	e := engine.New(g, digital.New(), fixedSampler(1, 2, 3))
	if err := e.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := e.Phase(); got != engine.PhaseTooSmall {
		t.Fatalf("expected too-small phase, got %v", got)
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Name() string { return "failing" }
func (f failingRenderer) Layout(surface.GridSize) error { return f.err }
func (f failingRenderer) DrawStatic(surface.Surface) {}
func (f failingRenderer) DrawFrame(surface.Surface, clock.Sample) {}
func (f failingRenderer) Reset() {}

func TestTick_UnexpectedLayoutErrorPropagates(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	e := engine.New(surface.NewGrid(24, 80), failingRenderer{err: want}, fixedSampler(0, 0, 0))
	if err := e.Tick(); !errors.Is(err, want) {
		t.Fatalf("expected wrapped %v, got %v", want, err)
	}
}

func TestCoordinator_ConcurrentNotify(t *testing.T) {
	t.Parallel()

	var c engine.Coordinator
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Notify()
		}()
	}
	wg.Wait()
	if !c.Pending() {
		t.Fatalf("expected pending after notify")
	}

	e := engine.New(surface.NewGrid(24, 80), digital.New(), fixedSampler(0, 0, 0), engine.WithCoordinator(&c))
	if err := e.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if c.Pending() {
		t.Fatalf("tick should consume the notification")
	}
}

func TestIsSurfaceTooSmall(t *testing.T) {
	t.Parallel()

	base := &engine.SurfaceTooSmallError{Size: surface.GridSize{Rows: 2, Cols: 3}}
	if !engine.IsSurfaceTooSmall(base) {
		t.Fatalf("expected true")
	}
	if !engine.IsSurfaceTooSmall(errors.Join(errors.New("other"), base)) {
		t.Fatalf("expected true for joined error")
	}
	if engine.IsSurfaceTooSmall(errors.New("nope")) {
		t.Fatalf("expected false")
	}
	if got := base.Error(); got != "surface too small (3x2)" {
		t.Fatalf("message: %q", got)
	}
}
