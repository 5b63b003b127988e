package analog

import (
	"strings"
	"testing"
	"time"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/surface"
)

func sampleAt(h, m, s int) clock.Sample {
	return clock.SampleAt(time.Date(2025, 1, 1, h, m, s, 0, time.UTC))
}

func TestLayout_RadiusBelowMinimumIsTooSmall(t *testing.T) {
	t.Parallel()

	size := surface.GridSize{Rows: 8, Cols: 80}
	if got := Radius(size); got != 2 {
		t.Fatalf("expected radius 2, got %d", got)
	}
	err := New().Layout(size)
	if err == nil {
		t.Fatalf("expected error for radius 2")
	}
	if !engine.IsSurfaceTooSmall(err) {
		t.Fatalf("expected SurfaceTooSmallError, got %v", err)
	}

	if err := New().Layout(surface.GridSize{Rows: 10, Cols: 80}); err != nil {
		t.Fatalf("radius 3 should fit, got %v", err)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	t.Parallel()

	r := New()
	size := surface.GridSize{Rows: 30, Cols: 100}
	if err := r.Layout(size); err != nil {
		t.Fatalf("layout: %v", err)
	}
	c1, r1 := r.Center(), r.Radius()
	if err := r.Layout(size); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if r.Center() != c1 || r.Radius() != r1 {
		t.Fatalf("layout not idempotent: %+v/%d vs %+v/%d", c1, r1, r.Center(), r.Radius())
	}
}

func TestDrawFrame_ThreeOClock(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(24, 80)
	r := New()
	if err := r.Layout(g.Size()); err != nil {
		t.Fatalf("layout: %v", err)
	}
	r.DrawStatic(g)
	r.DrawFrame(g, sampleAt(3, 0, 0))

	c := r.Center()
	if got := g.At(c); got.Rune != pivotGlyph || got.Style != surface.StylePivot {
		t.Fatalf("pivot mismatch: %+v", got)
	}
	east := surface.CellPoint{Row: c.Row, Col: c.Col + 1}
	if got := g.At(east); got.Rune != '|' || got.Style != surface.StyleHand {
		t.Fatalf("hour hand should start east of the pivot, got %+v", got)
	}
	for _, p := range r.hour.Painted() {
		if p.Row != c.Row || p.Col <= c.Col {
			t.Fatalf("hour hand cell %+v not due east", p)
		}
	}

	lines := g.Lines()
	if !strings.Contains(lines[23], "03:00:00") {
		t.Fatalf("readout missing, last row %q", lines[23])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "12") {
		t.Fatalf("face labels missing")
	}
}

func TestDrawFrame_LeavesNoStaleGlyphs(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(30, 100)
	r := New()
	if err := r.Layout(g.Size()); err != nil {
		t.Fatalf("layout: %v", err)
	}
	r.DrawStatic(g)

	for sec := 0; sec < 120; sec += 3 {
		r.DrawFrame(g, sampleAt(sec%12, (sec*7)%60, sec%60))

		live := map[surface.CellPoint]bool{r.Center(): true}
		for _, set := range [][]surface.CellPoint{r.hour.Painted(), r.minute.Painted(), r.second.Painted(), r.readout.Painted()} {
			for _, p := range set {
				live[p] = true
			}
		}

		size := g.Size()
		for row := 0; row < size.Rows; row++ {
			for col := 0; col < size.Cols; col++ {
				p := surface.CellPoint{Row: row, Col: col}
				if live[p] {
					continue
				}
				got := g.At(p)
				if want, ok := r.face.Lookup(p); ok {
					if got != want {
						t.Fatalf("frame %d: face cell %+v is %+v, want %+v", sec, p, got, want)
					}
					continue
				}
				if got != surface.Blank {
					t.Fatalf("frame %d: stale glyph %q at %+v", sec, got.Rune, p)
				}
			}
		}
	}
}

func TestReset_ForgetsEverything(t *testing.T) {
	t.Parallel()

	g := surface.NewGrid(24, 80)
	r := New()
	if err := r.Layout(g.Size()); err != nil {
		t.Fatalf("layout: %v", err)
	}
	r.DrawStatic(g)
	r.DrawFrame(g, sampleAt(1, 2, 3))

	r.Reset()
	if r.face.Len() != 0 || len(r.hour.Painted()) != 0 || len(r.second.Painted()) != 0 {
		t.Fatalf("reset left state behind")
	}
}
