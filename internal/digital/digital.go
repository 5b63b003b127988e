package digital

import (
	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/dirty"
	"github.com/fchimpan/termclock/internal/surface"
)

const (
	blockGlyph = '█'
	colonGlyph = 'o'
)

// Digits splits the wall-clock fields of s into the six displayed digits.
func Digits(s clock.Sample) [6]int {
	return [6]int{s.HH / 10, s.HH % 10, s.MM / 10, s.MM % 10, s.SS / 10, s.SS % 10}
}

// Changed reports which digit positions need erase and redraw. A field that
// differs marks both of its positions; without a previous sample all six are
// marked.
func Changed(prev, cur clock.Sample, hasPrev bool) [6]bool {
	if !hasPrev {
		return [6]bool{true, true, true, true, true, true}
	}
	h := prev.HH != cur.HH
	m := prev.MM != cur.MM
	s := prev.SS != cur.SS
	return [6]bool{h, h, m, m, s, s}
}

// Renderer draws a seven-segment HH:MM:SS display and only repaints the
// digits whose field changed since the previous frame.
type Renderer struct {
	layout LayoutMetrics

	prev    clock.Sample
	hasPrev bool

	digits [6]dirty.Tracker
}

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string { return "digital" }

func (r *Renderer) Layout(size surface.GridSize) error {
	m, err := ComputeLayout(size)
	if err != nil {
		return err
	}
	r.layout = m
	return nil
}

func (r *Renderer) Metrics() LayoutMetrics { return r.layout }

func (r *Renderer) Reset() {
	r.layout = LayoutMetrics{}
	r.prev = clock.Sample{}
	r.hasPrev = false
	for i := range r.digits {
		r.digits[i].Forget()
	}
}

func (r *Renderer) DrawStatic(s surface.Surface) {
	for k := 0; k < 2; k++ {
		for _, p := range r.layout.ColonCells(k) {
			s.SetCell(p, colonGlyph, surface.StyleColon)
		}
	}
}

func (r *Renderer) DrawFrame(s surface.Surface, sample clock.Sample) {
	changed := Changed(r.prev, sample, r.hasPrev)
	values := Digits(sample)

	for i, c := range changed {
		if c {
			r.digits[i].Erase(s, r.digits[i].Painted())
		}
	}
	for i, c := range changed {
		if !c {
			continue
		}
		cells := DigitCells(values[i], r.layout.DigitOrigin(i), r.layout.Scale)
		r.digits[i].Paint(s, cells, blockGlyph, surface.StyleDigit)
	}

	r.prev = sample
	r.hasPrev = true
}
