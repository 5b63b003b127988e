package analog

import (
	"fmt"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/dirty"
	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/geometry"
	"github.com/fchimpan/termclock/internal/surface"
)

// MinRadius is the smallest face that still reads as a clock.
const MinRadius = 3

const (
	borderGlyph = 'o'
	pivotGlyph  = 'O'
)

// Radius is the face radius (in rows) that fits size.
func Radius(size surface.GridSize) int {
	byCols := int(float64(size.Cols) / (2 * geometry.AspectRatio))
	return min(size.Rows/2, byCols) - 2
}

// Renderer draws an analog clock face with hour, minute and second hands.
type Renderer struct {
	center surface.CellPoint
	radius int

	// face holds the border and labels so erased hands can restore them.
	face *surface.Layer

	hour    dirty.Tracker
	minute  dirty.Tracker
	second  dirty.Tracker
	readout dirty.Tracker
}

func New() *Renderer {
	r := &Renderer{face: surface.NewLayer()}
	r.hour.Underlay = r.face
	r.minute.Underlay = r.face
	r.second.Underlay = r.face
	r.readout.Underlay = r.face
	return r
}

func (r *Renderer) Name() string { return "analog" }

func (r *Renderer) Center() surface.CellPoint { return r.center }

func (r *Renderer) Radius() int { return r.radius }

func (r *Renderer) Layout(size surface.GridSize) error {
	radius := Radius(size)
	if radius < MinRadius {
		return &engine.SurfaceTooSmallError{
			Size:   size,
			Reason: fmt.Sprintf("radius %d below minimum %d", radius, MinRadius),
		}
	}
	r.radius = radius
	r.center = surface.CellPoint{Row: size.Rows / 2, Col: size.Cols / 2}
	return nil
}

func (r *Renderer) Reset() {
	r.radius = 0
	r.center = surface.CellPoint{}
	r.face.Reset()
	r.hour.Forget()
	r.minute.Forget()
	r.second.Forget()
	r.readout.Forget()
}

func (r *Renderer) DrawStatic(s surface.Surface) {
	size := s.Size()
	for _, p := range geometry.Ring(r.center, r.radius, size) {
		r.face.Set(s, p, surface.Cell{Rune: borderGlyph, Style: surface.StyleBorder})
	}
	for _, m := range geometry.FaceMarks(r.center, r.radius, size) {
		for i, ch := range m.Label {
			p := surface.CellPoint{Row: m.At.Row, Col: m.At.Col + i}
			r.face.Set(s, p, surface.Cell{Rune: ch, Style: surface.StyleLabel})
		}
	}
}

// Hand lengths as fractions of the radius.
func (r *Renderer) hourLen() int   { return max(1, r.radius*2/5) }
func (r *Renderer) minuteLen() int { return max(1, r.radius*3/5) }
func (r *Renderer) secondLen() int { return max(1, r.radius-2) }

func (r *Renderer) DrawFrame(s surface.Surface, sample clock.Sample) {
	size := s.Size()

	// Erase everything first so a hand drawn this frame is never blanked by
	// another hand's erase.
	r.hour.Erase(s, r.hour.Painted())
	r.minute.Erase(s, r.minute.Painted())
	r.second.Erase(s, r.second.Painted())
	r.readout.Erase(s, r.readout.Painted())

	a := geometry.HandAngles(sample)
	r.hour.Paint(s, geometry.HandPath(a.Hour, r.hourLen(), r.center, size), geometry.HandGlyph(a.Hour), surface.StyleHand)
	r.minute.Paint(s, geometry.HandPath(a.Minute, r.minuteLen(), r.center, size), geometry.HandGlyph(a.Minute), surface.StyleHand)
	r.second.Paint(s, geometry.HandPath(a.Second, r.secondLen(), r.center, size), geometry.HandGlyph(a.Second), surface.StyleHand)

	s.SetCell(r.center, pivotGlyph, surface.StylePivot)

	r.drawReadout(s, size, sample)
}

// drawReadout prints HH:MM:SS under the face when there is room.
func (r *Renderer) drawReadout(s surface.Surface, size surface.GridSize, sample clock.Sample) {
	text := fmt.Sprintf("%02d:%02d:%02d", sample.HH, sample.MM, sample.SS)
	row := min(size.Rows-1, r.center.Row+r.radius+1)
	col := max(0, r.center.Col-len(text)/2)
	if row <= r.center.Row+r.radius {
		r.readout.Record(nil)
		return
	}

	points := make([]surface.CellPoint, 0, len(text))
	for i := range text {
		points = append(points, surface.CellPoint{Row: row, Col: col + i})
	}
	surface.PutString(s, surface.CellPoint{Row: row, Col: col}, text, surface.StyleReadout)
	r.readout.Record(points)
}
