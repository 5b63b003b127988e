package geometry

import (
	"math"
	"strconv"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/surface"
)

// AspectRatio stretches horizontal displacement so circles look round on a
// terminal whose cells are about twice as tall as they are wide.
const AspectRatio = 2.0

// Hand stroke glyphs.
const (
	GlyphVertical     = '|'
	GlyphForwardDiag  = '/'
	GlyphBackwardDiag = '\\'
)

// Angle maps value within period to radians: 0 at 12 o'clock is -π/2 and
// the angle grows clockwise on a y-down grid.
func Angle(value, period float64) float64 {
	return (value/period)*2*math.Pi - math.Pi/2
}

// Angles holds the three hand angles of one sample.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

func HandAngles(s clock.Sample) Angles {
	return Angles{
		Hour:   Angle(s.Hour, 12),
		Minute: Angle(s.Minute, 60),
		Second: Angle(s.Second, 60),
	}
}

// Round rounds half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Project returns the cell at radius r along angle from center.
func Project(center surface.CellPoint, angle, r float64) surface.CellPoint {
	return surface.CellPoint{
		Row: center.Row + Round(math.Sin(angle)*r),
		Col: center.Col + Round(math.Cos(angle)*r*AspectRatio),
	}
}

// Distance is the visual distance between two cells, in rows.
func Distance(a, b surface.CellPoint) float64 {
	dy := float64(a.Row - b.Row)
	dx := float64(a.Col-b.Col) / AspectRatio
	return math.Hypot(dx, dy)
}

// Degrees normalizes angle to [0,360).
func Degrees(angle float64) float64 {
	deg := math.Mod(angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// HandGlyph picks a stroke glyph for a hand at angle. Bands within 10° of
// the four axes use the vertical stroke; the rest follow the quadrant.
func HandGlyph(angle float64) rune {
	deg := Degrees(angle)
	switch {
	case deg >= 350 || deg < 10,
		deg >= 80 && deg < 100,
		deg >= 170 && deg < 190,
		deg >= 260 && deg < 280:
		return GlyphVertical
	case deg < 80, deg >= 190 && deg < 260:
		// down-right or up-left on a y-down grid
		return GlyphBackwardDiag
	default:
		return GlyphForwardDiag
	}
}

const handStep = 0.5

// HandPath traces a hand from center outward to length and returns its cells
// ordered by distance from center. The center cell itself is never part of
// the path; cells outside size are dropped.
func HandPath(angle float64, length int, center surface.CellPoint, size surface.GridSize) []surface.CellPoint {
	if length <= 0 {
		return nil
	}
	steps := int(float64(length) / handStep)
	out := make([]surface.CellPoint, 0, steps)
	last := center
	lastDist := 0.0
	for i := 1; i <= steps; i++ {
		p := Project(center, angle, float64(i)*handStep)
		if p == center || p == last {
			continue
		}
		d := Distance(p, center)
		if d < lastDist {
			continue
		}
		last, lastDist = p, d
		if !size.Contains(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Ring approximates a circle of radius around center with one sample per
// degree. Duplicates and out-of-bounds cells are dropped.
func Ring(center surface.CellPoint, radius int, size surface.GridSize) []surface.CellPoint {
	seen := make(map[surface.CellPoint]struct{}, 360)
	out := make([]surface.CellPoint, 0, 360)
	for deg := 0; deg < 360; deg++ {
		p := Project(center, float64(deg)*math.Pi/180, float64(radius))
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		if size.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Mark is an hour label placed on the face. At is the first cell of Label.
type Mark struct {
	At    surface.CellPoint
	Label string
}

// FaceMarks places the 12 hour labels just inside radius. Labels that do not
// fit entirely within size are dropped.
func FaceMarks(center surface.CellPoint, radius int, size surface.GridSize) []Mark {
	out := make([]Mark, 0, 12)
	for h := 0; h < 12; h++ {
		hour := h
		if hour == 0 {
			hour = 12
		}
		label := strconv.Itoa(hour)
		p := Project(center, Angle(float64(h), 12), float64(radius)-1.5)
		p.Col -= len(label) / 2
		end := surface.CellPoint{Row: p.Row, Col: p.Col + len(label) - 1}
		if !size.Contains(p) || !size.Contains(end) {
			continue
		}
		out = append(out, Mark{At: p, Label: label})
	}
	return out
}
