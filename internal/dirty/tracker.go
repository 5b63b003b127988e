package dirty

import "github.com/fchimpan/termclock/internal/surface"

// PaintedSet is the ordered list of cells one element painted last frame.
type PaintedSet []surface.CellPoint

// Tracker remembers what one dynamic element painted so the next frame can
// erase exactly those cells.
//
// Erase is unconditional: it does not check whether another element has
// since drawn over a cell. When elements overlap within a frame the last
// writer wins, and the next Erase of either element clears the cell.
type Tracker struct {
	// Underlay, when set, is restored instead of a blank for cells that
	// belong to static content.
	Underlay *surface.Layer

	painted PaintedSet
}

// Painted returns the set recorded by the last Record call.
func (t *Tracker) Painted() PaintedSet {
	return t.painted
}

// Erase blanks (or restores the underlay of) every cell in prev.
func (t *Tracker) Erase(s surface.Surface, prev PaintedSet) {
	size := s.Size()
	for _, p := range prev {
		if !size.Contains(p) {
			continue
		}
		if c, ok := t.Underlay.Lookup(p); ok {
			surface.Put(s, p, c)
			continue
		}
		surface.Put(s, p, surface.Blank)
	}
}

// Record stores points as the set to erase next frame and returns it.
func (t *Tracker) Record(points []surface.CellPoint) PaintedSet {
	t.painted = append(t.painted[:0], points...)
	return t.painted
}

// Clear erases the recorded set and forgets it.
func (t *Tracker) Clear(s surface.Surface) {
	t.Erase(s, t.painted)
	t.painted = t.painted[:0]
}

// Forget drops the recorded set without touching the surface. Used after the
// whole surface was cleared.
func (t *Tracker) Forget() {
	t.painted = nil
}

// Paint draws r at every point, records the points and returns the set.
// Out-of-bounds points are dropped before recording.
func (t *Tracker) Paint(s surface.Surface, points []surface.CellPoint, r rune, st surface.Style) PaintedSet {
	size := s.Size()
	kept := make([]surface.CellPoint, 0, len(points))
	for _, p := range points {
		if !size.Contains(p) {
			continue
		}
		s.SetCell(p, r, st)
		kept = append(kept, p)
	}
	return t.Record(kept)
}
