package digital

import "github.com/fchimpan/termclock/internal/surface"

// Segment indexes a seven-segment digit.
type Segment int

const (
	SegTop Segment = iota
	SegMiddle
	SegBottom
	SegUpperLeft
	SegUpperRight
	SegLowerLeft
	SegLowerRight
)

// Glyph is the on/off state of the seven segments, indexed by Segment.
type Glyph [7]bool

var glyphs = [10]Glyph{
	0: {SegTop: true, SegBottom: true, SegUpperLeft: true, SegUpperRight: true, SegLowerLeft: true, SegLowerRight: true},
	1: {SegUpperRight: true, SegLowerRight: true},
	2: {SegTop: true, SegMiddle: true, SegBottom: true, SegUpperRight: true, SegLowerLeft: true},
	3: {SegTop: true, SegMiddle: true, SegBottom: true, SegUpperRight: true, SegLowerRight: true},
	4: {SegMiddle: true, SegUpperLeft: true, SegUpperRight: true, SegLowerRight: true},
	5: {SegTop: true, SegMiddle: true, SegBottom: true, SegUpperLeft: true, SegLowerRight: true},
	6: {SegTop: true, SegMiddle: true, SegBottom: true, SegUpperLeft: true, SegLowerLeft: true, SegLowerRight: true},
	7: {SegTop: true, SegUpperRight: true, SegLowerRight: true},
	8: {true, true, true, true, true, true, true},
	9: {SegTop: true, SegMiddle: true, SegBottom: true, SegUpperLeft: true, SegUpperRight: true, SegLowerRight: true},
}

// GlyphFor returns the segments lit for digit d. Values outside 0..9 light nothing.
func GlyphFor(d int) Glyph {
	if d < 0 || d > 9 {
		return Glyph{}
	}
	return glyphs[d]
}

// SegmentCells returns the cells of one segment for a digit whose top-left
// corner is at origin. A digit is scale+2 wide and 2*scale+3 tall.
func SegmentCells(seg Segment, origin surface.CellPoint, scale int) []surface.CellPoint {
	var (
		row, col   int
		horizontal bool
	)
	switch seg {
	case SegTop:
		row, col, horizontal = origin.Row, origin.Col+1, true
	case SegMiddle:
		row, col, horizontal = origin.Row+scale+1, origin.Col+1, true
	case SegBottom:
		row, col, horizontal = origin.Row+2*scale+2, origin.Col+1, true
	case SegUpperLeft:
		row, col = origin.Row+1, origin.Col
	case SegUpperRight:
		row, col = origin.Row+1, origin.Col+scale+1
	case SegLowerLeft:
		row, col = origin.Row+scale+2, origin.Col
	case SegLowerRight:
		row, col = origin.Row+scale+2, origin.Col+scale+1
	default:
		return nil
	}

	out := make([]surface.CellPoint, 0, scale)
	for i := 0; i < scale; i++ {
		if horizontal {
			out = append(out, surface.CellPoint{Row: row, Col: col + i})
		} else {
			out = append(out, surface.CellPoint{Row: row + i, Col: col})
		}
	}
	return out
}

// DigitCells returns every lit cell of digit d at origin.
func DigitCells(d int, origin surface.CellPoint, scale int) []surface.CellPoint {
	g := GlyphFor(d)
	var out []surface.CellPoint
	for seg, on := range g {
		if on {
			out = append(out, SegmentCells(Segment(seg), origin, scale)...)
		}
	}
	return out
}
