package surface

// GridSize is a snapshot of the terminal dimensions in cells.
type GridSize struct {
	Rows int
	Cols int
}

func (g GridSize) Contains(p CellPoint) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.Rows && p.Col < g.Cols
}

// CellPoint is an integer terminal coordinate.
type CellPoint struct {
	Row int
	Col int
}

// Style is a drawing role. Backends decide the concrete colors.
type Style uint8

const (
	StyleDefault Style = iota
	StyleBorder
	StyleHand
	StyleLabel
	StylePivot
	StyleDigit
	StyleColon
	StyleReadout
	StyleMessage
)

// Cell is one glyph with its role.
type Cell struct {
	Rune  rune
	Style Style
}

// Blank is what an erased cell holds.
var Blank = Cell{Rune: ' ', Style: StyleDefault}

// Surface is the logical character grid a renderer draws on.
//
// SetCell must silently ignore points outside Size().
type Surface interface {
	Size() GridSize
	SetCell(p CellPoint, r rune, st Style)
	Clear()
}

// Put writes c at p.
func Put(s Surface, p CellPoint, c Cell) {
	s.SetCell(p, c.Rune, c.Style)
}
