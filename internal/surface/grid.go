package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Grid is an in-memory Surface. Cells are row-major: cells[row*cols+col].
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

// Resize changes the dimensions and blanks every cell.
func (g *Grid) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		g.rows, g.cols, g.cells = 0, 0, nil
		return
	}
	n := rows * cols
	g.rows = rows
	g.cols = cols
	if cap(g.cells) >= n {
		g.cells = g.cells[:n]
	} else {
		g.cells = make([]Cell, n)
	}
	g.Clear()
}

func (g *Grid) Size() GridSize {
	return GridSize{Rows: g.rows, Cols: g.cols}
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

func (g *Grid) SetCell(p CellPoint, r rune, st Style) {
	if !g.Size().Contains(p) {
		return
	}
	g.cells[p.Row*g.cols+p.Col] = Cell{Rune: r, Style: st}
}

// At returns the cell at p, or Blank when p is outside the grid.
func (g *Grid) At(p CellPoint) Cell {
	if !g.Size().Contains(p) {
		return Blank
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// Row returns a view of one row; callers must not keep it across Resize.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	return g.cells[row*g.cols : (row+1)*g.cols]
}

// Lines returns the grid as plain text, one string per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for _, c := range g.Row(r) {
			b.WriteRune(c.Rune)
		}
		out[r] = b.String()
	}
	return out
}

// PutString writes s starting at p, advancing by each rune's display width.
// Runes that fall outside the surface are dropped.
func PutString(s Surface, p CellPoint, text string, st Style) {
	col := p.Col
	for _, r := range text {
		s.SetCell(CellPoint{Row: p.Row, Col: col}, r, st)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		col += w
	}
}

// StringWidth is the display width of text in cells.
func StringWidth(text string) int {
	return runewidth.StringWidth(text)
}
