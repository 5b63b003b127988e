package surface

// Layer is a sparse set of cells that sits under the dynamic content,
// e.g. the static clock face.
type Layer struct {
	cells map[CellPoint]Cell
}

func NewLayer() *Layer {
	return &Layer{cells: make(map[CellPoint]Cell)}
}

// Set records c at p and draws it on s.
func (l *Layer) Set(s Surface, p CellPoint, c Cell) {
	if !s.Size().Contains(p) {
		return
	}
	l.cells[p] = c
	Put(s, p, c)
}

func (l *Layer) Lookup(p CellPoint) (Cell, bool) {
	if l == nil {
		return Cell{}, false
	}
	c, ok := l.cells[p]
	return c, ok
}

func (l *Layer) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cells)
}

func (l *Layer) Reset() {
	clear(l.cells)
}
