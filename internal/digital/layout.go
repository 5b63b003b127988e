package digital

import (
	"fmt"

	"github.com/fchimpan/termclock/internal/engine"
	"github.com/fchimpan/termclock/internal/surface"
)

// LayoutMetrics is the size-derived geometry of the HH:MM:SS display.
type LayoutMetrics struct {
	Scale        int
	DigitWidth   int
	DigitHeight  int
	ColonSpacing int
	TotalWidth   int
	StartRow     int
	StartCol     int
}

// ComputeLayout derives metrics from size. It is a pure function of size.
func ComputeLayout(size surface.GridSize) (LayoutMetrics, error) {
	scale := max(1, min((size.Rows-3)/2, (size.Cols-10)/8))
	m := LayoutMetrics{
		Scale:       scale,
		DigitWidth:  scale + 2,
		DigitHeight: 2*scale + 3,
	}
	m.ColonSpacing = 2
	if scale > 1 {
		m.ColonSpacing = 3
	}
	m.TotalWidth = 6*m.DigitWidth + 2*m.ColonSpacing

	if size.Rows < m.DigitHeight || size.Cols < m.TotalWidth {
		return m, &engine.SurfaceTooSmallError{
			Size:   size,
			Reason: fmt.Sprintf("need %dx%d for digits", m.TotalWidth, m.DigitHeight),
		}
	}
	m.StartRow = (size.Rows - m.DigitHeight) / 2
	m.StartCol = (size.Cols - m.TotalWidth) / 2
	return m, nil
}

// DigitOrigin is the top-left cell of digit position i (0..5).
func (m LayoutMetrics) DigitOrigin(i int) surface.CellPoint {
	return surface.CellPoint{
		Row: m.StartRow,
		Col: m.StartCol + i*m.DigitWidth + (i/2)*m.ColonSpacing,
	}
}

// ColonCells returns the two dots of colon k (0 between HH:MM, 1 between MM:SS).
func (m LayoutMetrics) ColonCells(k int) [2]surface.CellPoint {
	col := m.StartCol + (k+1)*2*m.DigitWidth + k*m.ColonSpacing + m.ColonSpacing/2
	top := max(m.StartRow+m.Scale/2, m.StartRow+1)
	bottom := m.StartRow + m.Scale + 2 + m.Scale/2
	return [2]surface.CellPoint{{Row: top, Col: col}, {Row: bottom, Col: col}}
}
