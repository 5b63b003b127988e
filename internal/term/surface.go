package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fchimpan/termclock/internal/surface"
)

var styles = map[surface.Style]tcell.Style{
	surface.StyleDefault: tcell.StyleDefault,
	surface.StyleBorder:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	surface.StyleHand:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	surface.StyleLabel:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	surface.StylePivot:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	surface.StyleDigit:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
	surface.StyleColon:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
	surface.StyleReadout: tcell.StyleDefault.Foreground(tcell.ColorGray),
	surface.StyleMessage: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

// Surface adapts a tcell.Screen to surface.Surface. Size is read from the
// screen on every call.
type Surface struct {
	screen tcell.Screen
}

func NewSurface(s tcell.Screen) *Surface {
	return &Surface{screen: s}
}

func (s *Surface) Size() surface.GridSize {
	w, h := s.screen.Size()
	return surface.GridSize{Rows: h, Cols: w}
}

func (s *Surface) SetCell(p surface.CellPoint, r rune, st surface.Style) {
	if !s.Size().Contains(p) {
		return
	}
	s.screen.SetContent(p.Col, p.Row, r, nil, styles[st])
}

func (s *Surface) Clear() {
	s.screen.Clear()
}
