package tui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/termclock/internal/display"
	"github.com/fchimpan/termclock/internal/surface"
)

var (
	styleMenuTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#79c0ff"))
	styleMenuItem  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	styleMenuHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleMenuBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(1, 3)

	// cellStyles maps drawing roles to colors.
	cellStyles = map[surface.Style]lipgloss.Style{
		surface.StyleDefault: lipgloss.NewStyle(),
		surface.StyleBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("#79c0ff")),
		surface.StyleHand:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd33d")),
		surface.StyleLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de")),
		surface.StylePivot:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de")),
		surface.StyleDigit:   lipgloss.NewStyle().Foreground(lipgloss.Color("#79c0ff")),
		surface.StyleColon:   lipgloss.NewStyle().Foreground(lipgloss.Color("#79c0ff")),
		surface.StyleReadout: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		surface.StyleMessage: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72")),
	}
)

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}
	if m.mode == display.ModeMenu {
		return m.menuView()
	}

	m.viewBuf.Reset()
	renderGridTo(&m.viewBuf, m.grid)
	return m.viewBuf.String()
}

func (m *Model) menuView() string {
	lines := []string{
		styleMenuTitle.Render("termclock"),
		"",
	}
	for _, h := range hints(m.keys.Analog, m.keys.Digital) {
		lines = append(lines, styleMenuItem.Render(h))
	}
	lines = append(lines, "", styleMenuHelp.Render(strings.Join(hints(m.keys.Menu, m.keys.Quit), "  ")))

	box := styleMenuBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, box)
}

// renderGridTo writes g row by row, styling runs of cells that share a role.
func renderGridTo(b *bytes.Buffer, g *surface.Grid) {
	size := g.Size()
	var run strings.Builder
	for r := 0; r < size.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		row := g.Row(r)
		for i := 0; i < len(row); {
			st := row[i].Style
			run.Reset()
			j := i
			for ; j < len(row) && row[j].Style == st; j++ {
				run.WriteRune(row[j].Rune)
			}
			if st == surface.StyleDefault {
				b.WriteString(run.String())
			} else {
				b.WriteString(cellStyles[st].Render(run.String()))
			}
			i = j
		}
	}
}
