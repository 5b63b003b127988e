package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/fchimpan/termclock/internal/term"
	"github.com/fchimpan/termclock/internal/tui"
)

func defaultRunTUI(opts tui.Options) error {
	m := tui.NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}

func defaultRunTerm(ctx context.Context, opts term.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	return term.Run(ctx, screen, opts)
}
