package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Analog  key.Binding
	Digital key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Analog: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "analog"),
		),
		Digital: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "digital"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// hints renders "key desc" pairs for the given bindings.
func hints(bs ...key.Binding) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		out = append(out, h.Key+" "+h.Desc)
	}
	return out
}
