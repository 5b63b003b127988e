package display

import (
	"fmt"
	"strings"

	"github.com/fchimpan/termclock/internal/analog"
	"github.com/fchimpan/termclock/internal/digital"
	"github.com/fchimpan/termclock/internal/engine"
)

// Mode selects what the program shows.
type Mode int

const (
	ModeMenu Mode = iota
	ModeAnalog
	ModeDigital
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeAnalog:
		return "analog"
	case ModeDigital:
		return "digital"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "menu":
		return ModeMenu, nil
	case "analog", "a":
		return ModeAnalog, nil
	case "digital", "d":
		return ModeDigital, nil
	default:
		return ModeMenu, fmt.Errorf("unknown mode %q (expected menu, analog or digital)", s)
	}
}

// NewRenderer returns a fresh renderer for m. Every call returns new state;
// modes never share caches. ModeMenu has no renderer.
func NewRenderer(m Mode) (engine.Renderer, bool) {
	switch m {
	case ModeAnalog:
		return analog.New(), true
	case ModeDigital:
		return digital.New(), true
	default:
		return nil, false
	}
}
