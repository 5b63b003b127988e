package display

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := map[string]Mode{"": ModeMenu, "menu": ModeMenu, "Analog": ModeAnalog, "d": ModeDigital, " digital ": ModeDigital}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q): got %v want %v", in, got, want)
		}
	}
	if _, err := ParseMode("sundial"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNewRenderer_FreshState(t *testing.T) {
	t.Parallel()

	a1, ok := NewRenderer(ModeAnalog)
	if !ok || a1.Name() != "analog" {
		t.Fatalf("expected analog renderer, got %v %v", a1, ok)
	}
	a2, _ := NewRenderer(ModeAnalog)
	if a1 == a2 {
		t.Fatalf("renderers must not be shared between mode switches")
	}
	if d, ok := NewRenderer(ModeDigital); !ok || d.Name() != "digital" {
		t.Fatalf("expected digital renderer")
	}
	if _, ok := NewRenderer(ModeMenu); ok {
		t.Fatalf("menu has no renderer")
	}
}
