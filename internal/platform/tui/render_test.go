package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != "hello\nworld" {
		t.Errorf("RenderScreen() = %q, expected %q", got, "hello\nworld")
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "CD", core.ColorRed)
	s.DrawTextColored(4, 0, "ef", core.Color(200)) // unknown colors fall back to default

	out := RenderScreen(s)
	if n := strings.Count(out, "CD"); n != 1 {
		t.Errorf("colored run appears %d times in %q, expected 1", n, out)
	}
	for _, want := range []string{"ab", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}
