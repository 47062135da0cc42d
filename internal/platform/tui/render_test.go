package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "[]", core.ColorCyan)
	s.DrawTextColored(2, 0, "[]", core.ColorCyan)
	s.DrawText(4, 0, "ok")
	s.DrawTextColored(0, 1, "░░", core.ColorGray)

	got := ansi.Strip(RenderScreen(s))
	expected := "[][]ok\n░░    "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if got := ansi.Strip(RenderScreen(s)); got != "x  " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "x  ")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %s", c)
		}
	}
}
