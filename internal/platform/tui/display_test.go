package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

func TestScreenDisplayPaint(t *testing.T) {
	s := core.NewScreen(10, 5)
	d := NewScreenDisplay(s, theme.ASCII())
	d.Origin = core.NewRect(2, 1, 3, 2)

	d.Paint(pacman.Pos(0, 0), pacman.GlyphWall)
	d.Paint(pacman.Pos(1, 2), pacman.GlyphPlayer)
	d.Print(2, "Hi")

	if got := s.GetCell(2, 1); got.Rune != '#' || got.Color != core.ColorBlue {
		t.Errorf("wall cell = %+v, expected blue '#'", got)
	}
	if got := s.Get(4, 2); got != 'P' {
		t.Errorf("player rune = %q, expected 'P'", got)
	}
	if got := s.Row(3); got != "  Hi      " {
		t.Errorf("Row(3) = %q", got)
	}

	d.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear() left content behind")
	}
}

func TestScreenDisplayCenter(t *testing.T) {
	d := NewScreenDisplay(core.NewScreen(20, 10), theme.ASCII())

	d.Center(10, 4)
	if d.Origin.X != 5 || d.Origin.Y != 3 {
		t.Errorf("Origin = (%d,%d), expected (5,3)", d.Origin.X, d.Origin.Y)
	}

	d.Center(30, 12)
	if d.Origin.X != 0 || d.Origin.Y != 0 {
		t.Errorf("oversized Origin = (%d,%d), expected (0,0)", d.Origin.X, d.Origin.Y)
	}
}

func TestSessionRendersThroughDisplay(t *testing.T) {
	l, err := pacman.Parse(strings.NewReader("#####\n#P.G#\n#####"))
	if err != nil {
		t.Fatal(err)
	}
	session := pacman.NewSession(l, pacman.Options{})

	s := core.NewScreen(5, 5)
	d := NewScreenDisplay(s, theme.ASCII())
	session.Render(d)

	want := []string{"#####", "#P.G#", "#####", "Score", ""}
	for y, w := range want {
		if got := strings.TrimRight(s.Row(y), " "); got != w {
			t.Errorf("Row(%d) = %q, expected %q", y, got, w)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, core.Cell{Rune: 'c', Color: core.ColorRed})
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, r := range "abcxyz" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("RenderScreen() missing %q", r)
		}
	}
}
