package tui

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

// ScreenDisplay draws engine paint commands into a core.Screen. Maze cell
// (row, col) lands at screen (Origin.X+col, Origin.Y+row).
type ScreenDisplay struct {
	Screen *core.Screen
	Theme  theme.Theme
	Origin core.Rect
}

// NewScreenDisplay creates a display over s using theme t.
func NewScreenDisplay(s *core.Screen, t theme.Theme) *ScreenDisplay {
	return &ScreenDisplay{Screen: s, Theme: t}
}

// Clear wipes the screen.
func (d *ScreenDisplay) Clear() {
	d.Screen.Clear()
}

// Paint draws glyph g at maze position p using the theme.
func (d *ScreenDisplay) Paint(p pacman.Position, g pacman.Glyph) {
	d.Screen.SetCell(d.Origin.X+p.Col, d.Origin.Y+p.Row, d.Theme.Cell(g))
}

// Print writes a status line starting at the maze's left edge.
func (d *ScreenDisplay) Print(row int, text string) {
	d.Screen.DrawTextColor(d.Origin.X, d.Origin.Y+row, text, core.ColorBrightWhite)
}

// Center positions a w*h maze in the middle of the screen. The maze is
// pinned to the top-left edge when it does not fit.
func (d *ScreenDisplay) Center(w, h int) {
	full := core.NewRect(0, 0, d.Screen.Width(), d.Screen.Height())
	r := full.Centered(w, h)
	r.X = core.Max(r.X, 0)
	r.Y = core.Max(r.Y, 0)
	d.Origin = r
}
