// Package theme maps engine glyphs to characters and colors. Frontends pick
// a theme by name; the engine never sees how a glyph is drawn.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
)

// Theme contains the cell mapping and HUD styles for one look.
type Theme struct {
	Name  string
	cells map[pacman.Glyph]core.Cell

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
}

// Cell returns how glyph g is drawn. Unknown glyphs draw as '?'.
func (t Theme) Cell(g pacman.Glyph) core.Cell {
	if c, ok := t.cells[g]; ok {
		return c
	}
	return core.Cell{Rune: '?', Color: core.ColorDefault}
}

// Rune returns the character for glyph g.
func (t Theme) Rune(g pacman.Glyph) rune {
	return t.Cell(g).Rune
}

// Legend lists "rune name" pairs for the glyphs worth explaining.
func (t Theme) Legend() string {
	parts := []string{
		fmt.Sprintf("%c you", t.Rune(pacman.GlyphPlayer)),
		fmt.Sprintf("%c ghost", t.Rune(pacman.GlyphGhost)),
		fmt.Sprintf("%c pellet", t.Rune(pacman.GlyphPellet)),
		fmt.Sprintf("%c mega", t.Rune(pacman.GlyphMegaPellet)),
	}
	return strings.Join(parts, "  ")
}

func baseStyles(t Theme) Theme {
	t.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	t.HUDValue = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	t.HUDControls = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	t.OverlayBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 3)
	t.OverlayTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	t.OverlayText = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	return t
}

// ASCII returns a theme that only uses 7-bit characters. It matches the
// maze file markers so a screenshot reads like the source file.
func ASCII() Theme {
	return baseStyles(Theme{
		Name: "ascii",
		cells: map[pacman.Glyph]core.Cell{
			pacman.GlyphWall:       {Rune: '#', Color: core.ColorBlue},
			pacman.GlyphFloor:      {Rune: ' ', Color: core.ColorDefault},
			pacman.GlyphPlayer:     {Rune: 'P', Color: core.ColorBrightYellow},
			pacman.GlyphGhost:      {Rune: 'G', Color: core.ColorRed},
			pacman.GlyphPellet:     {Rune: '.', Color: core.ColorWhite},
			pacman.GlyphMegaPellet: {Rune: 'X', Color: core.ColorOrange},
		},
	})
}

// Unicode returns the default theme with block walls and round glyphs.
func Unicode() Theme {
	return baseStyles(Theme{
		Name: "unicode",
		cells: map[pacman.Glyph]core.Cell{
			pacman.GlyphWall:       {Rune: '█', Color: core.ColorBrightBlue},
			pacman.GlyphFloor:      {Rune: ' ', Color: core.ColorDefault},
			pacman.GlyphPlayer:     {Rune: 'ᗧ', Color: core.ColorBrightYellow},
			pacman.GlyphGhost:      {Rune: 'ᗣ', Color: core.ColorMagenta},
			pacman.GlyphPellet:     {Rune: '·', Color: core.ColorWhite},
			pacman.GlyphMegaPellet: {Rune: '●', Color: core.ColorOrange},
		},
	})
}

var themes = map[string]func() Theme{
	"ascii":   ASCII,
	"unicode": Unicode,
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a theme. The empty name selects Unicode.
func ByName(name string) (Theme, error) {
	if name == "" {
		return Unicode(), nil
	}
	f, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}
