package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// MenuKeyMap defines the key bindings for the maze picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the built-in maze picker.
type MenuModel struct {
	items    []registry.MazeInfo
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	theme    theme.Theme
	keys     MenuKeyMap
	quitting bool
	selected *registry.MazeInfo // Set when user selects a maze
}

// NewMenuModel creates a new menu model listing every registered maze.
// The cursor starts on last, when it is one of them.
func NewMenuModel(th theme.Theme, cfg core.RuntimeConfig, last string) MenuModel {
	items := registry.List()

	cursor := 0
	for i, item := range items {
		if item.Name == last {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		theme:  th,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.HUDTitle.Render("P A C - M A N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.HUDValue.Render("Select a maze"), m.width))
	b.WriteString("\n\n")

	// Maze list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s %3dx%-3d %4d gums", cursor, item.Title, item.Width, item.Height, item.Gums)
		if i == m.cursor {
			line = m.theme.OverlayTitle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(m.theme.HUDControls.Render(controls), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.HUDControls.Render(m.theme.Legend()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected maze, or nil if none selected.
func (m MenuModel) Selected() *registry.MazeInfo {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Maze   string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the maze picker and returns the selection result.
func RunMenu(th theme.Theme, cfg core.RuntimeConfig, last string) (MenuResult, error) {
	model := NewMenuModel(th, cfg, last)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{Maze: m.Selected().Name, Config: m.Config()}, nil
}
