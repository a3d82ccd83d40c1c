package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

// Layout constants
const (
	footerHeight = 1 // help line under the board
	statusRows   = 2 // score line and status line under the maze
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	session *pacman.Session
	screen  *core.Screen
	display *ScreenDisplay
	theme   theme.Theme
	keys    KeyMap
	help    help.Model

	tickRate int
	pending  core.Action // latest key since the last tick
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a session that the caller has started.
func NewModel(session *pacman.Session, th theme.Theme, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1))

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:  session,
		screen:   screen,
		display:  NewScreenDisplay(screen, th),
		theme:    th,
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit keys act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key leaves the result screen
	if m.session.State().Terminal() {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionEscape:
		m.session.Tick(core.ActionEscape)
		m.quitting = true
		return m, tea.Quit
	}

	m.pending = action
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.layout()
	return m, nil
}

// handleTick runs one session step with the pending action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.State().Terminal() {
		// Stop ticking; the result overlay waits for a key
		return m, nil
	}

	m.session.Tick(m.pending)
	m.pending = core.ActionNone

	return m, tickCmd(m.tickRate)
}

// layout centers the maze and its status rows on the screen.
func (m *Model) layout() {
	g := m.session.Game()
	m.display.Center(g.Width(), g.Height()+statusRows)
}

// tooSmall reports whether the maze and its status rows do not fit.
func (m Model) tooSmall() bool {
	g := m.session.Game()
	return m.screen.Width() < g.Width() || m.screen.Height() < g.Height()+statusRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		g := m.session.Game()
		msg := m.theme.OverlayText.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			g.Width(), g.Height()+statusRows+footerHeight, m.width, m.height,
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.theme.OverlayBorder.Render(msg))
	}

	m.session.Render(m.display)
	if m.session.State().Terminal() {
		m.drawResult()
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// drawResult draws a boxed summary over the middle of the maze.
func (m Model) drawResult() {
	lines := []string{resultTitle(m.session.State()), m.session.Summary(), "press any key"}

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	box := m.display.Origin.Centered(w, h)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		m.screen.DrawTextColor(x, box.Y+1+i, l, color)
	}
}

func resultTitle(s pacman.State) string {
	switch s {
	case pacman.StateWon:
		return "YOU WIN"
	case pacman.StateLost:
		return "GAME OVER"
	default:
		return "ABORTED"
	}
}

// footer renders the HUD title and the key help on one line.
func (m Model) footer() string {
	var sb strings.Builder
	sb.WriteString(m.theme.HUDTitle.Render("PAC-MAN"))
	sb.WriteString("  ")
	sb.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))
	return sb.String()
}

// Run starts the session and the Bubble Tea program and blocks until the
// player quits or ctx ends. It returns the final session state. The ghost
// task is always joined before Run returns.
func Run(ctx context.Context, session *pacman.Session, th theme.Theme, cfg core.RuntimeConfig) (pacman.State, error) {
	session.Start(ctx)
	defer session.Stop() //nolint:errcheck // joined again below for the error

	model := NewModel(session, th, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()

	// Window closed or context ended mid-game
	if !session.State().Terminal() {
		session.Tick(core.ActionEscape)
	}

	stopErr := session.Stop()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return session.State(), fmt.Errorf("tui: %w", runErr)
	}
	return session.State(), stopErr
}
