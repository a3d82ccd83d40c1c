package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

func newTestModel(t *testing.T, maze string) (Model, *pacman.Session) {
	t.Helper()
	l, err := pacman.Parse(strings.NewReader(maze))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	session := pacman.NewSession(l, pacman.Options{GhostDelay: time.Hour})
	session.Start(context.Background())
	t.Cleanup(func() { session.Stop() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30}
	return NewModel(session, theme.ASCII(), cfg), session
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelKeyAppliesOnTick(t *testing.T) {
	m, session := newTestModel(t, "#####\n#P..#\n#####")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if session.Game().Player() != pacman.Pos(1, 1) {
		t.Fatal("key moved the player before the tick")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if got := session.Game().Player(); got != pacman.Pos(1, 2) {
		t.Errorf("Player() = %s, expected (1,2)", got)
	}

	// the action is consumed by the tick
	update(t, m, TickMsg(time.Now()))
	if got := session.Game().Player(); got != pacman.Pos(1, 2) {
		t.Errorf("Player() after idle tick = %s, expected (1,2)", got)
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	m, session := newTestModel(t, "#####\n#.P.#\n#####")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	update(t, m, TickMsg(time.Now()))

	if got := session.Game().Player(); got != pacman.Pos(1, 3) {
		t.Errorf("Player() = %s, expected (1,3)", got)
	}
}

func TestModelQuitAborts(t *testing.T) {
	m, session := newTestModel(t, "#####\n#P..#\n#####")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
	if session.State() != pacman.StateAborted {
		t.Errorf("State() = %v, expected aborted", session.State())
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelWinShowsResult(t *testing.T) {
	m, session := newTestModel(t, "####\n#P.#\n####")

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if session.State() != pacman.StateWon {
		t.Fatalf("State() = %v, expected won", session.State())
	}

	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks continue after the game ended")
	}

	view := m.View()
	for _, want := range []string{"YOU WIN", "You win! Score: 1/1", "press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	_, cmd := update(t, m, runeKey('x'))
	if cmd == nil {
		t.Fatal("key on result screen did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("key on result screen did not quit")
	}
}

func TestModelPause(t *testing.T) {
	m, session := newTestModel(t, "#####\n#P..#\n#####")

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !session.Paused() {
		t.Fatal("p did not pause")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("View() does not show the pause status")
	}

	m, _ = update(t, m, runeKey('d'))
	update(t, m, TickMsg(time.Now()))
	if got := session.Game().Player(); got != pacman.Pos(1, 1) {
		t.Errorf("Player() while paused = %s, expected (1,1)", got)
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t, "#####\n#P..#\n#####")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 3})
	view := m.View()
	if !strings.Contains(view, "Terminal too small") {
		t.Error("View() does not warn about a small terminal")
	}
	if !strings.Contains(view, "╭") {
		t.Error("View() does not frame the warning")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() still warns after growing")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, "#####\n#P..#\n#####")

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? did not expand help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? did not collapse help")
	}
}
