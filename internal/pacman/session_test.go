package pacman

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// frozen keeps the ghost mover asleep for the whole test.
var frozen = Options{GhostDelay: time.Hour}

func startSession(t *testing.T, l *Layout, opts Options) *Session {
	t.Helper()
	s := NewSession(l, opts)
	require.Equal(t, StateLoading, s.State())
	s.Start(context.Background())
	require.Equal(t, StateRunning, s.State())
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func TestSessionWin(t *testing.T) {
	s := startSession(t, mustParse(t,
		"###",
		"#P.",
		"###",
	), frozen)

	assert.Equal(t, StateWon, s.Tick(core.ActionRight))
	assert.Equal(t, "You win! Score: 1/1", s.Summary())

	// terminal states are absorbing
	assert.Equal(t, StateWon, s.Tick(core.ActionEscape))
	assert.Equal(t, StateWon, s.Tick(core.ActionLeft))
	assert.Equal(t, Pos(1, 2), s.Game().Player())
	assert.NoError(t, s.Stop())
}

func TestSessionLose(t *testing.T) {
	s := startSession(t, mustParse(t,
		"#####",
		"#PG.#",
		"#####",
	), frozen)

	assert.Equal(t, StateLost, s.Tick(core.ActionRight))
	assert.Equal(t, 0, s.Game().Lives())
	assert.Equal(t, "Game over! Score: 0/1", s.Summary())
}

func TestSessionLoseWithSpareLives(t *testing.T) {
	opts := frozen
	opts.Game.Lives = 2
	s := startSession(t, mustParse(t,
		"#####",
		"#PG.#",
		"#####",
	), opts)

	assert.Equal(t, StateRunning, s.Tick(core.ActionRight))
	assert.Equal(t, 1, s.Game().Lives())
	assert.Equal(t, Pos(1, 1), s.Game().Player())

	assert.Equal(t, StateLost, s.Tick(core.ActionRight))
}

func TestSessionEscape(t *testing.T) {
	s := startSession(t, mustParse(t,
		"####",
		"#P.#",
		"####",
	), frozen)

	assert.Equal(t, StateRunning, s.Tick(core.ActionNone))
	assert.Equal(t, StateAborted, s.Tick(core.ActionEscape))
	assert.Equal(t, "Game aborted. Score: 0/1", s.Summary())
	assert.Equal(t, uint64(2), s.Ticks())
}

func TestSessionPause(t *testing.T) {
	s := startSession(t, mustParse(t,
		"#####",
		"#P..#",
		"#####",
	), frozen)

	s.Tick(core.ActionPause)
	require.True(t, s.Paused())

	s.Tick(core.ActionRight)
	assert.Equal(t, Pos(1, 1), s.Game().Player(), "paused game ignores movement")

	d := newRecordDisplay()
	s.Render(d)
	assert.Contains(t, d.lines[4], "Paused")

	s.Tick(core.ActionPause)
	require.False(t, s.Paused())
	s.Tick(core.ActionRight)
	assert.Equal(t, Pos(1, 2), s.Game().Player())
}

func TestSessionTickBeforeStart(t *testing.T) {
	s := NewSession(mustParse(t, "#P.#"), frozen)

	assert.Equal(t, StateLoading, s.Tick(core.ActionRight))
	assert.Equal(t, Pos(0, 1), s.Game().Player())
	assert.Empty(t, s.Summary())
	assert.NotEmpty(t, s.ID())
}

func TestSessionStopBeforeStart(t *testing.T) {
	s := NewSession(mustParse(t, "#P.#"), frozen)

	require.NoError(t, s.Stop())
	s.Start(context.Background())
	assert.Equal(t, StateLoading, s.State())
	require.NoError(t, s.Stop())
}

func TestSessionGhostsMove(t *testing.T) {
	s := startSession(t, mustParse(t,
		"#######",
		"#G   P#",
		"#     #",
		"#######",
	), Options{GhostDelay: time.Millisecond, GhostPeriod: time.Millisecond})

	require.Eventually(t, func() bool {
		return s.GhostTicks() >= 3
	}, 2*time.Second, time.Millisecond)

	require.NoError(t, s.Stop())
	after := s.GhostTicks()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, s.GhostTicks(), "ghost mover must be joined by Stop")

	for _, p := range s.Game().Ghosts().Snapshot() {
		assert.False(t, s.Game().Maze().IsWall(p))
	}
}

func TestSessionPauseFreezesGhosts(t *testing.T) {
	s := startSession(t, mustParse(t,
		"#######",
		"#G   P#",
		"#     #",
		"#######",
	), Options{GhostDelay: time.Millisecond, GhostPeriod: time.Millisecond})

	require.Eventually(t, func() bool {
		return s.GhostTicks() > 0
	}, 2*time.Second, time.Millisecond)

	s.TogglePause()
	time.Sleep(5 * time.Millisecond)
	before := s.GhostTicks()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, s.GhostTicks())

	s.TogglePause()
	require.Eventually(t, func() bool {
		return s.GhostTicks() > before
	}, 2*time.Second, time.Millisecond)
}

type recordPacer struct {
	mu    sync.Mutex
	calls [][2]int
}

func (p *recordPacer) GhostPeriod(base time.Duration, eaten, total int) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, [2]int{eaten, total})
	return base
}

func (p *recordPacer) last() [2]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.calls) == 0 {
		return [2]int{-1, -1}
	}
	return p.calls[len(p.calls)-1]
}

func TestSessionPacerSeesProgress(t *testing.T) {
	pacer := &recordPacer{}
	s := startSession(t, mustParse(t,
		"########",
		"#P...#G#",
		"########",
	), Options{GhostDelay: time.Millisecond, GhostPeriod: time.Millisecond, Pacer: pacer})

	require.Eventually(t, func() bool {
		return pacer.last() == [2]int{0, 3}
	}, 2*time.Second, time.Millisecond)

	s.Tick(core.ActionRight)
	s.Tick(core.ActionRight)

	require.Eventually(t, func() bool {
		return pacer.last() == [2]int{2, 3}
	}, 2*time.Second, time.Millisecond)
}

func TestSessionRunWins(t *testing.T) {
	s := NewSession(mustParse(t,
		"####",
		"#P.#",
		"####",
	), frozen)

	inputs := make(chan core.Action, 1)
	inputs <- core.ActionRight
	d := newRecordDisplay()

	state, err := s.Run(context.Background(), inputs, d, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, "You win! Score: 1/1", d.lines[4])
	assert.GreaterOrEqual(t, d.clears, 2)
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	s := NewSession(mustParse(t,
		"#####",
		"#P#.#",
		"#####",
	), Options{GhostDelay: time.Millisecond, GhostPeriod: time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	state, err := s.Run(ctx, nil, newRecordDisplay(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, StateAborted, state)
}

func TestSessionRunClosedInputs(t *testing.T) {
	s := NewSession(mustParse(t,
		"#####",
		"#P#.#",
		"#####",
	), frozen)

	inputs := make(chan core.Action)
	close(inputs)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	state, err := s.Run(ctx, inputs, newRecordDisplay(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, StateAborted, state)
}

func TestSessionRunAfterStop(t *testing.T) {
	s := NewSession(mustParse(t,
		"####",
		"#P.#",
		"####",
	), frozen)
	require.NoError(t, s.Stop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	state, err := s.Run(ctx, nil, newRecordDisplay(), time.Millisecond)
	assert.ErrorIs(t, err, ErrSessionStopped)
	assert.Equal(t, StateLoading, state)
	assert.NoError(t, ctx.Err(), "Run waited for the context instead of returning")
}

func TestSessionRunAfterFinish(t *testing.T) {
	s := NewSession(mustParse(t,
		"####",
		"#P.#",
		"####",
	), frozen)

	inputs := make(chan core.Action, 1)
	inputs <- core.ActionRight
	state, err := s.Run(context.Background(), inputs, newRecordDisplay(), time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, StateWon, state)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	state, err = s.Run(ctx, nil, newRecordDisplay(), time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.NoError(t, ctx.Err())
}

func TestStateTerminal(t *testing.T) {
	tests := []struct {
		state    State
		terminal bool
		name     string
	}{
		{StateLoading, false, "loading"},
		{StateRunning, false, "running"},
		{StateWon, true, "won"},
		{StateLost, true, "lost"},
		{StateAborted, true, "aborted"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.terminal, tc.state.Terminal(), tc.name)
		assert.Equal(t, tc.name, tc.state.String())
	}
}
