package pacman

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Ghost timing defaults.
const (
	DefaultGhostDelay  = 50 * time.Millisecond
	DefaultGhostPeriod = 200 * time.Millisecond
)

// State is the lifecycle stage of a session.
type State int32

const (
	StateLoading State = iota
	StateRunning
	StateWon
	StateLost
	StateAborted
)

// Terminal reports whether the state is final. Terminal states never change.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateAborted
}

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Pacer picks the delay before the next ghost move. eaten and total are the
// gum counts at the time of the call.
type Pacer interface {
	GhostPeriod(base time.Duration, eaten, total int) time.Duration
}

// Options configures a Session.
type Options struct {
	Game        GameOptions
	GhostDelay  time.Duration // before the first ghost move; <= 0 selects DefaultGhostDelay
	GhostPeriod time.Duration // between ghost moves; <= 0 selects DefaultGhostPeriod
	Pacer       Pacer         // optional; nil keeps GhostPeriod constant
	Logger      *log.Logger   // optional; nil discards
}

// Session runs one game from start to a terminal state. The caller's loop
// drives Tick and Render; Start launches the ghost mover in the background
// and Stop cancels and joins it.
type Session struct {
	id     string
	game   *Game
	opts   Options
	logger *log.Logger

	state      atomic.Int32
	paused     atomic.Bool
	eaten      atomic.Int64
	ghostTicks atomic.Int64
	ticks      uint64

	cancel    context.CancelFunc
	group     *errgroup.Group
	startOnce sync.Once
	stopOnce  sync.Once
	stopErr   error
}

// NewSession creates a session in StateLoading for the given layout.
func NewSession(l *Layout, opts Options) *Session {
	if opts.GhostDelay <= 0 {
		opts.GhostDelay = DefaultGhostDelay
	}
	if opts.GhostPeriod <= 0 {
		opts.GhostPeriod = DefaultGhostPeriod
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	s := &Session{
		id:     id,
		game:   NewGame(l, opts.Game),
		opts:   opts,
		logger: logger.With("session", id[:8]),
	}
	s.state.Store(int32(StateLoading))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Game returns the underlying game. Only the goroutine driving Tick may
// call its mutating methods.
func (s *Session) Game() *Game {
	return s.game
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Paused reports whether play is paused.
func (s *Session) Paused() bool {
	return s.paused.Load()
}

// Ticks returns how many ticks were processed while running.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// GhostTicks returns how many times the ghost mover has woken up and moved.
func (s *Session) GhostTicks() int64 {
	return s.ghostTicks.Load()
}

// Start switches to StateRunning and launches the ghost mover. It has no
// effect after the first call or after Stop.
func (s *Session) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		group, gctx := errgroup.WithContext(ctx)
		s.cancel = cancel
		s.group = group

		s.state.Store(int32(StateRunning))
		group.Go(func() error {
			return s.runGhosts(gctx)
		})

		s.logger.Info("session started",
			"maze", fmt.Sprintf("%dx%d", s.game.Width(), s.game.Height()),
			"ghosts", s.game.Ghosts().Len(),
			"gums", s.game.MaxGums(),
			"lives", s.game.Lives(),
		)
	})
}

// Stop cancels the ghost mover and waits for it to exit. Safe to call more
// than once and from deferred cleanup.
func (s *Session) Stop() error {
	s.stopOnce.Do(func() {
		// A session stopped before it started must never start later.
		s.startOnce.Do(func() {})

		if s.cancel == nil {
			return
		}
		s.cancel()
		s.stopErr = s.group.Wait()
		s.logger.Info("session stopped",
			"state", s.State(),
			"score", s.game.Score(),
			"ticks", s.ticks,
			"ghost_ticks", s.ghostTicks.Load(),
		)
	})
	return s.stopErr
}

// runGhosts moves the ghosts after GhostDelay and then once per period until
// the context ends or the session reaches a terminal state.
func (s *Session) runGhosts(ctx context.Context) error {
	timer := time.NewTimer(s.opts.GhostDelay)
	defer timer.Stop()

	maze := s.game.Maze()
	ghosts := s.game.Ghosts()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if s.State().Terminal() {
			return nil
		}
		if !s.paused.Load() {
			moved := ghosts.MoveAll(maze)
			s.ghostTicks.Add(1)
			s.logger.Debug("ghosts moved", "moved", moved)
		}
		timer.Reset(s.ghostPeriod())
	}
}

func (s *Session) ghostPeriod() time.Duration {
	base := s.opts.GhostPeriod
	if s.opts.Pacer == nil {
		return base
	}
	p := s.opts.Pacer.GhostPeriod(base, int(s.eaten.Load()), s.game.MaxGums())
	if p <= 0 {
		return base
	}
	return p
}

// finish moves a running session into a terminal state.
func (s *Session) finish(to State) {
	if s.state.CompareAndSwap(int32(StateRunning), int32(to)) {
		s.logger.Info("session finished",
			"state", to,
			"score", s.game.Score(),
			"lives", s.game.Lives(),
		)
	}
}

// TogglePause pauses or resumes play. Ignored unless running.
func (s *Session) TogglePause() {
	if s.State() != StateRunning {
		return
	}
	paused := !s.paused.Load()
	s.paused.Store(paused)
	s.logger.Debug("pause toggled", "paused", paused)
}

// Tick runs one main-loop step for the given input: escape check, player
// move, collision check, then win and loss checks, in that order.
// It returns the state after the step.
func (s *Session) Tick(a core.Action) State {
	if s.State() != StateRunning {
		return s.State()
	}
	s.ticks++

	switch a {
	case core.ActionEscape:
		s.finish(StateAborted)
		return s.State()
	case core.ActionPause:
		s.TogglePause()
		return s.State()
	}
	if s.paused.Load() {
		return s.State()
	}

	if s.game.MovePlayer(DirectionFromAction(a)) {
		s.eaten.Store(int64(s.game.Score()))
		s.logger.Debug("gum eaten", "pos", s.game.Player(), "remaining", s.game.RemainingGums())
	}
	if s.game.ProcessCollisions() {
		s.logger.Info("player caught", "pos", s.game.Player(), "lives", s.game.Lives())
	}

	switch {
	case s.game.RemainingGums() == 0:
		s.finish(StateWon)
	case s.game.Lives() == 0:
		s.finish(StateLost)
	}
	return s.State()
}

// Summary returns the closing message for a terminal state, or "".
func (s *Session) Summary() string {
	score := fmt.Sprintf("%d/%d", s.game.Score(), s.game.MaxGums())
	switch s.State() {
	case StateWon:
		return "You win! Score: " + score
	case StateLost:
		return "Game over! Score: " + score
	case StateAborted:
		return "Game aborted. Score: " + score
	default:
		return ""
	}
}

// Render paints the game plus a status line for pause and terminal states.
func (s *Session) Render(d Display) {
	s.game.Render(d)

	switch {
	case s.State().Terminal():
		d.Print(s.game.Height()+1, s.Summary())
	case s.paused.Load():
		d.Print(s.game.Height()+1, "Paused - press P to continue")
	}
}

// Run is a complete main loop for frontends without their own event loop.
// Every interval it renders, takes at most one pending action from inputs
// without blocking (ActionNone when none is waiting), and ticks. It returns
// once the session reaches a terminal state or ctx ends, after a final render
// and after the ghost mover has been joined. A session that is already
// finished returns its state at once; one stopped before it started returns
// ErrSessionStopped.
func (s *Session) Run(ctx context.Context, inputs <-chan core.Action, d Display, interval time.Duration) (State, error) {
	s.Start(ctx)
	switch state := s.State(); {
	case state.Terminal():
		return state, s.Stop()
	case state != StateRunning:
		return state, ErrSessionStopped
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

loop:
	for {
		s.render(d)

		action := core.ActionNone
		select {
		case in, ok := <-inputs:
			if ok {
				action = in
			} else {
				inputs = nil
			}
		default:
		}

		if s.Tick(action).Terminal() {
			break loop
		}

		select {
		case <-ctx.Done():
			s.finish(StateAborted)
			break loop
		case <-ticker.C:
		}
	}

	s.render(d)
	return s.State(), s.Stop()
}

func (s *Session) render(d Display) {
	s.Render(d)
	if f, ok := d.(Flusher); ok {
		if err := f.Flush(); err != nil {
			s.logger.Warn("display flush failed", "error", err)
		}
	}
}
