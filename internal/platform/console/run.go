package console

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

// Run plays a session on the raw terminal. It switches in to raw mode, starts
// the input reader and drives the session's own loop. The terminal is restored
// before the final state is returned.
func Run(ctx context.Context, session *pacman.Session, th theme.Theme, cfg core.RuntimeConfig, in *os.File, out io.Writer) (pacman.State, error) {
	raw, err := EnterRaw(in)
	if err != nil {
		return session.State(), err
	}
	defer raw.Restore() //nolint:errcheck // restored explicitly below

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The reader may stay blocked in Read after Run returns; it exits on the
	// next key or when the process ends.
	inputs := make(chan core.Action)
	go ReadInputs(ctx, in, inputs) //nolint:errcheck // read errors end input, not the game

	display := NewDisplay(out, th, true)
	display.HideCursor()

	state, runErr := session.Run(ctx, inputs, display, tickInterval(cfg.TickRate))

	display.ShowCursor()
	display.Print(session.Game().Height()+2, "")
	flushErr := display.Flush()

	if err := raw.Restore(); err != nil {
		return state, err
	}
	if runErr != nil {
		return state, runErr
	}
	return state, flushErr
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}
