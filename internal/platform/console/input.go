package console

import (
	"context"
	"errors"
	"io"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Key bytes
const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// Decode turns one chunk of raw terminal input into actions.
// Arrow keys arrive as ESC [ A..D (or ESC O A..D), possibly with modifier
// parameters such as ESC [ 1 ; 5 A. Other escape sequences are dropped whole.
// An ESC with nothing after it in the same chunk is the Escape key.
// Unknown bytes are dropped.
func Decode(buf []byte) []core.Action {
	var actions []core.Action

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == keyEsc {
			if n, a, ok := escapeSequence(buf[i:]); ok {
				if a != core.ActionNone {
					actions = append(actions, a)
				}
				i += n - 1
				continue
			}
			actions = append(actions, core.ActionEscape)
			continue
		}

		if a := letter(b); a != core.ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// escapeSequence parses the sequence starting at buf[0] == ESC. It returns
// the number of bytes consumed and the arrow action, if any. ok is false for
// a lone ESC. A CSI sequence cut off by the end of the chunk consumes the
// rest of the chunk.
func escapeSequence(buf []byte) (n int, a core.Action, ok bool) {
	if len(buf) < 3 {
		return 0, core.ActionNone, false
	}

	switch buf[1] {
	case 'O':
		return 3, arrow(buf[2]), true
	case '[':
		// Parameter and intermediate bytes, then one final byte
		j := 2
		for j < len(buf) && buf[j] >= 0x20 && buf[j] <= 0x3f {
			j++
		}
		if j < len(buf) && buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j + 1, arrow(buf[j]), true
		}
		return j, core.ActionNone, true
	}
	return 0, core.ActionNone, false
}

func arrow(b byte) core.Action {
	switch b {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}

func letter(b byte) core.Action {
	switch b {
	case 'w', 'W', 'k', 'K':
		return core.ActionUp
	case 's', 'S', 'j', 'J':
		return core.ActionDown
	case 'a', 'A', 'h', 'H':
		return core.ActionLeft
	case 'd', 'D', 'l', 'L':
		return core.ActionRight
	case 'p', 'P':
		return core.ActionPause
	case 'q', 'Q', keyCtrlC:
		return core.ActionEscape
	}
	return core.ActionNone
}

// ReadInputs reads r until EOF, an error or ctx ends, sending every decoded
// action on out. A blocked Read cannot be interrupted: after cancellation the
// function returns on the next read. EOF returns nil.
func ReadInputs(ctx context.Context, r io.Reader, out chan<- core.Action) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, a := range Decode(buf[:n]) {
			select {
			case out <- a:
			case <-ctx.Done():
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
