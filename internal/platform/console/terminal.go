// Package console is the plain terminal frontend: raw keyboard input read on
// its own goroutine and ANSI escape output, with no UI framework in between.
package console

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on something that is
// not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// RawMode holds a terminal in raw mode until Restore is called.
type RawMode struct {
	once    sync.Once
	restore func() error
	err     error
}

// EnterRaw switches f into raw mode: no echo, no line buffering, keys
// delivered byte by byte. Call Restore, usually deferred, to undo it.
func EnterRaw(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("raw mode on %s: %w", f.Name(), ErrNotTerminal)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode on %s: %w", f.Name(), err)
	}

	return newRawMode(func() error {
		return term.Restore(fd, state)
	}), nil
}

func newRawMode(restore func() error) *RawMode {
	return &RawMode{restore: restore}
}

// Restore puts the terminal back the way EnterRaw found it. Only the first
// call does anything; later calls return the first result.
func (r *RawMode) Restore() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		if err := r.restore(); err != nil {
			r.err = fmt.Errorf("restore terminal: %w", err)
		}
	})
	return r.err
}

// Size returns the terminal size of f, or the fallback when it is unknown.
func Size(f *os.File, fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(f.Fd())); err == nil {
		return w, h
	}
	return fallbackW, fallbackH
}
