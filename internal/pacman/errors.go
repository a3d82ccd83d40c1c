package pacman

import (
	"errors"
	"fmt"
)

// Layout validation errors.
var (
	ErrNoPlayerFound   = errors.New("no player found")
	ErrMultiplePlayers = errors.New("more than one player start")
	ErrEmptyMaze       = errors.New("maze is empty")
)

// ErrSessionStopped is returned by Session.Run when Stop was called before
// the session ever started.
var ErrSessionStopped = errors.New("session stopped before start")

// RaggedRowError is returned when a maze row is not as wide as the first row.
type RaggedRowError struct {
	Row   int // 0-indexed row number
	Width int // width of the offending row
	Want  int // width of row 0
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d has width %d, expected %d", e.Row, e.Width, e.Want)
}

// LoadError wraps a failure to read a maze file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load maze %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
