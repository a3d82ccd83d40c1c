// Package pacman implements the maze game engine: the tile grid, movement
// resolution with wrap-around edges, pellets, the shared ghost set and the
// session state machine that drives them.
//
// The engine never touches the terminal. Frontends feed it core.Action values
// and receive paint commands through the Display interface.
package pacman

import "fmt"

// Position is a cell coordinate in the maze. Row grows downward, Col to the right.
// Positions are plain values and compare with ==.
type Position struct {
	Row int
	Col int
}

// Pos is a convenience constructor for Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the per-axis sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Sub returns the per-axis difference p - o. Components may be negative.
func (p Position) Sub(o Position) Position {
	return Position{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
