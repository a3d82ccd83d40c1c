package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Direction is a single-step movement request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// moveDirections is the set ghosts sample from.
var moveDirections = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// RandomDirection returns one of the four movement directions, uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return moveDirections[rng.Intn(len(moveDirections))]
}

// DirectionFromAction maps an input action to a direction.
// Non-movement actions map to DirNone.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
