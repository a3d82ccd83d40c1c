package pacman

import (
	"math/rand"
	"sync"
)

// DefaultMaxMoveAttempts bounds how many random directions a ghost samples
// per move before it gives up and stays in place.
const DefaultMaxMoveAttempts = 32

// Ghosts is the set of ghost positions shared between the main loop and the
// ghost mover. One mutex guards the whole slice and the RNG; callers only get
// whole operations, never the slice itself. Share it by pointer: every holder
// of the same *Ghosts sees the same ghosts.
type Ghosts struct {
	mu          sync.Mutex
	list        []Position
	rng         *rand.Rand
	maxAttempts int
}

// NewGhosts creates a ghost set from the initial positions. maxAttempts <= 0
// selects DefaultMaxMoveAttempts.
func NewGhosts(initial []Position, seed int64, maxAttempts int) *Ghosts {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxMoveAttempts
	}
	list := make([]Position, len(initial))
	copy(list, initial)

	return &Ghosts{
		list:        list,
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// MoveAll moves every ghost one step in a random direction. A ghost keeps
// drawing fresh directions until the maze lets it leave its cell; after
// maxAttempts blocked draws it stays where it is.
// It returns the number of ghosts that moved.
func (g *Ghosts) MoveAll(m *Maze) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	moved := 0
	for i, cur := range g.list {
		for range g.maxAttempts {
			next := m.ResolveMove(cur, RandomDirection(g.rng))
			if next != cur {
				g.list[i] = next
				moved++
				break
			}
		}
	}
	return moved
}

// CheckCollision reports whether any ghost occupies p.
func (g *Ghosts) CheckCollision(p Position) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, ghost := range g.list {
		if ghost == p {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current positions, safe to use after the
// lock is released.
func (g *Ghosts) Snapshot() []Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Position, len(g.list))
	copy(out, g.list)
	return out
}

// Len returns the number of ghosts.
func (g *Ghosts) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.list)
}
