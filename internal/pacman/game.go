package pacman

import "fmt"

// DefaultLives is the number of lives a game starts with.
const DefaultLives = 1

// Gum is a collectible pellet. Mega gums look different but score the same.
type Gum struct {
	Pos  Position
	Mega bool
}

// GameOptions tunes a new Game.
type GameOptions struct {
	Lives           int   // <= 0 selects DefaultLives
	Seed            int64 // ghost RNG seed
	MaxMoveAttempts int   // <= 0 selects DefaultMaxMoveAttempts
}

// Game is the aggregate state of one play-through.
//
// The player, gums and lives belong to the main loop and are not locked.
// The maze is immutable and the ghosts guard themselves, so both may be
// handed to the ghost mover goroutine.
type Game struct {
	maze   *Maze
	ghosts *Ghosts

	player Position
	start  Position
	gums   []Gum

	width   int
	height  int
	lives   int
	maxGums int
	berserk int // reserved for a power-pellet effect; never set
}

// NewGame builds a game from a parsed layout. The layout's slices are copied.
func NewGame(l *Layout, opts GameOptions) *Game {
	lives := opts.Lives
	if lives <= 0 {
		lives = DefaultLives
	}
	gums := make([]Gum, len(l.Gums))
	copy(gums, l.Gums)

	return &Game{
		maze:    l.Maze,
		ghosts:  NewGhosts(l.Ghosts, opts.Seed, opts.MaxMoveAttempts),
		player:  l.Player,
		start:   l.Player,
		gums:    gums,
		width:   l.Maze.Width(),
		height:  l.Maze.Height(),
		lives:   lives,
		maxGums: len(gums),
	}
}

// MovePlayer moves the player one step and eats the first gum found on the
// destination cell. It reports whether a gum was eaten.
func (g *Game) MovePlayer(dir Direction) bool {
	g.player = g.maze.ResolveMove(g.player, dir)

	for i, gum := range g.gums {
		if gum.Pos == g.player {
			g.gums = append(g.gums[:i], g.gums[i+1:]...)
			return true
		}
	}
	return false
}

// ProcessCollisions takes a life if a ghost shares the player's cell.
// Lives never drop below zero. A player with lives left respawns at the start
// cell. It reports whether a collision happened.
func (g *Game) ProcessCollisions() bool {
	if !g.ghosts.CheckCollision(g.player) {
		return false
	}
	if g.lives > 0 {
		g.lives--
	}
	if g.lives > 0 {
		g.player = g.start
	}
	return true
}

// Score is the number of gums eaten so far.
func (g *Game) Score() int {
	return g.maxGums - len(g.gums)
}

// RemainingGums returns how many gums are left.
func (g *Game) RemainingGums() int {
	return len(g.gums)
}

// MaxGums returns the gum count at load time.
func (g *Game) MaxGums() int {
	return g.maxGums
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Berserk returns the power-pellet counter. Always 0 for now.
func (g *Game) Berserk() int {
	return g.berserk
}

// Player returns the player position.
func (g *Game) Player() Position {
	return g.player
}

// Gums returns a copy of the remaining gums.
func (g *Game) Gums() []Gum {
	out := make([]Gum, len(g.gums))
	copy(out, g.gums)
	return out
}

// Maze returns the shared, read-only maze.
func (g *Game) Maze() *Maze {
	return g.maze
}

// Ghosts returns the shared ghost set.
func (g *Game) Ghosts() *Ghosts {
	return g.ghosts
}

// Width returns the maze width.
func (g *Game) Width() int {
	return g.width
}

// Height returns the maze height.
func (g *Game) Height() int {
	return g.height
}

// Render paints the whole game: terrain, gums, ghosts, player, then the
// score line just below the maze. Ghost positions are copied out under the
// lock first so painting never races the ghost mover.
func (g *Game) Render(d Display) {
	d.Clear()

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			p := Position{Row: row, Col: col}
			if g.maze.IsWall(p) {
				d.Paint(p, GlyphWall)
			} else {
				d.Paint(p, GlyphFloor)
			}
		}
	}

	for _, gum := range g.gums {
		if gum.Mega {
			d.Paint(gum.Pos, GlyphMegaPellet)
		} else {
			d.Paint(gum.Pos, GlyphPellet)
		}
	}

	for _, ghost := range g.ghosts.Snapshot() {
		d.Paint(ghost, GlyphGhost)
	}

	d.Paint(g.player, GlyphPlayer)

	d.Print(g.height, fmt.Sprintf("Score: %d  Lives: %d", g.Score(), g.lives))
}
