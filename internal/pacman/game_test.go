package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordDisplay keeps the last glyph painted on every cell and every printed line.
type recordDisplay struct {
	cells  map[Position]Glyph
	lines  map[int]string
	clears int
}

func newRecordDisplay() *recordDisplay {
	return &recordDisplay{
		cells: make(map[Position]Glyph),
		lines: make(map[int]string),
	}
}

func (d *recordDisplay) Clear() {
	d.clears++
	clear(d.cells)
	clear(d.lines)
}

func (d *recordDisplay) Paint(p Position, g Glyph) {
	d.cells[p] = g
}

func (d *recordDisplay) Print(row int, text string) {
	d.lines[row] = text
}

func TestEatLastPellet(t *testing.T) {
	g := NewGame(mustParse(t,
		"###",
		"#P.",
		"###",
	), GameOptions{})

	require.Equal(t, 1, g.MaxGums())
	require.Equal(t, 1, g.RemainingGums())

	assert.True(t, g.MovePlayer(DirRight))
	assert.Equal(t, Pos(1, 2), g.Player())
	assert.Equal(t, 0, g.RemainingGums())
	assert.Equal(t, 1, g.Score())
	assert.Empty(t, g.Gums())
}

func TestPelletsDecreaseByOne(t *testing.T) {
	g := NewGame(mustParse(t,
		"#######",
		"#P.X. #",
		"#######",
	), GameOptions{})

	moves := []Direction{DirRight, DirRight, DirLeft, DirLeft, DirRight, DirRight, DirRight, DirRight, DirUp}
	prev := g.RemainingGums()
	for i, dir := range moves {
		ate := g.MovePlayer(dir)
		cur := g.RemainingGums()
		if ate {
			assert.Equal(t, 1, prev-cur, "move %d ate a gum", i)
		} else {
			assert.Equal(t, 0, prev-cur, "move %d ate nothing", i)
		}
		assert.Equal(t, g.MaxGums()-cur, g.Score())
		assert.False(t, g.Maze().IsWall(g.Player()))
		prev = cur
	}
	assert.Equal(t, 0, g.RemainingGums())
	assert.Equal(t, 3, g.MaxGums())
}

func TestMovePlayerIntoWall(t *testing.T) {
	g := NewGame(mustParse(t,
		"###",
		"#P#",
		"#.#",
	), GameOptions{})

	assert.False(t, g.MovePlayer(DirLeft))
	assert.Equal(t, Pos(1, 1), g.Player())
	assert.False(t, g.MovePlayer(DirNone))
	assert.Equal(t, Pos(1, 1), g.Player())
	assert.True(t, g.MovePlayer(DirDown))
}

func TestLivesNeverGoNegative(t *testing.T) {
	g := NewGame(mustParse(t,
		"#####",
		"#PG.#",
		"#####",
	), GameOptions{})
	require.Equal(t, DefaultLives, g.Lives())

	g.MovePlayer(DirRight)
	for range 5 {
		assert.True(t, g.ProcessCollisions())
		assert.Equal(t, 0, g.Lives())
	}
	assert.Equal(t, Pos(1, 2), g.Player(), "no respawn once out of lives")
}

func TestCollisionRespawnsWithLivesLeft(t *testing.T) {
	g := NewGame(mustParse(t,
		"#####",
		"#PG.#",
		"#####",
	), GameOptions{Lives: 3})

	g.MovePlayer(DirRight)
	assert.True(t, g.ProcessCollisions())
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, Pos(1, 1), g.Player())

	assert.False(t, g.ProcessCollisions())
	assert.Equal(t, 2, g.Lives())
}

func TestGameSharesGhosts(t *testing.T) {
	l := mustParse(t,
		"#####",
		"#P G#",
		"#   #",
		"#####",
	)
	g := NewGame(l, GameOptions{Seed: 5})

	holder := g.Ghosts()
	holder.MoveAll(g.Maze())
	assert.Equal(t, holder.Snapshot(), g.Ghosts().Snapshot())
	assert.Same(t, holder, g.Ghosts())
	assert.Equal(t, 0, g.Berserk())
}

func TestGameRender(t *testing.T) {
	g := NewGame(mustParse(t,
		"#####",
		"#P.G#",
		"#X  #",
		"#####",
	), GameOptions{Lives: 2})
	d := newRecordDisplay()

	g.Render(d)

	assert.Equal(t, 1, d.clears)
	assert.Equal(t, GlyphWall, d.cells[Pos(0, 0)])
	assert.Equal(t, GlyphFloor, d.cells[Pos(2, 2)])
	assert.Equal(t, GlyphPlayer, d.cells[Pos(1, 1)])
	assert.Equal(t, GlyphPellet, d.cells[Pos(1, 2)])
	assert.Equal(t, GlyphGhost, d.cells[Pos(1, 3)])
	assert.Equal(t, GlyphMegaPellet, d.cells[Pos(2, 1)])
	assert.Len(t, d.cells, 4*5)
	assert.Equal(t, "Score: 0  Lives: 2", d.lines[4])

	g.MovePlayer(DirRight)
	g.Render(d)
	assert.Equal(t, GlyphPlayer, d.cells[Pos(1, 2)])
	assert.Equal(t, GlyphFloor, d.cells[Pos(1, 1)])
	assert.Equal(t, "Score: 1  Lives: 2", d.lines[4])
}
