package pacman

// Glyph identifies what occupies a cell. How a glyph looks is up to the Display.
type Glyph int

const (
	GlyphWall Glyph = iota
	GlyphFloor
	GlyphPlayer
	GlyphGhost
	GlyphPellet
	GlyphMegaPellet
)

// Glyphs lists every glyph id, in paint order for one cell.
var Glyphs = []Glyph{GlyphWall, GlyphFloor, GlyphPellet, GlyphMegaPellet, GlyphGhost, GlyphPlayer}

func (g Glyph) String() string {
	switch g {
	case GlyphWall:
		return "wall"
	case GlyphFloor:
		return "floor"
	case GlyphPlayer:
		return "player"
	case GlyphGhost:
		return "ghost"
	case GlyphPellet:
		return "pellet"
	case GlyphMegaPellet:
		return "mega-pellet"
	default:
		return "unknown"
	}
}

// Display receives paint commands from Game.Render.
type Display interface {
	// Clear wipes the whole display.
	Clear()

	// Paint draws glyph g at maze position p.
	Paint(p Position, g Glyph)

	// Print writes a line of status text at the given maze row.
	// Rows at or below the maze height are below the grid.
	Print(row int, text string)
}

// Flusher is implemented by displays that buffer output.
type Flusher interface {
	Flush() error
}
