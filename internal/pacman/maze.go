package pacman

// Maze is the static tile grid. It is never mutated after Parse returns, so a
// single *Maze can be read from any number of goroutines without locking.
type Maze struct {
	tiles  [][]Tile
	height int
	width  int
}

// newMaze takes ownership of rows. Callers guarantee a non-empty rectangular grid.
func newMaze(rows [][]Tile) *Maze {
	return &Maze{
		tiles:  rows,
		height: len(rows),
		width:  len(rows[0]),
	}
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// InBounds reports whether (row, col) lies inside the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Tile returns the tile at (row, col). The second result is false for
// out-of-range coordinates.
func (m *Maze) Tile(row, col int) (Tile, bool) {
	if !m.InBounds(row, col) {
		return TileWall, false
	}
	return m.tiles[row][col], true
}

// IsWall reports whether p is a wall cell. Out-of-range cells count as walls.
func (m *Maze) IsWall(p Position) bool {
	t, ok := m.Tile(p.Row, p.Col)
	return !ok || t == TileWall
}

// ResolveMove returns where one step from cur in dir lands.
// Edges wrap around: leaving row 0 upward enters row height-1, and likewise
// for the other three edges. A move into a wall is rejected and cur is
// returned unchanged. DirNone always returns cur.
func (m *Maze) ResolveMove(cur Position, dir Direction) Position {
	next := cur

	switch dir {
	case DirUp:
		if next.Row == 0 {
			next.Row = m.height - 1
		} else {
			next.Row--
		}
	case DirDown:
		if next.Row == m.height-1 {
			next.Row = 0
		} else {
			next.Row++
		}
	case DirLeft:
		if next.Col == 0 {
			next.Col = m.width - 1
		} else {
			next.Col--
		}
	case DirRight:
		if next.Col == m.width-1 {
			next.Col = 0
		} else {
			next.Col++
		}
	default:
		return cur
	}

	if m.IsWall(next) {
		return cur
	}
	return next
}
