package pacman

// Tile is the static terrain of one maze cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileSpace
)

// tileFor maps a layout character to its terrain. Only '#' is a wall;
// entity markers and unknown characters are open floor.
func tileFor(c byte) Tile {
	if c == markWall {
		return TileWall
	}
	return TileSpace
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileSpace:
		return "space"
	default:
		return "unknown"
	}
}
