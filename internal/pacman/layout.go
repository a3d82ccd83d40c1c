package pacman

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Layout markers.
const (
	markWall   = '#'
	markPlayer = 'P'
	markGhost  = 'G'
	markPellet = '.'
	markMega   = 'X'
)

// Layout is a parsed maze file: the static grid plus the initial entity positions.
type Layout struct {
	Maze   *Maze
	Player Position
	Ghosts []Position
	Gums   []Gum
}

// LoadFile reads and parses the maze file at path.
// Read failures are returned as *LoadError.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	layout, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Parse reads a maze from line-oriented text. One line per row, one byte per
// column. '#' is a wall and every other byte is floor; 'P', 'G', '.' and 'X'
// additionally record the player start, a ghost start, a pellet and a mega
// pellet. Trailing blank lines are ignored. Rows must all be as wide as row 0.
func Parse(r io.Reader) (*Layout, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}

	width := len(lines[0])
	layout := &Layout{}
	playerFound := false
	rows := make([][]Tile, len(lines))

	for row, line := range lines {
		if len(line) != width {
			return nil, &RaggedRowError{Row: row, Width: len(line), Want: width}
		}

		tiles := make([]Tile, width)
		for col := 0; col < width; col++ {
			c := line[col]
			tiles[col] = tileFor(c)
			pos := Position{Row: row, Col: col}

			switch c {
			case markPlayer:
				if playerFound {
					return nil, fmt.Errorf("%w: second start at %s", ErrMultiplePlayers, pos)
				}
				layout.Player = pos
				playerFound = true
			case markGhost:
				layout.Ghosts = append(layout.Ghosts, pos)
			case markPellet:
				layout.Gums = append(layout.Gums, Gum{Pos: pos})
			case markMega:
				layout.Gums = append(layout.Gums, Gum{Pos: pos, Mega: true})
			}
		}
		rows[row] = tiles
	}

	if !playerFound {
		return nil, ErrNoPlayerFound
	}

	layout.Maze = newMaze(rows)
	return layout, nil
}
