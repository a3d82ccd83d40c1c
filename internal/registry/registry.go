// Package registry provides a global registry of built-in mazes.
// Maze packages register themselves in init() functions, allowing the CLI
// to list and load them without hardcoded dependencies.
package registry

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/pacman"
)

// MazeInfo contains metadata about a registered maze.
type MazeInfo struct {
	Name   string
	Title  string
	Width  int
	Height int
	Gums   int
	Ghosts int
}

type entry struct {
	info MazeInfo
	data []byte
}

var (
	mazes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a maze to the registry.
// Typically called from an init() function.
// Panics if the name is taken or the maze does not parse.
func Register(name, title string, data []byte) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := mazes[name]; exists {
		panic(fmt.Sprintf("registry: maze %q already registered", name))
	}

	// Parse once up front so a broken built-in fails at startup
	l, err := pacman.Parse(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("registry: maze %q: %v", name, err))
	}

	mazes[name] = entry{
		info: MazeInfo{
			Name:   name,
			Title:  title,
			Width:  l.Maze.Width(),
			Height: l.Maze.Height(),
			Gums:   len(l.Gums),
			Ghosts: len(l.Ghosts),
		},
		data: data,
	}
}

// List returns information about all registered mazes, sorted by name.
func List() []MazeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MazeInfo, 0, len(mazes))
	for _, e := range mazes {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open parses a fresh layout for the named maze.
// Returns an error if the name is not registered.
func Open(name string) (*pacman.Layout, error) {
	mu.RLock()
	e, ok := mazes[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown maze %q", name)
	}
	return pacman.Parse(bytes.NewReader(e.data))
}

// Exists checks if a maze with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := mazes[name]
	return ok
}
