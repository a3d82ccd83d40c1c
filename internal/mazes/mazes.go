// Package mazes embeds the built-in mazes and registers them on import.
package mazes

import (
	_ "embed"

	"github.com/vovakirdan/tui-pacman/internal/registry"
)

//go:embed maze01.txt
var maze01 []byte

//go:embed maze02.txt
var maze02 []byte

func init() {
	registry.Register("maze01.txt", "Classic", maze01)
	registry.Register("maze02.txt", "Compact", maze02)
}
