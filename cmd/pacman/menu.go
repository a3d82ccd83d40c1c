package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a built-in maze from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a built-in maze, Enter to play it.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play maze
  Q            - Quit

Examples:
  pacman menu
  pacman menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The menu is a Bubble Tea screen; so are the games it starts
	cfg.Display.Plain = false

	logger, closeLog, err := playLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	th, err := theme.ByName(cfg.Display.Theme)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := runtimeConfig(cfg)
	last := filepath.Base(cfg.Maze.Path)
	played := 0

	// Menu loop
	for ctx.Err() == nil {
		result, err := tui.RunMenu(th, rc, last)
		if err != nil {
			return err
		}
		if result.Quit {
			break
		}
		rc = result.Config
		last = result.Maze

		layout, err := registry.Open(result.Maze)
		if err != nil {
			return err
		}
		logger.Info("maze selected", "maze", result.Maze)

		if _, err := playSession(ctx, cfg, layout, th, rc, logger); err != nil {
			return err
		}
		played++
	}

	fmt.Printf("Thanks for playing! Games played: %d\n", played)
	return nil
}
