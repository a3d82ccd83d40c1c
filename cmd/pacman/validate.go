package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/pacman"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check maze files",
	Long: `Parses each maze file and reports its size and contents, or why it
cannot be played. Exits non-zero if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		layout, err := pacman.LoadFile(path)
		if err != nil {
			failed++
			logger.Debug("invalid maze", "file", path, "error", err)
			fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
			continue
		}

		fmt.Fprintf(out, "ok    %s  %dx%d, %d gums, %d ghosts\n",
			path, layout.Maze.Width(), layout.Maze.Height(), len(layout.Gums), len(layout.Ghosts))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d mazes invalid", failed, len(args))
	}
	return nil
}
