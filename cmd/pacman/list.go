package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in mazes",
	Long:  `Shows the mazes compiled into the binary. Any of them can be passed to --maze.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	mazes := registry.List()
	out := cmd.OutOrStdout()

	if len(mazes) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return
	}

	fmt.Fprintln(out, "Built-in mazes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, m := range mazes {
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-8s  %-7s  %-6s  %s\n", maxNameLen, "Name", "Title", "Size", "Gums", "Ghosts")
	fmt.Fprintf(out, "  %-*s  %-8s  %-7s  %-6s  %s\n", maxNameLen, "----", "-----", "----", "----", "------")

	// Print mazes
	for _, m := range mazes {
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Fprintf(out, "  %-*s  %-8s  %-7s  %-6d  %d\n", maxNameLen, m.Name, m.Title, size, m.Gums, m.Ghosts)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pacman --maze <name>' to play one.")
}
