// pacman is a terminal maze game: eat every pellet, dodge the ghosts.
//
// Usage:
//
//	pacman                     - Play the default maze
//	pacman play                - Same as above
//	pacman menu                - Pick a built-in maze from a menu
//	pacman list                - List built-in mazes
//	pacman validate <file>...  - Check maze files for errors
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pacman, ./configs)
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import built-in mazes to register them
	_ "github.com/vovakirdan/tui-pacman/internal/mazes"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A Pac-Man style maze game for the terminal.

Eat every pellet to win. A ghost on your cell costs a life; lose them all
and the game is over.

Available commands:
  play      - Play a maze (default)
  menu      - Pick a built-in maze interactively
  list      - Show built-in mazes
  validate  - Check maze files

Examples:
  pacman
  pacman --maze maze02.txt --theme ascii
  pacman play --difficulty hard --lives 3
  pacman validate ./my-maze.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
}
