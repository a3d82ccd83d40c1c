package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/console"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagMaze       string
	flagGraphic    bool
	flagPlain      bool
	flagTheme      string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagLives      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start playing. The maze is read from --maze; when that file does not
exist and a built-in maze has the same name, the built-in one is used.

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 3 lives, slow ghosts that speed up as you clear the maze
  normal - Ghosts start at 30% extra speed and speed up
  hard   - Fast ghosts starting at 70% extra speed
  fixed  - Ghost speed never changes

Examples:
  pacman play
  pacman play --maze ./levels/big.txt
  pacman play --plain --theme ascii
  pacman play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMaze, "maze", "maze01.txt", "Maze file, or the name of a built-in maze")
	cmd.Flags().BoolVar(&flagGraphic, "graphic", false, "Graphical mode (not available; prints a warning)")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the raw console frontend instead of the TUI")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Theme: ascii, unicode")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	cmd.Flags().IntVar(&flagLives, "lives", 1, "Number of lives")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagGraphic {
		fmt.Fprintln(os.Stderr, "Warning: graphical mode is not available, using the terminal.")
	}

	logger, closeLog, err := playLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	layout, source, err := loadMaze(cfg.Maze.Path)
	if err != nil {
		return fmt.Errorf("problem loading maze: %w", err)
	}
	logger.Info("maze loaded", "source", source, "width", layout.Maze.Width(), "height", layout.Maze.Height())

	th, err := theme.ByName(cfg.Display.Theme)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := playSession(ctx, cfg, layout, th, runtimeConfig(cfg), logger)
	if err != nil {
		return err
	}

	fmt.Println(session.Summary())
	return nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(cfg config.PacmanConfig) core.RuntimeConfig {
	width, height := console.Size(os.Stdout, 80, 24)
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     cfg.Gameplay.Seed,
	}
}

// playSession runs one game on the configured frontend and returns the
// finished session.
func playSession(ctx context.Context, cfg config.PacmanConfig, layout *pacman.Layout, th theme.Theme, rc core.RuntimeConfig, logger *log.Logger) (*pacman.Session, error) {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	session := pacman.NewSession(layout, sessionOptions(cfg, rc.Seed, logger))

	var (
		state pacman.State
		err   error
	)
	if cfg.Display.Plain {
		state, err = console.Run(ctx, session, th, rc, os.Stdin, os.Stdout)
	} else {
		state, err = tui.Run(ctx, session, th, rc)
	}
	if err != nil {
		return session, err
	}

	logger.Info("game over", "state", state, "score", session.Game().Score(), "seed", rc.Seed)
	return session, nil
}

// loadConfig layers file config, environment and explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.PacmanConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if err := config.LoadEnvFile(""); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flags.Changed("maze") {
		cfg.Maze.Path = flagMaze
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = flagTheme
	}
	if flags.Changed("plain") {
		cfg.Display.Plain = flagPlain
	}
	if flags.Changed("seed") {
		cfg.Gameplay.Seed = flagSeed
	}
	if flags.Changed("fps") {
		cfg.Gameplay.TickRate = flagFPS
	}
	if flags.Changed("lives") {
		cfg.Gameplay.Lives = flagLives
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadMaze reads the maze at path. A missing file falls back to the built-in
// maze with the same base name. The second result names where it came from.
func loadMaze(path string) (*pacman.Layout, string, error) {
	layout, err := pacman.LoadFile(path)
	if err == nil {
		return layout, path, nil
	}

	name := filepath.Base(path)
	if errors.Is(err, fs.ErrNotExist) && registry.Exists(name) {
		layout, err := registry.Open(name)
		if err != nil {
			return nil, "", err
		}
		return layout, "builtin:" + name, nil
	}
	return nil, "", err
}

func sessionOptions(cfg config.PacmanConfig, seed int64, logger *log.Logger) pacman.Options {
	opts := pacman.Options{
		Game: pacman.GameOptions{
			Lives:           cfg.Gameplay.Lives,
			Seed:            seed,
			MaxMoveAttempts: cfg.Ghosts.MaxMoveAttempts,
		},
		GhostDelay:  time.Duration(cfg.Ghosts.InitialDelayMs) * time.Millisecond,
		GhostPeriod: time.Duration(cfg.Ghosts.PeriodMs) * time.Millisecond,
		Logger:      logger,
	}
	if cfg.Difficulty.Enabled {
		opts.Pacer = config.NewDifficultyManager(cfg.Difficulty)
	}
	return opts
}
