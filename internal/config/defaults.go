package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Maze: MazeConfig{
			Path: "maze01.txt",
		},
		Gameplay: GameplayConfig{
			Lives:    1,
			TickRate: 30,
		},
		Ghosts: GhostConfig{
			InitialDelayMs:  50,
			PeriodMs:        200,
			MaxMoveAttempts: 32,
		},
		Display: DisplayConfig{
			Theme: "unicode",
		},
		Log: LogConfig{
			Level: "info",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "pellets",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				MinPeriodMs:     60,
			},
		},
	}
}
