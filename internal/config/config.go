// Package config provides YAML-based game configuration loading, environment
// overrides and difficulty management for the maze game.
package config

// PacmanConfig contains all configuration for a game of Pac-Man.
type PacmanConfig struct {
	Maze       MazeConfig       `yaml:"maze"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Ghosts     GhostConfig      `yaml:"ghosts"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeConfig selects the maze to play.
type MazeConfig struct {
	Path string `yaml:"path"` // file path, or the name of a built-in maze
}

// GameplayConfig defines player-facing rules and loop speed.
type GameplayConfig struct {
	Lives    int   `yaml:"lives"`
	TickRate int   `yaml:"tick_rate"` // main loop ticks per second
	Seed     int64 `yaml:"seed"`      // 0 picks a time-based seed
}

// GhostConfig defines ghost movement timing.
type GhostConfig struct {
	InitialDelayMs  int `yaml:"initial_delay_ms"`
	PeriodMs        int `yaml:"period_ms"`
	MaxMoveAttempts int `yaml:"max_move_attempts"`
}

// DisplayConfig selects the frontend and its look.
type DisplayConfig struct {
	Theme string `yaml:"theme"` // "ascii" or "unicode"
	Plain bool   `yaml:"plain"` // raw console frontend instead of the TUI
}

// LogConfig controls logging. An empty File discards log output during play.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DifficultyConfig defines how ghosts speed up as the maze is cleared.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "pellets" or "none"
	MaxAt int    `yaml:"max_at"` // percent of pellets eaten at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // ghost speed added at max difficulty
	MinPeriodMs     int     `yaml:"min_period_ms"`    // ghosts never move faster than this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
