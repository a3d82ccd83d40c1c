package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded file.
const (
	EnvMaze       = "PACMAN_MAZE"
	EnvTheme      = "PACMAN_THEME"
	EnvLives      = "PACMAN_LIVES"
	EnvLogLevel   = "PACMAN_LOG_LEVEL"
	EnvDifficulty = "PACMAN_DIFFICULTY"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.pacman/config.yaml -> ./configs/pacman.yaml -> embedded default.
// Keys missing from the chosen file keep their default values.
func Load(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, err := decode(data); err == nil {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pacman.yaml")); err == nil {
		if loaded, err := decode(data); err == nil {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, err := decode(defaultPacmanYAML); err == nil {
		return loaded, nil
	}
	return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
}

// decode unmarshals data on top of the defaults.
func decode(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPacmanConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", filename)
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any PACMAN_* variables set in the environment.
func ApplyEnv(cfg *PacmanConfig) error {
	if v, ok := lookupEnv(EnvMaze); ok {
		cfg.Maze.Path = v
	}
	if v, ok := lookupEnv(EnvTheme); ok {
		cfg.Display.Theme = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookupEnv(EnvLives); ok {
		lives, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvLives, err)
		}
		cfg.Gameplay.Lives = lives
	}
	if v, ok := lookupEnv(EnvDifficulty); ok {
		preset, ok := ParsePreset(v)
		if !ok {
			return fmt.Errorf("%s: unknown difficulty %q", EnvDifficulty, v)
		}
		ApplyPreset(cfg, preset)
	}
	return nil
}

// lookupEnv returns a trimmed, non-empty environment value.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 3
		cfg.Ghosts.PeriodMs = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Ghosts.PeriodMs = 150
	}
}

// Validate checks that the numeric settings are usable.
func Validate(cfg PacmanConfig) error {
	switch {
	case cfg.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", cfg.Gameplay.Lives)
	case cfg.Gameplay.TickRate <= 0:
		return fmt.Errorf("gameplay.tick_rate must be positive, got %d", cfg.Gameplay.TickRate)
	case cfg.Ghosts.PeriodMs <= 0:
		return fmt.Errorf("ghosts.period_ms must be positive, got %d", cfg.Ghosts.PeriodMs)
	case cfg.Ghosts.InitialDelayMs < 0:
		return fmt.Errorf("ghosts.initial_delay_ms must not be negative, got %d", cfg.Ghosts.InitialDelayMs)
	case cfg.Difficulty.InitialLevel < 0 || cfg.Difficulty.InitialLevel > 1:
		return fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", cfg.Difficulty.InitialLevel)
	}
	return nil
}
