package config

import (
	"math"
	"time"
)

// DifficultyManager calculates ghost pacing based on how much of the maze
// has been cleared. It satisfies pacman.Pacer.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for eaten out of
// total pellets.
func (d *DifficultyManager) Level(eaten, total int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "pellets" || total <= 0 {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 || maxAt > 100 {
		maxAt = 100
	}

	percent := 100 * float64(eaten) / float64(total)
	progress := clampF(percent/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GhostPeriod returns the delay between ghost moves. The base period is
// divided by 1 + level*speed_multiplier and never drops below min_period_ms.
func (d *DifficultyManager) GhostPeriod(base time.Duration, eaten, total int) time.Duration {
	if !d.cfg.Enabled {
		return base
	}

	level := d.Level(eaten, total)
	period := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))

	floor := time.Duration(d.cfg.Scaling.MinPeriodMs) * time.Millisecond
	if floor > base {
		floor = base
	}
	if period < floor {
		period = floor
	}
	return period
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
