package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// LevelCurve maps levels to drop intervals and cleared lines to levels.
type LevelCurve struct {
	timing      TimingConfig
	progression ProgressionConfig
}

// NewLevelCurve creates a curve from the timing and progression sections.
func NewLevelCurve(cfg TetrisConfig) LevelCurve {
	return LevelCurve{
		timing:      cfg.Timing,
		progression: cfg.Progression,
	}
}

// IsEnabled returns whether cleared lines advance the level.
func (c LevelCurve) IsEnabled() bool {
	return c.progression.Enabled
}

// Interval returns the gravity interval for a level:
// max(min, base - (level-1)*step).
func (c LevelCurve) Interval(level int) time.Duration {
	ms := c.timing.BaseIntervalMs - (level-1)*c.timing.StepMs
	if ms < c.timing.MinIntervalMs {
		ms = c.timing.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Target returns the level a session that started at startLevel should be
// at after clearing lines rows in total.
func (c LevelCurve) Target(startLevel, lines int) int {
	per := c.progression.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	maxLevel := c.progression.MaxLevel
	if maxLevel < MinLevel || maxLevel > MaxLevel {
		maxLevel = MaxLevel
	}
	if startLevel < MinLevel {
		startLevel = MinLevel
	}
	return core.Clamp(startLevel+lines/per, MinLevel, maxLevel)
}

// ClampLevel restricts a level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return core.Clamp(level, MinLevel, MaxLevel)
}
