// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// TetrisConfig contains all tunable rules of the game.
type TetrisConfig struct {
	StartLevel  int               `yaml:"start_level"`
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// TimingConfig defines the gravity curve in milliseconds.
type TimingConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Drop interval at level 1
	StepMs         int `yaml:"step_ms"`          // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor
}

// ProgressionConfig defines how the level advances with cleared lines.
type ProgressionConfig struct {
	Enabled       bool `yaml:"enabled"`
	LinesPerLevel int  `yaml:"lines_per_level"`
	MaxLevel      int  `yaml:"max_level"`
}

// ScoringConfig defines points awarded by the engine.
type ScoringConfig struct {
	// LineClear is indexed by the number of rows cleared at once and
	// multiplied by the current level.
	LineClear []int `yaml:"line_clear"`
	SoftDrop  int   `yaml:"soft_drop"` // Per successful soft-drop step
	HardDrop  int   `yaml:"hard_drop"` // Per cell travelled by a hard drop
}

// LinePoints returns the base points for clearing n rows at once.
// Counts beyond the table are scored with its last entry.
func (s ScoringConfig) LinePoints(n int) int {
	if n <= 0 || len(s.LineClear) == 0 {
		return 0
	}
	if n >= len(s.LineClear) {
		return s.LineClear[len(s.LineClear)-1]
	}
	return s.LineClear[n]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
// Zero means "keep the configured level".
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string is accepted and
// means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
