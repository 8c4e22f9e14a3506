package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Level bounds enforced regardless of configuration.
const (
	MinLevel = 1
	MaxLevel = 99
)

// DefaultTetrisConfig returns the hard-coded default configuration.
// It matches defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		StartLevel: 1,
		Timing: TimingConfig{
			BaseIntervalMs: 1000,
			StepMs:         80,
			MinIntervalMs:  80,
		},
		Progression: ProgressionConfig{
			Enabled:       true,
			LinesPerLevel: 10,
			MaxLevel:      MaxLevel,
		},
		Scoring: ScoringConfig{
			LineClear: []int{0, 100, 300, 500, 800},
			SoftDrop:  1,
			HardDrop:  2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
