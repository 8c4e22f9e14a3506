package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const configFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hard-coded defaults so that partial
// files only override what they mention.
func parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize repairs values that would break the engine.
func (c *TetrisConfig) normalize() {
	def := DefaultTetrisConfig()

	if c.Progression.MaxLevel < MinLevel || c.Progression.MaxLevel > MaxLevel {
		c.Progression.MaxLevel = MaxLevel
	}
	if c.Progression.LinesPerLevel <= 0 {
		c.Progression.LinesPerLevel = def.Progression.LinesPerLevel
	}
	c.StartLevel = core.Clamp(c.StartLevel, MinLevel, c.Progression.MaxLevel)

	if c.Timing.BaseIntervalMs <= 0 {
		c.Timing.BaseIntervalMs = def.Timing.BaseIntervalMs
	}
	if c.Timing.StepMs < 0 {
		c.Timing.StepMs = 0
	}
	if c.Timing.MinIntervalMs <= 0 {
		c.Timing.MinIntervalMs = def.Timing.MinIntervalMs
	}
	if len(c.Scoring.LineClear) == 0 {
		c.Scoring.LineClear = def.Scoring.LineClear
	}
}

// Encode renders a configuration as YAML.
func Encode(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Progression.Enabled = false
		return
	}
	cfg.Progression.Enabled = true
	if lv := StartLevelForPreset(preset); lv > 0 {
		cfg.StartLevel = core.Clamp(lv, MinLevel, cfg.Progression.MaxLevel)
	}
}
