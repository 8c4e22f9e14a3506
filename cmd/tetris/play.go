package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagMenu       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  ←/h →/l    - Move
  ↓/j        - Soft drop
  ↑/x/k, z   - Rotate clockwise, counter-clockwise
  Space      - Hard drop
  Enter      - Start
  P          - Pause
  R          - Restart
  +/-        - Change level
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10
  fixed  - No level progression

The start level is taken from --level, then --difficulty, then the level
you last played, then the config file.

Examples:
  tetris play
  tetris play --level 8
  tetris play --menu
  tetris play --difficulty fixed --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addRulesFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-99, 0 = remembered level)")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick a difficulty from a menu before playing")
}

// addRulesFlags registers the flags that shape the effective rules.
func addRulesFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRules loads the config and applies the difficulty preset.
func loadRules() (config.TetrisConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.TetrisConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagMenu && flagDifficulty == "" {
		preset, ok, menuErr := tui.RunStartMenu(width, height)
		if menuErr != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		// User quit from the menu
		if !ok {
			closeLog()
			return
		}
		flagDifficulty = string(preset)
	}

	rules, err := loadRules()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open preferences database", "error", err)
		store = nil
	}

	var prefs storage.Preferences
	if store != nil {
		if prefs, err = store.LoadPreferences(); err != nil {
			logger.Warn("could not load preferences", "error", err)
		}
	}

	rules.StartLevel = chooseLevel(flagLevel, config.DifficultyPreset(flagDifficulty), rules, prefs)

	tickRate := flagFPS
	if !cmd.Flags().Changed("fps") && prefs.TickRate > 0 {
		tickRate = prefs.TickRate
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	logger.Debug("rules loaded",
		"start_level", rules.StartLevel,
		"progression", rules.Progression.Enabled,
		"base_interval_ms", rules.Timing.BaseIntervalMs,
	)

	runErr := tui.Run(tetris.New(rules), store, cfg, logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// chooseLevel picks the start level: an explicit level, then a preset that
// sets one, then the stored preference, then the config.
func chooseLevel(level int, preset config.DifficultyPreset, rules config.TetrisConfig, prefs storage.Preferences) int {
	switch {
	case level > 0:
		return config.ClampLevel(level)
	case config.StartLevelForPreset(preset) > 0:
		return rules.StartLevel
	case prefs.StartLevel > 0:
		return config.ClampLevel(prefs.StartLevel)
	default:
		return rules.StartLevel
	}
}
