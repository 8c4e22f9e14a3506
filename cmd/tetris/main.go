// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play            - Play a game
//	tetris config          - Print the effective rules as YAML
//	tetris prefs           - Show or reset stored preferences
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible piece order
//	--db <path>     - Set database path (default: ~/.tetris/prefs.db)
//	--log <path>    - Write a session log to this file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game that runs in your terminal.

Available commands:
  play     - Start a game
  config   - Print the effective game rules
  prefs    - Show or reset stored preferences

Examples:
  tetris play
  tetris play --level 5
  tetris play --difficulty hard --log /tmp/tetris.log
  tetris config --difficulty fixed
  tetris prefs --reset`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/prefs.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(prefsCmd)
}

// newLogger returns a logger writing to path. The terminal is owned by the
// game, so without a path log output is dropped. The returned func closes
// the file.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
