package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagReset     bool
	flagPrefLevel int
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show, set or reset stored preferences",
	Long: `Display the preferences remembered between games, such as the last
start level and tick rate.

Examples:
  tetris prefs
  tetris prefs --level 5
  tetris prefs --reset`,
	Args: cobra.NoArgs,
	Run:  runPrefs,
}

func init() {
	prefsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all stored preferences")
	prefsCmd.Flags().IntVar(&flagPrefLevel, "level", 0, "Remember a start level (1-99) for the next game")
}

func runPrefs(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearPreferences(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1) //nolint:gocritic // store is closed by the OS
		}
		fmt.Println("Preferences cleared.")
		return
	}

	if flagPrefLevel != 0 {
		level, err := storeStartLevel(store, flagPrefLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1) //nolint:gocritic // store is closed by the OS
		}
		fmt.Printf("Start level set to %d.\n", level)
		return
	}

	entries, err := store.AllPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving preferences: %v\n", err)
		os.Exit(1) //nolint:gocritic // store is closed by the OS
	}

	fmt.Println("Preferences")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("Nothing stored yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' and your start level will be remembered.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %s\n", "Key", "Value", "Updated")
	fmt.Printf("  %-12s  %-8s  %s\n", "---", "-----", "-------")
	for _, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-8s  %s\n", e.Key, e.Value, updated)
	}
}

// storeStartLevel clamps level and saves it as the remembered start level.
func storeStartLevel(store *storage.Store, level int) (int, error) {
	level = config.ClampLevel(level)
	if err := store.SetPreference(storage.KeyStartLevel, strconv.Itoa(level)); err != nil {
		return 0, err
	}
	return level, nil
}
