package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game rules",
	Long: `Print the rules a game would use as YAML, after the config search
order and the difficulty preset are applied. The output is a valid config
file and can be edited and passed back with --config.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addRulesFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // stdout
}
