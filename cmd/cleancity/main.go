// cleancity is a terminal arcade game: clear the street of trash and load it
// onto the garbage truck before the truck leaves.
//
// Usage:
//
//	cleancity                - Play from the first street
//	cleancity play           - Play (same as no command)
//	cleancity pick           - Choose the first street, then play
//	cleancity levels         - List the configured streets
//	cleancity config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible trash layouts
//	--config <path>     - Use a specific config file
//	--difficulty <name> - easy, normal or hard
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cleancity",
	Short: "Clean City - clear the street before the garbage truck leaves",
	Long: `Clean City is a terminal arcade game. Walk the street, pick up every
piece of trash and hand it over at the back or sides of the garbage truck
before it crosses the street. Never step in front of it.

Available commands:
  play     - Play from the first street (default)
  pick     - Choose the first street interactively
  levels   - Show the configured streets
  config   - Print the effective configuration

Examples:
  cleancity
  cleancity play --level 3 --no-intro
  cleancity pick --difficulty easy
  cleancity levels --config ./my-streets.yaml
  cleancity play --log /tmp/cleancity.log --log-level debug`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
