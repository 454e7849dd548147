// arcade plays small real-time arcade games in the terminal or a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade simulate <game>   - Run a game headless and print the result
//
// Global flags:
//
//	--fps <rate>            - Override the game's tick rate
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Use this config file instead of the search path
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Write logs to a file
//	--watch                 - Reload the config file when it changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-sim/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-sim/internal/games/runner"
	_ "github.com/vovakirdan/arcade-sim/internal/games/stealth"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - small real-time games for the terminal and desktop",
	Long: `Arcade runs a handful of small real-time games on a shared
fixed-tick simulation loop.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  simulate  - Run a game headless with scripted input

Examples:
  arcade list
  arcade play runner
  arcade play breakout --backend desktop
  arcade menu --difficulty hard
  arcade simulate stealth --policy random --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game default)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
}
