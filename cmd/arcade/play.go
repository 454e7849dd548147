package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-sim/internal/platform/desktop"
	"github.com/vovakirdan/arcade-sim/internal/platform/tui"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

var (
	flagBackend string
	flagScale   float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Jump
  F / G        - Fade out / back in (runner)
  Enter        - Start
  P            - Pause
  R            - Restart
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower hazards, more forgiving sizes
  normal - Config values as written
  hard   - Faster hazards, tighter sizes
  fixed  - Normal values with the speed ramp switched off

Examples:
  arcade play runner
  arcade play runner_classic --difficulty fixed
  arcade play breakout --backend desktop --scale 1.5
  arcade play stealth --config ./my-stealth.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Backend: tui or desktop")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale (desktop backend)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	cfgOpts, err := configOptions()
	if err != nil {
		return err
	}

	switch flagBackend {
	case "tui":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("the tui backend needs a terminal, try 'arcade simulate %s'", gameID)
		}
		logger, closeLog, err := newLogger(true)
		if err != nil {
			return err
		}
		defer closeLog()
		return tui.Run(tui.Options{
			GameID:  gameID,
			Config:  cfgOpts,
			Runtime: runtimeConfig(),
			Logger:  logger,
			Watch:   flagWatch,
		})

	case "desktop":
		logger, closeLog, err := newLogger(false)
		if err != nil {
			return err
		}
		defer closeLog()
		return desktop.Run(desktop.Options{
			GameID:  gameID,
			Config:  cfgOpts,
			Runtime: runtimeConfig(),
			Logger:  logger,
			Watch:   flagWatch,
			Scale:   flagScale,
		})

	default:
		return fmt.Errorf("unknown backend %q (want tui or desktop)", flagBackend)
	}
}
