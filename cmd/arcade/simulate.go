package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/engine"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

var (
	flagTicks    int
	flagPolicy   string
	flagRealtime bool
	flagRender   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless with scripted input",
	Long: `Run a game without a display, feeding it input from a simple
policy, and print the final state.

Policies:
  idle    - Never press anything
  random  - Press a random movement or jump key now and then
  jumper  - Jump every half second (runner games)

By default ticks run back to back as fast as possible. With --realtime
the loop keeps the game's tick rate.

Examples:
  arcade simulate runner --ticks 3600
  arcade simulate stealth --policy random --seed 7 --render
  arcade simulate breakout --realtime --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until the game ends)")
	f.StringVar(&flagPolicy, "policy", "idle", "Input policy: idle, random, jumper")
	f.BoolVar(&flagRealtime, "realtime", false, "Keep the game's tick rate instead of running flat out")
	f.BoolVar(&flagRender, "render", false, "Print the final frame")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	cfgOpts, err := configOptions()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := registry.Create(gameID, cfgOpts)
	if err != nil {
		return err
	}

	rt := runtimeConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	driver := engine.NewDriver(g, rt, logger)
	input, err := newPolicy(flagPolicy, rt.Seed, driver.TickRate())
	if err != nil {
		return err
	}

	var clock engine.Clock = &engine.InstantClock{}
	if flagRealtime {
		clock = engine.SystemClock{}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver.Start()
	loop := &engine.Loop{
		Driver:    driver,
		Clock:     clock,
		Input:     input,
		Presenter: &tracer{logger: logger, every: driver.TickRate()},
		Options:   engine.Options{ExitOnOutcome: true, MaxTicks: flagTicks},
		Logger:    logger,
	}
	st, err := loop.Run(ctx)
	if err != nil {
		return err
	}

	if flagRender {
		printFrame(driver)
	}
	fmt.Printf("game=%s seed=%d outcome=%s score=%d ticks=%d\n",
		gameID, rt.Seed, st.Outcome, st.Score, st.Ticks)
	return nil
}

// newPolicy returns the scripted input source for name.
func newPolicy(name string, seed int64, tickRate int) (engine.InputSource, error) {
	switch name {
	case "idle":
		return engine.InputFunc(core.NewInputFrame), nil

	case "random":
		rng := rand.New(rand.NewSource(seed))
		moves := []core.Action{
			core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionJump,
		}
		var held core.Action
		return engine.InputFunc(func() core.InputFrame {
			// Change keys about every quarter second
			if rng.Intn(max(tickRate/4, 1)) == 0 {
				held = moves[rng.Intn(len(moves))]
			}
			return core.FrameOf(held)
		}), nil

	case "jumper":
		n := 0
		period := max(tickRate/2, 1)
		return engine.InputFunc(func() core.InputFrame {
			n++
			if n%period == 0 {
				return core.FrameOf(core.ActionJump)
			}
			return core.NewInputFrame()
		}), nil

	default:
		return nil, fmt.Errorf("unknown policy %q (want idle, random or jumper)", name)
	}
}

// tracer logs the game state once per simulated second at debug level.
type tracer struct {
	logger *log.Logger
	every  int
	n      int
}

func (t *tracer) Present(d *engine.Driver) error {
	t.n++
	if t.every > 0 && t.n%t.every == 0 {
		st := d.State()
		t.logger.Debug("tick", "mode", d.Mode(), "score", st.Score, "ticks", st.Ticks)
	}
	return nil
}

// printFrame draws the driver into a text screen sized to the terminal.
func printFrame(d *engine.Driver) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h-1
	}
	screen := core.NewScreen(width, max(height, 1))
	d.Draw(core.NewScreenCanvas(screen))
	fmt.Println(screen.String())
}
