// Package engine runs games: a modal Driver that owns the session state
// machine and a fixed-cadence Loop for headless and scripted runs.
// Interactive backends call Driver.Tick from their own event loops.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// Mode is the driver's modal state.
type Mode int

const (
	ModeMenu     Mode = iota // Title screen, waiting to start
	ModePlaying              // Simulation running
	ModePaused               // Simulation suspended
	ModeTerminal             // Session ended, waiting for restart or back
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Signal tells the host what to do after a tick.
type Signal int

const (
	SignalNone Signal = iota
	SignalQuit        // Exit the program
	SignalBack        // Leave this game (back to the picker)
)

// Driver wraps one game with the Menu -> Playing <-> Paused -> Terminal
// state machine. It is not safe for concurrent use; hosts call it from a
// single goroutine.
type Driver struct {
	game    registry.Game
	pending registry.Game
	cfg     core.RuntimeConfig
	mode    Mode
	state   core.GameState
	logger  *log.Logger

	// seed returns the seed for the next session when cfg.Seed is 0.
	seed func() int64
}

// NewDriver creates a driver in menu mode. The logger may be nil.
func NewDriver(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{
		game:   game,
		cfg:    cfg,
		logger: logger,
		seed:   func() int64 { return time.Now().UnixNano() },
	}
	d.reset()
	return d
}

// Game returns the current game.
func (d *Driver) Game() registry.Game { return d.game }

// Mode returns the current mode.
func (d *Driver) Mode() Mode { return d.mode }

// State returns the last observed game state.
func (d *Driver) State() core.GameState { return d.state }

// TickRate returns the effective ticks per second.
func (d *Driver) TickRate() int {
	if d.cfg.TickRate > 0 {
		return d.cfg.TickRate
	}
	if r := d.game.TickRate(); r > 0 {
		return r
	}
	return 60
}

// Interval returns the duration of one tick.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.TickRate())
}

// Start begins a new session from any mode.
func (d *Driver) Start() {
	if d.pending != nil {
		d.logger.Info("applying reloaded config", "game", d.pending.ID())
		d.game = d.pending
		d.pending = nil
	}
	d.reset()
	d.setMode(ModePlaying)
}

// Replace swaps in a new game instance, typically built from a reloaded
// config. A session in progress keeps its game; the replacement takes effect
// at the next start.
func (d *Driver) Replace(g registry.Game) error {
	if g == nil {
		return fmt.Errorf("engine: replace with nil game")
	}
	if g.ID() != d.game.ID() {
		return fmt.Errorf("engine: replace %q with %q", d.game.ID(), g.ID())
	}
	if d.mode == ModePlaying || d.mode == ModePaused {
		d.pending = g
		d.logger.Debug("config reload deferred", "game", g.ID())
		return nil
	}
	d.game = g
	d.pending = nil
	d.reset()
	d.logger.Info("config reloaded", "game", g.ID())
	return nil
}

// Pending reports whether a replacement is waiting for the next session.
func (d *Driver) Pending() bool {
	return d.pending != nil
}

// Tick advances the state machine by one tick with the given input.
func (d *Driver) Tick(in core.InputFrame) Signal {
	if in.Has(core.ActionQuit) {
		return SignalQuit
	}

	switch d.mode {
	case ModeMenu:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
			d.Start()
		case in.Has(core.ActionBack):
			return SignalBack
		}

	case ModePlaying:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			d.setMode(ModePaused)
			return SignalNone
		}
		res := d.game.Step(in)
		d.state = res.State
		if d.state.GameOver() {
			d.logger.Info("session over",
				"game", d.game.ID(),
				"outcome", d.state.Outcome.String(),
				"score", d.state.Score,
				"ticks", d.state.Ticks)
			d.setMode(ModeTerminal)
		}

	case ModePaused:
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			d.setMode(ModePlaying)
		case in.Has(core.ActionRestart):
			d.Start()
		case in.Has(core.ActionBack):
			d.toMenu()
		}

	case ModeTerminal:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			d.Start()
		case in.Has(core.ActionBack):
			d.toMenu()
		}
	}
	return SignalNone
}

func (d *Driver) toMenu() {
	if d.pending != nil {
		d.game = d.pending
		d.pending = nil
	}
	d.reset()
	d.setMode(ModeMenu)
}

func (d *Driver) reset() {
	cfg := d.cfg
	if cfg.Seed == 0 {
		cfg.Seed = d.seed()
	}
	d.game.Reset(cfg)
	d.state = d.game.State()
}

func (d *Driver) setMode(m Mode) {
	if m == d.mode {
		return
	}
	d.logger.Debug("mode change", "game", d.game.ID(), "from", d.mode.String(), "to", m.String())
	d.mode = m
}
