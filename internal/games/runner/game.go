// Package runner implements a side-scrolling endless runner.
// The player jumps (optionally twice) over blocks, walls and pits that
// scroll in from the right, and can briefly fade out of phase to pass
// through solid obstacles.
package runner

import (
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/sim"
	"github.com/vovakirdan/arcade-sim/internal/sprite"
)

func init() {
	registry.Register("runner", "Phase Runner", func(opts config.Options) (registry.Game, error) {
		return Load("runner", "Phase Runner", opts)
	})
	registry.Register("runner_classic", "Classic Runner", func(opts config.Options) (registry.Game, error) {
		return Load("runner_classic", "Classic Runner", opts)
	})
}

// Game implements the runner logic.
type Game struct {
	id    string
	title string
	cfg   config.RunnerConfig

	motion   sim.Motion
	phaseCfg sim.PhaseConfig
	policy   sim.HazardPolicy
	camera   sim.Camera
	ramp     *config.Ramp

	player     sim.Entity
	playerMask *sim.Mask
	obstacles  *ObstacleManager
	session    sim.Session
	speed      float64
	jumpHeld   bool // Jump was pressed last tick, jumps fire on press
}

// Load reads the named config and creates a game.
func Load(id, title string, opts config.Options) (*Game, error) {
	cfg, err := config.LoadRunner(id, opts)
	if err != nil {
		return nil, err
	}
	return New(id, title, cfg), nil
}

// New creates a runner from an already validated config.
func New(id, title string, cfg config.RunnerConfig) *Game {
	g := &Game{id: id, title: title, cfg: cfg}

	g.motion = sim.Motion{
		Gravity:      cfg.Physics.Gravity,
		JumpVelocity: cfg.Physics.JumpVelocity,
		MaxJumps:     cfg.Physics.MaxJumps,
		MaxFall:      cfg.Physics.MaxFallSpeed,
		GroundY:      cfg.World.Height - cfg.Player.Height - cfg.Player.GroundMargin,
	}
	g.phaseCfg = sim.PhaseConfig{Max: cfg.Phase.Max, Drain: cfg.Phase.Drain, Recharge: cfg.Phase.Recharge}
	g.policy = sim.HazardPolicy{PitIgnoresPhase: cfg.Obstacles.PitIgnoresPhase}
	g.camera = sim.Camera{Anchor: core.Vec{X: cfg.Player.X}}
	g.ramp = config.NewRamp(cfg.Ramp, cfg.Obstacles.Speed)

	if cfg.Obstacles.MaskCollision && cfg.Player.Sprite != "" {
		if m, err := sprite.MaskNamed(cfg.Player.Sprite, int(cfg.Player.Width), int(cfg.Player.Height), 0); err == nil {
			g.playerMask = m
		}
	}

	g.obstacles = NewObstacleManager(0, &g.cfg)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Viewport returns the visible world size.
func (g *Game) Viewport() core.Size {
	return core.Size{W: g.cfg.World.Width, H: g.cfg.World.Height}
}

// TickRate returns the native tick rate.
func (g *Game) TickRate() int { return g.cfg.World.TickRate }

// Help returns control hints.
func (g *Game) Help() []string {
	jump := "Space/Up: jump"
	if g.cfg.Physics.MaxJumps > 1 {
		jump = fmt.Sprintf("Space/Up: jump (x%d in the air)", g.cfg.Physics.MaxJumps)
	}
	lines := []string{jump}
	if g.cfg.Phase.Enabled {
		lines = append(lines, "F: fade out of phase", "G: fade back in")
		if g.cfg.Obstacles.PitIgnoresPhase {
			lines = append(lines, "Pits still kill while faded")
		}
	}
	return append(lines, "P: pause")
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.player = sim.Entity{
		Kind:  sim.KindPlayer,
		Body:  core.NewRect(g.cfg.Player.X, g.motion.GroundY, g.cfg.Player.Width, g.cfg.Player.Height),
		Mask:  g.playerMask,
		Phase: sim.NewPhase(g.phaseCfg),
	}
	g.motion.Land(&g.player)

	g.session = sim.Session{}
	g.speed = g.ramp.Speed(0)
	g.jumpHeld = false

	g.obstacles.Reset(runtime.Seed)
	g.obstacles.Seed(g.player.Body.X)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Frozen() {
		return core.StepResult{State: g.State()}
	}

	g.updatePlayer(in)

	// Hazards
	g.speed = g.ramp.Speed(g.session.Ticks)
	g.obstacles.Move(g.speed)
	if g.obstacles.Hit(&g.player, g.policy) != nil {
		g.session.End(core.OutcomeLose)
		return core.StepResult{State: g.State()}
	}

	g.obstacles.Cull(g.player.Body.X)
	g.obstacles.Refill(g.player.Body.X)

	g.session.Advance(1)
	return core.StepResult{State: g.State()}
}

// updatePlayer applies phase, jump and gravity for one tick.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.player

	if g.cfg.Phase.Enabled {
		if in.Has(core.ActionPhaseCancel) {
			p.Phase.Release()
		} else if in.Has(core.ActionPhase) {
			p.Phase.Engage()
		}
		p.Phase.Tick(g.phaseCfg)
	}

	jump := in.Has(core.ActionJump) || in.Has(core.ActionUp)
	if jump && !g.jumpHeld {
		if !(g.cfg.Phase.BlocksJump && p.Phase.Active) {
			g.motion.Jump(p)
		}
	}
	g.jumpHeld = jump

	if !p.OnGround {
		p.Body.X += g.cfg.Physics.AirDrift
	}
	g.motion.Fall(p)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Player returns the player entity.
func (g *Game) Player() sim.Entity { return g.player }

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []sim.Entity { return g.obstacles.Obstacles() }

// Speed returns the current obstacle speed.
func (g *Game) Speed() float64 { return g.speed }
