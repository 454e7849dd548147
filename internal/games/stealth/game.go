// Package stealth implements a top-down stealth game.
// The player sneaks upward through procedurally generated obstacle bands
// while guards patrol with view cones. Being seen or touched ends the run.
package stealth

import (
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

func init() {
	registry.Register("stealth", "Shadow Run", func(opts config.Options) (registry.Game, error) {
		cfg, err := config.LoadStealth(opts)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// Game implements the stealth logic.
type Game struct {
	cfg    config.StealthConfig
	cone   sim.ViewCone
	camera sim.Camera
	policy sim.HazardPolicy
	rng    *rand.Rand

	player    sim.Entity
	enemies   []sim.Entity
	obstacles []sim.Entity
	session   sim.Session

	// World y of the top edge of the highest generated band.
	frontier float64
	// Lowest world y the player may reach; only ever moves up.
	floor float64
}

// New creates a stealth game from an already validated config.
func New(cfg config.StealthConfig) *Game {
	g := &Game{
		cfg:    cfg,
		cone:   sim.ViewCone{FOV: cfg.Enemies.FOV, Length: cfg.Enemies.ViewLength},
		camera: sim.Camera{Anchor: core.Vec{Y: cfg.World.Height / 2}},
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "stealth" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Shadow Run" }

// Viewport returns the visible world size.
func (g *Game) Viewport() core.Size {
	return core.Size{W: g.cfg.World.Width, H: g.cfg.World.Height}
}

// TickRate returns the native tick rate.
func (g *Game) TickRate() int { return g.cfg.World.TickRate }

// Help returns control hints.
func (g *Game) Help() []string {
	lines := []string{
		"Arrows/WASD: sneak",
		"Head upward, stay out of the guards' sight",
	}
	if g.cfg.Enemies.LineOfSight {
		lines = append(lines, "Walls block their view")
	}
	return append(lines, "P: pause")
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	size := g.cfg.Player.Size

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session = sim.Session{}
	g.player = sim.Entity{
		Kind: sim.KindPlayer,
		Body: core.NewRect((w-size)/2, (h-size)/2, size, size),
	}
	g.frontier = 0
	g.floor = h

	pc := g.player.Center()
	r := g.cfg.Obstacles.ClearStart
	keepOut := core.NewRect(pc.X-r, pc.Y-r, 2*r, 2*r)
	g.obstacles = GenerateBand(g.rng, g.cfg.Obstacles, core.NewRect(0, 0, w, h), keepOut, g.cfg.Obstacles.BandCount)

	g.enemies = nil
	for i := 0; i < g.cfg.Enemies.Initial; i++ {
		g.spawnEnemy(core.NewRect(0, 0, w, h/2))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Frozen() {
		return core.StepResult{State: g.State()}
	}

	g.movePlayer(in)
	g.moveEnemies()
	g.extend()

	if e := g.spotted(); e != nil {
		e.Tag = "alert"
		g.session.End(core.OutcomeLose)
		return core.StepResult{State: g.State()}
	}

	g.cull()
	g.session.Advance(1)
	return core.StepResult{State: g.State()}
}

// movePlayer applies 4-way movement one axis at a time so the player can
// slide along walls.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	bounds := g.bounds()
	steps := []core.Vec{
		{X: in.Axis(core.ActionLeft, core.ActionRight) * speed},
		{Y: in.Axis(core.ActionUp, core.ActionDown) * speed},
	}
	for _, d := range steps {
		if d.X == 0 && d.Y == 0 {
			continue
		}
		next := g.player.Body.Translate(d)
		if !sim.BlockedBy(next, bounds, g.obstacles) {
			g.player.Body = next
		}
	}

	if bottom := g.player.Center().Y + g.cfg.World.Height/2; bottom < g.floor {
		g.floor = bottom
	}
}

// extend generates the next band once the player is halfway through the
// current top band.
func (g *Game) extend() {
	h := g.cfg.World.Height
	if g.player.Center().Y >= g.frontier+h/2 {
		return
	}
	g.frontier -= h
	area := core.NewRect(0, g.frontier, g.cfg.World.Width, h)
	n := bandCount(g.cfg.Obstacles, g.session.Score)
	g.obstacles = append(g.obstacles, GenerateBand(g.rng, g.cfg.Obstacles, area, core.Rect{}, n)...)
	for i := 0; i < g.cfg.Enemies.PerBand; i++ {
		g.spawnEnemy(area)
	}
}

// cull drops everything that fell below the floor.
func (g *Game) cull() {
	for i := range g.obstacles {
		if g.obstacles[i].Body.Y >= g.floor {
			g.obstacles[i].Kill()
		}
	}
	for i := range g.enemies {
		if g.enemies[i].Body.Y >= g.floor {
			g.enemies[i].Kill()
		}
	}
	g.obstacles = sim.Compact(g.obstacles)
	g.enemies = sim.Compact(g.enemies)
}

// bounds is the region entities may occupy.
func (g *Game) bounds() core.Rect {
	return core.NewRect(0, g.frontier, g.cfg.World.Width, g.floor-g.frontier)
}

// target is the camera follow point.
func (g *Game) target() core.Vec {
	return core.Vec{Y: g.player.Center().Y}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Player returns the player entity.
func (g *Game) Player() sim.Entity { return g.player }

// Enemies returns the live guards.
func (g *Game) Enemies() []sim.Entity { return g.enemies }

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []sim.Entity { return g.obstacles }
