package breakout

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// Game phases within a session.
const (
	StateServe   = "serve"   // Ball waiting in the middle
	StatePlaying = "playing" // Ball in motion
	StateWon     = "won"
	StateLost    = "lost"
)

func init() {
	registry.Register("breakout", "Space Breakout", func(opts config.Options) (registry.Game, error) {
		cfg, err := config.LoadBreakout(opts)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// Game implements the brick breaker logic.
type Game struct {
	cfg   config.BreakoutConfig
	field core.Rect

	paddle  sim.Entity
	ball    sim.Entity
	bricks  []sim.Entity
	session sim.Session
	rng     *rand.Rand

	serveDelay  int // Ticks left before the ball moves
	launchTicks int // Ticks since the ball started moving
}

// New creates a breakout game from an already validated config.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{
		cfg:   cfg,
		field: core.NewRect(0, 0, cfg.World.Width, cfg.World.Height),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Breakout" }

// Viewport returns the visible world size.
func (g *Game) Viewport() core.Size {
	return core.Size{W: g.cfg.World.Width, H: g.cfg.World.Height}
}

// TickRate returns the native tick rate.
func (g *Game) TickRate() int { return g.cfg.World.TickRate }

// Help returns control hints.
func (g *Game) Help() []string {
	return []string{
		"Left/Right: move paddle",
		"Hit the ball off-center to angle it",
		"Clear every brick to win",
		"P: pause",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session = sim.Session{}
	g.bricks = BuildBricks(g.cfg.Bricks)

	p := g.cfg.Paddle
	g.paddle = sim.Entity{
		Kind: sim.KindPaddle,
		Body: core.NewRect((g.field.W-p.Width)/2, g.field.H-p.BottomMargin, p.Width, p.Height),
	}

	g.serve()
}

// serve places the ball in the middle with a random horizontal direction.
func (g *Game) serve() {
	b := g.cfg.Ball
	vx := b.SpeedX
	if g.rng.Intn(2) == 0 {
		vx = -vx
	}
	g.ball = sim.Entity{
		Kind: sim.KindBall,
		Body: core.NewRect(g.field.W/2-b.Radius, g.field.H/2-b.Radius, 2*b.Radius, 2*b.Radius),
		Vel:  core.Vec{X: vx, Y: b.SpeedY},
	}
	g.serveDelay = b.ServeDelay
	g.launchTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Frozen() {
		return core.StepResult{State: g.State()}
	}

	// Paddle moves even while serving
	dir := in.Axis(core.ActionLeft, core.ActionRight)
	sim.Steer(&g.paddle, dir, g.cfg.Paddle.Speed, 0, g.field.W-g.paddle.Body.W)

	if g.serveDelay > 0 {
		g.serveDelay--
		g.session.Advance(0)
		return core.StepResult{State: g.State()}
	}

	g.moveBall()

	// Bounds
	if sim.ResolveWalls(&g.ball, g.field) == sim.WallBottom {
		g.session.End(core.OutcomeLose)
		return core.StepResult{State: g.State()}
	}
	sim.ResolvePaddle(&g.ball, &g.paddle, g.cfg.Ball.Spin)

	// Scoring
	cleared := 0
	if sim.HitBrick(&g.ball, g.bricks) >= 0 {
		cleared = 1
	}
	g.session.Advance(cleared)

	if sim.LiveCount(g.bricks) == 0 {
		g.session.End(core.OutcomeWin)
	}
	if cleared > 0 {
		g.bricks = sim.Compact(g.bricks)
	}
	return core.StepResult{State: g.State()}
}

// moveBall advances the ball, easing in over the launch ramp.
func (g *Game) moveBall() {
	factor := 1.0
	if ramp := g.cfg.Ball.LaunchRamp; ramp > 0 && g.launchTicks < ramp {
		factor = float64(g.launchTicks) / float64(ramp)
	}
	g.launchTicks++
	g.ball.Body.X += g.ball.Vel.X * factor
	g.ball.Body.Y += g.ball.Vel.Y * factor
}

// Phase returns the current phase name.
func (g *Game) Phase() string {
	switch {
	case g.session.Outcome == core.OutcomeWin:
		return StateWon
	case g.session.Outcome == core.OutcomeLose:
		return StateLost
	case g.serveDelay > 0:
		return StateServe
	default:
		return StatePlaying
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Render draws the bricks, paddle, ball and HUD.
func (g *Game) Render(c core.Canvas) {
	pitch := g.cfg.Bricks.Height + g.cfg.Bricks.Gap
	for _, b := range g.bricks {
		c.FillRect(b.Body, brickColor(b.Body.Y, g.cfg.Bricks.OffsetY, pitch), 1)
	}

	c.FillRect(g.paddle.Body, core.ColorBrightGreen, 1)
	c.FillRect(g.ball.Body, core.ColorBrightBlue, 1)

	c.Text(10, 10, fmt.Sprintf("Bricks: %d  Speed X: %.2f, Speed Y: %.2f",
		len(g.bricks), g.ball.Vel.X, g.ball.Vel.Y), core.ColorWhite)

	if g.Phase() == StateServe {
		rate := g.cfg.World.TickRate
		if rate <= 0 {
			rate = 60
		}
		secs := (g.serveDelay + rate - 1) / rate
		c.TextCentered(g.field.H*0.6, fmt.Sprintf("Get ready... %d", secs), core.ColorYellow)
	}
}
