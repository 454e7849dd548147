package stealth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

func testConfig(t *testing.T) config.StealthConfig {
	t.Helper()
	data, err := config.Default("stealth")
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "stealth.yaml")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadStealth(config.Options{Path: p})
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

// emptyGame returns a game with no guards and no walls.
func emptyGame(t *testing.T) *Game {
	cfg := testConfig(t)
	cfg.Enemies.Initial = 0
	cfg.Enemies.PerBand = 0
	cfg.Obstacles.BandCount = 0
	cfg.Obstacles.MinCount = 0
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

func TestStartIsSafe(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := testConfig(t)
		g := New(cfg)
		g.Reset(core.RuntimeConfig{Seed: seed})

		if sim.FirstHit(&g.player, g.obstacles) >= 0 {
			t.Fatalf("seed %d: player starts inside an obstacle", seed)
		}
		pc := g.player.Center()
		for _, e := range g.enemies {
			if e.Center().Sub(pc).Len() < cfg.Enemies.SafeDistance {
				t.Fatalf("seed %d: guard spawned too close", seed)
			}
		}
		g.Step(core.NewInputFrame())
		if g.State().GameOver() {
			t.Fatalf("seed %d: game over on the first tick", seed)
		}
	}
}

func TestGuardsSpawnApart(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := testConfig(t)
		cfg.Enemies.Initial = 8
		g := New(cfg)
		g.Reset(core.RuntimeConfig{Seed: seed})

		for i := range g.enemies {
			if j := sim.FirstHit(&g.enemies[i], g.enemies[i+1:]); j >= 0 {
				t.Fatalf("seed %d: guards %d and %d overlap", seed, i, i+1+j)
			}
		}
	}
}

func TestPlayerMovesAndClamps(t *testing.T) {
	g := emptyGame(t)
	x := g.player.Body.X

	g.Step(core.FrameOf(core.ActionRight))
	if g.player.Body.X != x+g.cfg.Player.Speed {
		t.Errorf("x = %v, expected %v", g.player.Body.X, x+g.cfg.Player.Speed)
	}
	for i := 0; i < 200; i++ {
		g.Step(core.FrameOf(core.ActionLeft))
	}
	if g.player.Body.X != 0 {
		t.Errorf("player should stop at the left edge, x = %v", g.player.Body.X)
	}
}

func TestObstaclesBlockPlayer(t *testing.T) {
	g := emptyGame(t)
	p := g.player.Body
	g.obstacles = []sim.Entity{{Kind: sim.KindObstacle, Body: core.NewRect(p.X-100, p.Y-60, 300, 50)}}

	for i := 0; i < 30; i++ {
		g.Step(core.FrameOf(core.ActionUp))
	}
	if g.player.Body.Y < p.Y-10 {
		t.Errorf("player passed through a wall, y = %v", g.player.Body.Y)
	}
	// Sliding sideways still works
	g.Step(core.FrameOf(core.ActionUp, core.ActionRight))
	if g.player.Body.X == p.X {
		t.Error("horizontal movement should not be blocked by a wall above")
	}
}

func TestDetectionLoses(t *testing.T) {
	g := emptyGame(t)
	pc := g.player.Center()
	s := g.cfg.Enemies.Size

	// Guard to the left, facing right, inside view range
	g.enemies = []sim.Entity{{
		Kind: sim.KindEnemy,
		Body: core.NewRect(pc.X-100-s/2, pc.Y-s/2, s, s),
		Vel:  core.Vec{X: g.cfg.Enemies.Speed},
	}}
	g.cfg.Enemies.TurnChance = 0

	g.Step(core.NewInputFrame())
	if g.State().Outcome != core.OutcomeLose {
		t.Fatalf("outcome = %v, expected lose", g.State().Outcome)
	}
	if g.enemies[0].Tag != "alert" {
		t.Error("spotting guard should be marked")
	}

	ticks := g.State().Ticks
	g.Step(core.FrameOf(core.ActionUp))
	if g.State().Ticks != ticks {
		t.Error("lost game should not advance")
	}
}

func TestGuardFacingAwayMissesPlayer(t *testing.T) {
	g := emptyGame(t)
	g.cfg.Enemies.TurnChance = 0
	pc := g.player.Center()
	s := g.cfg.Enemies.Size

	g.enemies = []sim.Entity{{
		Kind: sim.KindEnemy,
		Body: core.NewRect(pc.X-100-s/2, pc.Y-s/2, s, s),
		Vel:  core.Vec{X: -g.cfg.Enemies.Speed},
	}}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().GameOver() {
		t.Error("guard facing away should not spot the player")
	}
}

func TestWallHidesPlayer(t *testing.T) {
	g := emptyGame(t)
	g.cfg.Enemies.TurnChance = 0
	g.cfg.Enemies.Speed = 0
	pc := g.player.Center()
	s := g.cfg.Enemies.Size

	g.obstacles = []sim.Entity{{Kind: sim.KindObstacle, Body: core.NewRect(pc.X-60, pc.Y-40, 20, 80)}}
	g.enemies = []sim.Entity{{
		Kind: sim.KindEnemy,
		Body: core.NewRect(pc.X-100-s/2, pc.Y-s/2, s, s),
		Vel:  core.Vec{X: 0.001},
	}}

	g.Step(core.NewInputFrame())
	if g.State().GameOver() {
		t.Error("wall should block the guard's view")
	}

	g.cfg.Enemies.LineOfSight = false
	g.Step(core.NewInputFrame())
	if !g.State().GameOver() {
		t.Error("without line of sight the guard sees through walls")
	}
}

func TestAdvancingGeneratesBands(t *testing.T) {
	cfg := testConfig(t)
	cfg.Enemies.Initial = 0
	cfg.Enemies.ViewLength = 1
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})
	up := core.FrameOf(core.ActionUp)
	for i := 0; i < 10; i++ {
		// Clear the way so the player can walk straight up
		g.obstacles = nil
		g.Step(up)
	}
	if g.frontier != -cfg.World.Height {
		t.Fatalf("frontier = %v, expected %v", g.frontier, -cfg.World.Height)
	}
	if len(g.enemies) != cfg.Enemies.PerBand {
		t.Errorf("expected %d guard from the new band, got %d", cfg.Enemies.PerBand, len(g.enemies))
	}
}

func TestBandCountThinsOut(t *testing.T) {
	cfg := testConfig(t).Obstacles
	tests := []struct {
		score    int
		expected int
	}{
		{0, cfg.BandCount},
		{cfg.ScoreStep, cfg.BandCount - 1},
		{cfg.ScoreStep * 1000, cfg.MinCount},
	}
	for _, tc := range tests {
		if got := bandCount(cfg, tc.score); got != tc.expected {
			t.Errorf("bandCount(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestCullDropsBehindFloor(t *testing.T) {
	g := emptyGame(t)
	g.obstacles = []sim.Entity{
		{Kind: sim.KindObstacle, Body: core.NewRect(0, g.floor+10, 50, 50)},
		{Kind: sim.KindObstacle, Body: core.NewRect(0, 0, 50, 50)},
	}
	g.cull()
	if len(g.obstacles) != 1 || g.obstacles[0].Body.Y != 0 {
		t.Errorf("unexpected obstacles after cull: %+v", g.obstacles)
	}
}

func TestScoreCountsTicks(t *testing.T) {
	g := emptyGame(t)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if st := g.State(); st.Score != 30 || st.Ticks != 30 {
		t.Errorf("score=%d ticks=%d, expected 30", st.Score, st.Ticks)
	}
}

func TestRenderDrawsPlayer(t *testing.T) {
	g := emptyGame(t)
	c := core.NewScreenCanvas(core.NewScreen(80, 24))
	c.Begin(g.Viewport())
	g.Render(c)

	// Player is centered on screen
	if cell := c.Screen().GetCell(40, 12); cell.Rune == ' ' {
		t.Error("expected the player at the screen center")
	}
}
