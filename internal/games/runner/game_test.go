package runner

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// testConfig loads an embedded default through a temp file so results do
// not depend on configs in the user's home directory.
func testConfig(t *testing.T, name string) config.RunnerConfig {
	t.Helper()
	data, err := config.Default(name)
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), name+".yaml")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadRunner(name, config.Options{Path: p})
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func newGame(t *testing.T, name string, seed int64) *Game {
	t.Helper()
	g := New(name, name, testConfig(t, name))
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func TestSpawnPositionAndSpacing(t *testing.T) {
	cfg := testConfig(t, "runner")
	om := NewObstacleManager(99, &cfg)

	base := 100.0
	for i := 0; i < 500; i++ {
		before := len(om.Obstacles())
		if om.TrySpawn(base) {
			o := om.Obstacles()[before]
			min := base + cfg.World.Width + cfg.Obstacles.SpawnMin
			max := base + cfg.World.Width + cfg.Obstacles.SpawnMax
			if o.Body.X < min || o.Body.X > max {
				t.Fatalf("spawn x = %v, expected in [%v, %v]", o.Body.X, min, max)
			}
		}
		om.Move(5)
		om.Cull(base)
		assertSpacing(t, om.Obstacles(), cfg.Obstacles.MinGap)
	}
}

func assertSpacing(t *testing.T, obs []sim.Entity, gap float64) {
	t.Helper()
	for i := range obs {
		for j := i + 1; j < len(obs); j++ {
			if d := math.Abs(obs[i].Body.X - obs[j].Body.X); d < gap {
				t.Fatalf("obstacles %d and %d only %v apart", i, j, d)
			}
		}
	}
}

func TestInitialObstacles(t *testing.T) {
	g := newGame(t, "runner", 1)
	obs := g.Obstacles()
	if len(obs) == 0 || len(obs) > g.cfg.Obstacles.Count {
		t.Fatalf("initial obstacle count = %d", len(obs))
	}
	for _, o := range obs {
		if o.Body.X < g.player.Body.Right() {
			t.Errorf("obstacle spawned on top of the player at %v", o.Body.X)
		}
	}
	assertSpacing(t, obs, g.cfg.Obstacles.MinGap)
}

// overlapping returns a solid hazard placed on the player.
func overlapping(g *Game, kind sim.Kind) sim.Entity {
	return sim.Entity{Kind: kind, Body: g.player.Body}
}

func TestPhaseProtectsFromObstacles(t *testing.T) {
	tests := []struct {
		name     string
		kind     sim.Kind
		phased   bool
		expected core.Outcome
	}{
		{"obstacle, not phased", sim.KindObstacle, false, core.OutcomeLose},
		{"obstacle, phased", sim.KindObstacle, true, core.OutcomeNone},
		{"pit, not phased", sim.KindPit, false, core.OutcomeLose},
		{"pit, phased", sim.KindPit, true, core.OutcomeLose},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, "runner", 1)
			g.obstacles.obstacles = []sim.Entity{overlapping(g, tc.kind)}

			in := core.NewInputFrame()
			if tc.phased {
				in.Set(core.ActionPhase)
			}
			res := g.Step(in)
			if res.State.Outcome != tc.expected {
				t.Errorf("outcome = %v, expected %v", res.State.Outcome, tc.expected)
			}
		})
	}
}

func TestPitPhasePolicyConfigurable(t *testing.T) {
	cfg := testConfig(t, "runner")
	cfg.Obstacles.PitIgnoresPhase = false
	g := New("runner", "Runner", cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.obstacles.obstacles = []sim.Entity{overlapping(g, sim.KindPit)}

	res := g.Step(core.FrameOf(core.ActionPhase))
	if res.State.GameOver() {
		t.Error("phase should protect from pits when pit_ignores_phase is false")
	}
}

func TestLoseFreezesWorld(t *testing.T) {
	g := newGame(t, "runner", 3)
	g.obstacles.obstacles = append(g.obstacles.obstacles, overlapping(g, sim.KindObstacle))

	g.Step(core.NewInputFrame())
	if g.State().Outcome != core.OutcomeLose {
		t.Fatal("expected loss")
	}

	player := g.player
	obs := append([]sim.Entity(nil), g.Obstacles()...)
	state := g.State()
	for i := 0; i < 30; i++ {
		g.Step(core.FrameOf(core.ActionJump))
	}
	if g.player.Body != player.Body || g.State() != state {
		t.Error("player or state changed after the session ended")
	}
	for i := range obs {
		if g.Obstacles()[i].Body != obs[i].Body {
			t.Error("obstacles moved after the session ended")
		}
	}
}

func TestDoubleJumpOnPress(t *testing.T) {
	g := newGame(t, "runner", 1)
	g.obstacles.obstacles = nil

	jump := core.FrameOf(core.ActionJump)
	g.Step(jump)
	if g.player.OnGround || g.player.JumpsLeft != 1 {
		t.Fatalf("first jump: onGround=%v jumpsLeft=%d", g.player.OnGround, g.player.JumpsLeft)
	}

	// Holding jump does not spend the second jump
	g.Step(jump)
	if g.player.JumpsLeft != 1 {
		t.Fatalf("held jump should not repeat, jumpsLeft=%d", g.player.JumpsLeft)
	}

	g.Step(core.NewInputFrame())
	g.Step(jump)
	if g.player.JumpsLeft != 0 || g.player.Vel.Y != g.cfg.Physics.JumpVelocity+g.cfg.Physics.Gravity {
		t.Errorf("second jump: jumpsLeft=%d vy=%v", g.player.JumpsLeft, g.player.Vel.Y)
	}
}

func TestAirDriftMovesCamera(t *testing.T) {
	g := newGame(t, "runner", 1)
	g.obstacles.obstacles = nil
	x0 := g.player.Body.X

	g.Step(core.FrameOf(core.ActionJump))
	if g.player.Body.X != x0+g.cfg.Physics.AirDrift {
		t.Errorf("x = %v, expected drift to %v", g.player.Body.X, x0+g.cfg.Physics.AirDrift)
	}
	off := g.camera.Offset(g.player.Body.Pos())
	if off.X != g.player.Body.X-g.cfg.Player.X {
		t.Errorf("camera offset = %v", off.X)
	}
}

func TestPhaseBlocksJump(t *testing.T) {
	g := newGame(t, "runner", 1)
	g.obstacles.obstacles = nil

	g.Step(core.FrameOf(core.ActionPhase, core.ActionJump))
	if !g.player.OnGround {
		t.Error("jump should be blocked while phased")
	}
	if !g.player.Phase.Active {
		t.Error("phase should be active")
	}

	g.Step(core.FrameOf(core.ActionPhaseCancel))
	if g.player.Phase.Active {
		t.Error("phase cancel should end the phase")
	}
}

func TestClassicUsesBoxesAndRamp(t *testing.T) {
	g := newGame(t, "runner_classic", 5)
	if g.player.Mask != nil {
		t.Error("classic runner should use box collision")
	}
	for _, o := range g.Obstacles() {
		if o.Mask != nil {
			t.Error("classic obstacles should be boxes")
		}
	}

	g.obstacles.obstacles = nil
	start := g.ramp.Speed(0)
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
		g.obstacles.obstacles = nil
	}
	if g.Speed() <= start {
		t.Errorf("speed should ramp up, start=%v now=%v", start, g.Speed())
	}
}

func TestScoreCountsTicks(t *testing.T) {
	g := newGame(t, "runner", 1)
	g.obstacles.obstacles = nil
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
		g.obstacles.obstacles = nil
	}
	if st := g.State(); st.Score != 10 || st.Ticks != 10 {
		t.Errorf("state = %+v, expected 10 ticks", st)
	}
}

func TestScoreTextInSeconds(t *testing.T) {
	g := newGame(t, "runner", 1)
	tests := []struct {
		score int
		want  string
	}{
		{0, "Score: 0"},
		{59, "Score: 0"},
		{180, "Score: 3"},
	}
	for _, tc := range tests {
		if got := g.ScoreText(tc.score); got != tc.want {
			t.Errorf("ScoreText(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%45 == 0:
			inputs[i].Set(core.ActionJump)
		case i%70 < 20:
			inputs[i].Set(core.ActionPhase)
		}
	}

	run := func() (*Game, core.GameState) {
		g := newGame(t, "runner", 12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver() {
				break
			}
		}
		return g, g.State()
	}

	g1, s1 := run()
	g2, s2 := run()
	if s1 != s2 {
		t.Fatalf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.player.Body != g2.player.Body {
		t.Error("player positions differ")
	}
	o1, o2 := g1.Obstacles(), g2.Obstacles()
	if len(o1) != len(o2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i].Body != o2[i].Body || o1[i].Tag != o2[i].Tag {
			t.Errorf("obstacle %d differs", i)
		}
	}
}

func TestRenderDrawsPlayer(t *testing.T) {
	g := newGame(t, "runner_classic", 1)
	s := core.NewScreen(80, 24)
	c := core.NewScreenCanvas(s)
	c.Begin(g.Viewport())
	g.Render(c)

	// Player at x=100..150, y=540..590: columns 10-14, rows 21-23
	if s.Get(12, 22) != '█' {
		t.Errorf("expected player glyph at (12, 22), got %q\n%s", s.Get(12, 22), s.String())
	}
}
