package runner

import (
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// Render draws the world through the camera, then the HUD.
func (g *Game) Render(c core.Canvas) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	target := g.player.Body.Pos()

	// Ground
	groundY := g.motion.GroundY + g.cfg.Player.Height
	c.FillRect(core.NewRect(0, groundY, w, h-groundY), core.ColorGray, 0.3)

	for _, o := range g.obstacles.Obstacles() {
		r := g.camera.Project(o.Body, core.Vec{X: target.X})
		if r.Right() < 0 || r.X > w {
			continue
		}
		col := core.ColorRed
		if o.Kind == sim.KindPit {
			col = core.ColorBrightRed
		}
		c.FillShape(r, shapeOf(o.Mask), col, 1)
	}

	alpha := 1.0
	col := core.ColorBrightCyan
	if g.cfg.Phase.Enabled {
		alpha = g.player.Phase.Alpha(g.phaseCfg)
		if g.player.Phase.Active {
			col = core.ColorBlue
		}
	}
	pr := g.camera.Project(g.player.Body, core.Vec{X: target.X})
	c.FillShape(pr, shapeOf(g.player.Mask), col, alpha)

	g.drawHUD(c)
}

// ScoreText shows the score in whole seconds survived.
func (g *Game) ScoreText(score int) string {
	rate := g.cfg.World.TickRate
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("Score: %d", score/rate)
}

func (g *Game) drawHUD(c core.Canvas) {
	w := g.cfg.World.Width
	c.Text(10, 10, g.ScoreText(g.session.Score), core.ColorWhite)

	if g.ramp.IsEnabled() {
		spd := fmt.Sprintf("Spd: %.1f", g.speed)
		c.Text(w-120, 10, spd, core.ColorWhite)
	}

	if g.cfg.Phase.Enabled {
		barW, barH := 200.0, 20.0
		x := (w - barW) / 2
		c.FillRect(core.NewRect(x, 10, barW, barH), core.ColorGray, 0.25)
		fill := barW * g.player.Phase.Alpha(g.phaseCfg)
		if fill > 0 {
			c.FillRect(core.NewRect(x, 10, fill, barH), core.ColorGreen, 1)
		}
	}
}

// shapeOf converts a possibly-nil mask to a Shape without boxing a nil
// pointer into a non-nil interface.
func shapeOf(m *sim.Mask) core.Shape {
	if m == nil {
		return nil
	}
	return m
}
