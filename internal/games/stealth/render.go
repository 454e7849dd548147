package stealth

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// Cone sketch resolution.
const (
	coneRayStep  = 10.0 // Degrees between rays
	coneDotStep  = 15.0 // World units between dots on a ray
	coneDotSize  = 4.0
	coneDotAlpha = 0.2
)

// Render draws the world through the camera, then the HUD.
func (g *Game) Render(c core.Canvas) {
	h := g.cfg.World.Height
	target := g.target()
	visible := func(r core.Rect) bool { return r.Bottom() >= 0 && r.Y <= h }

	for _, o := range g.obstacles {
		if r := g.camera.Project(o.Body, target); visible(r) {
			c.FillRect(r, core.ColorGray, 1)
		}
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		r := g.camera.Project(e.Body, target)
		if !visible(r) {
			continue
		}
		col := core.ColorRed
		if e.Tag == "alert" {
			col = core.ColorBrightRed
		}
		g.drawCone(c, e, target, col)
		c.FillRect(r, col, 1)
	}

	c.FillRect(g.camera.Project(g.player.Body, target), core.ColorBrightGreen, 1)

	c.Text(10, 10, fmt.Sprintf("Score: %d", g.session.Score), core.ColorWhite)
	c.Text(10, 35, fmt.Sprintf("Guards: %d", len(g.enemies)), core.ColorGray)
}

// drawCone sketches a guard's view as dotted rays.
func (g *Game) drawCone(c core.Canvas, e *sim.Entity, target core.Vec, col core.Color) {
	f := sim.Facing(e)
	if f.Len() == 0 {
		return
	}
	base := math.Atan2(f.Y, f.X)
	half := g.cone.FOV / 2
	from := e.Center()
	for deg := -half; deg <= half; deg += coneRayStep {
		a := base + deg*math.Pi/180
		for d := coneDotStep; d < g.cone.Length; d += coneDotStep {
			p := core.NewRect(from.X+math.Cos(a)*d-coneDotSize/2, from.Y+math.Sin(a)*d-coneDotSize/2, coneDotSize, coneDotSize)
			c.FillRect(g.camera.Project(p, target), col, coneDotAlpha)
		}
	}
}
