package stealth

import (
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

var directions = []core.Vec{
	{X: -1}, {X: 1}, {Y: -1}, {Y: 1},
}

// randomHeading returns one of the four axis directions scaled by speed.
func randomHeading(rng *rand.Rand, speed float64) core.Vec {
	d := directions[rng.Intn(len(directions))]
	return core.Vec{X: d.X * speed, Y: d.Y * speed}
}

// spawnEnemy tries to place a guard in area, clear of walls and other
// guards and at least safe away from the player. Returns false when no spot
// was found.
func (g *Game) spawnEnemy(area core.Rect) bool {
	e := g.cfg.Enemies
	pc := g.player.Center()
	for try := 0; try < spawnAttempts; try++ {
		r := core.NewRect(
			area.X+g.rng.Float64()*(area.W-e.Size),
			area.Y+g.rng.Float64()*(area.H-e.Size),
			e.Size, e.Size,
		)
		if sim.BlockedBy(r, area, g.obstacles) {
			continue
		}
		if r.Center().Sub(pc).Len() < e.SafeDistance {
			continue
		}
		guard := sim.Entity{Kind: sim.KindEnemy, Body: r}
		if sim.FirstHit(&guard, g.enemies) >= 0 {
			continue
		}
		guard.Vel = randomHeading(g.rng, e.Speed)
		g.enemies = append(g.enemies, guard)
		return true
	}
	return false
}

// moveEnemies walks each guard along its heading. Guards occasionally
// turn on their own and always turn when they bump into something.
func (g *Game) moveEnemies() {
	bounds := g.bounds()
	for i := range g.enemies {
		e := &g.enemies[i]
		if g.rng.Float64() < g.cfg.Enemies.TurnChance {
			e.Vel = randomHeading(g.rng, g.cfg.Enemies.Speed)
		}
		next := e.Body.Translate(e.Vel)
		if sim.BlockedBy(next, bounds, g.obstacles) {
			e.Vel = randomHeading(g.rng, g.cfg.Enemies.Speed)
			continue
		}
		e.Body = next
	}
}

// spotted returns the first guard that sees or touches the player, or nil.
func (g *Game) spotted() *sim.Entity {
	var occluders []sim.Entity
	if g.cfg.Enemies.LineOfSight {
		occluders = g.obstacles
	}
	pc := g.player.Center()
	for i := range g.enemies {
		e := &g.enemies[i]
		if sim.Overlaps(&g.player, e) && g.policy.Lethal(&g.player, e) {
			return e
		}
		if g.cone.Sees(e.Center(), sim.Facing(e), pc, occluders) {
			return e
		}
	}
	return nil
}
