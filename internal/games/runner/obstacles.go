package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
	"github.com/vovakirdan/arcade-sim/internal/sprite"
)

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []sim.Entity
	rng       *rand.Rand
	cfg       *config.RunnerConfig
	masks     map[string]*sim.Mask // Per-kind masks, nil entries mean solid boxes
	weights   int
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg *config.RunnerConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]sim.Entity, 0, cfg.Obstacles.Count*2),
		cfg:       cfg,
		masks:     make(map[string]*sim.Mask),
	}
	for _, k := range cfg.Obstacles.Kinds {
		om.weights += kindWeight(k)
		if cfg.Obstacles.MaskCollision && k.Sprite != "" {
			if m, err := sprite.MaskNamed(k.Sprite, int(k.Width), int(k.Height), k.Angle); err == nil {
				om.masks[k.Name] = m
			}
		}
	}
	om.Reset(seed)
	return om
}

func kindWeight(k config.ObstacleKind) int {
	if k.Weight <= 0 {
		return 1
	}
	return k.Weight
}

// Reset clears all obstacles and resets the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Seed places the initial look-ahead obstacles relative to the player.
func (om *ObstacleManager) Seed(playerX float64) {
	for i := 0; i < om.cfg.Obstacles.Count; i++ {
		om.TrySpawn(playerX + float64(i)*om.cfg.Obstacles.InitialSpacing)
	}
}

// Move shifts every obstacle left by speed.
func (om *ObstacleManager) Move(speed float64) {
	for i := range om.obstacles {
		om.obstacles[i].Body.X -= speed
	}
}

// Cull marks obstacles far behind the player and compacts the list.
func (om *ObstacleManager) Cull(playerX float64) {
	limit := playerX - om.cfg.World.Width
	for i := range om.obstacles {
		if om.obstacles[i].Body.X < limit {
			om.obstacles[i].Kill()
		}
	}
	om.obstacles = sim.Compact(om.obstacles)
}

// Refill attempts one spawn when below the look-ahead count.
func (om *ObstacleManager) Refill(playerX float64) {
	if len(om.obstacles) < om.cfg.Obstacles.Count {
		om.TrySpawn(playerX)
	}
}

// TrySpawn places a random obstacle one screen ahead of baseX plus a random
// distance. The spawn is skipped when it would land within the minimum gap
// of a live obstacle. Returns whether an obstacle was added.
func (om *ObstacleManager) TrySpawn(baseX float64) bool {
	o := om.cfg.Obstacles
	k := om.pickKind()

	d := o.SpawnMin
	if span := int(o.SpawnMax - o.SpawnMin); span > 0 {
		d += float64(om.rng.Intn(span + 1))
	}
	x := baseX + om.cfg.World.Width + d

	for i := range om.obstacles {
		if math.Abs(om.obstacles[i].Body.X-x) < o.MinGap {
			return false
		}
	}

	kind := sim.KindObstacle
	if k.Pit {
		kind = sim.KindPit
	}
	om.obstacles = append(om.obstacles, sim.Entity{
		Kind: kind,
		Tag:  k.Name,
		Body: core.NewRect(x, om.cfg.World.Height-k.Height-k.Bottom, k.Width, k.Height),
		Mask: om.masks[k.Name],
	})
	return true
}

// pickKind chooses an obstacle kind by weight.
func (om *ObstacleManager) pickKind() config.ObstacleKind {
	kinds := om.cfg.Obstacles.Kinds
	n := om.rng.Intn(om.weights)
	for _, k := range kinds {
		n -= kindWeight(k)
		if n < 0 {
			return k
		}
	}
	return kinds[len(kinds)-1]
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []sim.Entity {
	return om.obstacles
}

// Hit returns the first obstacle that kills the player, or nil.
func (om *ObstacleManager) Hit(player *sim.Entity, policy sim.HazardPolicy) *sim.Entity {
	for i := range om.obstacles {
		o := &om.obstacles[i]
		if !policy.Lethal(player, o) {
			continue
		}
		if sim.Overlaps(player, o) {
			return o
		}
	}
	return nil
}
