package stealth

import (
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// spawnAttempts bounds rejection sampling when placing entities.
const spawnAttempts = 20

// bandCount returns how many obstacles a new band receives at score.
// Later bands thin out so the guards get the upper hand.
func bandCount(cfg config.StealthObstacles, score int) int {
	n := cfg.BandCount
	if cfg.ScoreStep > 0 {
		n -= score / cfg.ScoreStep
	}
	if n < cfg.MinCount {
		n = cfg.MinCount
	}
	return n
}

// GenerateBand places up to count obstacles inside area, skipping any
// that would overlap keepOut.
func GenerateBand(rng *rand.Rand, cfg config.StealthObstacles, area, keepOut core.Rect, count int) []sim.Entity {
	out := make([]sim.Entity, 0, count)
	for i := 0; i < count; i++ {
		for try := 0; try < spawnAttempts; try++ {
			w := cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize)
			h := cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize)
			r := core.NewRect(
				area.X+rng.Float64()*(area.W-w),
				area.Y+rng.Float64()*(area.H-h),
				w, h,
			)
			if r.Intersects(keepOut) {
				continue
			}
			out = append(out, sim.Entity{Kind: sim.KindObstacle, Body: r})
			break
		}
	}
	return out
}
