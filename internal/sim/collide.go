package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// Overlaps reports whether two entities collide. Boxes are checked first;
// when either entity carries a mask the opaque pixels decide.
func Overlaps(a, b *Entity) bool {
	if !a.Body.Intersects(b.Body) {
		return false
	}
	if a.Mask == nil && b.Mask == nil {
		return true
	}
	return MaskOverlap(a.Body, a.Mask, b.Body, b.Mask)
}

// HazardPolicy decides which hazards phase protects against.
type HazardPolicy struct {
	PitIgnoresPhase bool // Pits kill even while phased
}

// Lethal reports whether touching hazard h kills the player p.
func (hp HazardPolicy) Lethal(p, h *Entity) bool {
	switch h.Kind {
	case KindObstacle, KindEnemy:
		return !p.Invincible()
	case KindPit:
		return hp.PitIgnoresPhase || !p.Invincible()
	default:
		return false
	}
}

// FirstHit returns the index of the first live entity that overlaps e,
// or -1 when nothing does.
func FirstHit(e *Entity, others []Entity) int {
	for i := range others {
		if others[i].Dead {
			continue
		}
		if Overlaps(e, &others[i]) {
			return i
		}
	}
	return -1
}

// BlockedBy reports whether r overlaps any rectangle in walls or leaves bounds.
func BlockedBy(r core.Rect, bounds core.Rect, walls []Entity) bool {
	if r.X < bounds.X || r.Y < bounds.Y || r.Right() > bounds.Right() || r.Bottom() > bounds.Bottom() {
		return true
	}
	for i := range walls {
		if !walls[i].Dead && r.Intersects(walls[i].Body) {
			return true
		}
	}
	return false
}
