// Package sim holds the shared per-tick simulation core used by every game:
// plain entity state, the update step (kinematics, phase), collision checks,
// bounce resolution and the session outcome state machine.
//
// Nothing here knows about terminals, windows or timing. A tick is one call
// into these functions; the engine package decides when ticks happen.
package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// Kind identifies what an entity is for collision policy and rendering.
type Kind int

const (
	KindPlayer   Kind = iota
	KindObstacle      // Loses the session on contact unless the player is phased
	KindPit           // Loses the session on contact, phase protection is per variant
	KindBrick         // Consumed on contact, bounces the ball
	KindEnemy         // Patrols and detects the player
	KindBall
	KindPaddle
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindPit:
		return "pit"
	case KindBrick:
		return "brick"
	case KindEnemy:
		return "enemy"
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Entity is the state of one simulated object.
// Geometry is a composed rectangle, not a subtype of any render type.
type Entity struct {
	Kind Kind
	Tag  string    // Variant name within a kind (e.g. "wall", "block")
	Body core.Rect // World position (top-left) and size
	Vel  core.Vec  // Velocity in world units per tick
	Mask *Mask     // Opaque silhouette at Body size, nil for a solid box

	OnGround  bool
	JumpsLeft int
	Phase     Phase

	// Dead marks the entity for removal at the end of the tick.
	Dead bool
}

// Center returns the center of the entity's body.
func (e *Entity) Center() core.Vec {
	return e.Body.Center()
}

// Invincible reports whether lose-condition collisions are ignored.
func (e *Entity) Invincible() bool {
	return e.Phase.Active
}

// Kill marks the entity for removal.
func (e *Entity) Kill() {
	e.Dead = true
}

// Compact removes dead entities in place and returns the shortened slice.
// Call it after iterating, never during.
func Compact(es []Entity) []Entity {
	alive := es[:0]
	for _, e := range es {
		if !e.Dead {
			alive = append(alive, e)
		}
	}
	// Drop references held by the tail so masks can be collected
	for i := len(alive); i < len(es); i++ {
		es[i] = Entity{}
	}
	return alive
}
