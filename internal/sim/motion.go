package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// Motion holds the kinematic constants for one entity class.
// One tick is one unit of time: velocities are world units per tick.
type Motion struct {
	Gravity      float64 // Added to vertical velocity every airborne tick
	JumpVelocity float64 // Vertical velocity set on jump (negative is up)
	MaxJumps     int     // Jumps allowed before landing (2 = double jump)
	MaxFall      float64 // Terminal fall speed, 0 for none
	GroundY      float64 // Body.Y at which the entity stands on the ground
}

// Land places the entity on the ground and restores its jumps.
func (m Motion) Land(e *Entity) {
	e.Body.Y = m.GroundY
	e.Vel.Y = 0
	e.OnGround = true
	e.JumpsLeft = m.MaxJumps
}

// Jump starts or extends a jump if any jumps remain.
// Returns false when the entity has no jumps left.
func (m Motion) Jump(e *Entity) bool {
	if e.JumpsLeft <= 0 {
		return false
	}
	e.JumpsLeft--
	e.Vel.Y = m.JumpVelocity
	e.OnGround = false
	return true
}

// Fall integrates one airborne tick: position first, then gravity.
// A grounded entity is left untouched.
func (m Motion) Fall(e *Entity) {
	if e.OnGround {
		return
	}
	e.Body.Y += e.Vel.Y
	e.Vel.Y += m.Gravity
	if m.MaxFall > 0 && e.Vel.Y > m.MaxFall {
		e.Vel.Y = m.MaxFall
	}
	if e.Body.Y >= m.GroundY {
		m.Land(e)
	}
}

// Steer moves the entity horizontally by dir*speed, clamped to [minX, maxX].
func Steer(e *Entity, dir, speed, minX, maxX float64) {
	e.Body.X = core.ClampF(e.Body.X+dir*speed, minX, maxX)
}

// Advance moves the entity by its velocity.
func Advance(e *Entity) {
	e.Body.X += e.Vel.X
	e.Body.Y += e.Vel.Y
}
