package sim

import (
	"math"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// ViewCone is a watcher's field of view.
type ViewCone struct {
	FOV    float64 // Full cone width in degrees
	Length float64
}

// sightStep is the sampling distance for line-of-sight rays.
const sightStep = 4.0

// Facing returns the unit direction of an entity's velocity, or the zero
// vector when it is standing still.
func Facing(e *Entity) core.Vec {
	l := e.Vel.Len()
	if l == 0 {
		return core.Vec{}
	}
	return core.Vec{X: e.Vel.X / l, Y: e.Vel.Y / l}
}

// Sees reports whether target's center lies inside the cone cast from
// from in direction dir. A zero dir sees in every direction.
// When occluders is non-nil, any live occluder crossing the ray hides the target.
func (vc ViewCone) Sees(from core.Vec, dir core.Vec, target core.Vec, occluders []Entity) bool {
	d := target.Sub(from)
	dist := d.Len()
	if dist >= vc.Length {
		return false
	}
	if dist > 0 && dir.Len() > 0 {
		cos := (d.X*dir.X + d.Y*dir.Y) / (dist * dir.Len())
		half := vc.FOV / 2 * math.Pi / 180
		if cos < math.Cos(half) {
			return false
		}
	}
	return clearLine(from, target, occluders)
}

// clearLine samples the segment from a to b against occluder bodies.
func clearLine(a, b core.Vec, occluders []Entity) bool {
	d := b.Sub(a)
	n := int(d.Len()/sightStep) + 1
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		x, y := a.X+d.X*t, a.Y+d.Y*t
		for j := range occluders {
			if !occluders[j].Dead && occluders[j].Body.Contains(x, y) {
				return false
			}
		}
	}
	return true
}
