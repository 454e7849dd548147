package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// Camera follows a target by keeping it at a fixed screen anchor.
type Camera struct {
	Anchor core.Vec // Screen position where the target is drawn
}

// Offset returns the world-to-screen offset for a target position.
func (c Camera) Offset(target core.Vec) core.Vec {
	return target.Sub(c.Anchor)
}

// Project converts a world rectangle to screen space.
func (c Camera) Project(r core.Rect, target core.Vec) core.Rect {
	off := c.Offset(target)
	return r.Translate(core.Vec{X: -off.X, Y: -off.Y})
}
