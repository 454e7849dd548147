package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// BounceX inverts horizontal velocity.
func BounceX(e *Entity) {
	e.Vel.X = -e.Vel.X
}

// BounceY inverts vertical velocity.
func BounceY(e *Entity) {
	e.Vel.Y = -e.Vel.Y
}

// Wall identifies which boundary a ball touched.
type Wall int

const (
	WallNone Wall = iota
	WallLeft
	WallRight
	WallTop
	WallBottom
)

// ResolveWalls bounces a ball off the left, right and top edges of the field.
// A wall only flips velocity when the ball is moving into it, so a ball that
// is still past the edge on the next tick does not jitter.
// The bottom edge is open; it is reported but never bounced.
func ResolveWalls(ball *Entity, field core.Rect) Wall {
	hit := WallNone
	if ball.Body.X <= field.X && ball.Vel.X < 0 {
		BounceX(ball)
		hit = WallLeft
	} else if ball.Body.Right() >= field.Right() && ball.Vel.X > 0 {
		BounceX(ball)
		hit = WallRight
	}
	if ball.Body.Y <= field.Y && ball.Vel.Y < 0 {
		BounceY(ball)
		hit = WallTop
	}
	if hit == WallNone && ball.Body.Y > field.Bottom() {
		hit = WallBottom
	}
	return hit
}

// ResolvePaddle bounces a ball moving down onto the paddle.
// Vertical velocity flips, horizontal velocity gains spin proportional to
// the contact offset from the paddle center, and the ball is placed just
// above the paddle so it cannot collide twice.
func ResolvePaddle(ball, paddle *Entity, spin float64) bool {
	if ball.Vel.Y <= 0 || !ball.Body.Intersects(paddle.Body) {
		return false
	}
	half := paddle.Body.W / 2
	if half <= 0 {
		return false
	}
	offset := (ball.Center().X - paddle.Center().X) / half
	BounceY(ball)
	ball.Vel.X += spin * core.ClampF(offset, -1, 1)
	ball.Body.Y = paddle.Body.Y - ball.Body.H
	return true
}

// HitBrick consumes the first live brick containing the ball center.
// At most one brick is removed per call. Returns the brick index or -1.
func HitBrick(ball *Entity, bricks []Entity) int {
	c := ball.Center()
	for i := range bricks {
		if bricks[i].Dead {
			continue
		}
		if bricks[i].Body.Contains(c.X, c.Y) {
			bricks[i].Kill()
			BounceY(ball)
			return i
		}
	}
	return -1
}

// LiveCount returns the number of entities not marked for removal.
func LiveCount(es []Entity) int {
	n := 0
	for i := range es {
		if !es[i].Dead {
			n++
		}
	}
	return n
}
