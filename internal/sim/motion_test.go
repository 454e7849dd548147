package sim

import (
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

func testMotion() Motion {
	return Motion{Gravity: 0.5, JumpVelocity: -10, MaxJumps: 2, GroundY: 390}
}

func grounded(m Motion) Entity {
	e := Entity{Kind: KindPlayer, Body: core.NewRect(100, m.GroundY, 50, 50)}
	m.Land(&e)
	return e
}

func TestFallAddsGravityEachTick(t *testing.T) {
	m := testMotion()
	e := grounded(m)
	m.Jump(&e)

	prev := e.Vel.Y
	for i := 0; i < 10; i++ {
		m.Fall(&e)
		if e.OnGround {
			t.Fatalf("landed too early at tick %d", i)
		}
		if e.Vel.Y-prev != m.Gravity {
			t.Errorf("tick %d: vy changed by %v, expected %v", i, e.Vel.Y-prev, m.Gravity)
		}
		prev = e.Vel.Y
	}
}

func TestFallPositionBeforeGravity(t *testing.T) {
	m := testMotion()
	e := grounded(m)
	m.Jump(&e)

	// First airborne tick moves by the jump velocity, not jump+gravity
	m.Fall(&e)
	if e.Body.Y != m.GroundY+m.JumpVelocity {
		t.Errorf("y = %v, expected %v", e.Body.Y, m.GroundY+m.JumpVelocity)
	}
}

func TestLandingIsIdempotent(t *testing.T) {
	m := testMotion()
	e := grounded(m)

	for i := 0; i < 5; i++ {
		m.Fall(&e)
		if e.Vel.Y != 0 || e.Body.Y != m.GroundY || !e.OnGround {
			t.Fatalf("grounded entity moved: y=%v vy=%v onGround=%v", e.Body.Y, e.Vel.Y, e.OnGround)
		}
	}
}

func TestJumpReturnsToGround(t *testing.T) {
	m := testMotion()
	e := grounded(m)
	m.Jump(&e)

	for i := 0; i < 1000 && !e.OnGround; i++ {
		m.Fall(&e)
	}
	if !e.OnGround {
		t.Fatal("entity never landed")
	}
	if e.Body.Y != m.GroundY || e.Vel.Y != 0 {
		t.Errorf("landing should snap: y=%v vy=%v", e.Body.Y, e.Vel.Y)
	}
	if e.JumpsLeft != m.MaxJumps {
		t.Errorf("landing should reset jumps, got %d", e.JumpsLeft)
	}
}

func TestDoubleJump(t *testing.T) {
	m := testMotion()
	e := grounded(m)

	if !m.Jump(&e) {
		t.Fatal("first jump should succeed")
	}
	m.Fall(&e)
	if !m.Jump(&e) {
		t.Fatal("second jump should succeed in the air")
	}
	if e.Vel.Y != m.JumpVelocity {
		t.Errorf("second jump should reset vy, got %v", e.Vel.Y)
	}
	if m.Jump(&e) {
		t.Error("third jump should be refused")
	}
}

func TestSteerClamps(t *testing.T) {
	tests := []struct {
		name     string
		x, dir   float64
		expected float64
	}{
		{"right", 100, 1, 105},
		{"left", 100, -1, 95},
		{"clamp right", 748, 1, 750},
		{"clamp left", 2, -1, 0},
		{"idle", 100, 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Body: core.NewRect(tc.x, 0, 50, 50)}
			Steer(&e, tc.dir, 5, 0, 750)
			if e.Body.X != tc.expected {
				t.Errorf("x = %v, expected %v", e.Body.X, tc.expected)
			}
		})
	}
}
