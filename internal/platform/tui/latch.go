package tui

import "github.com/vovakirdan/arcade-sim/internal/core"

// DefaultHoldTicks is how long a movement key stays down after its last
// key event. Terminals report key repeats but never releases.
const DefaultHoldTicks = 6

// Latch turns discrete key events into held actions.
// Movement actions stay active for hold ticks after each press and are
// refreshed by key repeats; every other action lasts exactly one tick.
type Latch struct {
	hold int
	left map[core.Action]int
	once core.InputFrame
}

// NewLatch creates a latch holding movement keys for hold ticks.
func NewLatch(hold int) *Latch {
	if hold < 1 {
		hold = 1
	}
	return &Latch{
		hold: hold,
		left: make(map[core.Action]int),
		once: core.NewInputFrame(),
	}
}

// held reports whether an action is latched rather than one-shot.
func held(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// Press records a key event.
func (l *Latch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if held(a) {
		l.left[a] = l.hold
		// Opposing directions cancel each other immediately
		switch a {
		case core.ActionLeft:
			delete(l.left, core.ActionRight)
		case core.ActionRight:
			delete(l.left, core.ActionLeft)
		case core.ActionUp:
			delete(l.left, core.ActionDown)
		case core.ActionDown:
			delete(l.left, core.ActionUp)
		}
		return
	}
	l.once.Set(a)
}

// Frame returns the input for the current tick and ages the latch.
func (l *Latch) Frame() core.InputFrame {
	f := l.once.Clone()
	l.once.Clear()
	for a, n := range l.left {
		f.Set(a)
		if n <= 1 {
			delete(l.left, a)
		} else {
			l.left[a] = n - 1
		}
	}
	return f
}

// Reset drops every latched action.
func (l *Latch) Reset() {
	clear(l.left)
	l.once.Clear()
}
