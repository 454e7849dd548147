package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// binding maps keys to an action. Held bindings stay active while a key
// is down; the rest fire once per press.
type binding struct {
	keys   []ebiten.Key
	action core.Action
	held   bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown, true},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionJump, true},
	{[]ebiten.Key{ebiten.KeyF}, core.ActionPhase, false},
	{[]ebiten.Key{ebiten.KeyG}, core.ActionPhaseCancel, false},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm, false},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack, false},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit, false},
}

// pollInput reads the keyboard into an input frame.
func pollInput() core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if (b.held && ebiten.IsKeyPressed(k)) || (!b.held && inpututil.IsKeyJustPressed(k)) {
				f.Set(b.action)
				break
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Set(core.ActionPhase)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		f.Set(core.ActionPhaseCancel)
	}
	return f
}
