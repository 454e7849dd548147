package engine

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// Draw renders the game and, outside of play, a modal overlay.
func (d *Driver) Draw(c core.Canvas) {
	view := d.game.Viewport()
	c.Begin(view)
	d.game.Render(c)

	var lines []string
	switch d.mode {
	case ModeMenu:
		lines = append(lines, d.game.Title(), "")
		lines = append(lines, d.game.Help()...)
		lines = append(lines, "", "Enter: start   Esc: back   Q: quit")
	case ModePaused:
		lines = []string{"PAUSED", "", "P: resume   R: restart   Esc: menu"}
	case ModeTerminal:
		title := "GAME OVER"
		if d.state.Outcome == core.OutcomeWin {
			title = "YOU WIN!"
		}
		lines = []string{title, "", registry.ScoreText(d.game, d.state.Score), "", "R: restart   Esc: menu"}
	default:
		return
	}
	drawPanel(c, view, lines)
}

// drawPanel draws centered text lines in a framed box.
func drawPanel(c core.Canvas, view core.Size, lines []string) {
	lineH := view.H / 20
	h := float64(len(lines)+2) * lineH
	w := view.W * 0.7
	r := core.NewRect((view.W-w)/2, (view.H-h)/2, w, h)
	c.Panel(r)

	y := r.Y + lineH
	for _, line := range lines {
		if line != "" {
			c.TextCentered(y, line, core.ColorBrightWhite)
		}
		y += lineH
	}
}
