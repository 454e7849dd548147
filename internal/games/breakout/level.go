// Package breakout implements a ball and bricks game set in space.
// The paddle keeps the ball in play; clearing every brick wins and letting
// the ball fall past the paddle loses.
package breakout

import (
	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// BuildBricks lays out the brick grid column by column.
// With a layout, only cells marked '#' receive a brick.
func BuildBricks(cfg config.BreakoutBricks) []sim.Entity {
	bricks := make([]sim.Entity, 0, cfg.Columns*cfg.Rows)
	for col := 0; col < cfg.Columns; col++ {
		for row := 0; row < cfg.Rows; row++ {
			if !cellFilled(cfg.Layout, row, col) {
				continue
			}
			x := float64(col)*(cfg.Width+cfg.Gap) + cfg.OffsetX
			y := float64(row)*(cfg.Height+cfg.Gap) + cfg.OffsetY
			bricks = append(bricks, sim.Entity{
				Kind: sim.KindBrick,
				Body: core.NewRect(x, y, cfg.Width, cfg.Height),
			})
		}
	}
	return bricks
}

func cellFilled(layout []string, row, col int) bool {
	if len(layout) == 0 {
		return true
	}
	if row >= len(layout) || col >= len(layout[row]) {
		return false
	}
	return layout[row][col] == '#'
}

// brickColor picks a color by row for the classic rainbow look.
func brickColor(rowY, offsetY, pitch float64) core.Color {
	colors := []core.Color{
		core.ColorBrightRed,
		core.ColorOrange,
		core.ColorBrightYellow,
		core.ColorBrightGreen,
		core.ColorBrightCyan,
		core.ColorBrightBlue,
		core.ColorBrightMagenta,
	}
	row := 0
	if pitch > 0 {
		row = int((rowY - offsetY) / pitch)
	}
	if row < 0 {
		row = 0
	}
	return colors[row%len(colors)]
}
