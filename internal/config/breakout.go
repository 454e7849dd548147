package config

import "fmt"

// BreakoutConfig contains all configuration for the ball and bricks game.
type BreakoutConfig struct {
	World  WorldConfig    `yaml:"world"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gap     float64 `yaml:"gap"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`

	// Layout optionally shapes the grid: one string per row, '#' places a
	// brick and anything else leaves a hole. Empty means a full grid.
	Layout []string `yaml:"layout"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"` // Distance from the paddle top to the bottom edge
}

// BreakoutBall defines ball motion.
type BreakoutBall struct {
	Radius     float64 `yaml:"radius"`
	SpeedX     float64 `yaml:"speed_x"`
	SpeedY     float64 `yaml:"speed_y"`
	Spin       float64 `yaml:"spin"`        // Horizontal speed added at the paddle edge
	LaunchRamp int     `yaml:"launch_ramp"` // Ticks to reach full speed after serve
	ServeDelay int     `yaml:"serve_delay"` // Ticks before the ball starts moving
}

// Validate checks that the config describes a playable board.
func (c BreakoutConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}
	b := c.Bricks
	if b.Columns < 1 || b.Rows < 1 {
		return fmt.Errorf("breakout: brick grid must be at least 1x1, got %dx%d", b.Columns, b.Rows)
	}
	if b.Width <= 0 || b.Height <= 0 || b.Gap < 0 {
		return fmt.Errorf("breakout: brick size must be positive")
	}
	if len(b.Layout) > b.Rows {
		return fmt.Errorf("breakout: layout has %d rows, grid has %d", len(b.Layout), b.Rows)
	}
	for i, row := range b.Layout {
		if len(row) > b.Columns {
			return fmt.Errorf("breakout: layout row %d is wider than %d columns", i, b.Columns)
		}
	}
	if b.OffsetX+float64(b.Columns)*(b.Width+b.Gap)-b.Gap > c.World.Width {
		return fmt.Errorf("breakout: brick grid wider than the world")
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Width > c.World.Width {
		return fmt.Errorf("breakout: paddle size is invalid")
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("breakout: paddle.speed must not be negative")
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("breakout: ball.radius must be positive")
	}
	if c.Ball.LaunchRamp < 0 || c.Ball.ServeDelay < 0 {
		return fmt.Errorf("breakout: ball timers must not be negative")
	}
	return nil
}

func (c *BreakoutConfig) applyPreset(p DifficultyPreset) {
	f := p.speedFactor()
	c.Ball.SpeedX *= f
	c.Ball.SpeedY *= f
	switch p {
	case DifficultyEasy:
		c.Paddle.Width *= 1.2
	case DifficultyHard:
		c.Paddle.Width *= 0.8
	}
}

// LoadBreakout loads the breakout config.
func LoadBreakout(opts Options) (BreakoutConfig, error) {
	var cfg BreakoutConfig
	if err := load("breakout", opts, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyPreset(presetOrNormal(opts.Preset))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
