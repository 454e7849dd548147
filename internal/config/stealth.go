package config

import "fmt"

// StealthConfig contains all configuration for the top-down stealth game.
type StealthConfig struct {
	World     WorldConfig      `yaml:"world"`
	Player    StealthPlayer    `yaml:"player"`
	Enemies   StealthEnemies   `yaml:"enemies"`
	Obstacles StealthObstacles `yaml:"obstacles"`
}

// StealthPlayer defines the player square.
type StealthPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// StealthEnemies defines patrolling guards.
type StealthEnemies struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	FOV          float64 `yaml:"fov"`        // View cone width in degrees
	ViewLength   float64 `yaml:"view_length"` // View cone reach
	TurnChance   float64 `yaml:"turn_chance"` // Chance per tick of picking a new direction
	Initial      int     `yaml:"initial"`
	SafeDistance float64 `yaml:"safe_distance"` // Minimum spawn distance from the player
	PerBand      int     `yaml:"per_band"`      // Enemies added with each new band
	LineOfSight  bool    `yaml:"line_of_sight"` // Obstacles block the view cone
}

// StealthObstacles defines obstacle bands generated ahead of the player.
type StealthObstacles struct {
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	BandCount  int     `yaml:"band_count"`  // Obstacles in the first band
	MinCount   int     `yaml:"min_count"`   // Floor for later bands
	ScoreStep  int     `yaml:"score_step"`  // Score per obstacle removed from later bands
	ClearStart float64 `yaml:"clear_start"` // Obstacle-free radius around the start
}

// Validate checks that the config describes a playable map.
func (c StealthConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return fmt.Errorf("stealth: %w", err)
	}
	if c.Player.Size <= 0 || c.Player.Speed <= 0 {
		return fmt.Errorf("stealth: player size and speed must be positive")
	}
	e := c.Enemies
	if e.Size <= 0 || e.Speed < 0 {
		return fmt.Errorf("stealth: enemy size must be positive")
	}
	if e.FOV <= 0 || e.FOV > 360 {
		return fmt.Errorf("stealth: enemies.fov must be in (0, 360], got %v", e.FOV)
	}
	if e.ViewLength <= 0 {
		return fmt.Errorf("stealth: enemies.view_length must be positive")
	}
	if e.TurnChance < 0 || e.TurnChance > 1 {
		return fmt.Errorf("stealth: enemies.turn_chance must be in [0, 1]")
	}
	if e.Initial < 0 || e.PerBand < 0 {
		return fmt.Errorf("stealth: enemy counts must not be negative")
	}
	o := c.Obstacles
	if o.MinSize <= 0 || o.MaxSize < o.MinSize {
		return fmt.Errorf("stealth: obstacle size range [%v, %v] is invalid", o.MinSize, o.MaxSize)
	}
	if o.MaxSize >= c.World.Width {
		return fmt.Errorf("stealth: obstacles wider than the world")
	}
	if o.BandCount < 0 || o.MinCount < 0 || o.ScoreStep < 0 {
		return fmt.Errorf("stealth: obstacle counts must not be negative")
	}
	return nil
}

func (c *StealthConfig) applyPreset(p DifficultyPreset) {
	c.Enemies.Speed *= p.speedFactor()
	switch p {
	case DifficultyEasy:
		c.Enemies.ViewLength *= 0.8
	case DifficultyHard:
		c.Enemies.ViewLength *= 1.2
		c.Enemies.Initial++
	}
}

// LoadStealth loads the stealth config.
func LoadStealth(opts Options) (StealthConfig, error) {
	var cfg StealthConfig
	if err := load("stealth", opts, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyPreset(presetOrNormal(opts.Preset))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
