package config

import "fmt"

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    RunnerPlayer    `yaml:"player"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Phase     PhaseConfig     `yaml:"phase"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Ramp      RampConfig      `yaml:"ramp"`
}

// RunnerPlayer defines the player body.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Gap between feet and the bottom edge
	Sprite       string  `yaml:"sprite"`        // Built-in art name, empty for a box
}

// RunnerPhysics defines jump kinematics, in world units per tick.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = no terminal velocity
	MaxJumps     int     `yaml:"max_jumps"`
	AirDrift     float64 `yaml:"air_drift"` // Forward drift per airborne tick
}

// PhaseConfig defines the fade/invulnerability mechanic.
type PhaseConfig struct {
	Enabled  bool `yaml:"enabled"`
	Max      int  `yaml:"max"`
	Drain    int  `yaml:"drain"`
	Recharge int  `yaml:"recharge"`
	// BlocksJump forbids jumping while phased.
	BlocksJump bool `yaml:"blocks_jump"`
}

// RunnerObstacles defines spawning and culling.
type RunnerObstacles struct {
	Speed           float64        `yaml:"speed"`
	SpawnMin        float64        `yaml:"spawn_min"` // Extra distance past the screen edge
	SpawnMax        float64        `yaml:"spawn_max"`
	MinGap          float64        `yaml:"min_gap"` // Minimum spacing between live obstacles
	InitialSpacing  float64        `yaml:"initial_spacing"`
	Count           int            `yaml:"count"` // Look-ahead count kept alive
	PitIgnoresPhase bool           `yaml:"pit_ignores_phase"`
	MaskCollision   bool           `yaml:"mask_collision"`
	Kinds           []ObstacleKind `yaml:"kinds"`
}

// ObstacleKind describes one obstacle variant.
type ObstacleKind struct {
	Name   string  `yaml:"name"`
	Pit    bool    `yaml:"pit"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bottom float64 `yaml:"bottom"` // Gap between the obstacle and the bottom edge
	Sprite string  `yaml:"sprite"`
	Angle  float64 `yaml:"angle"` // Sprite rotation in degrees
	Weight int     `yaml:"weight"`
}

// Validate checks that the config describes a playable runner.
func (c RunnerConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if c.Player.Height+c.Player.GroundMargin > c.World.Height {
		return fmt.Errorf("player does not fit in the world")
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpVelocity >= 0 {
		return fmt.Errorf("physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity)
	}
	if c.Physics.MaxJumps < 1 {
		return fmt.Errorf("physics.max_jumps must be at least 1")
	}
	if c.Phase.Enabled && (c.Phase.Max <= 0 || c.Phase.Drain <= 0 || c.Phase.Recharge < 0) {
		return fmt.Errorf("phase needs positive max and drain")
	}
	o := c.Obstacles
	if o.Speed <= 0 {
		return fmt.Errorf("obstacles.speed must be positive")
	}
	if o.SpawnMin < 0 || o.SpawnMax < o.SpawnMin {
		return fmt.Errorf("obstacles spawn range [%v, %v] is invalid", o.SpawnMin, o.SpawnMax)
	}
	if o.Count < 1 {
		return fmt.Errorf("obstacles.count must be at least 1")
	}
	if len(o.Kinds) == 0 {
		return fmt.Errorf("at least one obstacle kind is required")
	}
	for _, k := range o.Kinds {
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("obstacle %q size must be positive", k.Name)
		}
		if k.Weight < 0 {
			return fmt.Errorf("obstacle %q weight must not be negative", k.Name)
		}
	}
	if c.Ramp.Max < 0 {
		return fmt.Errorf("ramp.max must not be negative")
	}
	return nil
}

// applyPreset adjusts speeds for a difficulty preset.
func (c *RunnerConfig) applyPreset(p DifficultyPreset) {
	if p == DifficultyFixed {
		c.Ramp.Enabled = false
		return
	}
	c.Obstacles.Speed *= p.speedFactor()
	c.Ramp.Increment *= p.rampFactor()
}

// LoadRunner loads a runner config by name ("runner" or "runner_classic").
func LoadRunner(name string, opts Options) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := load(name, opts, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyPreset(presetOrNormal(opts.Preset))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}
