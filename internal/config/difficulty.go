package config

// RampConfig defines how obstacle speed grows over a session.
type RampConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Increment float64 `yaml:"increment"` // Speed added per step
	Every     int     `yaml:"every"`     // Ticks per step, 0 or 1 means every tick
	Max       float64 `yaml:"max"`       // Speed cap, 0 = uncapped
}

// Ramp calculates the current obstacle speed from elapsed ticks.
// Speed never decreases as ticks grow and never exceeds Max when set.
type Ramp struct {
	cfg  RampConfig
	base float64
}

// NewRamp creates a ramp starting at base speed.
func NewRamp(cfg RampConfig, base float64) *Ramp {
	return &Ramp{cfg: cfg, base: base}
}

// IsEnabled returns whether speed progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Increment > 0
}

// Speed returns the speed after the given number of ticks.
func (r *Ramp) Speed(ticks int) float64 {
	if !r.IsEnabled() || ticks <= 0 {
		return r.capped(r.base)
	}
	every := r.cfg.Every
	if every < 1 {
		every = 1
	}
	return r.capped(r.base + float64(ticks/every)*r.cfg.Increment)
}

func (r *Ramp) capped(s float64) float64 {
	if r.cfg.Max > 0 && s > r.cfg.Max {
		return r.cfg.Max
	}
	return s
}
