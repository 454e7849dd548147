package sim

// PhaseConfig tunes the fade/phase mechanic.
type PhaseConfig struct {
	Max      int // Counter capacity in ticks
	Drain    int // Counter spent per active tick
	Recharge int // Counter regained per inactive tick
}

// Phase is a timed invulnerability mode with a depleting counter.
type Phase struct {
	Counter int
	Active  bool
}

// NewPhase returns a fully charged, inactive phase.
func NewPhase(cfg PhaseConfig) Phase {
	return Phase{Counter: cfg.Max}
}

// Engage activates the phase if any charge remains.
func (p *Phase) Engage() bool {
	if p.Counter <= 0 {
		return false
	}
	p.Active = true
	return true
}

// Release deactivates the phase.
func (p *Phase) Release() {
	p.Active = false
}

// Tick drains or recharges the counter. The counter stays in [0, Max];
// running dry ends the phase.
func (p *Phase) Tick(cfg PhaseConfig) {
	if p.Active {
		p.Counter -= cfg.Drain
		if p.Counter <= 0 {
			p.Counter = 0
			p.Active = false
		}
	} else {
		p.Counter += cfg.Recharge
	}
	if p.Counter > cfg.Max {
		p.Counter = cfg.Max
	}
	if p.Counter < 0 {
		p.Counter = 0
	}
}

// Alpha is the opacity derived from the remaining charge.
func (p Phase) Alpha(cfg PhaseConfig) float64 {
	if cfg.Max <= 0 {
		return 1
	}
	return float64(p.Counter) / float64(cfg.Max)
}
