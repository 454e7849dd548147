package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; world dimensions come from
// each game's own config, not from the terminal or window size.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second override (0 = game default)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 0,
		Seed:     0, // 0 means use current time in the driver
	}
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota // Session still running
	OutcomeWin                 // Player won (e.g. all bricks cleared)
	OutcomeLose                // Player lost (collision, fell off, detected)
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the driver.
type GameState struct {
	Score   int     // Current score
	Ticks   int     // Simulation ticks elapsed in this session
	Outcome Outcome // Terminal outcome, OutcomeNone while playing
}

// GameOver reports whether the session has reached a terminal outcome.
func (s GameState) GameOver() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
