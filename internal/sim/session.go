package sim

import "github.com/vovakirdan/arcade-sim/internal/core"

// Session tracks one playthrough: score, elapsed ticks and the outcome.
// The outcome is set at most once; after that the session is frozen until
// the game resets it.
type Session struct {
	Score   int
	Ticks   int
	Outcome core.Outcome
}

// End records a terminal outcome. Later calls are ignored.
// Returns true when this call ended the session.
func (s *Session) End(o core.Outcome) bool {
	if s.Outcome != core.OutcomeNone || o == core.OutcomeNone {
		return false
	}
	s.Outcome = o
	return true
}

// Frozen reports whether the session has reached an outcome.
func (s *Session) Frozen() bool {
	return s.Outcome != core.OutcomeNone
}

// Advance counts a finished tick and adds to the score.
// Frozen sessions do not advance.
func (s *Session) Advance(score int) {
	if s.Frozen() {
		return
	}
	s.Ticks++
	s.Score += score
}

// State returns the externally visible game state.
func (s *Session) State() core.GameState {
	return core.GameState{Score: s.Score, Ticks: s.Ticks, Outcome: s.Outcome}
}
