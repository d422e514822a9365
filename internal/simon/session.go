package simon

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one game. A new Session replaces the old one on
// every start, and timers scheduled for a replaced session never run.
type Session struct {
	ID         string
	Generation uint64
	StartedAt  time.Time

	score     int
	sequence  Sequence
	timing    Timing
	validator Validator
}

func newSession(gen uint64, timing Timing, now time.Time) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Generation: gen,
		StartedAt:  now,
		timing:     timing,
	}
}

// Score returns the number of completed rounds.
func (s *Session) Score() int { return s.score }

// Sequence returns the current sequence.
func (s *Session) Sequence() Sequence { return s.sequence }

// Timing returns the timing used for the current round.
func (s *Session) Timing() Timing { return s.timing }

// Trace returns the selections made in the current round.
func (s *Session) Trace() []Signal { return s.validator.Trace() }

// sessionScheduler binds timers to one session. Timers that fire after the
// engine moved on to another session are dropped.
type sessionScheduler struct {
	engine  *Engine
	session *Session
}

func (ss sessionScheduler) After(d time.Duration, fn func()) {
	e, s := ss.engine, ss.session
	e.clock.After(d, func() {
		if e.session != s {
			e.stale++
			e.logger.Debug("dropped stale timer", "generation", s.Generation, "current", e.session.Generation)
			return
		}
		fn()
	})
}
