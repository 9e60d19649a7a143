// Package grid drives the time-bounded, batched rendering of bit squares.
//
// A Controller admits batches against a cap policy and advances one Session
// at a time from timestamped frames. Front ends supply the frames (a bubbletea
// tick or a plain ticker) and a Display that materializes the squares.
package grid

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Session is the progress record of one in-flight batch
type Session struct {
	ID          uuid.UUID
	Target      int64
	Elapsed     int64
	Start       time.Time
	CapDisabled bool

	duration time.Duration
	started  bool
}

func newSession(target int64, duration time.Duration, capDisabled bool) *Session {
	return &Session{
		ID:          uuid.New(),
		Target:      target,
		CapDisabled: capDisabled,
		duration:    duration,
	}
}

// Fraction returns the progress fraction at now, clamped to [0, 1].
// Before the first step it is 0.
func (s *Session) Fraction(now time.Time) float64 {
	if !s.started {
		return 0
	}
	if s.duration <= 0 {
		return 1
	}
	f := float64(now.Sub(s.Start)) / float64(s.duration)
	return math.Max(0, math.Min(f, 1))
}

// Step advances the session to now. It returns the number of new units to
// materialize and whether the batch is complete.
func (s *Session) Step(now time.Time) (delta int64, done bool) {
	if !s.started {
		s.Start = now
		s.started = true
	}

	fraction := s.Fraction(now)

	var soFar int64
	if fraction >= 1 {
		soFar = s.Target
	} else {
		soFar = int64(math.Floor(fraction * float64(s.Target)))
	}

	if d := soFar - s.Elapsed; d > 0 {
		delta = d
		s.Elapsed = soFar
	}

	return delta, fraction >= 1
}

// Remaining returns how many units of the batch are not yet materialized
func (s *Session) Remaining() int64 {
	return s.Target - s.Elapsed
}
