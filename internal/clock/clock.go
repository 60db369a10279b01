// Package clock provides the timing primitives the session engine is built
// on: a pause-preserving countdown and a per-question stopwatch. Both take
// an injectable now func so tests can drive virtual time instead of
// sleeping.
package clock

import "time"

// Stopwatch accumulates elapsed time across run/pause segments.
// Elapsed time is computed from wall-clock deltas, never from tick counts,
// so a consumer that misses ticks loses nothing.
type Stopwatch struct {
	now         func() time.Time
	running     bool
	segmentFrom time.Time
	accumulated time.Duration
	degraded    bool
}

// NewStopwatch creates a stopped Stopwatch. A nil now defaults to time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins (or resumes) accumulation. Starting a running stopwatch is a
// no-op. If the host clock is unavailable the stopwatch degrades to a no-op
// and Elapsed stays at its last value.
func (s *Stopwatch) Start() {
	if s.running || s.degraded {
		return
	}
	t := s.now()
	if t.IsZero() {
		s.degraded = true
		return
	}
	s.running = true
	s.segmentFrom = t
}

// Pause stops accumulation, folding the current segment into the total.
// Pausing a stopped stopwatch is a no-op.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.accumulated += s.now().Sub(s.segmentFrom)
	s.running = false
}

// Elapsed returns the total accumulated time including the current segment.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + s.now().Sub(s.segmentFrom)
}

// Running reports whether the stopwatch is accumulating.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Reset stops the stopwatch and clears accumulated time.
func (s *Stopwatch) Reset() {
	s.running = false
	s.accumulated = 0
}

// Countdown tracks remaining time against a fixed budget.
// Pausing does not lose accumulated time: after resume, remaining is exactly
// what it was before the pause.
type Countdown struct {
	sw     *Stopwatch
	budget time.Duration
}

// NewCountdown creates a countdown with the given budget.
// A zero or negative budget means unlimited: Remaining reports zero and
// Expired never fires.
func NewCountdown(budget time.Duration, now func() time.Time) *Countdown {
	return &Countdown{sw: NewStopwatch(now), budget: budget}
}

// Start begins the countdown.
func (c *Countdown) Start() { c.sw.Start() }

// Pause suspends the countdown, preserving remaining time.
func (c *Countdown) Pause() { c.sw.Pause() }

// Resume continues the countdown from where Pause left it.
func (c *Countdown) Resume() { c.sw.Start() }

// Unlimited reports whether this countdown has no budget.
func (c *Countdown) Unlimited() bool {
	return c.budget <= 0
}

// Elapsed returns time consumed so far.
func (c *Countdown) Elapsed() time.Duration {
	return c.sw.Elapsed()
}

// Remaining returns budget minus elapsed, floored at zero.
// For unlimited countdowns it returns zero.
func (c *Countdown) Remaining() time.Duration {
	if c.Unlimited() {
		return 0
	}
	rem := c.budget - c.sw.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether a limited countdown has run out.
func (c *Countdown) Expired() bool {
	return !c.Unlimited() && c.sw.Elapsed() >= c.budget
}
