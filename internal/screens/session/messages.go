package session

import (
	"time"

	"prepkit/internal/hints"
)

// sessionStartedMsg is sent once the engine has started and any persisted
// drafts were restored.
type sessionStartedMsg struct {
	Err error
}

// timerTickMsg is sent every second to drive the countdown, auto-save
// deadlines, and expiry checks.
type timerTickMsg time.Time

// hintPollMsg is sent at short intervals while AI hint text is in flight.
type hintPollMsg time.Time

// hintTextMsg carries generated hint text ready for display.
type hintTextMsg struct {
	Hint *hints.Hint
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
