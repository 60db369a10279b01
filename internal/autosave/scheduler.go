// Package autosave persists drafts in the background without blocking
// typing. Two cooperating deadlines exist per active question: a debounce
// deadline that fires once typing pauses, and a periodic deadline that
// bounds staleness under continuous typing. Both derive from the session's
// tick source, so tests drive them with virtual time.
package autosave

import (
	"context"
	"time"

	"prepkit/internal/drafts"
	"prepkit/internal/store"
)

// Status is the observable save state for the active question.
type Status int

const (
	StatusIdle    Status = iota // nothing to save
	StatusPending               // dirty draft, save scheduled
	StatusSaving                // save in progress
	StatusSaved                 // last save succeeded
	StatusError                 // last save failed; will retry
)

// String returns the status label shown by the UI layer.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "unsaved"
	case StatusSaving:
		return "saving"
	case StatusSaved:
		return "saved"
	case StatusError:
		return "save failed"
	default:
		return ""
	}
}

// Config holds the scheduler intervals.
type Config struct {
	// Debounce is the inactivity window before a save fires. Default 2s.
	Debounce time.Duration

	// Interval is the forced-save period under continuous typing. Default 30s.
	Interval time.Duration
}

// DefaultConfig returns the standard intervals.
func DefaultConfig() Config {
	return Config{
		Debounce: 2 * time.Second,
		Interval: 30 * time.Second,
	}
}

// Scheduler debounces draft changes and performs periodic forced saves
// through the persistence collaborator. A nil repo degrades the scheduler
// to in-memory-only operation: edits are accepted and nothing is persisted.
type Scheduler struct {
	repo      store.DraftRepo
	drafts    *drafts.Store
	cfg       Config
	now       func() time.Time
	sessionID string

	active     string
	debounceAt time.Time // zero = no pending debounce
	periodicAt time.Time // zero = no active question
	status     Status
	lastErr    error
}

// NewScheduler creates a Scheduler bound to a session's draft store.
// A nil now defaults to time.Now.
func NewScheduler(repo store.DraftRepo, draftStore *drafts.Store, cfg Config, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	return &Scheduler{repo: repo, drafts: draftStore, cfg: cfg, now: now}
}

// Bind attaches the scheduler to a session.
func (s *Scheduler) Bind(sessionID string) {
	s.sessionID = sessionID
}

// SetActive switches the question under auto-save. Outstanding deadlines
// for the previous question are cancelled so a stale save cannot land
// after navigation.
func (s *Scheduler) SetActive(questionID string) {
	s.active = questionID
	s.debounceAt = time.Time{}
	s.status = StatusIdle
	s.lastErr = nil
	if questionID == "" {
		s.periodicAt = time.Time{}
		return
	}
	s.periodicAt = s.now().Add(s.cfg.Interval)
	if s.drafts.Dirty(questionID) {
		s.status = StatusPending
		s.debounceAt = s.now().Add(s.cfg.Debounce)
	}
}

// NoteEdit restarts the debounce window after a draft edit on the active
// question. Edits to other questions are ignored.
func (s *Scheduler) NoteEdit(questionID string) {
	if questionID != s.active || s.active == "" {
		return
	}
	s.debounceAt = s.now().Add(s.cfg.Debounce)
	if s.drafts.Dirty(questionID) {
		s.status = StatusPending
	}
}

// Tick checks both deadlines and saves when one has passed.
func (s *Scheduler) Tick(ctx context.Context) {
	if s.active == "" {
		return
	}
	now := s.now()
	debounceDue := !s.debounceAt.IsZero() && !now.Before(s.debounceAt)
	periodicDue := !s.periodicAt.IsZero() && !now.Before(s.periodicAt)
	if !debounceDue && !periodicDue {
		return
	}
	s.save(ctx)
}

// Flush forces a synchronous save, used before navigation so no content is
// lost. The error is returned for observability; the in-memory draft is
// kept either way.
func (s *Scheduler) Flush(ctx context.Context) error {
	if s.active == "" {
		return nil
	}
	s.save(ctx)
	return s.lastErr
}

// Stop cancels all outstanding deadlines, typically at session end.
func (s *Scheduler) Stop() {
	s.active = ""
	s.debounceAt = time.Time{}
	s.periodicAt = time.Time{}
}

// Status returns the observable save status for the active question.
func (s *Scheduler) Status() Status {
	return s.status
}

// Err returns the most recent persistence error, nil after a success.
func (s *Scheduler) Err() error {
	return s.lastErr
}

// save persists the full draft snapshot. Both deadlines reset whenever a
// save occurs, succeeded or not, so a failure is retried on the next
// periodic cycle rather than in a tight loop.
func (s *Scheduler) save(ctx context.Context) {
	s.debounceAt = time.Time{}
	s.periodicAt = s.now().Add(s.cfg.Interval)

	// Idempotence: unchanged or empty drafts are not re-persisted.
	if !s.drafts.Dirty(s.active) {
		if s.status == StatusPending || s.status == StatusSaving {
			s.status = StatusSaved
		}
		return
	}

	if s.repo == nil {
		// In-memory-only mode: nothing is persisted, the draft stays unsaved.
		return
	}

	s.status = StatusSaving
	if err := s.repo.SaveDrafts(ctx, s.sessionID, s.drafts.Snapshot()); err != nil {
		s.status = StatusError
		s.lastErr = err
		return
	}
	// A successful save settles every draft, including drafts cleared to
	// empty since the last save. The snapshot omits empty drafts, so walking
	// it here would leave a cleared draft dirty and re-save forever.
	s.drafts.MarkAllSaved()
	s.status = StatusSaved
	s.lastErr = nil
}
