package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"prepkit/internal/autosave"
	"prepkit/internal/clock"
	"prepkit/internal/drafts"
	"prepkit/internal/hints"
	"prepkit/internal/question"
	"prepkit/internal/store"
)

// Status is the lifecycle state of a session. Transitions are monotonic:
// not-started -> active <-> paused -> completed. Completed is terminal.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Answer is a finalized submission for one question.
type Answer struct {
	QuestionID   string
	Text         string
	SubmittedAt  time.Time
	TimeSpent    time.Duration
	HintsUsed    int
	Resubmission bool
}

// Metrics is a read-only aggregate of session progress.
type Metrics struct {
	QuestionsTotal     int
	QuestionsAnswered  int
	QuestionsSkipped   int
	QuestionsAttempted int
	HintsUsed          int
	PenaltyTotal       int
	TotalTimeSpent     time.Duration
}

// Options configures an engine's collaborators. All fields are optional:
// a zero Options yields an in-memory engine with wall-clock time.
type Options struct {
	// Events receives lifecycle, answer, and hint events. Append failures
	// are logged and never block session flow.
	Events store.EventRepo

	// Drafts persists draft snapshots for crash recovery. Nil disables
	// persistence; drafts live in memory only.
	Drafts store.DraftRepo

	// Now overrides the time source, for tests.
	Now func() time.Time

	// AutoSave overrides the debounce and periodic save cadence.
	AutoSave autosave.Config

	// HintPenalties overrides the per-level hint penalty schedule.
	HintPenalties []int

	// FallbackHintLevels is how many hint levels a question without
	// authored hints gets when an AI hint source is wired in. Zero means
	// such questions have no hints.
	FallbackHintLevels int

	// ResumeSessionID, when set, reuses a prior session's identity so its
	// persisted drafts are restored on Start.
	ResumeSessionID string
}

// Engine runs one session at a time. It owns the question cursor, the
// session and per-question clocks, drafts, hint usage, and final answers.
// It is not safe for concurrent use; the caller drives it from one
// goroutine, the same way a tea.Model processes messages sequentially.
type Engine struct {
	opts Options
	now  func() time.Time

	id        string
	mode      Mode
	settings  Settings
	questions []question.Question
	cursor    int
	status    Status

	startedAt   time.Time
	completedAt time.Time

	countdown *clock.Countdown
	watches   map[string]*clock.Stopwatch

	drafts *drafts.Store
	saver  *autosave.Scheduler
	hints  *hints.Ledger

	answers     map[string]*Answer
	answerOrder []string
	skipped     map[string]bool
}

// New returns an idle engine. Call Start to begin a session.
func New(opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{opts: opts, now: now, status: StatusNotStarted}
}

// Start begins a new session over the given questions. It fails when the
// question list is empty or a session is already in flight.
func (e *Engine) Start(ctx context.Context, mode Mode, questions []question.Question, settings Settings) error {
	if e.status != StatusNotStarted {
		return ErrAlreadyStarted
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	e.id = uuid.NewString()
	if e.opts.ResumeSessionID != "" {
		e.id = e.opts.ResumeSessionID
	}
	e.mode = mode
	e.settings = settings
	e.questions = make([]question.Question, len(questions))
	copy(e.questions, questions)
	e.cursor = 0
	e.startedAt = e.now()
	e.completedAt = time.Time{}

	e.countdown = clock.NewCountdown(settings.Duration, e.now)
	e.watches = make(map[string]*clock.Stopwatch, len(questions))
	e.drafts = drafts.NewStore(e.now)
	e.hints = hints.NewLedger(hints.Config{
		Penalties:  e.opts.HintPenalties,
		MinElapsed: settings.HintMinElapsed,
	})
	e.answers = make(map[string]*Answer)
	e.answerOrder = nil
	e.skipped = make(map[string]bool)

	var repo store.DraftRepo
	if settings.AutoSaveEnabled {
		repo = e.opts.Drafts
	}
	e.saver = autosave.NewScheduler(repo, e.drafts, e.opts.AutoSave, e.now)
	e.saver.Bind(e.id)
	e.restoreDrafts(ctx)

	e.status = StatusActive
	e.countdown.Start()
	e.watchFor(e.currentID()).Start()
	e.saver.SetActive(e.currentID())

	e.appendSessionEvent(ctx, "started")
	return nil
}

// restoreDrafts seeds the draft store from persisted snapshots, if any.
// Load failures degrade to an empty store.
func (e *Engine) restoreDrafts(ctx context.Context) {
	if e.opts.Drafts == nil || !e.settings.AutoSaveEnabled {
		return
	}
	snap, savedAt, err := e.opts.Drafts.LoadDrafts(ctx, e.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not restore drafts: %v\n", err)
		return
	}
	if snap != nil {
		e.drafts.Seed(snap, savedAt)
	}
}

// Pause freezes the session and per-question clocks. Draft edits and
// submissions are rejected until Resume.
func (e *Engine) Pause(ctx context.Context) error {
	switch e.status {
	case StatusCompleted:
		return ErrSessionCompleted
	case StatusActive:
	default:
		return ErrNotActive
	}
	e.countdown.Pause()
	e.watchFor(e.currentID()).Pause()
	e.status = StatusPaused
	e.appendSessionEvent(ctx, "paused")
	return nil
}

// Resume restarts the clocks after a pause. Time spent paused never counts
// toward the session or question totals.
func (e *Engine) Resume(ctx context.Context) error {
	switch e.status {
	case StatusCompleted:
		return ErrSessionCompleted
	case StatusPaused:
	default:
		return ErrNotPaused
	}
	e.countdown.Resume()
	e.watchFor(e.currentID()).Start()
	e.status = StatusActive
	e.appendSessionEvent(ctx, "resumed")
	return nil
}

// End completes the session. Remaining unanswered questions stay
// unanswered and the session becomes read-only.
func (e *Engine) End(ctx context.Context) error {
	switch e.status {
	case StatusCompleted:
		return ErrSessionCompleted
	case StatusActive, StatusPaused:
	default:
		return ErrNotActive
	}
	return e.complete(ctx)
}

func (e *Engine) complete(ctx context.Context) error {
	e.countdown.Pause()
	e.watchFor(e.currentID()).Pause()
	e.saver.Stop()
	// A completed session is read-only and never resumed: unsubmitted
	// drafts are discarded and the recovery snapshot is removed.
	if e.opts.Drafts != nil && e.settings.AutoSaveEnabled && e.id != "" {
		if err := e.opts.Drafts.DeleteDrafts(ctx, e.id); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not delete drafts: %v\n", err)
		}
	}
	e.completedAt = e.now()
	e.status = StatusCompleted
	e.appendSessionEvent(ctx, "completed")
	return nil
}

// Reset abandons the session and returns the engine to not-started.
// All drafts, answers, and hint usage are discarded, including any
// persisted draft snapshot.
func (e *Engine) Reset(ctx context.Context) error {
	if e.status == StatusNotStarted {
		return nil
	}
	if e.saver != nil {
		e.saver.Stop()
	}
	if e.drafts != nil {
		e.drafts.Reset()
	}
	if e.hints != nil {
		e.hints.Reset()
	}
	if e.opts.Drafts != nil && e.id != "" {
		if err := e.opts.Drafts.DeleteDrafts(ctx, e.id); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not delete drafts: %v\n", err)
		}
	}
	e.appendSessionEvent(ctx, "reset")
	e.status = StatusNotStarted
	e.id = ""
	e.questions = nil
	e.answers = nil
	e.answerOrder = nil
	e.skipped = nil
	return nil
}

// Tick drives time-dependent behavior: countdown expiry and auto-save
// deadlines. The caller invokes it on a steady cadence while a session is
// in flight; a missed tick only delays these checks.
func (e *Engine) Tick(ctx context.Context) {
	if e.status != StatusActive {
		return
	}
	if e.countdown.Expired() {
		e.expire(ctx)
		return
	}
	e.saver.Tick(ctx)
}

// expire handles countdown exhaustion: optionally submit the current
// non-empty draft, then complete the session.
func (e *Engine) expire(ctx context.Context) {
	if e.settings.AutoSubmit {
		e.autoSubmitCurrent(ctx)
	}
	if e.status != StatusCompleted {
		if err := e.complete(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not complete expired session: %v\n", err)
		}
	}
}

func (e *Engine) autoSubmitCurrent(ctx context.Context) {
	qid := e.currentID()
	if _, answered := e.answers[qid]; answered && !e.settings.AllowResubmit {
		return
	}
	text := e.drafts.Get(qid)
	if _, err := e.Submit(ctx, qid, text); err != nil {
		if err != ErrEmptyAnswer {
			fmt.Fprintf(os.Stderr, "warning: auto-submit failed: %v\n", err)
		}
	}
}

// SetDraft records in-progress answer text for a question and schedules an
// auto-save. Edits are rejected once the session is paused or completed.
func (e *Engine) SetDraft(questionID, text string) error {
	if err := e.requireActive(); err != nil {
		return err
	}
	if _, ok := e.questionByID(questionID); !ok {
		return ErrOutOfRange
	}
	e.drafts.Set(questionID, text)
	e.saver.NoteEdit(questionID)
	return nil
}

// RevealHint unlocks the next hint level for a question, if the hint gate
// and level sequence allow it.
func (e *Engine) RevealHint(ctx context.Context, questionID string) (hints.Result, error) {
	if err := e.requireActive(); err != nil {
		return hints.Result{}, err
	}
	if !e.settings.HintsEnabled {
		return hints.Result{}, ErrHintsDisabled
	}
	q, ok := e.questionByID(questionID)
	if !ok {
		return hints.Result{}, ErrOutOfRange
	}
	total := q.HintCount()
	if total == 0 {
		total = e.opts.FallbackHintLevels
	}
	res := e.hints.RevealNext(questionID, total, e.watchFor(questionID).Elapsed())
	if res.Status == hints.StatusRevealed {
		if e.opts.Events != nil {
			err := e.opts.Events.AppendHintEvent(ctx, store.HintEventData{
				SessionID:  e.id,
				QuestionID: questionID,
				Level:      res.Level,
				Penalty:    res.Penalty,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record hint event: %v\n", err)
			}
		}
	}
	return res, nil
}

func (e *Engine) requireActive() error {
	switch e.status {
	case StatusActive:
		return nil
	case StatusCompleted:
		return ErrSessionCompleted
	default:
		return ErrNotActive
	}
}

func (e *Engine) currentID() string {
	return e.questions[e.cursor].ID
}

func (e *Engine) questionByID(id string) (question.Question, bool) {
	for _, q := range e.questions {
		if q.ID == id {
			return q, true
		}
	}
	return question.Question{}, false
}

// watchFor returns the per-question stopwatch, creating it on first use.
func (e *Engine) watchFor(questionID string) *clock.Stopwatch {
	w, ok := e.watches[questionID]
	if !ok {
		w = clock.NewStopwatch(e.now)
		e.watches[questionID] = w
	}
	return w
}

func (e *Engine) appendSessionEvent(ctx context.Context, action string) {
	if e.opts.Events == nil {
		return
	}
	m := e.Metrics()
	err := e.opts.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:          e.id,
		Action:             action,
		Mode:               string(e.mode),
		QuestionsTotal:     m.QuestionsTotal,
		QuestionsCompleted: m.QuestionsAnswered,
		QuestionsSkipped:   m.QuestionsSkipped,
		HintsUsed:          m.HintsUsed,
		PenaltyTotal:       m.PenaltyTotal,
		DurationSecs:       int(e.countdown.Elapsed() / time.Second),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record session event: %v\n", err)
	}
}
