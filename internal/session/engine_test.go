package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"prepkit/internal/autosave"
	"prepkit/internal/drafts"
	"prepkit/internal/hints"
	"prepkit/internal/question"
	"prepkit/internal/store"
)

func fakeNow() (func() time.Time, func(time.Duration)) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return now, advance
}

func testQuestions() []question.Question {
	return []question.Question{
		{ID: "q-a", Prompt: "Tell me about a conflict.", Type: question.TypeBehavioral, Hints: []string{"h1", "h2", "h3"}},
		{ID: "q-b", Prompt: "Explain an HTTP request.", Type: question.TypeTechnical, Hints: []string{"h1", "h2"}},
		{ID: "q-c", Prompt: "Design a URL shortener.", Type: question.TypeSystemDesign, Hints: []string{"h1", "h2", "h3"}},
	}
}

// memDraftRepo is an in-memory DraftRepo for engine tests.
type memDraftRepo struct {
	snaps   map[string]*drafts.Snapshot
	savedAt map[string]time.Time
	saves   int
	deletes int
	failErr error
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{snaps: map[string]*drafts.Snapshot{}, savedAt: map[string]time.Time{}}
}

func (r *memDraftRepo) SaveDrafts(_ context.Context, sessionID string, snap *drafts.Snapshot) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.saves++
	r.snaps[sessionID] = snap
	return nil
}

func (r *memDraftRepo) LoadDrafts(_ context.Context, sessionID string) (*drafts.Snapshot, time.Time, error) {
	snap, ok := r.snaps[sessionID]
	if !ok {
		return nil, time.Time{}, nil
	}
	return snap, r.savedAt[sessionID], nil
}

func (r *memDraftRepo) DeleteDrafts(_ context.Context, sessionID string) error {
	r.deletes++
	delete(r.snaps, sessionID)
	return nil
}

// memEventRepo records appended events for assertions.
type memEventRepo struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
	hints    []store.HintEventData
}

func (r *memEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	r.sessions = append(r.sessions, d)
	return nil
}

func (r *memEventRepo) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	r.answers = append(r.answers, d)
	return nil
}

func (r *memEventRepo) AppendHintEvent(_ context.Context, d store.HintEventData) error {
	r.hints = append(r.hints, d)
	return nil
}

func (r *memEventRepo) AppendScoreEvent(_ context.Context, _ store.ScoreEventData) error { return nil }

func (r *memEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (r *memEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (r *memEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (r *memEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (r *memEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (r *memEventRepo) Summary(_ context.Context) (store.Summary, error) {
	return store.Summary{}, nil
}

func startEngine(t *testing.T, mode Mode, settings Settings, opts Options) *Engine {
	t.Helper()
	e := New(opts)
	if err := e.Start(context.Background(), mode, testQuestions(), settings); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e
}

func TestStartRequiresQuestions(t *testing.T) {
	e := New(Options{})
	err := e.Start(context.Background(), ModePractice, nil, DefaultSettings(ModePractice))
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
	if e.Status() != StatusNotStarted {
		t.Errorf("status = %v, want not started", e.Status())
	}
}

func TestStartTwiceRejected(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	err := e.Start(context.Background(), ModePractice, testQuestions(), DefaultSettings(ModePractice))
	if !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestNavigationFlushesOutgoingDraft(t *testing.T) {
	now, advance := fakeNow()
	repo := newMemDraftRepo()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now, Drafts: repo})

	if err := e.SetDraft("q-a", "partial thoughts on conflict"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	advance(time.Second)
	if err := e.Next(context.Background()); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1 forced save before navigation", repo.saves)
	}
	snap := repo.snaps[e.ID()]
	if got := snapGet(snap, "q-a"); got != "partial thoughts on conflict" {
		t.Errorf("persisted draft = %q", got)
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Cursor())
	}
}

func snapGet(snap *drafts.Snapshot, questionID string) string {
	if snap == nil {
		return ""
	}
	v, _ := snap.Get(questionID)
	return v
}

func TestNavigationBounds(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	ctx := context.Background()

	if err := e.Previous(ctx); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Previous at first question: %v, want ErrOutOfRange", err)
	}
	if err := e.GoTo(ctx, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GoTo(3): %v, want ErrOutOfRange", err)
	}
	if err := e.GoTo(ctx, 0); err != nil {
		t.Errorf("GoTo current index should be a no-op, got %v", err)
	}
}

func TestSubmitAdvancesAndCompletes(t *testing.T) {
	now, advance := fakeNow()
	events := &memEventRepo{}
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now, Events: events})
	ctx := context.Background()

	advance(30 * time.Second)
	ans, err := e.Submit(ctx, "q-a", "  I resolved it by talking it through.  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ans.Text != "I resolved it by talking it through." {
		t.Errorf("answer text not trimmed: %q", ans.Text)
	}
	if ans.TimeSpent != 30*time.Second {
		t.Errorf("time spent = %v, want 30s", ans.TimeSpent)
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor = %d, want advance to 1", e.Cursor())
	}
	if e.Draft("q-a") != "" {
		t.Error("draft should be discarded after submit")
	}

	if _, err := e.Submit(ctx, "q-b", "request, DNS, TCP, TLS, response"); err != nil {
		t.Fatalf("Submit q-b: %v", err)
	}
	if _, err := e.Submit(ctx, "q-c", "hash the URL, store the mapping"); err != nil {
		t.Fatalf("Submit q-c: %v", err)
	}
	if e.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed after last submit", e.Status())
	}
	if len(events.answers) != 3 {
		t.Errorf("answer events = %d, want 3", len(events.answers))
	}
	last := events.sessions[len(events.sessions)-1]
	if last.Action != "completed" || last.QuestionsCompleted != 3 {
		t.Errorf("final session event = %+v", last)
	}
}

func TestSubmitRejectsEmpty(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	if _, err := e.Submit(context.Background(), "q-a", "   \n\t "); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("expected ErrEmptyAnswer, got %v", err)
	}
	if _, ok := e.Answer("q-a"); ok {
		t.Error("no answer should be recorded")
	}
}

func TestResubmitPolicy(t *testing.T) {
	now, _ := fakeNow()
	ctx := context.Background()

	allow := DefaultSettings(ModePractice)
	e := startEngine(t, ModePractice, allow, Options{Now: now})
	if _, err := e.Submit(ctx, "q-a", "first take"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	ans, err := e.Submit(ctx, "q-a", "second take")
	if err != nil {
		t.Fatalf("resubmit in practice mode: %v", err)
	}
	if !ans.Resubmission {
		t.Error("second submit should be flagged as resubmission")
	}
	got, _ := e.Answer("q-a")
	if got.Text != "second take" {
		t.Errorf("answer = %q, want overwrite", got.Text)
	}
	if m := e.Metrics(); m.QuestionsAnswered != 1 {
		t.Errorf("answered = %d, resubmission must not double-count", m.QuestionsAnswered)
	}

	deny := DefaultSettings(ModeAssessment)
	deny.Duration = 0
	e2 := startEngine(t, ModeAssessment, deny, Options{Now: now})
	if _, err := e2.Submit(ctx, "q-a", "only take"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := e2.Submit(ctx, "q-a", "changed my mind"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestPauseExcludesTime(t *testing.T) {
	now, advance := fakeNow()
	s := DefaultSettings(ModeAssessment)
	s.Duration = 10 * time.Minute
	e := startEngine(t, ModeAssessment, s, Options{Now: now})
	ctx := context.Background()

	advance(2 * time.Minute)
	if err := e.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	advance(30 * time.Minute)
	if err := e.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if got := e.Remaining(); got != 8*time.Minute {
		t.Errorf("remaining = %v, want 8m, paused time must not count", got)
	}
	if got := e.TimeOnQuestion("q-a"); got != 2*time.Minute {
		t.Errorf("question time = %v, want 2m", got)
	}
}

func TestPausedRejectsEdits(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	ctx := context.Background()
	if err := e.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := e.SetDraft("q-a", "typing while paused"); !errors.Is(err, ErrNotActive) {
		t.Errorf("SetDraft while paused: %v, want ErrNotActive", err)
	}
	if _, err := e.Submit(ctx, "q-a", "answer"); !errors.Is(err, ErrNotActive) {
		t.Errorf("Submit while paused: %v, want ErrNotActive", err)
	}
	if err := e.Pause(ctx); !errors.Is(err, ErrNotActive) {
		t.Errorf("double pause: %v, want ErrNotActive", err)
	}
	if err := e.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if err := e.Resume(ctx); !errors.Is(err, ErrNotPaused) {
		t.Errorf("resume while active: %v, want ErrNotPaused", err)
	}
}

func TestExpiryWithoutAutoSubmit(t *testing.T) {
	now, advance := fakeNow()
	repo := newMemDraftRepo()
	s := DefaultSettings(ModeAssessment)
	s.Duration = 5 * time.Minute
	e := startEngine(t, ModeAssessment, s, Options{Now: now, Drafts: repo})
	ctx := context.Background()

	if err := e.SetDraft("q-a", "half-finished answer"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	advance(6 * time.Minute)
	e.Tick(ctx)

	if e.Status() != StatusCompleted {
		t.Fatalf("status = %v, want completed on expiry", e.Status())
	}
	if _, ok := e.Answer("q-a"); ok {
		t.Error("draft must not be auto-submitted when autoSubmit is off")
	}
	// The unsubmitted draft is discarded with the session: no snapshot of
	// it may survive completion.
	if snap, ok := repo.snaps[e.ID()]; ok {
		t.Errorf("snapshot still persisted after expiry: %q", snapGet(snap, "q-a"))
	}
	if repo.deletes != 1 {
		t.Errorf("deletes = %d, want 1", repo.deletes)
	}
}

func TestCompletionRemovesPersistedSnapshot(t *testing.T) {
	now, advance := fakeNow()
	repo := newMemDraftRepo()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now, Drafts: repo})
	ctx := context.Background()

	if err := e.SetDraft("q-a", "notes I never submitted"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	advance(3 * time.Second)
	e.Tick(ctx) // debounce save lands
	if repo.saves != 1 {
		t.Fatalf("saves = %d, want 1", repo.saves)
	}

	if err := e.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, ok := repo.snaps[e.ID()]; ok {
		t.Error("snapshot must be deleted when the session completes")
	}
}

func TestExpiryWithAutoSubmit(t *testing.T) {
	now, advance := fakeNow()
	events := &memEventRepo{}
	s := DefaultSettings(ModeMockInterview)
	s.Duration = 5 * time.Minute
	e := startEngine(t, ModeMockInterview, s, Options{Now: now, Events: events})
	ctx := context.Background()

	if err := e.SetDraft("q-a", "my closing thoughts"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	advance(6 * time.Minute)
	e.Tick(ctx)

	if e.Status() != StatusCompleted {
		t.Fatalf("status = %v, want completed", e.Status())
	}
	ans, ok := e.Answer("q-a")
	if !ok {
		t.Fatal("non-empty draft should be submitted on expiry")
	}
	if ans.Text != "my closing thoughts" {
		t.Errorf("answer = %q", ans.Text)
	}
	if len(events.answers) != 1 {
		t.Errorf("answer events = %d, want exactly 1", len(events.answers))
	}
}

func TestExpiryAutoSubmitSkipsEmptyDraft(t *testing.T) {
	now, advance := fakeNow()
	s := DefaultSettings(ModeMockInterview)
	s.Duration = time.Minute
	e := startEngine(t, ModeMockInterview, s, Options{Now: now})

	advance(2 * time.Minute)
	e.Tick(context.Background())

	if e.Status() != StatusCompleted {
		t.Fatalf("status = %v, want completed", e.Status())
	}
	if got := e.Metrics().QuestionsAnswered; got != 0 {
		t.Errorf("answered = %d, empty draft must not become an answer", got)
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	ctx := context.Background()
	if err := e.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}

	if err := e.SetDraft("q-a", "late edit"); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("SetDraft: %v, want ErrSessionCompleted", err)
	}
	if _, err := e.Submit(ctx, "q-a", "late answer"); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Submit: %v, want ErrSessionCompleted", err)
	}
	if err := e.Next(ctx); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Next: %v, want ErrSessionCompleted", err)
	}
	if _, err := e.RevealHint(ctx, "q-a"); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("RevealHint: %v, want ErrSessionCompleted", err)
	}
	if err := e.Pause(ctx); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Pause: %v, want ErrSessionCompleted", err)
	}
	if err := e.End(ctx); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("second End: %v, want ErrSessionCompleted", err)
	}
}

func TestHintsDisabledInAssessment(t *testing.T) {
	now, _ := fakeNow()
	s := DefaultSettings(ModeAssessment)
	s.Duration = 0
	e := startEngine(t, ModeAssessment, s, Options{Now: now})
	if _, err := e.RevealHint(context.Background(), "q-a"); !errors.Is(err, ErrHintsDisabled) {
		t.Errorf("expected ErrHintsDisabled, got %v", err)
	}
}

func TestHintGateAndPenalty(t *testing.T) {
	now, advance := fakeNow()
	events := &memEventRepo{}
	s := DefaultSettings(ModeMockInterview)
	s.Duration = 0
	e := startEngine(t, ModeMockInterview, s, Options{Now: now, Events: events})
	ctx := context.Background()

	res, err := e.RevealHint(ctx, "q-a")
	if err != nil {
		t.Fatalf("RevealHint: %v", err)
	}
	if res.Status != hints.StatusTooEarly {
		t.Errorf("status = %v, want too-early before 60s on question", res.Status)
	}

	advance(61 * time.Second)
	res, err = e.RevealHint(ctx, "q-a")
	if err != nil {
		t.Fatalf("RevealHint: %v", err)
	}
	if res.Status != hints.StatusRevealed || res.Level != 0 || res.Penalty != 10 {
		t.Errorf("result = %+v, want level 0 penalty 10", res)
	}
	if len(events.hints) != 1 {
		t.Errorf("hint events = %d, want 1", len(events.hints))
	}
	if m := e.Metrics(); m.HintsUsed != 1 || m.PenaltyTotal != 10 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestSkipMarksAndAnswerClears(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	ctx := context.Background()

	if err := e.Skip(ctx); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if !e.Skipped("q-a") {
		t.Error("q-a should be marked skipped")
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Cursor())
	}
	if _, err := e.Submit(ctx, "q-a", "came back to it"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if e.Skipped("q-a") {
		t.Error("answering later must clear the skipped mark")
	}

	s := DefaultSettings(ModeMockInterview)
	s.Duration = 0
	e2 := startEngine(t, ModeMockInterview, s, Options{Now: now})
	if err := e2.Skip(ctx); !errors.Is(err, ErrSkipDisabled) {
		t.Errorf("expected ErrSkipDisabled, got %v", err)
	}
}

func TestSkipLastQuestionCompletes(t *testing.T) {
	now, _ := fakeNow()
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now})
	ctx := context.Background()
	if err := e.GoTo(ctx, 2); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if err := e.Skip(ctx); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if e.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed after skipping last question", e.Status())
	}
	if got := e.Metrics().QuestionsSkipped; got != 1 {
		t.Errorf("skipped = %d, want 1", got)
	}
}

func TestResetDiscardsEverything(t *testing.T) {
	now, _ := fakeNow()
	repo := newMemDraftRepo()
	events := &memEventRepo{}
	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{Now: now, Drafts: repo, Events: events})
	ctx := context.Background()

	if err := e.SetDraft("q-a", "scratch work"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if err := e.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.Status() != StatusNotStarted {
		t.Errorf("status = %v, want not started", e.Status())
	}
	if repo.deletes != 1 {
		t.Errorf("deletes = %d, want persisted drafts removed", repo.deletes)
	}
	last := events.sessions[len(events.sessions)-1]
	if last.Action != "reset" {
		t.Errorf("last event action = %q, want reset", last.Action)
	}

	// Engine is reusable after reset and gets a fresh identity.
	prevID := last.SessionID
	if err := e.Start(ctx, ModePractice, testQuestions(), DefaultSettings(ModePractice)); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if e.ID() == prevID {
		t.Error("restarted session must have a new id")
	}
}

func TestResumeRestoresDrafts(t *testing.T) {
	now, _ := fakeNow()
	repo := newMemDraftRepo()
	snap := drafts.NewSnapshot()
	snap.Set("q-b", "recovered draft")
	repo.snaps["prior-session"] = snap
	repo.savedAt["prior-session"] = now()

	e := startEngine(t, ModePractice, DefaultSettings(ModePractice), Options{
		Now:             now,
		Drafts:          repo,
		ResumeSessionID: "prior-session",
	})
	if e.ID() != "prior-session" {
		t.Errorf("id = %q, want reused session id", e.ID())
	}
	if got := e.Draft("q-b"); got != "recovered draft" {
		t.Errorf("draft = %q, want restored content", got)
	}
	if e.SaveStatus() != autosave.StatusIdle {
		t.Errorf("restored drafts should not be dirty, status = %v", e.SaveStatus())
	}
}

func TestCountDraftsAttempted(t *testing.T) {
	now, _ := fakeNow()
	s := DefaultSettings(ModePractice)
	s.CountDraftsAttempted = true
	e := startEngine(t, ModePractice, s, Options{Now: now})
	ctx := context.Background()

	if _, err := e.Submit(ctx, "q-a", "done"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := e.SetDraft("q-b", "in progress"); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	m := e.Metrics()
	if m.QuestionsAnswered != 1 {
		t.Errorf("answered = %d, want 1", m.QuestionsAnswered)
	}
	if m.QuestionsAttempted != 2 {
		t.Errorf("attempted = %d, want answered plus non-empty draft", m.QuestionsAttempted)
	}
}
