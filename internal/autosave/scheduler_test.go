package autosave

import (
	"context"
	"errors"
	"testing"
	"time"

	"prepkit/internal/drafts"
)

// fakeRepo implements store.DraftRepo in memory with an injectable failure.
type fakeRepo struct {
	saves   int
	last    *drafts.Snapshot
	lastAt  time.Time
	failErr error
}

func (f *fakeRepo) SaveDrafts(_ context.Context, _ string, snap *drafts.Snapshot) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.saves++
	f.last = snap
	f.lastAt = time.Now()
	return nil
}

func (f *fakeRepo) LoadDrafts(context.Context, string) (*drafts.Snapshot, time.Time, error) {
	return f.last, f.lastAt, nil
}

func (f *fakeRepo) DeleteDrafts(context.Context, string) error {
	f.last = nil
	return nil
}

func fakeNow() (func() time.Time, func(d time.Duration)) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func newTestScheduler(t *testing.T) (*Scheduler, *drafts.Store, *fakeRepo, func(time.Duration)) {
	t.Helper()
	now, advance := fakeNow()
	ds := drafts.NewStore(now)
	repo := &fakeRepo{}
	sched := NewScheduler(repo, ds, Config{Debounce: 2 * time.Second, Interval: 30 * time.Second}, now)
	sched.Bind("test-session")
	return sched, ds, repo, advance
}

func TestDebounceSavesAfterInactivity(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "partial answ")
	sched.NoteEdit("q1")

	advance(1 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 0 {
		t.Fatal("saved before debounce window elapsed")
	}
	if sched.Status() != StatusPending {
		t.Errorf("Status = %v, want StatusPending", sched.Status())
	}

	advance(1 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 1 {
		t.Fatalf("saves = %d, want 1", repo.saves)
	}
	if sched.Status() != StatusSaved {
		t.Errorf("Status = %v, want StatusSaved", sched.Status())
	}
	if got, _ := repo.last.Get("q1"); got != "partial answ" {
		t.Errorf("persisted content = %q", got)
	}
}

func TestTypingRestartsDebounce(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	// Keep typing every second: debounce never fires.
	for i := 0; i < 5; i++ {
		ds.Set("q1", "typing")
		sched.NoteEdit("q1")
		advance(1 * time.Second)
		sched.Tick(ctx)
	}
	if repo.saves != 0 {
		t.Errorf("saves = %d, want 0 under continuous typing", repo.saves)
	}
}

func TestPeriodicSaveBoundsStaleness(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	// Continuous typing for 30s: the periodic deadline forces a save.
	for i := 0; i < 30; i++ {
		ds.Set("q1", "typing more")
		sched.NoteEdit("q1")
		advance(1 * time.Second)
		sched.Tick(ctx)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want exactly 1 forced save", repo.saves)
	}
}

func TestUnchangedDraftIsNotResaved(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "done")
	sched.NoteEdit("q1")
	advance(2 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 1 {
		t.Fatalf("saves = %d, want 1", repo.saves)
	}

	// Periodic deadline passes with no further edits: no duplicate save.
	advance(31 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 1 {
		t.Errorf("saves = %d, want still 1 (idempotent)", repo.saves)
	}
}

func TestClearedDraftSettlesAfterSave(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "abc")
	sched.NoteEdit("q1")
	advance(2 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 1 {
		t.Fatalf("saves = %d, want 1", repo.saves)
	}

	// Clearing the draft back to empty is itself a change worth one save.
	ds.Set("q1", "")
	sched.NoteEdit("q1")
	advance(2 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 2 {
		t.Fatalf("saves = %d, want 2 after clearing", repo.saves)
	}

	// The cleared draft is now settled: periodic cycles must not keep
	// re-persisting an unchanged snapshot.
	for i := 0; i < 3; i++ {
		advance(31 * time.Second)
		sched.Tick(ctx)
	}
	if repo.saves != 2 {
		t.Errorf("saves = %d, want still 2 (idempotent)", repo.saves)
	}
}

func TestSwitchingQuestionsCancelsDeadlines(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "about to navigate")
	sched.NoteEdit("q1")

	// Navigate before the debounce fires; the engine flushes on its own,
	// so here we only check the stale deadline does not land.
	sched.SetActive("q2")
	advance(5 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 0 {
		t.Errorf("saves = %d, want 0 after deadline cancellation", repo.saves)
	}
}

func TestFailedSaveRetriesAndKeepsDraft(t *testing.T) {
	sched, ds, repo, advance := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "precious words")
	sched.NoteEdit("q1")

	repo.failErr = errors.New("disk full")
	advance(2 * time.Second)
	sched.Tick(ctx)

	if sched.Status() != StatusError {
		t.Fatalf("Status = %v, want StatusError", sched.Status())
	}
	if sched.Err() == nil {
		t.Fatal("expected Err to be set")
	}
	if got := ds.Get("q1"); got != "precious words" {
		t.Errorf("draft = %q, want in-memory content preserved", got)
	}

	// Storage recovers; the next periodic cycle retries.
	repo.failErr = nil
	advance(30 * time.Second)
	sched.Tick(ctx)
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1 after retry", repo.saves)
	}
	if sched.Status() != StatusSaved {
		t.Errorf("Status = %v, want StatusSaved", sched.Status())
	}
	if sched.Err() != nil {
		t.Errorf("Err = %v, want nil after recovery", sched.Err())
	}
}

func TestFlushForcesSynchronousSave(t *testing.T) {
	sched, ds, repo, _ := newTestScheduler(t)
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "navigating away")
	sched.NoteEdit("q1")

	if err := sched.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
}

func TestNilRepoReportsUnsavedIndefinitely(t *testing.T) {
	now, advance := fakeNow()
	ds := drafts.NewStore(now)
	sched := NewScheduler(nil, ds, DefaultConfig(), now)
	sched.Bind("test-session")
	ctx := context.Background()

	sched.SetActive("q1")
	ds.Set("q1", "no storage today")
	sched.NoteEdit("q1")

	advance(time.Minute)
	sched.Tick(ctx)

	// Draft loss is never silent: without storage the status must keep
	// reporting unsaved rather than falsely claiming saved.
	if sched.Status() != StatusPending {
		t.Errorf("Status = %v, want StatusPending", sched.Status())
	}
	if got := ds.Get("q1"); got != "no storage today" {
		t.Errorf("draft = %q, want preserved", got)
	}
}
