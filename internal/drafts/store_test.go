package drafts

import (
	"encoding/json"
	"testing"
	"time"
)

func fakeNow() (func() time.Time, func(d time.Duration)) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func TestStore_LastWriteWins(t *testing.T) {
	now, _ := fakeNow()
	s := NewStore(now)

	s.Set("q1", "first")
	s.Set("q1", "second")
	s.Set("q1", "third")

	if got := s.Get("q1"); got != "third" {
		t.Errorf("Get = %q, want %q", got, "third")
	}
}

func TestStore_GetMissingReturnsEmpty(t *testing.T) {
	s := NewStore(nil)
	if got := s.Get("nope"); got != "" {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestStore_DirtyTracking(t *testing.T) {
	now, _ := fakeNow()
	s := NewStore(now)

	if s.Dirty("q1") {
		t.Error("missing draft should not be dirty")
	}

	s.Set("q1", "hello")
	if !s.Dirty("q1") {
		t.Error("edited draft should be dirty")
	}

	s.MarkSaved("q1")
	if s.Dirty("q1") {
		t.Error("saved draft should be clean")
	}

	s.Set("q1", "hello") // same content as saved
	if s.Dirty("q1") {
		t.Error("unchanged content should stay clean")
	}

	s.Set("q1", "hello world")
	if !s.Dirty("q1") {
		t.Error("changed content should be dirty again")
	}
}

func TestStore_EmptyUnsavedDraftNotDirty(t *testing.T) {
	s := NewStore(nil)
	s.Set("q1", "")
	if s.Dirty("q1") {
		t.Error("empty never-saved draft should not be dirty")
	}
}

func TestStore_MarkAllSavedCoversClearedDrafts(t *testing.T) {
	s := NewStore(nil)
	s.Set("q1", "kept")
	s.Set("q2", "about to clear")
	s.MarkAllSaved()
	s.Set("q2", "")

	if !s.Dirty("q2") {
		t.Fatal("cleared draft should be dirty before the next save")
	}
	s.MarkAllSaved()
	if s.Dirty("q1") || s.Dirty("q2") {
		t.Error("all drafts should be clean after MarkAllSaved, cleared ones included")
	}
}

func TestStore_DiscardAndReset(t *testing.T) {
	s := NewStore(nil)
	s.Set("q1", "a")
	s.Set("q2", "b")

	s.Discard("q1")
	if got := s.Get("q1"); got != "" {
		t.Errorf("discarded draft Get = %q, want empty", got)
	}
	if got := s.Snapshot().Len(); got != 1 {
		t.Errorf("Snapshot.Len = %d, want 1", got)
	}

	s.Reset()
	if got := s.Snapshot().Len(); got != 0 {
		t.Errorf("Snapshot.Len after reset = %d, want 0", got)
	}
}

func TestStore_SeedSkipsNewerInMemoryDraft(t *testing.T) {
	now, advance := fakeNow()
	s := NewStore(now)

	savedAt := now()
	snap := NewSnapshot()
	snap.Set("q1", "persisted old")
	snap.Set("q2", "persisted")

	advance(10 * time.Second)
	s.Set("q1", "fresh edit") // newer than savedAt

	s.Seed(snap, savedAt)

	if got := s.Get("q1"); got != "fresh edit" {
		t.Errorf("q1 = %q, want in-memory draft preserved", got)
	}
	if got := s.Get("q2"); got != "persisted" {
		t.Errorf("q2 = %q, want seeded value", got)
	}
	if s.Dirty("q2") {
		t.Error("seeded draft should start clean")
	}
}

func TestSnapshot_RoundTripPreservesOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Set("q3", "gamma")
	snap.Set("q1", "alpha")
	snap.Set("q2", "beta")
	snap.Set("q1", "alpha updated") // update must not reorder

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := NewSnapshot()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !snap.Equal(restored) {
		t.Errorf("round trip mismatch:\n  in:  %+v\n  out: %+v", snap.Entries(), restored.Entries())
	}

	wantOrder := []string{"q3", "q1", "q2"}
	for i, e := range restored.Entries() {
		if e.QuestionID != wantOrder[i] {
			t.Errorf("entry %d = %q, want %q", i, e.QuestionID, wantOrder[i])
		}
	}
}

func TestSnapshot_EmptyMarshalsToArray(t *testing.T) {
	data, err := json.Marshal(NewSnapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty snapshot = %s, want []", data)
	}
}
