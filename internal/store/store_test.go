package store

import (
	"context"
	"testing"

	"prepkit/internal/drafts"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "started", Mode: "practice", QuestionsTotal: 3,
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendHintEvent(ctx, HintEventData{
		SessionID: "s1", QuestionID: "q1", Level: 0, Penalty: 10,
	}); err != nil {
		t.Fatalf("append hint event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", QuestionID: "q1", QuestionPrompt: "p", AnswerText: "a",
		TimeSpentSecs: 12, HintsUsed: 1,
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	// Sequences are assigned across tables from one counter: the next
	// value must be 4 after three appends.
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if seq != 4 {
		t.Errorf("next sequence = %d, want 4", seq)
	}
}

func TestSummaryAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "started", Mode: "practice", QuestionsTotal: 2},
		{SessionID: "s1", Action: "completed", Mode: "practice", QuestionsTotal: 2,
			QuestionsCompleted: 2, HintsUsed: 3, PenaltyTotal: 35, DurationSecs: 600},
		{SessionID: "s2", Action: "started", Mode: "assessment", QuestionsTotal: 1},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append session event: %v", err)
		}
	}

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", QuestionPrompt: "p1", AnswerText: "a1", TimeSpentSecs: 100},
		{SessionID: "s1", QuestionID: "q2", QuestionPrompt: "p2", AnswerText: "a2", TimeSpentSecs: 200},
		{SessionID: "s1", QuestionID: "q2", QuestionPrompt: "p2", AnswerText: "a2 again", TimeSpentSecs: 40, Resubmission: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer event: %v", err)
		}
	}

	for _, score := range []int{80, 60} {
		if err := repo.AppendScoreEvent(ctx, ScoreEventData{
			SessionID: "s1", QuestionID: "q1", Score: score,
		}); err != nil {
			t.Fatalf("append score event: %v", err)
		}
	}

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.SessionsCompleted != 1 {
		t.Errorf("SessionsCompleted = %d, want 1", sum.SessionsCompleted)
	}
	if sum.AnswersSubmitted != 2 {
		t.Errorf("AnswersSubmitted = %d, want 2 (resubmissions excluded)", sum.AnswersSubmitted)
	}
	if sum.HintsRevealed != 3 {
		t.Errorf("HintsRevealed = %d, want 3", sum.HintsRevealed)
	}
	if sum.AverageScore != 70 {
		t.Errorf("AverageScore = %v, want 70", sum.AverageScore)
	}
	if sum.TotalPracticeSecs != 600 {
		t.Errorf("TotalPracticeSecs = %d, want 600", sum.TotalPracticeSecs)
	}
}

func TestDraftRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.DraftRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, _, err := repo.LoadDrafts(ctx, "s1")
	if err != nil {
		t.Fatalf("load with empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot before first save")
	}

	first := drafts.NewSnapshot()
	first.Set("q2", "beta")
	first.Set("q1", "alpha")
	if err := repo.SaveDrafts(ctx, "s1", first); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, savedAt, err := repo.LoadDrafts(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if savedAt.IsZero() {
		t.Error("expected non-zero savedAt")
	}
	if !first.Equal(loaded) {
		t.Errorf("round trip mismatch: %+v vs %+v", first.Entries(), loaded.Entries())
	}

	// Second save replaces the row, not appends.
	second := drafts.NewSnapshot()
	second.Set("q1", "alpha v2")
	if err := repo.SaveDrafts(ctx, "s1", second); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	loaded, _, err = repo.LoadDrafts(ctx, "s1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !second.Equal(loaded) {
		t.Errorf("replacement mismatch: %+v vs %+v", second.Entries(), loaded.Entries())
	}

	if err := repo.DeleteDrafts(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap, _, err = repo.LoadDrafts(ctx, "s1")
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if snap != nil {
		t.Error("expected nil snapshot after delete")
	}
}
