package summary

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"prepkit/internal/question"
	sess "prepkit/internal/session"
)

func completedEngine(t *testing.T) *sess.Engine {
	t.Helper()
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e := sess.New(sess.Options{Now: func() time.Time { return current }})

	questions := []question.Question{
		{ID: "q-1", Prompt: "Tell me about yourself.", Type: question.TypeBehavioral},
		{ID: "q-2", Prompt: "Design a cache.", Type: question.TypeSystemDesign},
	}
	ctx := context.Background()
	if err := e.Start(ctx, sess.ModePractice, questions, sess.DefaultSettings(sess.ModePractice)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := e.Submit(ctx, "q-1", "I am a backend engineer with five years of Go."); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := e.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	return e
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(completedEngine(t), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(completedEngine(t), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(completedEngine(t), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(completedEngine(t), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_NoScorerInit(t *testing.T) {
	s := New(completedEngine(t), nil)
	if cmd := s.Init(); cmd != nil {
		t.Error("no scorer wired, Init should not poll")
	}
}
