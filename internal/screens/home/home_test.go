package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"prepkit/internal/question"
	"prepkit/internal/router"
)

func newTestHome() *HomeScreen {
	return New(Deps{Bank: question.BuiltinBank()})
}

func TestHomeScreen_Title(t *testing.T) {
	h := newTestHome()
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_ListsAllModes(t *testing.T) {
	h := newTestHome()
	view := h.View(80, 24)

	for _, label := range []string{"Practice", "Assessment", "Mock Interview"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing mode %q", label)
		}
	}
}

func TestHomeScreen_EnterPushesSession(t *testing.T) {
	h := newTestHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Enter on a mode")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
}

func TestHomeScreen_SessionsAreIndependent(t *testing.T) {
	h := newTestHome()

	_, cmd1 := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd2 := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s1 := cmd1().(router.PushScreenMsg).Screen
	s2 := cmd2().(router.PushScreenMsg).Screen
	if s1 == s2 {
		t.Error("each selection must build a fresh session screen")
	}
}

func TestHomeScreen_NoStatsLineWithoutHistory(t *testing.T) {
	h := newTestHome()
	view := h.View(80, 24)
	if strings.Contains(view, "sessions") {
		t.Error("stats line should be absent without a store")
	}
}
