package session

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"prepkit/internal/question"
	"prepkit/internal/screen"
	sess "prepkit/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBank(t *testing.T) *question.Bank {
	t.Helper()
	b, err := question.NewBank([]question.Question{
		{ID: "q-1", Prompt: "Tell me about a conflict you resolved.", Type: question.TypeBehavioral,
			Hints: []string{"Use the STAR structure."}},
		{ID: "q-2", Prompt: "Design a URL shortener.", Type: question.TypeSystemDesign},
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	return b
}

func testSessionScreen(t *testing.T, mode sess.Mode) *SessionScreen {
	t.Helper()
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	engine := sess.New(sess.Options{Now: func() time.Time { return current }})
	settings := sess.DefaultSettings(mode)
	return New(Deps{
		Engine:   engine,
		Mode:     mode,
		Settings: settings,
		Bank:     testBank(t),
	})
}

// startScreen runs the startup message through Update so the screen is in
// its active state, the way Init's command would deliver it.
func startScreen(t *testing.T, s *SessionScreen) *SessionScreen {
	t.Helper()
	msg := s.startSession()()
	started, ok := msg.(sessionStartedMsg)
	if !ok {
		t.Fatalf("startSession returned %T", msg)
	}
	scr, _ := s.Update(started)
	return scr.(*SessionScreen)
}

func TestSessionScreen_Title(t *testing.T) {
	s := testSessionScreen(t, sess.ModePractice)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestSessionScreen_View_Error(t *testing.T) {
	s := testSessionScreen(t, sess.ModePractice)
	s.errMsg = "test error"
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestSessionScreen_View_Active(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for active session")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestSessionScreen_SubmitMovesOn(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	s.input.SetValue("I talked to both sides and found common ground.")
	scr, _ := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	ss := scr.(*SessionScreen)

	if got := ss.engine.Current().ID; got != "q-2" {
		t.Errorf("current question = %q, want q-2 after submit", got)
	}
	if _, ok := ss.engine.Answer("q-1"); !ok {
		t.Error("expected q-1 to be recorded as answered")
	}
}

func TestSessionScreen_SubmitEmptyKeepsPlace(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	scr, _ := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	ss := scr.(*SessionScreen)

	if ss.notice == "" {
		t.Error("expected a notice for empty submission")
	}
	if got := ss.engine.Current().ID; got != "q-1" {
		t.Errorf("current question = %q, want q-1", got)
	}
}

func TestSessionScreen_TabNavigates(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	scr, _ := s.Update(specialKey(tea.KeyTab))
	ss := scr.(*SessionScreen)
	if got := ss.engine.Cursor(); got != 1 {
		t.Errorf("cursor = %d, want 1 after Tab", got)
	}

	scr, _ = ss.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	ss = scr.(*SessionScreen)
	if got := ss.engine.Cursor(); got != 0 {
		t.Errorf("cursor = %d, want 0 after Shift+Tab", got)
	}
}

func TestSessionScreen_TypingBecomesDraft(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('h'))
	scr, _ = scr.Update(keyPress('i'))
	ss := scr.(*SessionScreen)

	if got := ss.engine.Draft("q-1"); got != "hi" {
		t.Errorf("draft = %q, want %q", got, "hi")
	}
}

func TestSessionScreen_HintReveal(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	scr, _ := s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	ss := scr.(*SessionScreen)

	if got := len(ss.shownHints["q-1"]); got != 1 {
		t.Errorf("shown hints = %d, want 1", got)
	}
	if got := len(ss.engine.HintUsage("q-1").RevealedLevels); got != 1 {
		t.Errorf("revealed levels = %d, want 1", got)
	}
}

func TestSessionScreen_HintsOffInAssessment(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModeAssessment))

	scr, _ := s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	ss := scr.(*SessionScreen)

	if ss.notice == "" {
		t.Error("expected a notice when hints are disabled")
	}
	if got := len(ss.shownHints["q-1"]); got != 0 {
		t.Errorf("shown hints = %d, want 0", got)
	}
}

func TestSessionScreen_PauseBlocksTyping(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	ss := scr.(*SessionScreen)
	if ss.engine.Status() != sess.StatusPaused {
		t.Fatalf("status = %v, want paused", ss.engine.Status())
	}

	scr, _ = ss.Update(keyPress('x'))
	ss = scr.(*SessionScreen)
	if got := ss.engine.Draft("q-1"); got != "" {
		t.Errorf("draft = %q, want empty while paused", got)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := startScreen(t, testSessionScreen(t, sess.ModePractice))
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestSessionScreen_HeaderInfo(t *testing.T) {
	s := testSessionScreen(t, sess.ModeMockInterview)
	if s.HeaderInfo() != "" {
		t.Error("expected empty header before start")
	}
	s = startScreen(t, s)
	if s.HeaderInfo() == "" {
		t.Error("expected header info with the countdown")
	}
}
