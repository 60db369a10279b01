package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"prepkit/internal/hints"
	"prepkit/internal/question"
	"prepkit/internal/router"
	"prepkit/internal/scoring"
	"prepkit/internal/screen"
	"prepkit/internal/screens/summary"
	sess "prepkit/internal/session"
	"prepkit/internal/ui/components"
	"prepkit/internal/ui/layout"
	"prepkit/internal/ui/theme"
)

// Deps are the collaborators a session screen needs. Scorer and HintText
// are optional; without them answers go unscored and hint-less questions
// have no hints.
type Deps struct {
	Engine   *sess.Engine
	Mode     sess.Mode
	Settings sess.Settings
	Bank     *question.Bank
	Scorer   *scoring.Service
	HintText *hints.ContentService
}

// SessionScreen drives one practice session.
type SessionScreen struct {
	deps   Deps
	engine *sess.Engine
	input  components.AnswerBox

	shownHints  map[string][]string // question id -> revealed hint texts
	hintPending bool

	showQuitConfirm bool
	notice          string
	errMsg          string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.HeaderInfoProvider = (*SessionScreen)(nil)

// New creates a session screen. The engine is started in Init.
func New(deps Deps) *SessionScreen {
	return &SessionScreen{
		deps:       deps,
		engine:     deps.Engine,
		input:      components.NewAnswerBox("Compose your answer...", 72, 10),
		shownHints: make(map[string][]string),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startSession(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return s.deps.Mode.DisplayName()
}

// HeaderInfo renders the countdown and save state for the header bar.
func (s *SessionScreen) HeaderInfo() string {
	if s.engine == nil || s.engine.Status() == sess.StatusNotStarted {
		return ""
	}
	var out string
	if s.engine.Unlimited() {
		out = layout.FormatClock(int(s.engine.Elapsed().Seconds()))
	} else {
		remaining := s.engine.Remaining()
		out = layout.FormatClock(int(remaining.Seconds())) + " left"
		if remaining < 2*time.Minute {
			out = theme.TimerLow.Render(out)
		}
	}
	return out + "  " + s.engine.SaveStatus().String()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.engine != nil && s.engine.Status() == sess.StatusPaused {
		return []layout.KeyHint{
			{Key: "Ctrl+P", Description: "Resume"},
			{Key: "Esc", Description: "End"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Tab", Description: "Next"},
		{Key: "Shift+Tab", Description: "Prev"},
	}
	if s.deps.Settings.HintsEnabled {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+H", Description: "Hint"})
	}
	if s.deps.Settings.SkipEnabled {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+K", Description: "Skip"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+P", Description: "Pause"},
		layout.KeyHint{Key: "Esc", Description: "End"},
	)
	return hints
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case hintPollMsg:
		return s.handleHintPoll()

	case hintTextMsg:
		return s.handleHintText(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editable() {
		return s.forwardToInput(msg)
	}
	return s, nil
}

// startSession starts the engine over the configured question set.
func (s *SessionScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		questions := s.deps.Bank.Questions()
		err := s.engine.Start(context.Background(), s.deps.Mode, questions, s.deps.Settings)
		return sessionStartedMsg{Err: err}
	}
}

func (s *SessionScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.input.SetValue(s.engine.Draft(s.engine.Current().ID))
	return s, tickCmd()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.engine.Status() == sess.StatusCompleted || s.errMsg != "" {
		return s, nil
	}
	s.engine.Tick(context.Background())
	if s.engine.Status() == sess.StatusCompleted {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, tickCmd()
}

// handleHintPoll collects generated hint text once the content service
// finishes.
func (s *SessionScreen) handleHintPoll() (screen.Screen, tea.Cmd) {
	if !s.hintPending || s.deps.HintText == nil {
		return s, nil
	}
	if h, ok := s.deps.HintText.ConsumeHint(); ok {
		return s, func() tea.Msg { return hintTextMsg{Hint: h} }
	}
	return s, hintPollCmd()
}

func (s *SessionScreen) handleHintText(msg hintTextMsg) (screen.Screen, tea.Cmd) {
	s.hintPending = false
	if msg.Hint == nil {
		s.notice = "Hint generation failed, try again"
		return s, nil
	}
	s.shownHints[msg.Hint.QuestionID] = append(s.shownHints[msg.Hint.QuestionID], msg.Hint.Text)
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.engine.Status() != sess.StatusCompleted {
		if err := s.engine.End(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
	}
	summaryScreen := summary.New(s.engine, s.deps.Scorer)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryScreen}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	switch s.engine.Status() {
	case sess.StatusPaused:
		switch key {
		case "ctrl+p":
			if err := s.engine.Resume(context.Background()); err != nil {
				s.notice = err.Error()
			}
		case "esc":
			s.showQuitConfirm = true
		}
		return s, nil

	case sess.StatusActive:
		s.notice = ""
		switch key {
		case "esc":
			s.showQuitConfirm = true
			return s, nil
		case "ctrl+p":
			if err := s.engine.Pause(context.Background()); err != nil {
				s.notice = err.Error()
			}
			return s, nil
		case "ctrl+s":
			return s.submitCurrent()
		case "tab":
			s.moveTo(s.engine.Cursor() + 1)
			return s, nil
		case "shift+tab":
			s.moveTo(s.engine.Cursor() - 1)
			return s, nil
		case "ctrl+h":
			return s.revealHint()
		case "ctrl+k":
			return s.skipCurrent()
		}
		return s.forwardToInput(msg)
	}

	return s, nil
}

// forwardToInput routes a message to the answer box and mirrors the result
// into the engine's draft for the current question.
func (s *SessionScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.editable() {
		return s, nil
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		if err := s.engine.SetDraft(s.engine.Current().ID, after); err != nil {
			s.notice = err.Error()
		}
	}
	return s, cmd
}

func (s *SessionScreen) editable() bool {
	return s.engine != nil &&
		s.engine.Status() == sess.StatusActive &&
		!s.showQuitConfirm &&
		s.errMsg == ""
}

// moveTo navigates and swaps the answer box content for the new question.
func (s *SessionScreen) moveTo(index int) {
	err := s.engine.GoTo(context.Background(), index)
	if err != nil {
		if !errors.Is(err, sess.ErrOutOfRange) {
			s.notice = err.Error()
		}
		return
	}
	q := s.engine.Current()
	if ans, ok := s.engine.Answer(q.ID); ok && s.engine.Draft(q.ID) == "" {
		s.input.SetValue(ans.Text)
	} else {
		s.input.SetValue(s.engine.Draft(q.ID))
	}
}

func (s *SessionScreen) submitCurrent() (screen.Screen, tea.Cmd) {
	q := s.engine.Current()
	ans, err := s.engine.Submit(context.Background(), q.ID, s.input.Value())
	if err != nil {
		switch {
		case errors.Is(err, sess.ErrEmptyAnswer):
			s.notice = "Write an answer before submitting"
		case errors.Is(err, sess.ErrAlreadyAnswered):
			s.notice = "Already answered; resubmission is off in this mode"
		default:
			s.notice = err.Error()
		}
		return s, nil
	}

	if s.deps.Scorer != nil {
		s.deps.Scorer.RequestScore(context.Background(), scoring.Input{
			SessionID:   s.engine.ID(),
			Question:    q,
			AnswerText:  ans.Text,
			HintPenalty: s.engine.HintUsage(q.ID).CumulativePenalty,
		})
	}

	if s.engine.Status() == sess.StatusCompleted {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.input.SetValue(s.engine.Draft(s.engine.Current().ID))
	return s, nil
}

func (s *SessionScreen) skipCurrent() (screen.Screen, tea.Cmd) {
	err := s.engine.Skip(context.Background())
	if err != nil {
		if errors.Is(err, sess.ErrSkipDisabled) {
			s.notice = "Skipping is off in this mode"
		} else {
			s.notice = err.Error()
		}
		return s, nil
	}
	if s.engine.Status() == sess.StatusCompleted {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.input.SetValue(s.engine.Draft(s.engine.Current().ID))
	return s, nil
}

// revealHint unlocks the next hint level and resolves its display text,
// either from the question's authored hints or the AI content service.
func (s *SessionScreen) revealHint() (screen.Screen, tea.Cmd) {
	q := s.engine.Current()
	res, err := s.engine.RevealHint(context.Background(), q.ID)
	if err != nil {
		if errors.Is(err, sess.ErrHintsDisabled) {
			s.notice = "Hints are off in this mode"
		} else {
			s.notice = err.Error()
		}
		return s, nil
	}

	switch res.Status {
	case hints.StatusNoMoreHints:
		s.notice = "No more hints for this question"
		return s, nil
	case hints.StatusTooEarly:
		s.notice = "Sit with the question a little longer before a hint"
		return s, nil
	}

	if res.Level < len(q.Hints) {
		s.shownHints[q.ID] = append(s.shownHints[q.ID], q.Hints[res.Level])
		return s, nil
	}
	if s.deps.HintText != nil {
		s.hintPending = true
		s.deps.HintText.RequestHint(context.Background(), q, res.Level, s.engine.Draft(q.ID))
		return s, hintPollCmd()
	}
	return s, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// hintPollCmd polls for generated hint text at a short interval.
func hintPollCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return hintPollMsg(t)
	})
}
