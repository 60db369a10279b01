package session

import (
	"time"

	"prepkit/internal/autosave"
	"prepkit/internal/hints"
	"prepkit/internal/question"
)

// ID returns the session identifier, empty before Start.
func (e *Engine) ID() string { return e.id }

// Mode returns the session's behavior profile.
func (e *Engine) Mode() Mode { return e.mode }

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Settings returns the settings the session was started with.
func (e *Engine) Settings() Settings { return e.settings }

// Len returns the number of questions in the session.
func (e *Engine) Len() int { return len(e.questions) }

// Cursor returns the index of the current question.
func (e *Engine) Cursor() int { return e.cursor }

// Current returns the question under the cursor.
func (e *Engine) Current() question.Question {
	if len(e.questions) == 0 {
		return question.Question{}
	}
	return e.questions[e.cursor]
}

// QuestionAt returns the question at index, or false when out of range.
func (e *Engine) QuestionAt(index int) (question.Question, bool) {
	if index < 0 || index >= len(e.questions) {
		return question.Question{}, false
	}
	return e.questions[index], true
}

// Draft returns the in-progress answer text for a question, empty when no
// draft exists.
func (e *Engine) Draft(questionID string) string {
	if e.drafts == nil {
		return ""
	}
	return e.drafts.Get(questionID)
}

// Answer returns the finalized answer for a question, if one exists.
func (e *Engine) Answer(questionID string) (Answer, bool) {
	a, ok := e.answers[questionID]
	if !ok {
		return Answer{}, false
	}
	return *a, true
}

// Answers returns finalized answers in first-submission order.
func (e *Engine) Answers() []Answer {
	out := make([]Answer, 0, len(e.answerOrder))
	for _, qid := range e.answerOrder {
		out = append(out, *e.answers[qid])
	}
	return out
}

// Skipped reports whether a question was skipped and never answered.
func (e *Engine) Skipped(questionID string) bool {
	return e.skipped[questionID]
}

// HintUsage returns hint state for a question.
func (e *Engine) HintUsage(questionID string) hints.Usage {
	if e.hints == nil {
		return hints.Usage{QuestionID: questionID}
	}
	return e.hints.Usage(questionID)
}

// Unlimited reports whether the session has no time budget.
func (e *Engine) Unlimited() bool {
	return e.countdown == nil || e.countdown.Unlimited()
}

// Elapsed returns total active session time, excluding pauses.
func (e *Engine) Elapsed() time.Duration {
	if e.countdown == nil {
		return 0
	}
	return e.countdown.Elapsed()
}

// Remaining returns the time left on the session budget, zero at or past
// expiry. Meaningless when Unlimited.
func (e *Engine) Remaining() time.Duration {
	if e.countdown == nil {
		return 0
	}
	return e.countdown.Remaining()
}

// TimeOnQuestion returns active time spent on one question.
func (e *Engine) TimeOnQuestion(questionID string) time.Duration {
	w, ok := e.watches[questionID]
	if !ok {
		return 0
	}
	return w.Elapsed()
}

// SaveStatus reports the auto-save state for footer display.
func (e *Engine) SaveStatus() autosave.Status {
	if e.saver == nil {
		return autosave.StatusIdle
	}
	return e.saver.Status()
}

// StartedAt returns when the session started, zero before Start.
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// CompletedAt returns when the session completed, zero until then.
func (e *Engine) CompletedAt() time.Time { return e.completedAt }

// Metrics computes the current progress aggregate. Only lifecycle and
// submission paths mutate the underlying counts; everything here is
// derived on read.
func (e *Engine) Metrics() Metrics {
	m := Metrics{
		QuestionsTotal:    len(e.questions),
		QuestionsAnswered: len(e.answerOrder),
	}
	for _, skipped := range e.skipped {
		if skipped {
			m.QuestionsSkipped++
		}
	}
	m.QuestionsAttempted = m.QuestionsAnswered
	if e.settings.CountDraftsAttempted && e.drafts != nil {
		for _, entry := range e.drafts.Snapshot().Entries() {
			if _, answered := e.answers[entry.QuestionID]; !answered {
				m.QuestionsAttempted++
			}
		}
	}
	if e.hints != nil {
		m.HintsUsed = e.hints.TotalRevealed()
		m.PenaltyTotal = e.hints.TotalPenalty()
	}
	for _, a := range e.answers {
		m.TotalTimeSpent += a.TimeSpent
	}
	return m
}
