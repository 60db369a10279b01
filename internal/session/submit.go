package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"prepkit/internal/store"
)

// Submit finalizes an answer for a question. The text is trimmed and must
// be non-empty. When resubmission is disallowed a second submit for the
// same question is rejected. Submitting the current question advances the
// cursor, or completes the session when it is the last question.
func (e *Engine) Submit(ctx context.Context, questionID, text string) (Answer, error) {
	if err := e.requireActive(); err != nil {
		return Answer{}, err
	}
	q, ok := e.questionByID(questionID)
	if !ok {
		return Answer{}, ErrOutOfRange
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Answer{}, ErrEmptyAnswer
	}
	_, resubmission := e.answers[questionID]
	if resubmission && !e.settings.AllowResubmit {
		return Answer{}, ErrAlreadyAnswered
	}

	ans := Answer{
		QuestionID:   questionID,
		Text:         trimmed,
		SubmittedAt:  e.now(),
		TimeSpent:    e.watchFor(questionID).Elapsed(),
		HintsUsed:    e.hints.Count(questionID),
		Resubmission: resubmission,
	}
	if !resubmission {
		e.answerOrder = append(e.answerOrder, questionID)
	}
	e.answers[questionID] = &ans
	delete(e.skipped, questionID)
	e.drafts.Discard(questionID)

	if e.opts.Events != nil {
		err := e.opts.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      e.id,
			QuestionID:     questionID,
			QuestionPrompt: q.Prompt,
			AnswerText:     trimmed,
			TimeSpentSecs:  int(ans.TimeSpent.Seconds()),
			HintsUsed:      ans.HintsUsed,
			Resubmission:   resubmission,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record answer event: %v\n", err)
		}
	}

	if questionID == e.currentID() {
		if e.cursor+1 < len(e.questions) {
			if err := e.GoTo(ctx, e.cursor+1); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not advance after submit: %v\n", err)
			}
		} else if err := e.complete(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not complete after final submit: %v\n", err)
		}
	}
	return ans, nil
}
