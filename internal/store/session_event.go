package store

import (
	"context"
	"fmt"

	"prepkit/ent/answerevent"
	"prepkit/ent/scoreevent"
	"prepkit/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsCompleted(data.QuestionsCompleted).
		SetQuestionsSkipped(data.QuestionsSkipped).
		SetHintsUsed(data.HintsUsed).
		SetPenaltyTotal(data.PenaltyTotal).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context) (Summary, error) {
	var sum Summary

	completed, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("completed")).
		All(ctx)
	if err != nil {
		return sum, fmt.Errorf("query completed sessions: %w", err)
	}
	sum.SessionsCompleted = len(completed)
	for _, e := range completed {
		sum.HintsRevealed += e.HintsUsed
		sum.TotalPracticeSecs += e.DurationSecs
	}

	sum.AnswersSubmitted, err = r.client.AnswerEvent.Query().
		Where(answerevent.Resubmission(false)).
		Count(ctx)
	if err != nil {
		return sum, fmt.Errorf("count answers: %w", err)
	}

	scores, err := r.client.ScoreEvent.Query().
		Select(scoreevent.FieldScore).
		All(ctx)
	if err != nil {
		return sum, fmt.Errorf("query scores: %w", err)
	}
	if len(scores) > 0 {
		total := 0
		for _, s := range scores {
			total += s.Score
		}
		sum.AverageScore = float64(total) / float64(len(scores))
	}

	return sum, nil
}
