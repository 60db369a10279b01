package scoring

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"prepkit/internal/llm"
	"prepkit/internal/question"
	"prepkit/internal/store"
)

// recordingEventRepo captures score events only.
type recordingEventRepo struct {
	scoreEvents []store.ScoreEventData
}

func (r *recordingEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendHintEvent(_ context.Context, _ store.HintEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendScoreEvent(_ context.Context, data store.ScoreEventData) error {
	r.scoreEvents = append(r.scoreEvents, data)
	return nil
}
func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (r *recordingEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (r *recordingEventRepo) Summary(_ context.Context) (store.Summary, error) {
	return store.Summary{}, nil
}

func validScoreJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 72,
		"feedback": "Solid structure, but the example lacked a measurable outcome.",
		"strengths": ["clear STAR structure", "owns the mistake"],
		"improvements": ["quantify the result", "name the follow-up process change"]
	}`)
}

func testQuestion() question.Question {
	return question.BuiltinBank().Questions()[0]
}

func pollScore(t *testing.T, svc *Service, questionID string) *Score {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if score, ok := svc.Consume(questionID); ok {
			return score
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no score within deadline")
	return nil
}

func TestService_ScoresAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScoreJSON()})
	svc := NewService(mock, nil, DefaultConfig())

	q := testQuestion()
	svc.RequestScore(t.Context(), Input{
		Question:    q,
		AnswerText:  "At my last job we disagreed about...",
		HintPenalty: 25,
	})

	score := pollScore(t, svc, q.ID)
	if score.Value != 72 {
		t.Errorf("Value = %d, want 72", score.Value)
	}
	if score.Feedback == "" {
		t.Error("expected non-empty feedback")
	}
	if len(score.Strengths) != 2 || len(score.Improvements) != 2 {
		t.Errorf("strengths/improvements = %d/%d, want 2/2",
			len(score.Strengths), len(score.Improvements))
	}

	// Consumed scores are cleared.
	if _, ok := svc.Consume(q.ID); ok {
		t.Error("expected score to be consumed exactly once")
	}
}

func TestService_PenaltyReachesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScoreJSON()})
	svc := NewService(mock, nil, DefaultConfig())

	q := testQuestion()
	svc.RequestScore(t.Context(), Input{Question: q, AnswerText: "answer", HintPenalty: 25})
	pollScore(t, svc, q.ID)

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "25 points") {
		t.Errorf("prompt missing hint penalty: %q", prompt)
	}
}

func TestService_PersistsScoreEvent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScoreJSON()})
	repo := &recordingEventRepo{}
	svc := NewService(mock, repo, DefaultConfig())

	q := testQuestion()
	svc.RequestScore(t.Context(), Input{
		SessionID:   "sess-1",
		Question:    q,
		AnswerText:  "answer",
		HintPenalty: 10,
	})
	pollScore(t, svc, q.ID)

	if len(repo.scoreEvents) != 1 {
		t.Fatalf("score events = %d, want 1", len(repo.scoreEvents))
	}
	ev := repo.scoreEvents[0]
	if ev.SessionID != "sess-1" || ev.QuestionID != q.ID {
		t.Errorf("event keys = %s/%s, want sess-1/%s", ev.SessionID, ev.QuestionID, q.ID)
	}
	if ev.Score != 72 || ev.HintPenalty != 10 {
		t.Errorf("event score/penalty = %d/%d, want 72/10", ev.Score, ev.HintPenalty)
	}
}

func TestService_FailureDoesNotProduceScore(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := NewService(mock, nil, DefaultConfig())

	q := testQuestion()
	svc.RequestScore(t.Context(), Input{Question: q, AnswerText: "answer"})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.StatusFor(q.ID) == StatusFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := svc.StatusFor(q.ID); got != StatusFailed {
		t.Fatalf("StatusFor = %v, want StatusFailed", got)
	}
	if _, ok := svc.Consume(q.ID); ok {
		t.Error("failed request must not yield a score")
	}
}
