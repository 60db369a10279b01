package hints

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"prepkit/internal/llm"
	"prepkit/internal/question"
)

func hintJSON(text string) json.RawMessage {
	out, _ := json.Marshal(map[string]string{"hint": text})
	return out
}

func contentQuestion() question.Question {
	return question.Question{
		ID:     "q-api",
		Prompt: "Design a rate limiter for a public API.",
		Type:   question.TypeSystemDesign,
	}
}

func pollHint(t *testing.T, svc *ContentService) *Hint {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if h, ok := svc.ConsumeHint(); ok {
			return h
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no hint within deadline")
	return nil
}

func TestContentService_GeneratesHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON("Think about what happens when two requests arrive in the same instant."),
	})
	svc := NewContentService(mock, DefaultContentConfig())

	q := contentQuestion()
	svc.RequestHint(t.Context(), q, 1, "token bucket maybe?")

	h := pollHint(t, svc)
	if h.QuestionID != q.ID {
		t.Errorf("question id = %q, want %q", h.QuestionID, q.ID)
	}
	if h.Level != 1 {
		t.Errorf("level = %d, want 1", h.Level)
	}
	if h.Text == "" {
		t.Error("expected hint text")
	}
}

func TestContentService_ConsumeOnce(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: hintJSON("A nudge.")})
	svc := NewContentService(mock, DefaultContentConfig())

	svc.RequestHint(t.Context(), contentQuestion(), 0, "")
	pollHint(t, svc)

	if _, ok := svc.ConsumeHint(); ok {
		t.Error("second consume should return nothing")
	}
}

func TestContentService_FailureYieldsNil(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("provider down")})
	svc := NewContentService(mock, DefaultContentConfig())

	svc.RequestHint(t.Context(), contentQuestion(), 0, "")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if h, ok := svc.ConsumeHint(); ok {
			if h != nil {
				t.Errorf("expected nil hint on failure, got %+v", h)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("failure result never surfaced")
}
