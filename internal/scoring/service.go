// Package scoring asks the LLM to evaluate submitted answers. Scoring is
// best-effort: a submitted answer stays submitted whether or not its score
// ever arrives.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"prepkit/internal/llm"
	"prepkit/internal/question"
	"prepkit/internal/store"
)

// Input holds everything the scorer needs for one answer.
type Input struct {
	SessionID   string
	Question    question.Question
	AnswerText  string
	HintPenalty int // penalty magnitude from the hint ledger, applied by the scorer
}

// Score is the scorer's verdict.
type Score struct {
	QuestionID   string
	Value        int // 0-100, after hint penalty
	Feedback     string
	Strengths    []string
	Improvements []string
}

// Status reports where an in-flight scoring request stands.
type Status int

const (
	StatusNone    Status = iota // nothing requested
	StatusPending               // request in flight
	StatusDone                  // score ready for consumption
	StatusFailed                // request failed; the answer is unaffected
)

// Config holds scoring generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for scoring.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.2,
	}
}

// scoreSchema defines the JSON schema for answer scoring.
var scoreSchema = &llm.Schema{
	Name:        "answer-score",
	Description: "Structured evaluation of an interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall score after subtracting the stated hint penalty",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overall assessment",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 specific strengths of the answer",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 concrete ways to improve the answer",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}

const scoreSystemPrompt = `You are a senior interviewer evaluating a candidate's written answer. Score fairly against what a strong candidate would say, reward structure and concrete detail, and subtract the stated hint penalty from the final score.`

// Service scores answers asynchronously. One request is in flight per
// question; a new request for the same question replaces the pending one.
type Service struct {
	provider llm.Provider
	events   store.EventRepo // optional; scores are persisted when set
	cfg      Config

	mu      sync.Mutex
	status  map[string]Status
	results map[string]*Score
}

// NewService creates a scoring service. A nil events repo disables score
// persistence.
func NewService(provider llm.Provider, events store.EventRepo, cfg Config) *Service {
	return &Service{
		provider: provider,
		events:   events,
		cfg:      cfg,
		status:   make(map[string]Status),
		results:  make(map[string]*Score),
	}
}

// RequestScore starts async scoring for a submitted answer.
func (s *Service) RequestScore(ctx context.Context, input Input) {
	qid := input.Question.ID
	s.mu.Lock()
	s.status[qid] = StatusPending
	delete(s.results, qid)
	s.mu.Unlock()

	go func() {
		score, err := s.generate(ctx, input)
		if err == nil {
			s.record(ctx, input, score)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.status[qid] = StatusFailed
			return
		}
		s.status[qid] = StatusDone
		s.results[qid] = score
	}()
}

// Consume returns the score for a question if one is ready, clearing it.
func (s *Service) Consume(questionID string) (*Score, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.results[questionID]
	if !ok {
		return nil, false
	}
	delete(s.results, questionID)
	s.status[questionID] = StatusNone
	return score, true
}

// StatusFor reports the scoring status for a question.
func (s *Service) StatusFor(questionID string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[questionID]
}

// record persists the verdict best-effort; a failed write never blocks the
// score from reaching the UI.
func (s *Service) record(ctx context.Context, input Input, score *Score) {
	if s.events == nil {
		return
	}
	err := s.events.AppendScoreEvent(ctx, store.ScoreEventData{
		SessionID:   input.SessionID,
		QuestionID:  score.QuestionID,
		Score:       score.Value,
		Feedback:    score.Feedback,
		HintPenalty: input.HintPenalty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record score event: %v\n", err)
	}
}

type scoreOutput struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Score, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeScoring)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Question (%s, %s): %s\n\n",
		input.Question.Type, input.Question.Difficulty, input.Question.Prompt))
	b.WriteString("Candidate's answer:\n")
	b.WriteString(input.AnswerText)
	b.WriteString("\n\n")
	if input.HintPenalty > 0 {
		b.WriteString(fmt.Sprintf("The candidate used hints costing %d points; subtract this from the score.\n", input.HintPenalty))
	} else {
		b.WriteString("The candidate used no hints.\n")
	}
	b.WriteString("\nEvaluate the answer.")

	req := llm.Request{
		System: scoreSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      scoreSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("score generation: %w", err)
	}

	var out scoreOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse score response: %w", err)
	}

	return &Score{
		QuestionID:   input.Question.ID,
		Value:        out.Score,
		Feedback:     out.Feedback,
		Strengths:    out.Strengths,
		Improvements: out.Improvements,
	}, nil
}
