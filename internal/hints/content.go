package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"prepkit/internal/llm"
	"prepkit/internal/question"
)

// Hint is LLM-generated hint text for one question level.
type Hint struct {
	QuestionID string
	Level      int
	Text       string
}

// ContentConfig holds hint generation settings.
type ContentConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultContentConfig returns sensible defaults for hint generation.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		MaxTokens:   256,
		Temperature: 0.4,
	}
}

// hintSchema defines the JSON schema for hint generation.
var hintSchema = &llm.Schema{
	Name:        "interview-hint",
	Description: "A graduated hint nudging the candidate without giving the answer away",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "The hint text (1-3 sentences), proportional in directness to the requested level",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

const hintSystemPrompt = `You are an experienced interview coach. The candidate is stuck on a question and asked for a hint. Give a nudge, not a model answer: level 1 hints only reframe the question, level 2 hints point at the key idea, level 3 hints outline the shape of a strong answer.`

// ContentService generates hint text asynchronously when a question carries
// no static hints. Only one hint is in-flight at a time; new requests
// replace pending ones.
type ContentService struct {
	provider llm.Provider
	cfg      ContentConfig

	mu      sync.Mutex
	pending *Hint
	err     error
	ready   bool
}

// NewContentService creates a hint content service.
func NewContentService(provider llm.Provider, cfg ContentConfig) *ContentService {
	return &ContentService{provider: provider, cfg: cfg}
}

// RequestHint starts async hint generation for a question level. The
// current draft, when non-empty, gives the model context on where the
// candidate is stuck.
func (s *ContentService) RequestHint(ctx context.Context, q question.Question, level int, draft string) {
	go func() {
		hint, err := s.generate(ctx, q, level, draft)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = hint
		s.err = err
		s.ready = true
	}()
}

// ConsumeHint returns the finished generation result. The bool reports
// whether generation completed; a true with a nil hint means it failed and
// the caller should tell the user rather than keep waiting.
func (s *ContentService) ConsumeHint() (*Hint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	hint := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return hint, true
}

type hintOutput struct {
	Hint string `json:"hint"`
}

func (s *ContentService) generate(ctx context.Context, q question.Question, level int, draft string) (*Hint, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeHint)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Question (%s, %s): %s\n", q.Type, q.Difficulty, q.Prompt))
	b.WriteString(fmt.Sprintf("Requested hint level: %d of 3\n", level+1))
	if draft != "" {
		b.WriteString("\nCandidate's draft so far:\n")
		b.WriteString(draft)
		b.WriteString("\n")
	}
	b.WriteString("\nGive one hint at the requested level.")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      hintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	return &Hint{QuestionID: q.ID, Level: level, Text: out.Hint}, nil
}
