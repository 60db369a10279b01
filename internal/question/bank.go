package question

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bank is an ordered, immutable collection of questions.
type Bank struct {
	questions []Question
	byID      map[string]*Question
}

// NewBank builds a Bank from a slice of questions, validating uniqueness.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	b := &Bank{
		questions: questions,
		byID:      make(map[string]*Question, len(questions)),
	}
	for i := range b.questions {
		q := &b.questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: missing id", i)
		}
		if q.Prompt == "" {
			return nil, fmt.Errorf("question %q: missing prompt", q.ID)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		b.byID[q.ID] = q
	}
	return b, nil
}

// LoadBank reads a question bank from a JSON file.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return NewBank(questions)
}

// Questions returns the questions in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given ID, or nil if absent.
func (b *Bank) Get(id string) *Question {
	return b.byID[id]
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// FilterByType returns the questions matching the given type, in bank order.
func (b *Bank) FilterByType(t Type) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}
