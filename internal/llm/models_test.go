package llm

import (
	"math"
	"testing"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		models map[string]string
		input  string
		want   string
	}{
		{"anthropic alias", anthropicModels, "claude-sonnet", "claude-sonnet-4-20250514"},
		{"anthropic alias haiku", anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{"openai alias", openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{"gemini alias", geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{"gemini alias pro", geminiModels, "gemini-pro", "gemini-2.0-pro"},
		{"direct ID passes through", anthropicModels, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{"openrouter route passes through", openaiModels, "meta-llama/llama-3-8b", "meta-llama/llama-3-8b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveModel(tt.input, tt.models); got != tt.want {
				t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Cost(1M, 1M) = %v, want 0.75", got)
	}

	if LookupCost("meta-llama/llama-3-8b") != nil {
		t.Error("expected unknown cost for an OpenRouter route")
	}
}
