package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantErr: false,
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:    "default base URL",
			cfg:     OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b"},
			wantErr: false,
		},
		{
			name:    "custom base URL",
			cfg:     OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp", BaseURL: "https://proxy.internal/v1"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// Route IDs are never alias-mapped; they reach the API as-is.
			if p.ModelID() != tt.cfg.Model {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.cfg.Model)
			}
		})
	}
}
