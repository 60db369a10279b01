package llm

import (
	"testing"
)

func TestBuildGeminiSchema(t *testing.T) {
	// The answer evaluation shape exercises objects, enums, and arrays.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{"type": "string"},
			"score":    map[string]any{"type": "integer"},
			"verdict":  map[string]any{"type": "string", "enum": []any{"strong", "adequate", "weak"}},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"feedback", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["feedback"].Type != "STRING" {
		t.Fatalf("expected STRING for feedback, got %s", schema.Properties["feedback"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["strengths"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for strengths, got %s", schema.Properties["strengths"].Type)
	}
	if schema.Properties["strengths"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for strengths items, got %s", schema.Properties["strengths"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
