package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// scoreCheckSchema mirrors the shape of the answer evaluation schema.
func scoreCheckSchema() *Schema {
	return &Schema{
		Name:        "score-check",
		Description: "Structured evaluation of an interview answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"feedback": map[string]any{"type": "string"},
				"verdict":  map[string]any{"type": "string", "enum": []any{"strong", "adequate", "weak"}},
			},
			"required": []any{"score", "feedback"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"score":82,"feedback":"Clear structure, concrete examples.","verdict":"strong"}`)
	if err := validateResponse(scoreCheckSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"score":55,"feedback":"Touches the key trade-off but stays vague."}`)
	if err := validateResponse(scoreCheckSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":70}`)
	err := validateResponse(scoreCheckSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"score":"eighty","feedback":"ok"}`)
	err := validateResponse(scoreCheckSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"score":95,"feedback":"ok","verdict":"stellar"}`)
	err := validateResponse(scoreCheckSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(scoreCheckSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(scoreCheckSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "evaluation-check",
		Description: "Evaluation with nested breakdown",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"evaluation": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"feedback": map[string]any{"type": "string"},
					},
					"required": []any{"feedback"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"evaluation", "strengths"},
		},
	}

	valid := json.RawMessage(`{"evaluation":{"feedback":"Solid STAR framing."},"strengths":["specific metrics","clear outcome"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"evaluation":{"feedback":"ok"},"strengths":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
