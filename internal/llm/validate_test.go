package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func gradedAnswerSchema() *Schema {
	return &Schema{
		Name:        "graded-answer",
		Description: "One graded answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"q":       map[string]any{"type": "integer", "minimum": 1},
				"correct": map[string]any{"type": "string", "enum": []any{"yes", "no"}},
				"score":   map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"q", "correct"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"q":1,"correct":"yes","score":5}`)
	if err := validateResponse(gradedAnswerSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"q":2,"correct":"no"}`)
	if err := validateResponse(gradedAnswerSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"q":3}`)
	err := validateResponse(gradedAnswerSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"q":"one","correct":"yes"}`)
	err := validateResponse(gradedAnswerSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"q":4,"correct":"maybe"}`)
	err := validateResponse(gradedAnswerSchema(), raw)
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
	err := validateResponse(gradedAnswerSchema(), raw)
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
	if err := validateResponse(gradedAnswerSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ArrayOfObjects(t *testing.T) {
	schema := &Schema{
		Name:        "graded-answers",
		Description: "Graded answer list",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"q":        map[string]any{"type": "integer"},
					"feedback": map[string]any{"type": "string"},
				},
				"required": []any{"q"},
			},
		},
	}

	valid := json.RawMessage(`[{"q":1,"feedback":"solid"},{"q":2}]`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`[{"feedback":"missing index"}]`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for missing required item field")
	}
}
