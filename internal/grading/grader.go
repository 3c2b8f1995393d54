package grading

import (
	"context"
	"encoding/json"

	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
)

// Completer is the slice of the AI gateway grading needs.
type Completer interface {
	CompleteJSON(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error)
}

// decode turns a grading reply into typed entries. Stage one trusts
// the schema-constrained reply and unmarshals it whole; stage two
// scans for an embedded JSON substring when the model wrapped the
// array in prose anyway. Any failure yields zero entries, never an
// error: a bad grading reply degrades the result, it must not sink
// the session.
func decode[T any](raw json.RawMessage) []T {
	var entries []T
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries
	}

	extracted := ExtractJSON(string(raw))
	if extracted == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(extracted), &entries); err != nil {
		return nil
	}
	return entries
}
