package authoring

import (
	"context"
	"fmt"

	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
)

// Completer is the slice of the AI gateway authoring needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Author generates a question set for the deck. Gateway errors
// propagate; a reply that parses to nothing returns an empty Test and
// a nil error, the caller decides how to surface that.
func Author(ctx context.Context, c Completer, d *deck.Deck, kind Kind, length Length) (*Test, error) {
	ctx = llm.WithPurpose(ctx, "test-gen")

	raw, err := c.Complete(ctx, buildPrompt(d.Terms, kind, length))
	if err != nil {
		return nil, fmt.Errorf("author %s test for deck %q: %w", kind, d.Name, err)
	}

	lines := splitLines(raw)
	t := &Test{
		Deck:     d.Name,
		Kind:     kind,
		Length:   length,
		RawLines: lines,
	}

	switch kind {
	case KindFRQ:
		t.FRQs = parseFRQs(lines)
	default:
		t.MCQs = parseMCQs(lines)
	}
	return t, nil
}
