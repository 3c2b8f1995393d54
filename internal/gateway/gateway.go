package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
)

// Default generation parameters. Explanations are capped tight so the
// model cannot ramble past a paragraph; test generation and grading get
// room for full question sets.
const (
	explainMaxTokens  = 150
	completeMaxTokens = 1024
	temperature       = 0.5
)

const explainSystemPrompt = "You are a helpful tutor. Always respond with a single clear explanatory paragraph, without showing reasoning or internal thoughts."

// Gateway is the single entry point for every AI feature. All prompts
// flow through one injected provider so middleware (retry, telemetry)
// applies uniformly.
type Gateway struct {
	provider llm.Provider
}

// New creates a Gateway on the given provider.
func New(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// ModelID returns the underlying provider's model identifier.
func (g *Gateway) ModelID() string {
	return g.provider.ModelID()
}

// ExplainTerm asks the model for a one-paragraph explanation of term.
func (g *Gateway) ExplainTerm(ctx context.Context, term string) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain-term")

	prompt := fmt.Sprintf("Explain the term '%s' in one concise paragraph. Do not include reasoning steps, lists, or meta-commentary, only give the final explanation.", term)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   explainMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("explain term %q: %w", term, err)
	}

	return strings.TrimSpace(string(resp.Content)), nil
}

// Complete sends a single user turn and returns the raw text reply.
// Purpose should already be set on ctx by the caller.
func (g *Gateway) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   completeMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}

	return strings.TrimSpace(string(resp.Content)), nil
}

// CompleteJSON sends a single user turn constrained to schema and
// returns the validated JSON reply.
func (g *Gateway) CompleteJSON(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      schema,
		MaxTokens:   completeMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("structured completion: %w", err)
	}

	return resp.Content, nil
}
