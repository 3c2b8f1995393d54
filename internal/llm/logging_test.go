package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/trisha-agni/flashcard-cong-app/internal/store"
)

type captureRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureRepo) Events(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) Event(context.Context, int64) (*store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) UsageByPurpose(context.Context) ([]store.Usage, error) {
	return nil, nil
}

func (c *captureRepo) UsageByModel(context.Context) ([]store.Usage, error) {
	return nil, nil
}

func TestLogging_RecordsBackendAndModelSeparately(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	repo := &captureRepo{}
	p := WithLogging(mock, "openrouter", repo)

	ctx := WithPurpose(context.Background(), "explain-term")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", ev.Provider)
	}
	if ev.Model == ev.Provider {
		t.Error("model column must not repeat the backend name")
	}
	if ev.Purpose != "explain-term" {
		t.Errorf("purpose = %q, want explain-term", ev.Purpose)
	}
	if !ev.Success {
		t.Error("successful call must be recorded as a success")
	}
}
