package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func appendEvent(t *testing.T, repo EventRepo, data LLMRequestEventData) {
	t.Helper()
	if err := repo.AppendLLMRequest(context.Background(), data); err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.Events(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openrouter", Model: "meta-llama/llama-3.1-405b-instruct:free",
		Purpose: "explain-term", InputTokens: 20, OutputTokens: 80,
		LatencyMs: 350, Success: true,
		RequestBody: "[user]\nexplain photosynthesis", ResponseBody: "Photosynthesis is...",
	})
	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openrouter", Model: "meta-llama/llama-3.1-405b-instruct:free",
		Purpose: "test-gen", InputTokens: 120, OutputTokens: 600,
		LatencyMs: 2200, Success: true,
	})
	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openrouter", Model: "meta-llama/llama-3.1-405b-instruct:free",
		Purpose: "test-gen", Success: false, ErrorMessage: "rate limited",
	})

	events, err = repo.Events(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "test-gen" || events[0].ErrorMessage != "rate limited" {
		t.Fatalf("unexpected newest event: %+v", events[0])
	}
	if events[2].Purpose != "explain-term" {
		t.Fatalf("unexpected oldest event: %+v", events[2])
	}
}

func TestQueryEventsFiltered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		purpose := "explain-term"
		if i%2 == 0 {
			purpose = "mcq-grading"
		}
		appendEvent(t, repo, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
	}

	events, err := repo.Events(ctx, QueryOpts{Purpose: "mcq-grading"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 mcq-grading events, got %d", len(events))
	}

	events, err = repo.Events(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(events))
	}
}

func TestEventByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvent(t, repo, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "frq-grading", Success: true,
		ResponseBody: `[{"q":1,"score":4,"feedback":"ok"}]`,
	})

	events, err := repo.Events(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	ev, err := repo.Event(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if ev == nil {
		t.Fatal("expected event, got nil")
	}
	if ev.ResponseBody != `[{"q":1,"score":4,"feedback":"ok"}]` {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}

	missing, err := repo.Event(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explain-term",
		InputTokens: 10, OutputTokens: 50, Success: true,
	})
	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explain-term",
		InputTokens: 15, OutputTokens: 60, Success: true,
	})
	appendEvent(t, repo, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "test-gen",
		InputTokens: 100, OutputTokens: 700, Success: false, ErrorMessage: "timeout",
	})

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Sorted by call count descending.
	if byPurpose[0].Key != "explain-term" || byPurpose[0].Calls != 2 {
		t.Fatalf("unexpected top purpose: %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 25 || byPurpose[0].OutputTokens != 110 {
		t.Fatalf("unexpected token totals: %+v", byPurpose[0])
	}
	if byPurpose[1].Failures != 1 {
		t.Fatalf("expected 1 failure for test-gen, got %d", byPurpose[1].Failures)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Key != "gpt-4o-mini" {
		t.Fatalf("unexpected top model: %+v", byModel[0])
	}
}
