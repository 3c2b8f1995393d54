package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// Usage aggregates token counts and call outcomes for a group of events.
type Usage struct {
	Key          string // purpose or model, depending on the grouping
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Events returns events matching opts, newest first.
	Events(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// Event returns a single event by ID, or nil if not found.
	Event(ctx context.Context, id int64) (*LLMEvent, error)

	// UsageByPurpose aggregates usage per purpose.
	UsageByPurpose(ctx context.Context) ([]Usage, error)

	// UsageByModel aggregates usage per model.
	UsageByModel(ctx context.Context) ([]Usage, error)
}
