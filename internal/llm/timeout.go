package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that caps each Generate call with a
// deadline. It wraps the retry layer, so the cap covers every attempt
// of a request.
type TimeoutProvider struct {
	inner Provider
	d     time.Duration
}

// WithTimeout wraps a Provider with a per-request deadline. A
// non-positive duration returns the provider unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, d: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
