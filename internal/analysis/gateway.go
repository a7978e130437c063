package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legilight-backend/internal/llm"
)

// RawResponse is the model's unparsed reply plus the model-call latency.
type RawResponse struct {
	Text    string
	Elapsed time.Duration
}

// Gateway invokes the generative model client and measures the call.
// It is the only component that talks to the model directly.
type Gateway struct {
	Client llm.Client
}

// Available reports whether a real model client is configured.
func (g *Gateway) Available() bool {
	if g == nil || g.Client == nil {
		return false
	}
	_, placeholder := g.Client.(llm.PlaceholderClient)
	return !placeholder
}

// Invoke sends the prompt to the model and returns the raw reply with timing.
func (g *Gateway) Invoke(ctx context.Context, prompt string) (RawResponse, error) {
	if !g.Available() {
		return RawResponse{}, ErrModelUnavailable
	}
	start := time.Now()
	text, err := g.Client.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return RawResponse{}, ErrModelUnavailable
		}
		return RawResponse{Elapsed: elapsed}, fmt.Errorf("model invocation failed: %w", err)
	}
	return RawResponse{Text: text, Elapsed: elapsed}, nil
}
