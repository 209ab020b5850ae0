// Package ai wraps the external reasoning provider behind a narrow call
// contract. Callers treat every failure as recoverable and fall back to
// deterministic paths; a failed call has no side effects.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no provider is configured. Callers use it
// the same way as any other failure: take the deterministic path.
var ErrUnavailable = errors.New("ai provider unavailable")

// Provider is the single call contract for AI-assisted reasoning. Complete
// returns the raw model response for a text prompt; CompleteVision attaches
// an image. Both block until the response arrives, the context expires, or
// the call fails.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// Unavailable is a Provider that always fails. It stands in when no API key
// is configured, forcing every caller onto its fallback path.
type Unavailable struct{}

// Complete always returns ErrUnavailable
func (Unavailable) Complete(_ context.Context, _ string) (string, error) {
	return "", ErrUnavailable
}

// CompleteVision always returns ErrUnavailable
func (Unavailable) CompleteVision(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return "", ErrUnavailable
}
