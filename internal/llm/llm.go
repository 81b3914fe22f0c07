package llm

import (
	"context"
	"errors"
)

// Client abstracts the text-completion capability used for question and
// recommendation generation. Implementations must honor ctx cancellation and
// bound every call with a timeout.
type Client interface {
	CompleteText(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// ErrUnavailable is returned when the capability cannot produce text.
// Callers are expected to recover from it locally via their fallback paths.
var ErrUnavailable = errors.New("llm unavailable")

// PlaceholderClient is a stub implementation used when no provider is configured.
type PlaceholderClient struct{}

// CompleteText always reports the capability as unavailable.
func (PlaceholderClient) CompleteText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	_ = ctx
	_ = prompt
	_ = systemInstruction
	return "", ErrUnavailable
}
