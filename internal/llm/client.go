// Package llm defines the capability shared by every backend: turn one
// prompt into one generated text, or fail with a classified error.
package llm

import "context"

// Client is the interface all provider clients implement.
//
// Generate is a single blocking attempt: no internal retries, no fallback.
// The client enforces the configured timeout itself, and aborts promptly
// when ctx is cancelled. Clients hold no per-call state and are safe to
// reuse across sequential calls.
type Client interface {
	// Generate sends the fully rendered prompt to the backend and returns
	// the generated text, or an *Error classifying the failure.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the stable lowercase provider identifier, for error
	// context and display.
	Name() string
}
