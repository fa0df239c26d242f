// Package generator turns a staged diff into a commit message through a
// single model call plus deterministic post-processing.
package generator

import (
	"context"
	"fmt"
	"strings"

	"commity/internal/gitx"
	"commity/internal/llm"
	"commity/internal/prompt"
)

// GenerationError wraps any failure of a generation attempt with the
// provider and model it was attempted against. The underlying llm.Error
// stays reachable through Unwrap for kind-based rendering.
type GenerationError struct {
	Provider string
	Model    string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate commit message (provider %s, model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Options bound the generated message; zero values mean no bound.
type Options struct {
	// MaxMessageChars truncates the cleaned message at a rune boundary
	// when the backend ignored the length hints in the prompt.
	MaxMessageChars int

	// Model is carried into GenerationError for diagnostics; the client
	// itself does not expose it.
	Model string
}

// Generate builds the prompt for diff, issues one request on client, and
// post-processes the reply. No retries and no second provider: a failure
// is reported, not masked.
func Generate(ctx context.Context, diff gitx.DiffInput, style prompt.StyleOptions, client llm.Client, opts Options) (string, error) {
	p := prompt.Build(diff, style)

	raw, err := client.Generate(ctx, p)
	if err != nil {
		return "", &GenerationError{Provider: client.Name(), Model: opts.Model, Err: err}
	}

	msg := Clean(raw)
	if strings.TrimSpace(msg) == "" {
		return "", &GenerationError{
			Provider: client.Name(),
			Model:    opts.Model,
			Err:      llm.Errorf(llm.KindEmptyResponse, client.Name(), "backend returned an empty message"),
		}
	}

	if opts.MaxMessageChars > 0 {
		if r := []rune(msg); len(r) > opts.MaxMessageChars {
			msg = strings.TrimSpace(string(r[:opts.MaxMessageChars]))
		}
	}

	return msg, nil
}
