package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"commity/internal/config"
	"commity/internal/llm"
)

func TestHintForDistinguishesKinds(t *testing.T) {
	tests := []struct {
		kind llm.Kind
		want string
	}{
		{llm.KindConnectionFailed, "ollama serve"},
		{llm.KindTimeout, "--timeout"},
		{llm.KindAuthenticationFailed, "COMMITY_API_KEY"},
		{llm.KindRateLimited, "try again later"},
		{llm.KindModelNotFound, "ollama pull"},
		{llm.KindBackendUnavailable, "server-side"},
		{llm.KindMalformedResponse, "endpoint"},
		{llm.KindEmptyResponse, "regenerating"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		err := llm.Errorf(tt.kind, "test", "boom")
		hint := hintFor(err)
		assert.Contains(t, hint, tt.want, "kind %s", tt.kind)
		assert.False(t, seen[hint], "hint for %s duplicates another kind", tt.kind)
		seen[hint] = true
	}
}

func TestHintForWrappedError(t *testing.T) {
	// The kind must survive wrapping through intermediate errors.
	err := fmt.Errorf("outer: %w", llm.Errorf(llm.KindRateLimited, "openai", "429"))
	assert.Contains(t, hintFor(err), "try again later")
}

func TestHintForConfigErrors(t *testing.T) {
	err := error(&config.ConfigError{Field: "provider", Err: fmt.Errorf("%w: %q", config.ErrUnknownProvider, "openrouter")})
	assert.Contains(t, hintFor(err), "ollama, openai, anthropic, gemini")

	err = &config.ConfigError{Field: "api_key", Err: config.ErrMissingCredential}
	assert.Contains(t, hintFor(err), "--api-key")
}

func TestHintForUnclassified(t *testing.T) {
	assert.Empty(t, hintFor(fmt.Errorf("plain failure")))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "****", maskKey("short"))
	assert.Equal(t, "sk-a...wxyz", maskKey("sk-abcdefgh-wxyz"))
}
