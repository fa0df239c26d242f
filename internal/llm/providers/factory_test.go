package providers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commity/internal/config"
)

func testConfig(p config.Provider, endpoint string) config.Config {
	cfg := config.Config{
		Provider:    p,
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "test-model",
		Timeout:     5 * time.Second,
		Temperature: 0.3,
		MaxTokens:   256,
	}
	if p == config.ProviderOllama {
		cfg.APIKey = ""
	}
	return cfg
}

func TestFactoryDispatch(t *testing.T) {
	tests := []struct {
		provider config.Provider
		wantType string
	}{
		{config.ProviderOllama, "*providers.Ollama"},
		{config.ProviderOpenAI, "*providers.OpenAI"},
		{config.ProviderAnthropic, "*providers.Anthropic"},
		{config.ProviderGemini, "*providers.Gemini"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			client, err := New(testConfig(tt.provider, "http://localhost:1"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, fmt.Sprintf("%T", client))
			assert.Equal(t, string(tt.provider), client.Name())
		})
	}
}

func TestFactoryUnknownProvider(t *testing.T) {
	cfg := testConfig("openrouter", "http://localhost:1")

	client, err := New(cfg)
	assert.Nil(t, client)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownProvider)
}

func TestFactoryNeverFallsBack(t *testing.T) {
	// An empty provider must not silently become any concrete backend.
	client, err := New(testConfig("", "http://localhost:1"))
	assert.Nil(t, client)
	assert.ErrorIs(t, err, config.ErrUnknownProvider)
}
