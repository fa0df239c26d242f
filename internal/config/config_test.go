package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderKnown(t *testing.T) {
	for _, p := range Providers {
		assert.True(t, p.Known(), "provider %q", p)
	}
	assert.False(t, Provider("openrouter").Known())
	assert.False(t, Provider("").Known())
}

func TestProviderHosted(t *testing.T) {
	assert.False(t, ProviderOllama.Hosted())
	assert.True(t, ProviderOpenAI.Hosted())
	assert.True(t, ProviderAnthropic.Hosted())
	assert.True(t, ProviderGemini.Hosted())
	assert.False(t, Provider("bogus").Hosted())
}

func TestValidate(t *testing.T) {
	valid := func(p Provider) Config {
		c := Config{Provider: p, APIKey: "test-key"}
		if p == ProviderOllama {
			c.APIKey = ""
		}
		c.Normalize()
		return c
	}

	for _, p := range Providers {
		c := valid(p)
		require.NoError(t, c.Validate(), "provider %q", p)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		sentinel error
		field   string
	}{
		{
			name:     "unknown provider",
			mutate:   func(c *Config) { c.Provider = "openrouter" },
			sentinel: ErrUnknownProvider,
			field:    "provider",
		},
		{
			name:     "hosted without api key",
			mutate:   func(c *Config) { c.Provider = ProviderOpenAI; c.APIKey = "" },
			sentinel: ErrMissingCredential,
			field:    "api_key",
		},
		{
			name:     "empty model",
			mutate:   func(c *Config) { c.Model = "" },
			sentinel: ErrMissingModel,
			field:    "model",
		},
		{
			name:     "temperature too high",
			mutate:   func(c *Config) { c.Temperature = 1.5 },
			sentinel: ErrInvalidTemperature,
			field:    "temperature",
		},
		{
			name:     "temperature negative",
			mutate:   func(c *Config) { c.Temperature = -0.1 },
			sentinel: ErrInvalidTemperature,
			field:    "temperature",
		},
		{
			name:     "negative max tokens",
			mutate:   func(c *Config) { c.MaxTokens = -1 },
			sentinel: ErrInvalidMaxTokens,
			field:    "max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid(ProviderOpenAI)
			tt.mutate(&c)

			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestValidateOllamaNeedsNoKey(t *testing.T) {
	c := Config{Provider: ProviderOllama}
	c.Normalize()
	require.NoError(t, c.Validate())
}

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		provider Provider
		endpoint string
		model    string
	}{
		{ProviderOllama, "http://localhost:11434", "llama3"},
		{ProviderOpenAI, "https://api.openai.com/v1", "gpt-3.5-turbo"},
		{ProviderAnthropic, "https://api.anthropic.com", "claude-3-5-haiku-latest"},
		{ProviderGemini, "https://generativelanguage.googleapis.com", "gemini-2.5-flash"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			c := Config{Provider: tt.provider}
			c.Normalize()
			assert.Equal(t, tt.endpoint, c.Endpoint)
			assert.Equal(t, tt.model, c.Model)
			assert.Equal(t, DefaultTimeout, c.Timeout)
			assert.Equal(t, DefaultMaxTokens, c.MaxTokens)
			assert.Equal(t, DefaultLanguage, c.Language)
			assert.Equal(t, DefaultCommitType, c.CommitType)
		})
	}
}

func TestNormalizeTimeoutNeverNonPositive(t *testing.T) {
	c := Config{Provider: ProviderOllama, Timeout: -5 * time.Second}
	c.Normalize()
	assert.Equal(t, DefaultTimeout, c.Timeout)

	c = Config{Provider: ProviderOllama, Timeout: 30 * time.Second}
	c.Normalize()
	assert.Equal(t, 30*time.Second, c.Timeout)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	c := Config{
		Provider: ProviderOpenAI,
		Endpoint: "https://proxy.internal/v1",
		Model:    "gpt-4o-mini",
	}
	c.Normalize()
	assert.Equal(t, "https://proxy.internal/v1", c.Endpoint)
	assert.Equal(t, "gpt-4o-mini", c.Model)
}
