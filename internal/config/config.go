package config

import (
	"errors"
	"fmt"
	"time"
)

// Provider identifies an LLM backend.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// Providers lists every supported backend, local first.
var Providers = []Provider{ProviderOllama, ProviderOpenAI, ProviderAnthropic, ProviderGemini}

// Known reports whether p is one of the supported backends.
func (p Provider) Known() bool {
	switch p {
	case ProviderOllama, ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		return true
	}
	return false
}

// Hosted reports whether p is a remote API that requires a credential.
// Ollama is the only local backend.
func (p Provider) Hosted() bool {
	return p.Known() && p != ProviderOllama
}

func (p Provider) String() string { return string(p) }

const (
	DefaultTimeout     = 60 * time.Second
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 3000
	DefaultLanguage    = "en"
	DefaultCommitType  = "conventional"
)

var defaultEndpoints = map[Provider]string{
	ProviderOllama:    "http://localhost:11434",
	ProviderOpenAI:    "https://api.openai.com/v1",
	ProviderAnthropic: "https://api.anthropic.com",
	ProviderGemini:    "https://generativelanguage.googleapis.com",
}

var defaultModels = map[Provider]string{
	ProviderOllama:    "llama3",
	ProviderOpenAI:    "gpt-3.5-turbo",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderGemini:    "gemini-2.5-flash",
}

// DefaultEndpoint returns the built-in base URL for p, or "" for an
// unknown provider.
func DefaultEndpoint(p Provider) string { return defaultEndpoints[p] }

// DefaultModel returns the built-in model identifier for p, or "" for an
// unknown provider.
func DefaultModel(p Provider) string { return defaultModels[p] }

// Config describes which backend to use and how to reach it. It is built
// once at startup (flags > env > file > defaults) and treated as immutable
// afterwards.
type Config struct {
	Provider Provider
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration

	Temperature float64
	MaxTokens   int
	Language    string
	Emoji       bool
	CommitType  string

	// Extra holds provider-specific options passed through verbatim to
	// the request body (hosted) or options map (ollama).
	Extra map[string]any
}

var (
	ErrUnknownProvider    = errors.New("unknown provider")
	ErrMissingCredential  = errors.New("missing API key")
	ErrMissingModel       = errors.New("missing model")
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 1")
	ErrInvalidMaxTokens   = errors.New("max tokens must be greater than 0")
)

// ConfigError names the offending field so the CLI can report it directly.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Normalize fills zero values with documented defaults. A zero or negative
// timeout is replaced, never rejected. Normalize must run before Validate.
func (c *Config) Normalize() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint(c.Provider)
	}
	if c.Model == "" {
		c.Model = DefaultModel(c.Provider)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.CommitType == "" {
		c.CommitType = DefaultCommitType
	}
}

// Validate checks the configuration without touching the network.
// Endpoint reachability is a call-time concern, not a construction-time one.
func (c *Config) Validate() error {
	if !c.Provider.Known() {
		return &ConfigError{Field: "provider", Err: fmt.Errorf("%w: %q (supported: ollama, openai, anthropic, gemini)", ErrUnknownProvider, string(c.Provider))}
	}
	if c.Provider.Hosted() && c.APIKey == "" {
		return &ConfigError{Field: "api_key", Err: fmt.Errorf("%w for provider %q", ErrMissingCredential, c.Provider)}
	}
	if c.Model == "" {
		return &ConfigError{Field: "model", Err: ErrMissingModel}
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return &ConfigError{Field: "temperature", Err: fmt.Errorf("%w, got %g", ErrInvalidTemperature, c.Temperature)}
	}
	if c.MaxTokens <= 0 {
		return &ConfigError{Field: "max_tokens", Err: fmt.Errorf("%w, got %d", ErrInvalidMaxTokens, c.MaxTokens)}
	}
	return nil
}
