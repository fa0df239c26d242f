// Package providers holds the concrete client for each backend and the
// factory that selects one from configuration.
package providers

import (
	"fmt"

	"commity/internal/config"
	"commity/internal/llm"
)

// New constructs the client matching cfg.Provider. The provider enum is
// re-checked here even though config validation already rejects unknown
// values: the factory must never silently substitute a backend the caller
// did not ask for.
func New(cfg config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return NewOllama(cfg)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg), nil
	case config.ProviderGemini:
		return NewGemini(cfg), nil
	default:
		return nil, &config.ConfigError{
			Field: "provider",
			Err:   fmt.Errorf("%w: %q", config.ErrUnknownProvider, string(cfg.Provider)),
		}
	}
}
