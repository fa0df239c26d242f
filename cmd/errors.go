package cmd

import (
	"errors"

	"commity/internal/config"
	"commity/internal/llm"
)

// renderError turns an error into the text printed on exit, with an
// actionable hint when the failure kind suggests one.
func renderError(err error) string {
	out := errStyle.Render("Error: ") + err.Error()
	if hint := hintFor(err); hint != "" {
		out += "\n" + warnStyle.Render("Hint: " + hint)
	}
	return out
}

func hintFor(err error) string {
	if kind, ok := llm.KindOf(err); ok {
		switch kind {
		case llm.KindConnectionFailed:
			return "could not reach the provider; for ollama, check the server is running (ollama serve)"
		case llm.KindTimeout:
			return "the request timed out; raise --timeout or pick a faster model"
		case llm.KindAuthenticationFailed:
			return "the API key was rejected; check --api-key or the COMMITY_API_KEY variable"
		case llm.KindRateLimited:
			return "the provider is rate limiting you; try again later"
		case llm.KindModelNotFound:
			return "the model is unknown to the provider; check --model (for ollama: ollama pull <model>)"
		case llm.KindBackendUnavailable:
			return "the provider reported a server-side problem; try again later"
		case llm.KindMalformedResponse:
			return "the provider sent an unexpected response; check the endpoint URL"
		case llm.KindEmptyResponse:
			return "the model returned nothing usable; try regenerating or a different model"
		}
	}

	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		switch {
		case errors.Is(err, config.ErrUnknownProvider):
			return "supported providers: ollama, openai, anthropic, gemini"
		case errors.Is(err, config.ErrMissingCredential):
			return "hosted providers need an API key; pass --api-key or set COMMITY_API_KEY"
		}
	}
	return ""
}
