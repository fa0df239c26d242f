package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"commity/internal/config"
	"commity/internal/llm"
)

// Ollama talks to a local (or locally reachable) ollama server through the
// official API client. No credential is involved; reachability and model
// availability are call-time failures, not construction-time ones.
type Ollama struct {
	client      *api.Client
	host        string
	model       string
	temperature float64
	extra       map[string]any
}

func NewOllama(cfg config.Config) (*Ollama, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse ollama endpoint %q: %w", cfg.Endpoint, err)
	}

	return &Ollama{
		client:      api.NewClient(u, &http.Client{Timeout: cfg.Timeout}),
		host:        cfg.Endpoint,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		extra:       cfg.Extra,
	}, nil
}

func (c *Ollama) Name() string { return "ollama" }

func (c *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	opts := map[string]any{"temperature": c.temperature}
	for k, v := range c.extra {
		if _, reserved := opts[k]; !reserved {
			opts[k] = v
		}
	}

	stream := false
	req := &api.GenerateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: opts,
	}

	var sb strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", c.classify(err)
	}

	return sb.String(), nil
}

// classify separates "server not running" (connection refused) from "model
// too slow" (deadline) and "model not installed" (404 from the server).
// The API client reports server-side errors either as a StatusError or as
// a bare error carrying the server's message, so both shapes are handled.
func (c *Ollama) classify(err error) error {
	var se api.StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusNotFound {
			return c.modelNotFound()
		}
		return classifyStatus(c.Name(), se.StatusCode, []byte(se.ErrorMessage))
	}

	msg := err.Error()
	if strings.Contains(msg, "try pulling") ||
		(strings.Contains(msg, "model") && strings.Contains(msg, "not found")) {
		return c.modelNotFound()
	}

	var ue *url.Error
	var ne net.Error
	if errors.As(err, &ue) || errors.As(err, &ne) {
		return classifyTransport(c.Name(), err)
	}

	// Not a transport failure, so the server answered and reported an
	// error of its own. The API client strips the status code from that
	// shape, leaving only the message.
	return llm.WrapErr(llm.KindBackendUnavailable, c.Name(), err)
}

func (c *Ollama) modelNotFound() error {
	return llm.Errorf(llm.KindModelNotFound, c.Name(),
		"model %q is not installed on %s (try: ollama pull %s)", c.model, c.host, c.model)
}
