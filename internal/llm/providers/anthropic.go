package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"commity/internal/config"
	"commity/internal/llm"
)

// Anthropic talks to the Anthropic messages API. Authentication uses the
// x-api-key header rather than a bearer token, and max_tokens is required
// by the API.
type Anthropic struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	extra       map[string]any
	http        *http.Client
}

const anthropicVersion = "2023-06-01"

func NewAnthropic(cfg config.Config) *Anthropic {
	return &Anthropic{
		endpoint:    trimBase(cfg.Endpoint),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		extra:       cfg.Extra,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Anthropic) Name() string { return "anthropic" }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := marshalWithExtra(anthropicRequest{
		Model:       c.model,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}, c.extra)
	if err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", llm.WrapErr(llm.KindConnectionFailed, c.Name(), err)
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(c.Name(), resp.StatusCode, body)
	}

	var out anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}
	if len(out.Content) == 0 {
		return "", llm.Errorf(llm.KindMalformedResponse, c.Name(), "response has no content blocks")
	}

	return out.Content[0].Text, nil
}
