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

// OpenAI talks to the OpenAI chat completions API, or any compatible
// server behind a custom endpoint.
type OpenAI struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	extra       map[string]any
	http        *http.Client
}

func NewOpenAI(cfg config.Config) *OpenAI {
	return &OpenAI{
		endpoint:    trimBase(cfg.Endpoint),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		extra:       cfg.Extra,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *OpenAI) Name() string { return "openai" }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Stream      bool            `json:"stream"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := marshalWithExtra(openAIRequest{
		Model:       c.model,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}, c.extra)
	if err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", llm.WrapErr(llm.KindConnectionFailed, c.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(c.Name(), resp.StatusCode, body)
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}
	if len(out.Choices) == 0 {
		return "", llm.Errorf(llm.KindMalformedResponse, c.Name(), "response has no choices")
	}

	// Trimming and the empty check belong to the generator, not here.
	return out.Choices[0].Message.Content, nil
}
