package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"commity/internal/config"
	"commity/internal/llm"
)

// Gemini talks to the Google generative language API. The credential rides
// in the URL query rather than a header, and the answer is the last part
// of the first candidate (thinking models emit a thought part first).
type Gemini struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	extra       map[string]any
	http        *http.Client
}

func NewGemini(cfg config.Config) *Gemini {
	return &Gemini{
		endpoint:    trimBase(cfg.Endpoint),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		extra:       cfg.Extra,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := marshalWithExtra(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}, c.extra)
	if err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.endpoint, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", llm.WrapErr(llm.KindConnectionFailed, c.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(c.Name(), resp.StatusCode, body)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", llm.WrapErr(llm.KindMalformedResponse, c.Name(), err)
	}
	if len(out.Candidates) == 0 {
		return "", llm.Errorf(llm.KindMalformedResponse, c.Name(), "response has no candidates")
	}
	parts := out.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", llm.Errorf(llm.KindMalformedResponse, c.Name(), "candidate has no parts")
	}

	// Last part wins: thinking models put the answer after the thought.
	return parts[len(parts)-1].Text, nil
}
