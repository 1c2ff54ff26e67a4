// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/market-intel/internal/httputil"
	"github.com/pdiddy/market-intel/pkg/types"
)

// openaiAPIURL is the default chat completions endpoint. Package-level var
// for test substitution; a ModelConfig BaseURL overrides it per backend.
var openaiAPIURL = "https://api.openai.com/v1/chat/completions"

// OpenAIBackend invokes an OpenAI-compatible chat completions endpoint.
// Local models are served through the same dialect with a BaseURL override.
type OpenAIBackend struct {
	Endpoint    string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	Client      *http.Client
}

func newOpenAIBackend(mc types.ModelConfig, cfg types.LLMConfig) *OpenAIBackend {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	endpoint := mc.BaseURL
	if endpoint == "" {
		endpoint = openaiAPIURL
	}
	return &OpenAIBackend{
		Endpoint:    endpoint,
		Model:       mc.Model,
		APIKey:      cfg.APIKeys[string(mc.Provider)],
		Temperature: mc.Temperature,
		MaxTokens:   mc.MaxTokens,
		MaxRetries:  cfg.MaxRetries,
		Client:      &http.Client{Timeout: timeout},
	}
}

// openaiRequest is the chat completions request body.
type openaiRequest struct {
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Messages    []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openaiResponse is the chat completions response body.
type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
}

// Invoke sends the rendered prompt as a user message and returns the first
// choice's content.
func (b *OpenAIBackend) Invoke(ctx context.Context, instructions string, runContext map[string]string) (string, error) {
	reqBody := openaiRequest{
		Model:       b.Model,
		Temperature: b.Temperature,
		MaxTokens:   b.MaxTokens,
		Messages: []openaiMessage{
			{Role: "user", Content: renderPrompt(instructions, runContext)},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling chat completions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("chat completions error %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var oResp openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		return "", fmt.Errorf("decoding chat completions response: %w", err)
	}
	if len(oResp.Choices) == 0 {
		return "", fmt.Errorf("chat completions response has no choices")
	}
	return oResp.Choices[0].Message.Content, nil
}
