// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/market-intel/internal/httputil"
	"github.com/pdiddy/market-intel/pkg/types"
)

// anthropicAPIURL is the Anthropic Messages API endpoint. Package-level var
// for test substitution.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

const anthropicVersion = "2023-06-01"

// AnthropicBackend invokes an Anthropic model through the Messages API.
type AnthropicBackend struct {
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	Client      *http.Client
}

func newAnthropicBackend(mc types.ModelConfig, cfg types.LLMConfig) *AnthropicBackend {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxTokens := mc.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}
	return &AnthropicBackend{
		Model:       mc.Model,
		APIKey:      cfg.APIKeys[string(types.ProviderAnthropic)],
		Temperature: mc.Temperature,
		MaxTokens:   maxTokens,
		MaxRetries:  cfg.MaxRetries,
		Client:      &http.Client{Timeout: timeout},
	}
}

// anthropicRequest is the request body for the Messages API.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Messages API.
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Invoke sends the rendered prompt to the model and returns the
// concatenated text content.
func (b *AnthropicBackend) Invoke(ctx context.Context, instructions string, runContext map[string]string) (string, error) {
	reqBody := anthropicRequest{
		Model:       b.Model,
		MaxTokens:   b.MaxTokens,
		Temperature: b.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: renderPrompt(instructions, runContext)},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", b.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("Anthropic API returned %d: %s", resp.StatusCode, string(body))
	}

	var aResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&aResp); err != nil {
		return "", fmt.Errorf("decoding Anthropic response: %w", err)
	}

	var text string
	for _, block := range aResp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("Anthropic API returned no text content")
	}
	return text, nil
}
