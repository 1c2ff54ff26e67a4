// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Provider identifies an LLM provider. Providers are a closed set; selection
// by arbitrary string is rejected by the worker layer rather than silently
// falling back.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderLocal     Provider = "local"
)

// ModelConfig selects a concrete model for one worker role.
type ModelConfig struct {
	// Provider is the backing LLM provider.
	Provider Provider `json:"provider" yaml:"provider"`

	// Model is the provider's model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// Temperature is the sampling temperature for the role.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the response length (0 means provider default).
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// BaseURL overrides the provider endpoint, for local or proxied models.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// RoleModels maps worker roles to model configurations. Passed explicitly
// to the pipeline assembler; there is no process-wide table.
type RoleModels map[string]ModelConfig

// DefaultRoleModels returns the role-optimized model table: a capable model
// for research, writing, management, editing and translation, and a smaller
// model for onboarding interaction.
func DefaultRoleModels() RoleModels {
	return RoleModels{
		"onboarding":  {Provider: ProviderOpenAI, Model: "gpt-4o-mini", Temperature: 0.1},
		"research":    {Provider: ProviderOpenAI, Model: "gpt-4o", Temperature: 0.2},
		"writing":     {Provider: ProviderOpenAI, Model: "gpt-4o", Temperature: 0.3},
		"management":  {Provider: ProviderOpenAI, Model: "gpt-4o", Temperature: 0.1},
		"editing":     {Provider: ProviderOpenAI, Model: "gpt-4o", Temperature: 0.1},
		"translation": {Provider: ProviderOpenAI, Model: "gpt-4o", Temperature: 0.2},
	}
}

// LLMConfig holds shared settings for worker invocations.
type LLMConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts on rate-limited calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// APIKeys maps provider name to authentication key.
	APIKeys map[string]string `json:"api_keys,omitempty" yaml:"api_keys,omitempty"`
}

// EngagementConfig describes one competitive-analysis engagement: the client
// company, the competitors to analyze, and the analysis preferences.
type EngagementConfig struct {
	// Company is the client company name.
	Company string `json:"company" yaml:"company"`

	// Competitors lists the competitor companies to analyze.
	Competitors []string `json:"competitors" yaml:"competitors"`

	// Industry is the industry sector for market analysis.
	Industry string `json:"industry" yaml:"industry"`

	// FocusAreas narrows the analysis (e.g. "financial", "products").
	FocusAreas []string `json:"focus_areas,omitempty" yaml:"focus_areas,omitempty"`

	// TargetLanguage, when set, requests a translation of the final report.
	TargetLanguage string `json:"target_language,omitempty" yaml:"target_language,omitempty"`
}

// PipelineOptions holds run-level policy for the pipeline controller.
type PipelineOptions struct {
	// ApprovalTimeout bounds how long an interactive run waits at a
	// human-approval stage. Zero means wait indefinitely.
	ApprovalTimeout time.Duration `json:"approval_timeout" yaml:"approval_timeout"`
}
