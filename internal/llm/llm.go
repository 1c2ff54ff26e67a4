// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm binds worker roles to concrete language-model backends.
// Providers form a closed set: resolution of an unknown provider is an
// error, and falling back from an unknown role to the default model is
// reported in the returned Assignment rather than inferred from logs.
package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/market-intel/pkg/types"
)

// defaultModel backs roles that have no entry in the role table.
var defaultModel = types.ModelConfig{
	Provider:    types.ProviderOpenAI,
	Model:       "gpt-4o",
	Temperature: 0.1,
}

// Assignment records which model a role resolved to. FellBack is true when
// the role had no table entry and the default model was substituted.
type Assignment struct {
	Role     string
	Config   types.ModelConfig
	FellBack bool
}

// Backend is one invocable language model. Implementations satisfy the
// pipeline's Worker interface.
type Backend interface {
	Invoke(ctx context.Context, instructions string, runContext map[string]string) (string, error)
}

// Resolve maps a worker role to a backend using the injected role table.
// An unknown role resolves to the default model with FellBack set; an
// unknown provider is an error.
func Resolve(role string, models types.RoleModels, cfg types.LLMConfig) (Backend, Assignment, error) {
	mc, ok := models[role]
	assignment := Assignment{Role: role, Config: mc}
	if !ok {
		assignment.Config = defaultModel
		assignment.FellBack = true
	}

	backend, err := NewBackend(assignment.Config, cfg)
	if err != nil {
		return nil, assignment, fmt.Errorf("resolving role %s: %w", role, err)
	}
	return backend, assignment, nil
}

// NewBackend constructs the backend for a model configuration.
func NewBackend(mc types.ModelConfig, cfg types.LLMConfig) (Backend, error) {
	switch mc.Provider {
	case types.ProviderAnthropic:
		return newAnthropicBackend(mc, cfg), nil
	case types.ProviderOpenAI, types.ProviderLocal:
		// Local models speak the OpenAI chat completions dialect.
		return newOpenAIBackend(mc, cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", mc.Provider)
	}
}

// renderPrompt combines stage instructions with the accumulated run
// context. Context entries are rendered in sorted key order so the same
// inputs always produce the same prompt.
func renderPrompt(instructions string, runContext map[string]string) string {
	if len(runContext) == 0 {
		return instructions
	}

	keys := make([]string, 0, len(runContext))
	for k := range runContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n\nContext from earlier stages:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "\n=== %s ===\n%s\n", k, runContext[k])
	}
	return b.String()
}
