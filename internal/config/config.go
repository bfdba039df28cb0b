// Package config defines the llm-retry configuration model and default values.
//
// Configuration is assembled from a strict precedence chain: built-in
// defaults < environment variables < CLI flag overrides. There is no
// configuration file.
package config

import (
	"time"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
	"github.com/CodexForgeBR/llm-retry/internal/model"
	"github.com/CodexForgeBR/llm-retry/internal/provider"
)

// WhitelistedVars lists every variable name read from the environment.
// Other variables are ignored.
var WhitelistedVars = [9]string{
	"LLM_MODEL",
	"LLM_MAX_RETRIES",
	"LLM_REQUEST_TIMEOUT",
	"LLM_VERBOSE",
	"NO_COLOR",
	"OPENROUTER_API_KEY",
	"OPENROUTER_API_BASE",
	"OPENAI_API_KEY",
	"OPENAI_API_BASE",
}

// Config holds every configuration field for the llm-retry CLI.
type Config struct {
	// Model selection and retry bound.
	Model      string
	MaxRetries int

	// RequestTimeout is the per-request HTTP timeout in seconds; 0 disables it.
	RequestTimeout int

	// Provider credentials and endpoints.
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenAIAPIKey      string
	OpenAIBaseURL     string

	// Output flags.
	Verbose bool
	NoColor bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Model:             model.DefaultModel,
		MaxRetries:        ai.DefaultMaxRetries,
		RequestTimeout:    120,
		OpenRouterBaseURL: provider.DefaultOpenRouterBaseURL,
		OpenAIBaseURL:     provider.DefaultOpenAIBaseURL,
	}
}

// ProviderSettings returns the provider settings derived from cfg.
func (c *Config) ProviderSettings() provider.Settings {
	return provider.Settings{
		OpenRouterAPIKey:  c.OpenRouterAPIKey,
		OpenRouterBaseURL: c.OpenRouterBaseURL,
		OpenAIAPIKey:      c.OpenAIAPIKey,
		OpenAIBaseURL:     c.OpenAIBaseURL,
		Timeout:           time.Duration(c.RequestTimeout) * time.Second,
		Referer:           "https://github.com/CodexForgeBR/llm-retry",
		Title:             "llm-retry",
	}
}

// ClientOptions returns the completion client options derived from cfg.
func (c *Config) ClientOptions() ai.Options {
	return ai.Options{
		Model:      c.Model,
		MaxRetries: c.MaxRetries,
	}
}
