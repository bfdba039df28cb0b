package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CodexForgeBR/llm-retry/internal/model"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadEnv collects whitelisted variables from environ, a list of KEY=VALUE
// entries in the form returned by os.Environ.
//
// Entries without an = sign and keys outside WhitelistedVars are skipped.
// Values are trimmed; empty values are skipped so an exported but blank
// variable does not clobber a default.
func LoadEnv(environ []string) map[string]string {
	result := make(map[string]string)
	for _, entry := range environ {
		idx := strings.Index(entry, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(entry[:idx])
		value := strings.TrimSpace(entry[idx+1:])
		if !whitelistSet[key] || value == "" {
			continue
		}
		result[key] = value
	}
	return result
}

// Load assembles a Config from the process environment and CLI overrides.
func Load(cliOverrides map[string]string) (*Config, error) {
	return LoadWithPrecedence(os.Environ(), cliOverrides)
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Environment (environ)
//  3. CLI overrides (cliOverrides map)
//
// The merged Config is validated before it is returned.
func LoadWithPrecedence(environ []string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	ApplyMapToConfig(cfg, LoadEnv(environ))

	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "LLM_MODEL").
// Unknown keys are silently ignored. Integer fields that fail to parse
// are silently ignored (the previous value is preserved).
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "LLM_MODEL":
			cfg.Model = value
		case "LLM_MAX_RETRIES":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxRetries = v
			}
		case "LLM_REQUEST_TIMEOUT":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RequestTimeout = v
			}
		case "LLM_VERBOSE":
			cfg.Verbose = parseBool(value)
		case "NO_COLOR":
			// Any non-empty NO_COLOR disables color (https://no-color.org).
			cfg.NoColor = value != "" && !isFalse(value)
		case "OPENROUTER_API_KEY":
			cfg.OpenRouterAPIKey = value
		case "OPENROUTER_API_BASE":
			cfg.OpenRouterBaseURL = value
		case "OPENAI_API_KEY":
			cfg.OpenAIAPIKey = value
		case "OPENAI_API_BASE":
			cfg.OpenAIBaseURL = value
		}
	}
}

// Validate checks that cfg describes a usable client.
func Validate(cfg *Config) error {
	if cfg.MaxRetries <= 0 {
		return fmt.Errorf("max retries must be positive, got %d", cfg.MaxRetries)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %d", cfg.RequestTimeout)
	}
	if err := model.Validate(cfg.Model); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// isFalse reports explicit negative values.
func isFalse(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "0", "no":
		return true
	default:
		return false
	}
}
