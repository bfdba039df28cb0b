// Package cli provides flag binding and validation for the llm-retry CLI.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/llm-retry/internal/config"
	"github.com/CodexForgeBR/llm-retry/internal/model"
)

// BindFlags registers the flags shared by every subcommand as persistent
// flags on root. The flags directly modify fields in cfg.
func BindFlags(root *cobra.Command, cfg *config.Config) {
	flags := root.PersistentFlags()

	flags.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Maximum attempts per completion")
	flags.IntVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Per-request HTTP timeout in seconds (0 disables)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every attempt")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
}

// BindCompleteFlags registers the complete subcommand's flags.
func BindCompleteFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.Model, "model", "m", cfg.Model, "Model as <provider>/<model>")
}

// BindExamplesFlags registers the examples subcommand's flags.
func BindExamplesFlags(cmd *cobra.Command, prompt *string, defaultPrompt string) {
	cmd.Flags().StringVar(prompt, "prompt", defaultPrompt, "Prompt sent to every example model")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("max-retries") && cfg.MaxRetries <= 0 {
		return fmt.Errorf("--max-retries must be positive, got: %d", cfg.MaxRetries)
	}
	if cmd.Flags().Changed("timeout") && cfg.RequestTimeout < 0 {
		return fmt.Errorf("--timeout must not be negative, got: %d", cfg.RequestTimeout)
	}
	if cmd.Flags().Changed("model") {
		if err := model.Validate(cfg.Model); err != nil {
			return fmt.Errorf("--model: %w", err)
		}
	}
	return nil
}

// CLIOverrides creates a map of CLI flag overrides from cfg.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// so environment values are not overridden by flag defaults.
func CLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Lookup("model") != nil && cmd.Flags().Changed("model") {
		overrides["LLM_MODEL"] = cfg.Model
	}

	intFlags := map[string]struct {
		key string
		val int
	}{
		"max-retries": {"LLM_MAX_RETRIES", cfg.MaxRetries},
		"timeout":     {"LLM_REQUEST_TIMEOUT", cfg.RequestTimeout},
	}
	for flag, mapping := range intFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = strconv.Itoa(mapping.val)
		}
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"verbose":  {"LLM_VERBOSE", cfg.Verbose},
		"no-color": {"NO_COLOR", cfg.NoColor},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = strconv.FormatBool(mapping.val)
		}
	}

	return overrides
}
