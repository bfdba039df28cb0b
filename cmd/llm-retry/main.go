package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
	"github.com/CodexForgeBR/llm-retry/internal/banner"
	"github.com/CodexForgeBR/llm-retry/internal/cli"
	"github.com/CodexForgeBR/llm-retry/internal/config"
	"github.com/CodexForgeBR/llm-retry/internal/examples"
	"github.com/CodexForgeBR/llm-retry/internal/exitcode"
	"github.com/CodexForgeBR/llm-retry/internal/logging"
	"github.com/CodexForgeBR/llm-retry/internal/model"
	"github.com/CodexForgeBR/llm-retry/internal/provider"
	sighandler "github.com/CodexForgeBR/llm-retry/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "llm-retry",
		Short:         "LLM completion client with exponential-backoff retry",
		Long:          "llm-retry sends chat completions through OpenRouter or OpenAI and retries overloaded or failed requests with exponential backoff.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	completeCmd := &cobra.Command{
		Use:   "complete [flags] <prompt>",
		Short: "Send one prompt and print the first choice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			os.Exit(runComplete(cmd, cfg, strings.Join(args, " ")))
			return nil // unreachable
		},
	}

	var prompt string
	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Run the prompt against the example models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runExamples(cmd, cfg, prompt)
		},
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)
	cli.BindCompleteFlags(completeCmd, cfg)
	cli.BindExamplesFlags(examplesCmd, &prompt, examples.DefaultPrompt)

	rootCmd.AddCommand(completeCmd, examplesCmd)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// setup loads the merged configuration, applies the output settings, and
// builds the provider router.
func setup(cmd *cobra.Command, cfg *config.Config) (*config.Config, *provider.Router, error) {
	finalCfg, err := config.Load(cli.CLIOverrides(cmd, cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logging.SetVerbose(finalCfg.Verbose)
	logging.ConfigureColor(finalCfg.NoColor)

	return finalCfg, provider.NewRouter(finalCfg.ProviderSettings()), nil
}

func runComplete(cmd *cobra.Command, cfg *config.Config, prompt string) int {
	finalCfg, router, err := setup(cmd, cfg)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}
	client := ai.NewClient(router, finalCfg.ClientOptions())

	ctx, stop := sighandler.WithInterrupt(context.Background(), func() {
		logging.Warn("Interrupted, cancelling request...")
	})
	defer stop()

	resp, err := client.Complete(ctx, ai.Request{Prompt: prompt, Model: finalCfg.Model})
	if err == nil {
		var content string
		content, err = resp.Content()
		if err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return exitcode.Success
		}
	}

	code := exitcode.ForError(err)
	logging.Error(fmt.Sprintf("%s: %v", exitcode.Name(code), err))
	return code
}

func runExamples(cmd *cobra.Command, cfg *config.Config, prompt string) error {
	finalCfg, router, err := setup(cmd, cfg)
	if err != nil {
		return err
	}
	client := ai.NewClient(router, finalCfg.ClientOptions())

	ctx, stop := sighandler.WithInterrupt(context.Background(), func() {
		logging.Warn("Interrupted, skipping remaining examples...")
	})
	defer stop()

	out := cmd.OutOrStdout()
	targets := model.Examples()
	for _, t := range router.Unavailable(targets) {
		logging.Warn(fmt.Sprintf("No API key configured for %s (%s); it will fail", t.Label, t.Model))
	}

	banner.PrintStartupBanner(out, prompt, len(targets), finalCfg.MaxRetries)
	results := examples.Run(ctx, client, prompt, targets, func(r examples.Result) {
		banner.PrintResult(out, r)
	})
	banner.PrintSummary(out, results)
	return nil
}
