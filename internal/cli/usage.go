package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `llm-retry - LLM completion client with exponential-backoff retry

USAGE
  llm-retry complete [flags] <prompt>
  llm-retry examples [flags]

COMMANDS
  complete                               Send one prompt and print the first choice
  examples                               Run the prompt against the three example models

FLAGS
  Model:
    -m, --model <provider/model>         Model for complete (default: openrouter/openai/gpt-4.1)
    --prompt <text>                      Prompt for examples (default: a short coding question)

  Retry:
    --max-retries <int>                  Maximum attempts per completion (default: 5)
    --timeout <seconds>                  Per-request HTTP timeout, 0 disables (default: 120)

  Output:
    -v, --verbose                        Log every attempt
    --no-color                           Disable colored output

  Help & Version:
    -h, --help                           Show this help text
    --version                            Show version, commit, build date

ENVIRONMENT
  OPENROUTER_API_KEY, OPENROUTER_API_BASE
  OPENAI_API_KEY, OPENAI_API_BASE
  LLM_MODEL, LLM_MAX_RETRIES, LLM_REQUEST_TIMEOUT, LLM_VERBOSE, NO_COLOR

RETRY POLICY
  Overload / rate limit   wait 1s, 2s, 4s, ... and retry
  Network errors          wait 1s, 2s, 4s, ... and retry; last error is returned
  Other provider errors   returned immediately

EXIT CODES (complete)
  0   Success              Completion printed
  1   Error                Invalid arguments or configuration
  2   ProviderError        Provider rejected the request
  3   RetriesExhausted     Every attempt failed with a retryable error
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Ask the default model
  llm-retry complete "Explain Go interfaces in one sentence"

  # Use Llama through OpenRouter with three attempts
  llm-retry complete -m openrouter/meta-llama/llama-3.3-70b --max-retries 3 "ping"

  # Run the example models
  llm-retry examples

For more information, see: https://github.com/CodexForgeBR/llm-retry
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
