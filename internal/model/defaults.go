// Package model provides model-identifier helpers for llm-retry.
//
// Identifiers take the form "<provider>/<upstream model>", for example
// "openrouter/openai/gpt-4.1". The provider prefix selects the backend and
// the remainder is sent to it verbatim.
package model

// Recognised provider prefixes.
const (
	OpenRouter = "openrouter"
	OpenAI     = "openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = OpenRouter + "/openai/gpt-4.1"

// Providers lists every recognised provider prefix.
func Providers() []string {
	return []string{OpenRouter, OpenAI}
}

// Example is one target of the illustrative example run.
type Example struct {
	Label string
	Model string
}

// Examples returns the models exercised by the example run, in order.
func Examples() []Example {
	return []Example{
		{Label: "GPT-4.1", Model: "openrouter/openai/gpt-4.1"},
		{Label: "Llama 3.3", Model: "openrouter/meta-llama/llama-3.3-70b"},
		{Label: "Qwen 2.5", Model: "openrouter/qwen/qwen-2.5-72b"},
	}
}
