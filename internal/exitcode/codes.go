// Package exitcode defines named exit codes for the llm-retry CLI.
//
// Each code maps a specific termination condition of the complete command to
// a numeric value recognized by shell scripts and CI pipelines.
package exitcode

import (
	"context"
	"errors"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
)

// Exit code constants.
const (
	Success          = 0   // Completion printed
	Error            = 1   // Invalid args, misconfiguration, unexpected failure
	ProviderError    = 2   // Non-retryable provider rejection
	RetriesExhausted = 3   // Every attempt failed with a retryable error
	Interrupted      = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case ProviderError:
		return "ProviderError"
	case RetriesExhausted:
		return "RetriesExhausted"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}

// ForError maps an error returned by ai.Client.Complete to an exit code.
// A transport error reaching the caller always means the attempt budget ran out.
func ForError(err error) int {
	if err == nil {
		return Success
	}

	var exhausted *ai.RetriesExhaustedError
	var apiErr *ai.APIError
	switch {
	case errors.Is(err, context.Canceled):
		return Interrupted
	case errors.Is(err, ai.ErrEmptyPrompt), errors.Is(err, ai.ErrInvalidMaxRetries):
		return Error
	case errors.As(err, &exhausted):
		return RetriesExhausted
	case errors.As(err, &apiErr), errors.Is(err, ai.ErrNoChoices):
		return ProviderError
	default:
		return RetriesExhausted
	}
}
