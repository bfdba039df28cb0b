package ai

import (
	"errors"

	"github.com/CodexForgeBR/llm-retry/internal/ratelimit"
)

// Class is the outcome of a single attempt.
type Class int

const (
	// Success means the provider returned a response.
	Success Class = iota
	// RetryableOverload is a provider error reporting overload or rate limiting.
	RetryableOverload
	// RetryableTransient is a non-provider error with attempts remaining.
	RetryableTransient
	// FatalProvider is any other provider error; it is never retried.
	FatalProvider
	// FatalExhausted is a non-provider error on the final attempt.
	FatalExhausted
)

func (c Class) String() string {
	switch c {
	case Success:
		return "success"
	case RetryableOverload:
		return "retryable_overload"
	case RetryableTransient:
		return "retryable_transient"
	case FatalProvider:
		return "fatal_provider"
	case FatalExhausted:
		return "fatal_exhausted"
	default:
		return "unknown"
	}
}

// Retryable reports whether the attempt should be followed by a backoff wait.
func (c Class) Retryable() bool {
	return c == RetryableOverload || c == RetryableTransient
}

// Classify maps the error from attempt (0-based) out of maxRetries attempts
// to a Class.
//
// Overload classification ignores the attempt index; the retry loop decides
// what happens when the budget runs out.
func Classify(err error, attempt, maxRetries int) Class {
	if err == nil {
		return Success
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if ratelimit.IsThrottled(apiErr.Error()) {
			return RetryableOverload
		}
		return FatalProvider
	}

	if attempt < maxRetries-1 {
		return RetryableTransient
	}
	return FatalExhausted
}
