package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider sends a conversation to a completion backend.
//
// Implementations report provider-side rejections (rate limiting, overload,
// bad requests, auth failures) as *APIError. Any other error is treated as a
// transport failure.
type Provider interface {
	Send(ctx context.Context, model string, messages []Message) (*Response, error)
}

// Validation errors returned before any provider call is made.
var (
	ErrEmptyPrompt       = errors.New("prompt must not be empty")
	ErrInvalidMaxRetries = errors.New("max retries must be positive")
)

// APIError is a rejection reported by the completion provider.
// Its message is inspected to decide whether the call is retried.
type APIError struct {
	Provider   string
	StatusCode int
	Type       string
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	prefix := "api error"
	if e.Provider != "" {
		prefix = e.Provider + " api error"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", prefix, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// RetriesExhaustedError is returned when every attempt ended in an overload
// or rate-limit rejection.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}
