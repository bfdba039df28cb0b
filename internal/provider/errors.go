package provider

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
	"github.com/CodexForgeBR/llm-retry/internal/ratelimit"
)

// statusOverloaded is the non-standard status some providers use for overload.
const statusOverloaded = 529

// translateError maps go-openai provider rejections to *ai.APIError.
// Any other error is returned unchanged and treated as a transport failure.
func translateError(name string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ai.APIError{
			Provider:   name,
			StatusCode: apiErr.HTTPStatusCode,
			Type:       apiErr.Type,
			Message:    withStatusHint(apiErr.HTTPStatusCode, apiErr.Message),
			Cause:      err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if msg == "" {
			msg = "unexpected status"
		}
		if reqErr.Err != nil {
			msg += ": " + reqErr.Err.Error()
		}
		return &ai.APIError{
			Provider:   name,
			StatusCode: reqErr.HTTPStatusCode,
			Message:    withStatusHint(reqErr.HTTPStatusCode, msg),
			Cause:      err,
		}
	}

	return err
}

// withStatusHint prefixes msg with the throttling phrase implied by the HTTP
// status when the provider's own text does not already carry one.
func withStatusHint(status int, msg string) string {
	if ratelimit.IsThrottled(msg) {
		return msg
	}

	var hint string
	switch status {
	case http.StatusTooManyRequests:
		hint = "rate limit exceeded"
	case http.StatusServiceUnavailable, statusOverloaded:
		hint = "provider overloaded"
	default:
		return msg
	}
	if msg == "" {
		return hint
	}
	return hint + ": " + msg
}
