package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/llm-retry/internal/logging"
	"github.com/CodexForgeBR/llm-retry/internal/model"
)

// Defaults applied by NewClient when Options leaves them zero.
const (
	DefaultModel      = model.DefaultModel
	DefaultMaxRetries = 5
)

// Options configures a Client.
type Options struct {
	Model      string        // model used when Request.Model is empty
	MaxRetries int           // attempt bound used when Request.MaxRetries is zero
	BaseDelay  time.Duration // first backoff wait, default 1s

	// OnRetry receives every retry decision. Nil logs a warning through
	// the logging package; use a no-op func to suppress diagnostics.
	OnRetry func(RetryEvent)

	// Sleep overrides the backoff wait. Nil waits on a timer and honours ctx.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Client sends completion requests to a Provider, retrying overload,
// rate-limit and transport failures with exponential backoff.
type Client struct {
	Provider Provider
	opts     Options
}

// NewClient returns a Client for p with defaults filled into opts.
func NewClient(p Provider, opts Options) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BaseDelay == 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.OnRetry == nil {
		opts.OnRetry = LogRetry
	}
	return &Client{Provider: p, opts: opts}
}

// Options returns the effective options.
func (c *Client) Options() Options {
	return c.opts
}

// LogRetry writes the event notice as a warning.
func LogRetry(ev RetryEvent) {
	logging.Warn(ev.Notice())
}

// Complete sends req.Prompt as the sole user message and returns the first
// successful response.
//
// Non-overload provider errors are returned on first occurrence. A transport
// error on the final attempt is returned as is; overload on the final attempt
// yields *RetriesExhaustedError.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	modelID := req.Model
	if modelID == "" {
		modelID = c.opts.Model
	}
	maxRetries := req.MaxRetries
	if maxRetries == 0 {
		maxRetries = c.opts.MaxRetries
	}
	if maxRetries < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxRetries, maxRetries)
	}

	callID := uuid.NewString()
	messages := []Message{{Role: RoleUser, Content: req.Prompt}}

	cfg := RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  c.opts.BaseDelay,
		Sleep:      c.opts.Sleep,
		OnRetry: func(ev RetryEvent) {
			ev.CallID = callID
			ev.Model = modelID
			c.opts.OnRetry(ev)
		},
	}

	var resp *Response
	err := RetryWithBackoff(ctx, cfg, func(attempt int) error {
		logging.Debug(fmt.Sprintf("[%s] %s attempt %d/%d", callID[:8], modelID, attempt+1, maxRetries))
		r, err := c.Provider.Send(ctx, modelID, messages)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
