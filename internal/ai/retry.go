package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/CodexForgeBR/llm-retry/internal/logging"
	"github.com/CodexForgeBR/llm-retry/internal/ratelimit"
)

// DefaultBaseDelay is the wait before the second attempt.
const DefaultBaseDelay = time.Second

// RetryConfig configures exponential backoff retry behavior.
type RetryConfig struct {
	MaxRetries int           // total attempts, must be positive
	BaseDelay  time.Duration // default 1s
	Classify   func(err error, attempt, maxRetries int) Class
	OnRetry    func(RetryEvent)
	Sleep      func(ctx context.Context, d time.Duration) error
}

// RetryEvent describes one retry decision. It is emitted before the wait.
type RetryEvent struct {
	CallID     string
	Model      string
	Attempt    int // 1-based attempt that just failed
	MaxRetries int
	Wait       time.Duration
	Class      Class
	Err        error
}

// Notice renders the event as a one-line diagnostic.
func (e RetryEvent) Notice() string {
	wait := logging.FormatDuration(int(e.Wait / time.Second))
	if e.Class == RetryableOverload {
		return fmt.Sprintf("Provider overloaded or rate limited. Retrying in %s... (attempt %d/%d)",
			wait, e.Attempt, e.MaxRetries)
	}
	return fmt.Sprintf("Request failed: %v. Retrying in %s... (attempt %d/%d)",
		e.Err, wait, e.Attempt, e.MaxRetries)
}

// BackoffDelay returns base * 2^attempt.
// Delays: base, base*2, base*4, base*8, ...
func BackoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return base << uint(attempt)
}

// RetryWithBackoff calls fn with attempt indices 0..MaxRetries-1 until it
// succeeds or an attempt is classified fatal.
//
// Fatal errors are returned unchanged. When the last attempt still reports
// overload, the error is wrapped in *RetriesExhaustedError. No wait follows
// the final attempt.
func RetryWithBackoff(ctx context.Context, cfg RetryConfig, fn func(attempt int) error) error {
	if cfg.MaxRetries <= 0 {
		return ErrInvalidMaxRetries
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.Classify == nil {
		cfg.Classify = Classify
	}
	if cfg.Sleep == nil {
		cfg.Sleep = ratelimit.Wait
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		err := fn(attempt)
		class := cfg.Classify(err, attempt, cfg.MaxRetries)

		switch class {
		case Success:
			return nil
		case FatalProvider, FatalExhausted:
			return err
		}

		lastErr = err
		if attempt == cfg.MaxRetries-1 {
			break
		}

		wait := BackoffDelay(cfg.BaseDelay, attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(RetryEvent{
				Attempt:    attempt + 1,
				MaxRetries: cfg.MaxRetries,
				Wait:       wait,
				Class:      class,
				Err:        err,
			})
		}

		if err := cfg.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	return &RetriesExhaustedError{Attempts: cfg.MaxRetries, Err: lastErr}
}
