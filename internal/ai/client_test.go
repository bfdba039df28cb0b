package ai

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/llm-retry/internal/logging"
)

// Compile-time interface check.
var _ Provider = (*fakeProvider)(nil)

func newTestClient(p Provider, sleeper *sleepRecorder) *Client {
	return NewClient(p, Options{Sleep: sleeper.Sleep, OnRetry: quiet})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(&fakeProvider{}, Options{})
	opts := c.Options()

	assert.Equal(t, "openrouter/openai/gpt-4.1", opts.Model)
	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, time.Second, opts.BaseDelay)
	assert.NotNil(t, opts.OnRetry)
}

func TestComplete_SendsSingleUserMessage(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{{resp: response("pong")}}}
	c := newTestClient(p, &sleepRecorder{})

	resp, err := c.Complete(context.Background(), Request{Prompt: "ping", Model: "openrouter/qwen/qwen-2.5-72b"})
	require.NoError(t, err)

	content, err := resp.Content()
	require.NoError(t, err)
	assert.Equal(t, "pong", content)

	require.Equal(t, 1, p.calls)
	assert.Equal(t, []string{"openrouter/qwen/qwen-2.5-72b"}, p.models)
	assert.Equal(t, []Message{{Role: "user", Content: "ping"}}, p.messages[0])
}

func TestComplete_UsesDefaultModel(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{{resp: response("ok")}}}

	_, err := newTestClient(p, &sleepRecorder{}).Complete(context.Background(), Request{Prompt: "ping"})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultModel}, p.models)

	p2 := &fakeProvider{results: []fakeResult{{resp: response("ok")}}}
	c := NewClient(p2, Options{Model: "openai/gpt-4o-mini", OnRetry: quiet})
	_, err = c.Complete(context.Background(), Request{Prompt: "ping"})
	require.NoError(t, err)
	assert.Equal(t, []string{"openai/gpt-4o-mini"}, p2.models)
}

func TestComplete_SucceedsOnAttemptK(t *testing.T) {
	for k := 0; k < 5; k++ {
		results := make([]fakeResult, 0, k+1)
		for i := 0; i < k; i++ {
			results = append(results, fakeResult{err: errors.New("network unreachable")})
		}
		want := response("answer")
		results = append(results, fakeResult{resp: want})

		p := &fakeProvider{results: results}
		sleeper := &sleepRecorder{}
		resp, err := newTestClient(p, sleeper).Complete(context.Background(), Request{Prompt: "ping", MaxRetries: 5})

		require.NoError(t, err, "k=%d", k)
		assert.Same(t, want, resp, "k=%d", k)
		assert.Equal(t, k+1, p.calls, "k=%d", k)
		assert.Len(t, sleeper.waits, k, "k=%d", k)
	}
}

func TestComplete_RateLimitScenario(t *testing.T) {
	r := response("R")
	p := &fakeProvider{results: []fakeResult{
		{err: &APIError{Message: "rate limit exceeded"}},
		{err: &APIError{Message: "rate limit exceeded"}},
		{resp: r},
	}}
	sleeper := &sleepRecorder{}

	resp, err := newTestClient(p, sleeper).Complete(context.Background(), Request{Prompt: "ping", MaxRetries: 3})

	require.NoError(t, err)
	assert.Same(t, r, resp)
	assert.Equal(t, 3, p.calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, sleeper.waits)
}

func TestComplete_InvalidKeyScenario(t *testing.T) {
	fatal := &APIError{StatusCode: 401, Message: "invalid api key"}
	p := &fakeProvider{results: []fakeResult{{err: fatal}}}
	sleeper := &sleepRecorder{}

	resp, err := newTestClient(p, sleeper).Complete(context.Background(), Request{Prompt: "ping", MaxRetries: 3})

	assert.Nil(t, resp)
	assert.Same(t, fatal, err, "fatal error propagates unchanged")
	assert.Equal(t, 1, p.calls)
	assert.Empty(t, sleeper.waits)
}

func TestComplete_GenericErrorExhaustsRetries(t *testing.T) {
	final := errors.New("final transport failure")
	p := &fakeProvider{results: []fakeResult{
		{err: errors.New("timeout 1")},
		{err: errors.New("timeout 2")},
		{err: errors.New("timeout 3")},
		{err: final},
	}}
	sleeper := &sleepRecorder{}

	_, err := newTestClient(p, sleeper).Complete(context.Background(), Request{Prompt: "ping", MaxRetries: 4})

	assert.Same(t, final, err)
	assert.Equal(t, 4, p.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeper.waits)
}

func TestComplete_OverloadExhaustsRetries(t *testing.T) {
	overload := &APIError{Provider: "openrouter", Message: "Provider returned error: overloaded"}
	p := &fakeProvider{results: []fakeResult{{err: overload}}}
	sleeper := &sleepRecorder{}

	_, err := newTestClient(p, sleeper).Complete(context.Background(), Request{Prompt: "ping"})

	var exhausted *RetriesExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.Same(t, overload, exhausted.Err)
	assert.Equal(t, 5, p.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}, sleeper.waits)
}

func TestComplete_Validation(t *testing.T) {
	p := &fakeProvider{}
	c := newTestClient(p, &sleepRecorder{})

	_, err := c.Complete(context.Background(), Request{Prompt: "   "})
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = c.Complete(context.Background(), Request{Prompt: "ping", MaxRetries: -2})
	assert.ErrorIs(t, err, ErrInvalidMaxRetries)

	assert.Equal(t, 0, p.calls, "validation failures never reach the provider")
}

func TestComplete_RetryEventsCarryCallContext(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{
		{err: &APIError{Message: "overloaded"}},
		{err: errors.New("EOF")},
		{resp: response("done")},
	}}
	var events []RetryEvent
	c := NewClient(p, Options{
		Sleep:   (&sleepRecorder{}).Sleep,
		OnRetry: func(ev RetryEvent) { events = append(events, ev) },
	})

	_, err := c.Complete(context.Background(), Request{Prompt: "ping", Model: "openai/gpt-4o"})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.NotEmpty(t, events[0].CallID)
	assert.Equal(t, events[0].CallID, events[1].CallID, "events from one call share an ID")
	for _, ev := range events {
		assert.Equal(t, "openai/gpt-4o", ev.Model)
		assert.Equal(t, 5, ev.MaxRetries)
	}
}

func TestComplete_DefaultNoticeIsLogged(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	defer logging.SetOutput(prev)

	p := &fakeProvider{results: []fakeResult{
		{err: &APIError{Message: "rate limit exceeded"}},
		{resp: response("ok")},
	}}
	c := NewClient(p, Options{Sleep: (&sleepRecorder{}).Sleep})

	_, err := c.Complete(context.Background(), Request{Prompt: "ping"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "Provider overloaded or rate limited. Retrying in 1s... (attempt 1/5)")
}

func TestComplete_ContextCancelledDuringBackoff(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{{err: &APIError{Message: "overloaded"}}}}
	c := NewClient(p, Options{OnRetry: quiet, BaseDelay: 10 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Complete(ctx, Request{Prompt: "ping"})

	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, 1, p.calls)
	assert.Less(t, time.Since(start), 2*time.Second)
}
