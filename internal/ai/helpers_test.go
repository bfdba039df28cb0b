package ai

import (
	"context"
	"time"
)

// fakeResult is one scripted provider outcome.
type fakeResult struct {
	resp *Response
	err  error
}

// fakeProvider is a test double for Provider that replays scripted results.
// Calls past the script repeat the last result.
type fakeProvider struct {
	results  []fakeResult
	calls    int
	models   []string
	messages [][]Message
}

func (f *fakeProvider) Send(ctx context.Context, model string, messages []Message) (*Response, error) {
	idx := f.calls
	f.calls++
	f.models = append(f.models, model)
	f.messages = append(f.messages, messages)
	if len(f.results) == 0 {
		return nil, nil
	}
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	r := f.results[idx]
	return r.resp, r.err
}

// sleepRecorder records backoff waits instead of sleeping.
type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return ctx.Err()
}

func response(content string) *Response {
	return &Response{
		ID:    "resp-" + content,
		Model: "openai/gpt-4.1",
		Choices: []Choice{
			{Index: 0, Message: Message{Role: RoleAssistant, Content: content}, FinishReason: "stop"},
		},
	}
}

func quiet(RetryEvent) {}
