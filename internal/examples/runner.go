// Package examples runs the illustrative completion against each example
// model in turn, catching every failure so one bad model never stops the run.
package examples

import (
	"context"
	"time"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
	"github.com/CodexForgeBR/llm-retry/internal/model"
)

// DefaultPrompt is sent to every example model.
const DefaultPrompt = "Hello! Can you help me with a coding question?"

// Completer is satisfied by *ai.Client.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (*ai.Response, error)
}

// Result is the outcome for one example model.
type Result struct {
	Label   string
	Model   string
	Content string
	Err     error
	Elapsed time.Duration
}

// OK reports whether the model produced content.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run completes prompt against each target sequentially. report, if non-nil,
// is called as each result becomes available. Once ctx is cancelled the
// remaining targets are recorded with ctx's error and not called.
func Run(ctx context.Context, c Completer, prompt string, targets []model.Example, report func(Result)) []Result {
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		res := Result{Label: target.Label, Model: target.Model}

		if err := ctx.Err(); err != nil {
			res.Err = err
		} else {
			start := time.Now()
			resp, err := c.Complete(ctx, ai.Request{Prompt: prompt, Model: target.Model})
			res.Elapsed = time.Since(start)
			if err == nil {
				res.Content, err = resp.Content()
			}
			res.Err = err
		}

		results = append(results, res)
		if report != nil {
			report(res)
		}
	}
	return results
}
