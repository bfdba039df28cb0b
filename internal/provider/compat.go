// Package provider implements ai.Provider on top of OpenAI-compatible chat
// completion APIs using github.com/sashabaranov/go-openai.
package provider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
)

// ChatClient is the subset of *openai.Client used here; it is easy to fake in tests.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Compat sends completions to one OpenAI-compatible backend.
type Compat struct {
	Name   string
	Client ChatClient
}

// Send issues a single chat completion call. Provider rejections are
// returned as *ai.APIError; transport failures pass through unchanged.
func (c *Compat) Send(ctx context.Context, model string, messages []ai.Message) (*ai.Response, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: toOpenAIMessages(messages),
	}

	resp, err := c.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, translateError(c.Name, err)
	}
	return fromOpenAIResponse(resp), nil
}

func toOpenAIMessages(messages []ai.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func fromOpenAIResponse(resp openai.ChatCompletionResponse) *ai.Response {
	out := &ai.Response{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, ch := range resp.Choices {
		out.Choices = append(out.Choices, ai.Choice{
			Index:        ch.Index,
			Message:      ai.Message{Role: ch.Message.Role, Content: ch.Message.Content},
			FinishReason: string(ch.FinishReason),
		})
	}
	return out
}
