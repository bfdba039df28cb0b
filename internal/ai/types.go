package ai

import "errors"

// Message roles understood by completion providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoChoices is returned by Response.Content when the provider returned
// no choices.
var ErrNoChoices = errors.New("completion response has no choices")

// Message is one entry of a chat conversation.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion request. Zero Model and MaxRetries take the
// client's configured defaults.
type Request struct {
	Prompt     string
	Model      string
	MaxRetries int
}

// Response is the provider's completion result, passed through unmodified.
type Response struct {
	ID      string
	Model   string
	Choices []Choice
	Usage   Usage
}

// Choice is one candidate completion.
type Choice struct {
	Index        int
	Message      Message
	FinishReason string
}

// Usage reports token accounting for a completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Content returns the message content of the first choice.
func (r *Response) Content() (string, error) {
	if r == nil || len(r.Choices) == 0 {
		return "", ErrNoChoices
	}
	return r.Choices[0].Message.Content, nil
}
