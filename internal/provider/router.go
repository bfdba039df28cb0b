package provider

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/CodexForgeBR/llm-retry/internal/ai"
	"github.com/CodexForgeBR/llm-retry/internal/model"
)

// Default API endpoints.
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
)

// Settings holds credentials and endpoints for each backend. A backend with
// no API key is not registered.
type Settings struct {
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenAIAPIKey      string
	OpenAIBaseURL     string

	// Timeout bounds each HTTP request; zero means no client-side timeout.
	Timeout time.Duration

	// Referer and Title identify the app to OpenRouter.
	Referer string
	Title   string
}

// Router dispatches "<provider>/<model>" identifiers to the matching backend.
type Router struct {
	backends map[string]ai.Provider
}

// NewRouter builds go-openai clients for every backend that has an API key.
func NewRouter(s Settings) *Router {
	r := &Router{backends: make(map[string]ai.Provider)}

	if s.OpenRouterAPIKey != "" {
		headers := map[string]string{
			"HTTP-Referer": s.Referer,
			"X-Title":      s.Title,
		}
		r.Register(model.OpenRouter, newCompat(model.OpenRouter, s.OpenRouterAPIKey,
			orDefault(s.OpenRouterBaseURL, DefaultOpenRouterBaseURL), s.Timeout, headers))
	}
	if s.OpenAIAPIKey != "" {
		r.Register(model.OpenAI, newCompat(model.OpenAI, s.OpenAIAPIKey,
			orDefault(s.OpenAIBaseURL, DefaultOpenAIBaseURL), s.Timeout, nil))
	}
	return r
}

// Register sets the backend used for the named provider prefix.
func (r *Router) Register(name string, p ai.Provider) {
	r.backends[name] = p
}

// Send routes to the provider named by the model prefix and forwards the
// upstream model name. Unroutable models and providers without credentials
// are reported as non-retryable *ai.APIError.
func (r *Router) Send(ctx context.Context, modelID string, messages []ai.Message) (*ai.Response, error) {
	name, upstream, err := model.Split(modelID)
	if err != nil {
		return nil, &ai.APIError{StatusCode: http.StatusBadRequest, Type: "invalid_model", Message: err.Error(), Cause: err}
	}

	backend, ok := r.backends[name]
	if !ok {
		return nil, &ai.APIError{
			Provider:   name,
			StatusCode: http.StatusUnauthorized,
			Type:       "missing_api_key",
			Message:    "no API key configured for provider " + name,
		}
	}
	return backend.Send(ctx, upstream, messages)
}

func newCompat(name, apiKey, baseURL string, timeout time.Duration, headers map[string]string) *Compat {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	httpClient := &http.Client{Timeout: timeout}
	if len(headers) > 0 {
		httpClient.Transport = &headerTransport{headers: headers}
	}
	cfg.HTTPClient = httpClient

	return &Compat{Name: name, Client: openai.NewClientWithConfig(cfg)}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
