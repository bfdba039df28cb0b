package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/llm-retry/internal/model"
)

func TestCheckAvailability(t *testing.T) {
	t.Run("only keyed providers are registered", func(t *testing.T) {
		r := NewRouter(Settings{OpenAIAPIKey: "sk-test"})

		result := r.CheckAvailability(model.OpenRouter, model.OpenAI)

		require.Len(t, result, 2)
		assert.False(t, result[model.OpenRouter])
		assert.True(t, result[model.OpenAI])
	})

	t.Run("unknown provider is unavailable", func(t *testing.T) {
		r := NewRouter(Settings{OpenRouterAPIKey: "or-test", OpenAIAPIKey: "sk-test"})

		result := r.CheckAvailability("bedrock")

		assert.False(t, result["bedrock"])
	})

	t.Run("empty input returns empty map", func(t *testing.T) {
		r := NewRouter(Settings{})

		result := r.CheckAvailability()

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestUnavailable(t *testing.T) {
	targets := []model.Example{
		{Label: "A", Model: "openrouter/openai/gpt-4.1"},
		{Label: "B", Model: "openai/gpt-4o"},
		{Label: "C", Model: "not-a-provider/x"},
	}

	t.Run("reports targets without a backend in order", func(t *testing.T) {
		r := NewRouter(Settings{OpenAIAPIKey: "sk-test"})

		missing := r.Unavailable(targets)

		require.Len(t, missing, 2)
		assert.Equal(t, "A", missing[0].Label)
		assert.Equal(t, "C", missing[1].Label)
	})

	t.Run("nothing missing when all keys set", func(t *testing.T) {
		r := NewRouter(Settings{OpenRouterAPIKey: "or-test", OpenAIAPIKey: "sk-test"})

		assert.Empty(t, r.Unavailable(model.Examples()))
	})
}
