package logging_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/llm-retry/internal/logging"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// capture redirects log output to a buffer for the duration of fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	defer logging.SetOutput(prev)

	fn()
	return buf.String()
}

// ---------------------------------------------------------------------------
// FormatDuration tests
// ---------------------------------------------------------------------------

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{1, "1s"},
		{45, "45s"},
		{64, "1m 4s"},
		{90, "1m 30s"},
		{3661, "1h 1m 1s"},
		{7200, "2h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.FormatDuration(tt.seconds))
		})
	}
}

// ---------------------------------------------------------------------------
// Log output tests
// ---------------------------------------------------------------------------

func TestLevels(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string)
		prefix string
	}{
		{"info", logging.Info, "[INFO]"},
		{"success", logging.Success, "[SUCCESS]"},
		{"warn", logging.Warn, "[WARN]"},
		{"error", logging.Error, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, func() { tt.fn("test message") })
			assert.Equal(t, tt.prefix+" test message\n", out)
		})
	}
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	logging.SetVerbose(false)
	out := capture(t, func() {
		logging.Debug("hidden")
	})
	assert.Empty(t, out)
}

func TestDebugShownWhenVerbose(t *testing.T) {
	logging.SetVerbose(true)
	defer logging.SetVerbose(false)

	out := capture(t, func() {
		logging.Debug("visible")
	})
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "visible")
}

func TestSetOutputDiscard(t *testing.T) {
	prev := logging.SetOutput(io.Discard)
	defer logging.SetOutput(prev)

	assert.NotPanics(t, func() { logging.Warn("dropped") })
}

func TestConfigureColorDisable(t *testing.T) {
	defer func() { color.NoColor = true }()

	logging.ConfigureColor(true)
	assert.True(t, color.NoColor)
}
