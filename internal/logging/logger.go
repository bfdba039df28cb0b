// Package logging provides colored, leveled diagnostic output for llm-retry.
//
// Every line is written to a single output (stderr by default) so that stdout
// carries only completion content. Debug output is suppressed unless verbose
// mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// SetOutput redirects all log lines to w and returns the previous writer.
// Passing io.Discard suppresses diagnostics.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// ConfigureColor disables color when disable is true or when stderr is not
// a terminal.
func ConfigureColor(disable bool) {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	color.NoColor = disable || !tty
}

func emit(prefix, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, prefix+" "+msg)
}

// Info prints an informational message in blue.
func Info(msg string) {
	emit(infoPrefix("[INFO]"), msg)
}

// Success prints a success message in green.
func Success(msg string) {
	emit(successPrefix("[SUCCESS]"), msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	emit(warnPrefix("[WARN]"), msg)
}

// Error prints an error message in red.
func Error(msg string) {
	emit(errorPrefix("[ERROR]"), msg)
}

// Debug prints a debug message in blue, only when verbose mode is enabled.
func Debug(msg string) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if !v {
		return
	}
	emit(debugPrefix("[DEBUG]"), msg)
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)    => "0s"
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
