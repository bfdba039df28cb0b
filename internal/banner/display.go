// Package banner renders example-run output for the llm-retry CLI.
//
// Per-model lines and the summary table go to the writer passed in, which
// is stdout in the CLI. Headers and status cells are color-coded.
package banner

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/CodexForgeBR/llm-retry/internal/examples"
	"github.com/CodexForgeBR/llm-retry/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

const separator = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the example-run header.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  llm-retry - example run
//	═══════════════════════════════════════════════════
//	  Prompt:     Hello! Can you help me with a coding question?
//	  Models:     3
//	  Retries:    5
//	═══════════════════════════════════════════════════
func PrintStartupBanner(w io.Writer, prompt string, models, maxRetries int) {
	sep := headerColor(separator)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  llm-retry - example run"))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Prompt:     %s\n", prompt)
	fmt.Fprintf(w, "  Models:     %d\n", models)
	fmt.Fprintf(w, "  Retries:    %d\n", maxRetries)
	fmt.Fprintln(w, sep)
}

// PrintResponse writes "<label> Response: <content>".
func PrintResponse(w io.Writer, label, content string) {
	fmt.Fprintf(w, "%s %s\n", successColor(label+" Response:"), content)
}

// PrintFailure writes "<label> failed: <err>".
func PrintFailure(w io.Writer, label string, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor(label+" failed:"), err)
}

// PrintResult writes the response or failure line for r.
func PrintResult(w io.Writer, r examples.Result) {
	if r.OK() {
		PrintResponse(w, r.Label, r.Content)
		return
	}
	PrintFailure(w, r.Label, r.Err)
}

// PrintSummary renders one table row per result.
func PrintSummary(w io.Writer, results []examples.Result) {
	if len(results) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Label", "Model", "Status", "Elapsed"})

	ok := 0
	for _, r := range results {
		status := errorColor("failed")
		if r.OK() {
			status = successColor("ok")
			ok++
		}
		tw.AppendRow(table.Row{r.Label, r.Model, status, formatElapsed(r.Elapsed)})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d/%d ok", ok, len(results)), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return logging.FormatDuration(int(d / time.Second))
}
