// Package ui wraps the terminal building blocks the interactive flow uses:
// prompts, the batch progress bar, the summary table and colored notices.
package ui

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/ytgrab/internal/model"
)

// Summary table headers
var summaryHeaders = []string{"File", "Type", "Status", "Size"}

// Confirm asks a yes/no question.
func Confirm(message string, def bool) (bool, error) {
	answer := def
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}

// Input asks for a free-form line.
func Input(message, def string) (string, error) {
	answer := ""
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer)
	return answer, err
}

// Select asks the user to pick one of the options.
func Select(message string, options []string, def string) (string, error) {
	answer := ""
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &answer)
	return answer, err
}

// IsInterrupt reports whether the prompt was cancelled with Ctrl-C.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

// NewBatchBar creates the per-batch progress bar, advanced once per terminal
// item outcome.
func NewBatchBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

// RenderSummary renders the ordered batch summary table.
func RenderSummary(w io.Writer, batch *model.BatchResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(summaryHeaders)
	for _, row := range batch.Rows {
		table.Append([]string{row.Path, string(row.Kind), row.Status, row.Size})
	}
	table.Render()
}

// PrintFailed renders the terse failed-URL list, distinct from the row-level
// summary so failed URLs are easy to copy for a retry.
func PrintFailed(w io.Writer, urls []string) {
	if len(urls) == 0 {
		return
	}
	header := color.New(color.FgRed, color.Bold)
	header.Fprintln(w, "These failed:")
	for _, u := range urls {
		color.New(color.FgRed).Fprintln(w, u)
	}
}

// Notice prints a highlighted informational line.
func Notice(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}

// Warn prints a highlighted warning line.
func Warn(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, format+"\n", args...)
}
