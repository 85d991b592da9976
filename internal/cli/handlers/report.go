package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/cli"
)

// ShowReport prints the plain-text report for day ("" means today).
// With copyToClipboard the report also goes to the system clipboard;
// a clipboard failure is only a warning.
func ShowReport(ctx context.Context, deps *cli.Deps, day string, copyToClipboard bool) {
	report, err := deps.Services.Report.ForDay(ctx, day)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid --date value")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, report.Text)
	if !strings.HasSuffix(report.Text, "\n") {
		_, _ = fmt.Fprintln(deps.Stdout)
	}

	if !copyToClipboard {
		return
	}
	if err := deps.Clipboard(report.Text); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Could not copy report to clipboard")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Report copied to clipboard.")
}
