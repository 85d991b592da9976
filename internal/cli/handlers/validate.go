package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/cli"
)

// ValidateStorage reports on the health of the stored log
func ValidateStorage(ctx context.Context, deps *cli.Deps) {
	health := deps.Services.Health.Check(ctx)

	_, _ = fmt.Fprintf(deps.Stdout, "Storage: %s\n", health.Location)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Nothing logged yet")
		return
	}

	if !health.Readable {
		_, _ = fmt.Fprintln(deps.Stderr, "Status: ⚠ Stored log cannot be read; it is treated as empty")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", health.Error)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Logging a new activity replaces the unreadable data")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries:         %d\n", health.Entries)
	_, _ = fmt.Fprintf(deps.Stdout, "Invalid entries: %d\n", len(health.Invalid))

	if len(health.Invalid) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Invalid entries:")
		for _, inv := range health.Invalid {
			ts := inv.Timestamp
			if ts == "" {
				ts = "(no timestamp)"
			}
			_, _ = fmt.Fprintf(deps.Stdout, "  #%d %s (error: %s)\n", inv.Index+1, ts, inv.Error)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Stored log is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Stored log has %d invalid %s\n", len(health.Invalid), cli.Pluralize("entry", len(health.Invalid)))
	}
}
