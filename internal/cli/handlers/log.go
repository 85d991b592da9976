package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/entry"
)

// SelectActivity is printed when a log request names no activity
const SelectActivity = "Please select at least one activity."

// LogActivity records a new entry for the named activities
func LogActivity(ctx context.Context, deps *cli.Deps, names []string, details entry.Details, notes string) {
	kinds, err := entry.ParseKinds(names)
	if err != nil {
		reportDraftError(deps, err)
		return
	}

	e, err := deps.Services.Log.Create(ctx, entry.Draft{
		Activities: kinds,
		Details:    details,
		Notes:      notes,
	})
	if err != nil {
		reportDraftError(deps, err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Activity logged successfully.")
	_, _ = fmt.Fprintf(deps.Stdout, "%s %s – %s\n", e.Date, e.Time, e.ActivityTitles())
}

func reportDraftError(deps *cli.Deps, err error) {
	switch {
	case errors.Is(err, entry.ErrNoActivities):
		_, _ = fmt.Fprintln(deps.Stderr, SelectActivity)
		_, _ = fmt.Fprintf(deps.Stderr, "Usage: pawlog log <%s> [flags]\n", kindList())
	case errors.Is(err, entry.ErrUnknownKind):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Valid activities are %s\n", kindList())
	case errors.Is(err, entry.ErrOrphanDetails):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Detail flags only apply to selected activities (e.g., --walk-distance needs walk)")
	case errors.Is(err, entry.ErrInvalidDetail):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Times use HH:MM (e.g., 07:30), distance is a number of km, where is walk or backyard")
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save activity")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the storage location is writable: %s\n", deps.Services.Log.Location())
	}
	deps.Exit(1)
}

func kindList() string {
	names := make([]string, len(entry.Kinds))
	for i, k := range entry.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}
