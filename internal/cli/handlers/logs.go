package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/pawlog/internal/cli"
)

// NoActivitiesRecorded is shown when the log is empty
const NoActivitiesRecorded = "No activities recorded yet."

// maxDetailsWidth caps the Details column in terminal cells
const maxDetailsWidth = 80

// ListLogs prints every entry as a table, newest first
func ListLogs(ctx context.Context, deps *cli.Deps) {
	result := deps.Services.Log.List(ctx)
	if result.Total == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, NoActivitiesRecorded)
		return
	}

	rows := make([][]string, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = []string{r.Date, r.Time, r.Activities, cli.Truncate(r.Details, maxDetailsWidth)}
	}

	_, _ = fmt.Fprintln(deps.Stdout, "All Logs")
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatTable([]string{"Date", "Time", "Activities", "Details"}, rows))
	_, _ = fmt.Fprintf(deps.Stdout, "\n%d %s\n", result.Total, cli.Pluralize("entry", result.Total))
}
