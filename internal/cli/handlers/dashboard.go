package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xolan/pawlog/internal/cli"
)

// NoActivitiesToday is shown instead of the cards when nothing was logged today
const NoActivitiesToday = "No activities logged for today yet."

// ShowDashboard prints today's per-activity summary
func ShowDashboard(ctx context.Context, deps *cli.Deps) {
	d := deps.Services.Dashboard.Today(ctx)

	_, _ = fmt.Fprintf(deps.Stdout, "Today's Summary (%s)\n", d.Date)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if d.Empty() {
		_, _ = fmt.Fprintln(deps.Stdout, NoActivitiesToday)
		return
	}

	for _, c := range d.Cards {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  Count: %-3d Last: %s\n",
			runewidth.FillRight(c.Kind.Title(), 6),
			c.Count,
			c.LastOrPlaceholder())
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s today\n", d.Entries, cli.Pluralize("entry", d.Entries))
}
