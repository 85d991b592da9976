package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/cli"
)

// ShowSettings prints the version and where the log is kept
func ShowSettings(ctx context.Context, deps *cli.Deps, version string) {
	cfg := deps.Services.Config.Get()
	count := deps.Services.Log.Count(ctx)

	_, _ = fmt.Fprintln(deps.Stdout, "Settings")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Version:  %s\n", version)
	_, _ = fmt.Fprintf(deps.Stdout, "Config:   %s\n", deps.Services.Config.GetPath())
	_, _ = fmt.Fprintf(deps.Stdout, "Storage:  %s (%s)\n", deps.Services.Log.Location(), cfg.StorageBackend)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:  %d\n", count)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, "Use 'pawlog clear' to delete all logged activities.")
}
