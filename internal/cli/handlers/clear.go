package handlers

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/cli"
)

// ClearLogs deletes every entry after confirmation, unless skipConfirm is set
func ClearLogs(ctx context.Context, deps *cli.Deps, skipConfirm bool) {
	confirm := func() bool { return promptClearConfirmation(deps) }
	if skipConfirm {
		confirm = nil
	}

	cleared, err := deps.Services.Log.ClearAll(ctx, confirm)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to clear logs")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if !cleared {
		_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "All logs cleared.")
}

// promptClearConfirmation asks the user to confirm the clear operation
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptClearConfirmation(deps *cli.Deps) bool {
	_, _ = fmt.Fprint(deps.Stdout, "Delete all logged activities? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
