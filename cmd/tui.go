package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for pawlog.

Views available:
  - Today: Count and last time for every activity today
  - Log: Pick activities, fill in details and save an entry
  - Logs: Every logged entry, newest first
  - Report: Today's report, ready to copy
  - Settings: Version, storage, theme and clearing the log

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-5: Jump to specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI runs the TUI against the services opened by setup
func runTUI(ctx context.Context) {
	deps := cli.GetDeps()
	opts := tui.Options{Version: version(), Clipboard: deps.Clipboard}
	if err := tui.Run(ctx, deps.Services, opts); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI(cmd.Context())
		return true
	}
	return false
}
