package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/cli/handlers"
)

var (
	reportCopyFlag bool
	reportDateFlag string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print today's activity report",
	Long: `Print a plain-text report of today's activities, oldest first,
ready to paste into an email or message.

Examples:
  pawlog report
  pawlog report --copy
  pawlog report --date yesterday
  pawlog report --date 2024-01-15`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowReport(cmd.Context(), cli.GetDeps(), reportDateFlag, reportCopyFlag)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVarP(&reportCopyFlag, "copy", "c", false, "also copy the report to the clipboard")
	reportCmd.Flags().StringVar(&reportDateFlag, "date", "", "report another day (today, yesterday, YYYY-MM-DD or DD/MM/YYYY)")
}
