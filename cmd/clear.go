package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/cli/handlers"
)

var clearYesFlag bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged activities",
	Long: `Delete every logged activity. This cannot be undone.
A confirmation prompt will be shown unless --yes is specified.

Example:
  pawlog clear
  pawlog clear --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ClearLogs(cmd.Context(), cli.GetDeps(), clearYesFlag)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "skip confirmation prompt")
}
