package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for pawlog.

pawlog works without any configuration file. All settings have defaults:
  - storage_backend: file (also: sqlite, memory)
  - data_dir: (empty, next to the config file)
  - timezone: Local (system timezone)
  - clock_format: 24h (also: 12h)
  - theme: dracula
  - log_level: warn

Configuration file location:
  ~/.config/pawlog/config.toml       Linux
  %APPDATA%\pawlog\config.toml       Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
