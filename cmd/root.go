package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/cli/handlers"
	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/logger"
	"github.com/xolan/pawlog/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "pawlog",
	Short: "A dog activity log",
	Long: `pawlog keeps a simple log of your dog's day: walks, poops, pishes,
play, sleep, meals and anything else worth noting.

Usage:
  pawlog                                    Show today's summary
  pawlog log walk poop --walk-distance 2.5  Log one or more activities
  pawlog logs                               List every logged entry
  pawlog report [--copy]                    Print (and copy) today's report
  pawlog settings                           Show version and storage details
  pawlog clear                              Delete all logged activities
  pawlog tui                                Launch the interactive UI

Activities: walk, poop, pish, play, sleep, meal, other`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		handlers.ShowDashboard(cmd.Context(), cli.GetDeps())
	},
}

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's summary",
	Long:  `Show how many times each activity was logged today and when it last happened.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowDashboard(cmd.Context(), cli.GetDeps())
	},
}

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List every logged entry",
	Long:  `List every logged entry as a table, newest first.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListLogs(cmd.Context(), cli.GetDeps())
	},
}

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show version and storage details",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowSettings(cmd.Context(), cli.GetDeps(), version())
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check stored log health",
	Long:  `Validate the stored activity log and report on its health, including any invalid entries.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateStorage(cmd.Context(), cli.GetDeps())
	},
}

func init() {
	// Assigned here to avoid an initialization cycle through completionCmd
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRun = teardown

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"pawlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

func version() string {
	if rootCmd.Version == "" {
		return "dev"
	}
	return rootCmd.Version
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// cleanup releases what setup opened
var cleanup = func() {}

// setup loads the config, configures logging and opens the storage backend.
// Commands that already have services (tests) or need none (completion) skip it.
func setup(cmd *cobra.Command, args []string) error {
	deps := cli.GetDeps()
	if deps.Services != nil || skipsSetup(cmd) {
		return nil
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return err
	}

	level, err := logLevel(deps, cfg, configPath)
	if err != nil {
		return err
	}
	console := deps.Stderr
	if wantsTUI(cmd) {
		// the TUI owns the terminal; records go to the log file only
		console = io.Discard
	}
	_, closeLog, err := logger.Init(logger.Options{Console: console, Level: level, Dir: dataDir})
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Could not open log file: %v\n", err)
		_, closeLog, _ = logger.Init(logger.Options{Console: console, Level: level})
	}

	services, err := service.NewServicesFromConfig(configPath, cfg)
	if err != nil {
		_ = closeLog()
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check storage_backend and data_dir in %s\n", configPath)
		deps.Exit(1)
		return err
	}

	deps.Services = services
	deps.Config = cfg
	cleanup = func() {
		_ = services.Close()
		_ = closeLog()
		deps.Services = nil
	}
	return nil
}

// logLevel parses the configured log level, reporting a bad value like any other setup failure
func logLevel(deps *cli.Deps, cfg config.Config, configPath string) (slog.Level, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid log level")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Set log_level to debug, info, warn or error in %s\n", configPath)
		deps.Exit(1)
		return level, err
	}
	return level, nil
}

func teardown(cmd *cobra.Command, args []string) {
	cleanup()
	cleanup = func() {}
}

func skipsSetup(cmd *cobra.Command) bool {
	if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == completionCmd {
			return true
		}
	}
	return false
}

func wantsTUI(cmd *cobra.Command) bool {
	if cmd == tuiCmd {
		return true
	}
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	return tuiFlag
}
