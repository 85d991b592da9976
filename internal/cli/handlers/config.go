package handlers

import (
	"fmt"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/config"
)

// setting is one line of the config table, in the order of the sample file
type setting struct {
	key   string
	value func(config.Config) string
	about string
}

var settings = []setting{
	{"storage_backend", func(c config.Config) string { return c.StorageBackend }, "file, sqlite or memory"},
	{"data_dir", func(c config.Config) string {
		if c.DataDir == "" {
			return "(config directory)"
		}
		return c.DataDir
	}, "where the activity log is kept"},
	{"timezone", func(c config.Config) string { return c.Timezone }, `decides which entries are "today"`},
	{"clock_format", func(c config.Config) string { return c.ClockFormat }, "24h or 12h entry times"},
	{"theme", func(c config.Config) string { return c.Theme }, "TUI colors"},
	{"log_level", func(c config.Config) string { return c.LogLevel }, "stderr verbosity"},
}

// ShowConfig prints the config file location and every setting in effect
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	source := "config file"
	if !deps.Services.Config.Exists() {
		source = "defaults, no config file (run 'pawlog config init' to create one)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Config: %s\n", path)
	_, _ = fmt.Fprintf(deps.Stdout, "Using:  %s\n\n", source)

	rows := make([][]string, len(settings))
	for i, s := range settings {
		rows[i] = []string{s.key, s.value(cfg), s.about}
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatTable([]string{"Setting", "Value", "Meaning"}, rows))
}

// InitConfig writes the commented sample config and starts using it
func InitConfig(deps *cli.Deps) {
	path := deps.Services.Config.GetPath()
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Could not create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Edit %s directly or remove it first\n", path)
		deps.Exit(1)
		return
	}

	if err := deps.Services.Config.Reload(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %v\n", err)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Every setting is commented; changes apply the next time pawlog starts.")
}
