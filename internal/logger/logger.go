// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// LogFile is the name of the JSON log written next to the activity log
const LogFile = "pawlog.log"

// Options configures Init
type Options struct {
	// Console receives human-readable records at Level and above (usually stderr)
	Console io.Writer
	Level   slog.Level
	// Dir, when set, also receives every record at debug level as JSON in Dir/LogFile
	Dir string
}

// Init builds the logger described by opts and installs it as slog's default.
// The returned function closes the log file, if any.
func Init(opts Options) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: opts.Level}),
	}

	if opts.Dir != "" {
		f, err := os.OpenFile(filepath.Join(opts.Dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, closer, err
		}
		closer = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Use multi-handler if we have multiple, otherwise use single
	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	log := slog.New(handler).With("app", "pawlog")
	slog.SetDefault(log)
	return log, closer, nil
}
