package cli

import (
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is nil until the command line has been parsed; see cmd's PersistentPreRun
	Services *service.Services

	// Clipboard copies text to the system clipboard
	Clipboard func(text string) error
	Config    config.Config
}

// DefaultDeps creates a new Deps with default values.
// Services are opened later so that flags and config errors can be reported first.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
		Exit:      os.Exit,
		Clipboard: clipboard.WriteAll,
		Config:    config.DefaultConfig(),
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services, cfg config.Config) *Deps {
	d := DefaultDeps()
	d.Services = services
	d.Config = cfg
	return d
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
