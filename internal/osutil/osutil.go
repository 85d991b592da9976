// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the user config directory
const AppName = "pawlog"

// PathProvider abstracts OS-level operations for path resolution.
// Config, data and log paths all resolve through it so tests can point them elsewhere.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir returns the pawlog directory inside the user config directory,
// creating it if needed.
func AppDir() (string, error) {
	configDir, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// AppFile returns the path of name inside AppDir.
func AppFile(name string) (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
