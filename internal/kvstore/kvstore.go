// Package kvstore provides the key-value backends the activity log is persisted in.
// Values are opaque byte documents; every Set replaces the whole value.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned by Get when the key has no value
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store
type KV interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases resources held by the store
	Close() error
	// Location describes where values are kept, for display
	Location() string
}

const (
	// SQLiteFile is the database file name used by the sqlite backend
	SQLiteFile = "pawlog.db"
	// FileDir is the directory name used by the file backend
	FileDir = "data"
)

// Open returns the backend named by backend ("file", "sqlite" or "memory")
// rooted at dataDir.
func Open(backend, dataDir string) (KV, error) {
	switch backend {
	case "file", "":
		return NewFileKV(filepath.Join(dataDir, FileDir))
	case "sqlite":
		return NewSQLiteKV(filepath.Join(dataDir, SQLiteFile))
	case "memory":
		return NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
