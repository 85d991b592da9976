package kvstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileKV keeps one file per key inside a directory.
// Writes go to a temporary file that is renamed over the old value.
type FileKV struct {
	dir string
}

// NewFileKV creates the directory if needed and returns a FileKV rooted at it
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// path maps a key to a file name; keys are escaped so any string is safe
func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

// Get implements KV
func (s *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set implements KV
func (s *FileKV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(key)
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, value, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	// Atomic rename
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}

// Remove implements KV
func (s *FileKV) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close implements KV
func (s *FileKV) Close() error {
	return nil
}

// Location implements KV
func (s *FileKV) Location() string {
	return s.dir
}
