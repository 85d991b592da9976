package handlers

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/kvstore"
	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/storage"
)

// testNow is the fixed clock used by handler tests: 2024-01-01 08:15 UTC
var testNow = time.Date(2024, time.January, 1, 8, 15, 0, 0, time.UTC)

func setupTestDepsWithStore(t *testing.T, store storage.Store) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"

	services := service.NewServicesWithStore(store, filepath.Join(t.TempDir(), "config.toml"), cfg,
		func() time.Time { return testNow })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:    stdout,
		Stderr:    stderr,
		Stdin:     strings.NewReader(""),
		Exit:      func(code int) { exitCode = code },
		Services:  services,
		Clipboard: func(string) error { return nil },
		Config:    cfg,
	}

	return deps, stdout, stderr, &exitCode
}

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return setupTestDepsWithStore(t, storage.New(kvstore.NewMemoryKV()))
}

// brokenKV fails every write, like a read-only data directory
type brokenKV struct {
	*kvstore.MemoryKV
}

func (brokenKV) Set(context.Context, string, []byte) error { return errors.New("disk is read-only") }
func (brokenKV) Remove(context.Context, string) error      { return errors.New("disk is read-only") }

func setupBrokenDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return setupTestDepsWithStore(t, storage.New(brokenKV{kvstore.NewMemoryKV()}))
}

// newStore returns an in-memory store holding entries
func newStore(t *testing.T, entries ...entry.Entry) storage.Store {
	t.Helper()
	store := storage.New(kvstore.NewMemoryKV())
	for _, e := range entries {
		if err := store.AppendEntry(context.Background(), e); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}
	return store
}
