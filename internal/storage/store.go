// Package storage persists the activity log as a single JSON document in a key-value store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/kvstore"
)

// EntriesKey is the key the whole entry collection is stored under
const EntriesKey = "dogLogs"

// ErrCorrupt marks a stored document that is not a JSON array of entries
var ErrCorrupt = errors.New("stored activity log is corrupt")

// Store is the persistence contract for the activity log.
// The collection is ordered by insertion and is only ever appended to or cleared.
type Store interface {
	// LoadEntries returns the whole collection. It never fails: missing or
	// unreadable data is reported as an empty collection.
	LoadEntries(ctx context.Context) []entry.Entry
	// AppendEntry adds e to the end of the collection
	AppendEntry(ctx context.Context, e entry.Entry) error
	// ClearAll removes the whole collection
	ClearAll(ctx context.Context) error
	// Inspect reports on the health of the stored document
	Inspect(ctx context.Context) Health
	// Location describes where the collection is kept
	Location() string
}

// KVStore implements Store on top of a kvstore.KV.
// The full collection is read and rewritten on every append; a single writer is assumed.
type KVStore struct {
	kv     kvstore.KV
	logger *slog.Logger
}

// New returns a Store backed by kv
func New(kv kvstore.KV) *KVStore {
	return &KVStore{kv: kv, logger: slog.Default().With("component", "storage")}
}

// LoadEntries implements Store
func (s *KVStore) LoadEntries(ctx context.Context) []entry.Entry {
	entries, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("activity log unreadable, treating as empty", "location", s.kv.Location(), "error", err)
		return []entry.Entry{}
	}
	return entries
}

// AppendEntry implements Store
func (s *KVStore) AppendEntry(ctx context.Context, e entry.Entry) error {
	entries, err := s.read(ctx)
	switch {
	case errors.Is(err, ErrCorrupt):
		// a corrupt document is replaced, never merged into
		s.logger.Warn("overwriting corrupt activity log", "location", s.kv.Location(), "error", err)
		entries = []entry.Entry{}
	case err != nil:
		return fmt.Errorf("failed to load entries: %w", err)
	}
	entries = append(entries, e)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.kv.Set(ctx, EntriesKey, data); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	s.logger.Debug("entry appended", "timestamp", e.Timestamp, "total", len(entries))
	return nil
}

// ClearAll implements Store
func (s *KVStore) ClearAll(ctx context.Context) error {
	if err := s.kv.Remove(ctx, EntriesKey); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	s.logger.Info("activity log cleared", "location", s.kv.Location())
	return nil
}

// Location implements Store
func (s *KVStore) Location() string {
	return s.kv.Location()
}

// read returns the decoded collection, an empty one when the key is absent,
// or the get error. Decode failures wrap ErrCorrupt.
func (s *KVStore) read(ctx context.Context) ([]entry.Entry, error) {
	data, err := s.kv.Get(ctx, EntriesKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []entry.Entry{}, nil
		}
		return nil, err
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if entries == nil {
		// A stored "null" decodes to a nil slice
		entries = []entry.Entry{}
	}
	return entries, nil
}
