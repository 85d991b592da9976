package storage

import (
	"context"
	"errors"

	"github.com/xolan/pawlog/internal/kvstore"
)

// InvalidEntry describes a stored entry that breaks the entry invariants
type InvalidEntry struct {
	Index     int    // Position in the collection (0-based)
	Timestamp string // Timestamp of the entry, possibly empty
	Error     string // Description of the problem
}

// Health contains information about the stored activity log.
type Health struct {
	Location string         // Where the collection is kept
	Exists   bool           // Whether anything is stored under EntriesKey
	Readable bool           // Whether the stored document could be read and decoded
	Error    string         // Read or decode error, when not Readable
	Entries  int            // Number of decoded entries
	Invalid  []InvalidEntry // Entries violating the invariants
}

// Healthy reports whether the document is readable and every entry is valid
func (h Health) Healthy() bool {
	return (!h.Exists || h.Readable) && len(h.Invalid) == 0
}

// Inspect implements Store. It never modifies the stored data.
func (s *KVStore) Inspect(ctx context.Context) Health {
	health := Health{
		Location: s.kv.Location(),
		Invalid:  []InvalidEntry{},
	}

	if _, err := s.kv.Get(ctx, EntriesKey); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return health
		}
		health.Exists = true
		health.Error = err.Error()
		return health
	}
	health.Exists = true

	entries, err := s.read(ctx)
	if err != nil {
		health.Error = err.Error()
		return health
	}

	health.Readable = true
	health.Entries = len(entries)
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			health.Invalid = append(health.Invalid, InvalidEntry{
				Index:     i,
				Timestamp: e.Timestamp,
				Error:     err.Error(),
			})
			continue
		}
		if _, ok := e.ParsedTimestamp(); !ok {
			health.Invalid = append(health.Invalid, InvalidEntry{
				Index:     i,
				Timestamp: e.Timestamp,
				Error:     "timestamp is missing or malformed",
			})
		}
	}

	return health
}
