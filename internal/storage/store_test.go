package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/kvstore"
)

func sampleEntry(ts string, kinds ...entry.Kind) entry.Entry {
	return entry.Entry{
		Date:       "2024-01-01",
		Time:       "08:00",
		Activities: kinds,
		Timestamp:  ts,
	}
}

func newFileStore(t *testing.T) *KVStore {
	t.Helper()
	kv, err := kvstore.NewFileKV(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileKV() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return New(kv)
}

func TestLoadEntries_Empty(t *testing.T) {
	s := New(kvstore.NewMemoryKV())

	entries := s.LoadEntries(context.Background())
	if entries == nil {
		t.Fatal("LoadEntries() should return an empty slice, not nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestAppendEntry_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	first := sampleEntry("2024-01-01T08:00:00.000Z", entry.Walk)
	second := sampleEntry("2024-01-01T07:00:00.000Z", entry.Meal)
	second.Details = entry.Details{Meal: &entry.MealDetails{Food: "kibble"}}
	second.Notes = "ate fast"

	for _, e := range []entry.Entry{first, second} {
		if err := s.AppendEntry(ctx, e); err != nil {
			t.Fatalf("AppendEntry() returned unexpected error: %v", err)
		}
	}

	entries := s.LoadEntries(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Insertion order, not timestamp order
	if entries[0].Timestamp != first.Timestamp || entries[1].Timestamp != second.Timestamp {
		t.Errorf("entries out of insertion order: %+v", entries)
	}
	if entries[1].Details.Meal == nil || entries[1].Details.Meal.Food != "kibble" {
		t.Errorf("meal details lost: %+v", entries[1].Details)
	}
	if entries[1].Notes != "ate fast" {
		t.Errorf("notes lost: %q", entries[1].Notes)
	}
}

func TestAppendEntry_Persists(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	kv, err := kvstore.NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV() returned unexpected error: %v", err)
	}
	if err := New(kv).AppendEntry(ctx, sampleEntry("2024-01-01T08:00:00.000Z", entry.Poop)); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}
	_ = kv.Close()

	reopened, err := kvstore.NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV() returned unexpected error: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	entries := New(reopened).LoadEntries(ctx)
	if len(entries) != 1 || !entries[0].Has(entry.Poop) {
		t.Errorf("expected the poop entry after reopening, got %+v", entries)
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	s := New(kvstore.NewMemoryKV())

	for i := 0; i < 3; i++ {
		if err := s.AppendEntry(ctx, sampleEntry("2024-01-01T08:00:00.000Z", entry.Pish)); err != nil {
			t.Fatalf("AppendEntry() returned unexpected error: %v", err)
		}
	}
	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() returned unexpected error: %v", err)
	}
	if got := s.LoadEntries(ctx); len(got) != 0 {
		t.Errorf("expected no entries after clear, got %d", len(got))
	}

	// Clearing an empty store is fine
	if err := s.ClearAll(ctx); err != nil {
		t.Errorf("ClearAll() on empty store returned error: %v", err)
	}
}

func TestLoadEntries_CorruptDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"object instead of array", `{"date":"2024-01-01"}`},
		{"truncated", `[{"date":"2024-01-01"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := kvstore.NewMemoryKV()
			if err := kv.Set(ctx, EntriesKey, []byte(tt.data)); err != nil {
				t.Fatalf("Set() returned unexpected error: %v", err)
			}

			entries := New(kv).LoadEntries(ctx)
			if entries == nil || len(entries) != 0 {
				t.Errorf("expected empty collection for corrupt data, got %+v", entries)
			}
		})
	}
}

func TestLoadEntries_Null(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryKV()
	_ = kv.Set(ctx, EntriesKey, []byte("null"))

	entries := New(kv).LoadEntries(ctx)
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty collection for null, got %+v", entries)
	}
}

func TestAppendEntry_OverwritesCorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryKV()
	_ = kv.Set(ctx, EntriesKey, []byte("garbage"))
	s := New(kv)

	if err := s.AppendEntry(ctx, sampleEntry("2024-01-01T08:00:00.000Z", entry.Walk)); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}
	if got := s.LoadEntries(ctx); len(got) != 1 {
		t.Errorf("expected corrupt document to be replaced by 1 entry, got %d", len(got))
	}
}

// lockedKV fails every Get while locked is set
type lockedKV struct {
	*kvstore.MemoryKV
	locked bool
}

func (k *lockedKV) Get(ctx context.Context, key string) ([]byte, error) {
	if k.locked {
		return nil, errors.New("database is locked")
	}
	return k.MemoryKV.Get(ctx, key)
}

func TestAppendEntry_ReadFailureKeepsHistory(t *testing.T) {
	ctx := context.Background()
	kv := &lockedKV{MemoryKV: kvstore.NewMemoryKV()}
	s := New(kv)

	for _, ts := range []string{"2024-01-01T07:00:00.000Z", "2024-01-01T08:00:00.000Z", "2024-01-01T09:00:00.000Z"} {
		if err := s.AppendEntry(ctx, sampleEntry(ts, entry.Walk)); err != nil {
			t.Fatalf("AppendEntry() returned unexpected error: %v", err)
		}
	}

	kv.locked = true
	err := s.AppendEntry(ctx, sampleEntry("2024-01-01T10:00:00.000Z", entry.Meal))
	if err == nil {
		t.Fatal("expected AppendEntry() to fail when the log cannot be read")
	}
	if errors.Is(err, ErrCorrupt) {
		t.Errorf("a read failure must not be reported as corruption: %v", err)
	}

	kv.locked = false
	if got := s.LoadEntries(ctx); len(got) != 3 {
		t.Errorf("expected the 3 stored entries to survive, got %d", len(got))
	}

	if err := s.AppendEntry(ctx, sampleEntry("2024-01-01T10:00:00.000Z", entry.Meal)); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}
	if got := s.LoadEntries(ctx); len(got) != 4 {
		t.Errorf("expected 4 entries after a successful append, got %d", len(got))
	}
}

func TestLoadEntries_BrowserDocument(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryKV()
	doc := `[{"date":"2024-01-01","time":"08:15","activities":["walk","poop"],` +
		`"details":{"walk":{"start":"08:00","end":"08:30","distance":"2.5","location":"Park"},"poop":{"location":"walk"}},` +
		`"notes":"","timestamp":"2024-01-01T07:15:00.000Z"}]`
	_ = kv.Set(ctx, EntriesKey, []byte(doc))

	entries := New(kv).LoadEntries(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Details.Walk == nil || e.Details.Walk.Distance != "2.5" {
		t.Errorf("walk details not decoded: %+v", e.Details.Walk)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("decoded entry should be valid: %v", err)
	}
}

func TestLocation(t *testing.T) {
	s := New(kvstore.NewMemoryKV())
	if s.Location() == "" {
		t.Error("Location() should describe the backend")
	}
}
