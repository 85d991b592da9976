package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/render"
	"github.com/xolan/pawlog/internal/storage"
)

// LogService records activities and manages the activity log
type LogService struct {
	store  storage.Store
	clock  Clock
	config config.Config
}

// NewLogService creates a new LogService
func NewLogService(store storage.Store, clock Clock, cfg config.Config) *LogService {
	return &LogService{
		store:  store,
		clock:  clock,
		config: cfg,
	}
}

// Create stamps the draft with the current time and appends it to the log.
// Returns entry.ErrNoActivities (and stores nothing) when no activity is selected.
func (s *LogService) Create(ctx context.Context, d entry.Draft) (*entry.Entry, error) {
	e, err := entry.New(s.clock(), entry.ClockFormat(s.config.ClockFormat), d)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	slog.Info("activity logged", "activities", e.Activities, "date", e.Date, "time", e.Time)
	return &e, nil
}

// List returns every entry, newest first
func (s *LogService) List(ctx context.Context) *ListResult {
	sorted := render.SortNewestFirst(s.store.LoadEntries(ctx))
	return &ListResult{
		Entries: sorted,
		Rows:    render.LogRows(sorted),
		Total:   len(sorted),
	}
}

// Count returns the number of stored entries
func (s *LogService) Count(ctx context.Context) int {
	return len(s.store.LoadEntries(ctx))
}

// ClearAll deletes the whole log when confirm returns true.
// Returns whether the log was cleared; a declined confirmation changes nothing.
func (s *LogService) ClearAll(ctx context.Context, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := s.store.ClearAll(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Location describes where the log is stored
func (s *LogService) Location() string {
	return s.store.Location()
}
