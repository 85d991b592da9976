package service

import (
	"context"

	"github.com/xolan/pawlog/internal/storage"
	"github.com/xolan/pawlog/internal/summary"
)

// DashboardService summarizes the current day
type DashboardService struct {
	store storage.Store
	clock Clock
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(store storage.Store, clock Clock) *DashboardService {
	return &DashboardService{store: store, clock: clock}
}

// Today returns the per-kind summary of today's entries
func (s *DashboardService) Today(ctx context.Context) *summary.Dashboard {
	d := summary.Today(s.store.LoadEntries(ctx), s.clock.Today())
	return &d
}
