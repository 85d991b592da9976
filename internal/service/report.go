package service

import (
	"context"

	"github.com/xolan/pawlog/internal/render"
	"github.com/xolan/pawlog/internal/storage"
	"github.com/xolan/pawlog/internal/timeutil"
)

// ReportService builds the plain-text daily report
type ReportService struct {
	store storage.Store
	clock Clock
}

// NewReportService creates a new ReportService
func NewReportService(store storage.Store, clock Clock) *ReportService {
	return &ReportService{store: store, clock: clock}
}

// Daily returns the report for today
func (s *ReportService) Daily(ctx context.Context) *DailyReport {
	return s.build(ctx, s.clock.Today())
}

// ForDay returns the report for a day expression accepted by timeutil.ParseDay
// (e.g., "yesterday", "2024-01-15")
func (s *ReportService) ForDay(ctx context.Context, day string) (*DailyReport, error) {
	date, err := timeutil.ParseDay(day, s.clock())
	if err != nil {
		return nil, err
	}
	return s.build(ctx, date), nil
}

func (s *ReportService) build(ctx context.Context, date string) *DailyReport {
	entries := s.store.LoadEntries(ctx)
	return &DailyReport{
		Date:  date,
		Text:  render.DailyReport(entries, date),
		Count: len(render.TodaysEntries(entries, date)),
	}
}
