package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xolan/pawlog/internal/entry"
)

func TestLogService_Create(t *testing.T) {
	services, store := newTestServices(t)
	ctx := context.Background()

	e, err := services.Log.Create(ctx, entry.Draft{
		Activities: []entry.Kind{entry.Walk, entry.Poop},
		Details:    entry.Details{Walk: &entry.WalkDetails{Distance: "2.5"}},
		Notes:      "park",
	})
	if err != nil {
		t.Fatalf("Create() returned unexpected error: %v", err)
	}

	if e.Date != "2024-01-01" || e.Time != "08:15" {
		t.Errorf("expected 2024-01-01 08:15, got %s %s", e.Date, e.Time)
	}
	if e.Timestamp != "2024-01-01T08:15:00.000Z" {
		t.Errorf("unexpected timestamp %q", e.Timestamp)
	}

	stored := store.LoadEntries(ctx)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(stored))
	}
	if stored[0].Details.Poop == nil || stored[0].Details.Poop.Location != entry.WhereWalk {
		t.Errorf("expected default poop location, got %+v", stored[0].Details.Poop)
	}
}

func TestLogService_Create_NoActivities(t *testing.T) {
	services, store := newTestServices(t)
	ctx := context.Background()

	_, err := services.Log.Create(ctx, entry.Draft{Notes: "forgot to pick"})
	if !errors.Is(err, entry.ErrNoActivities) {
		t.Fatalf("expected ErrNoActivities, got %v", err)
	}
	if n := len(store.LoadEntries(ctx)); n != 0 {
		t.Errorf("nothing should be stored, got %d entries", n)
	}
}

func TestLogService_Create_InvalidDetail(t *testing.T) {
	services, store := newTestServices(t)
	ctx := context.Background()

	_, err := services.Log.Create(ctx, entry.Draft{
		Activities: []entry.Kind{entry.Meal},
		Details:    entry.Details{Meal: &entry.MealDetails{Time: "noon"}},
	})
	if !errors.Is(err, entry.ErrInvalidDetail) {
		t.Fatalf("expected ErrInvalidDetail, got %v", err)
	}
	if n := len(store.LoadEntries(ctx)); n != 0 {
		t.Errorf("nothing should be stored, got %d entries", n)
	}
}

func TestLogService_List(t *testing.T) {
	services, store := newTestServices(t)
	ctx := context.Background()

	_ = store.AppendEntry(ctx, entry.Entry{Date: "2024-01-01", Time: "07:00", Activities: []entry.Kind{entry.Pish}, Timestamp: "2024-01-01T07:00:00.000Z"})
	_ = store.AppendEntry(ctx, entry.Entry{Date: "2024-01-01", Time: "09:00", Activities: []entry.Kind{entry.Meal}, Timestamp: "2024-01-01T09:00:00.000Z"})

	result := services.Log.List(ctx)
	if result.Total != 2 || len(result.Rows) != 2 {
		t.Fatalf("expected 2 entries and rows, got %+v", result)
	}
	if result.Entries[0].Time != "09:00" || result.Rows[0].Activities != "Meal" {
		t.Errorf("expected newest first, got %+v", result.Rows)
	}
}

func TestLogService_List_Empty(t *testing.T) {
	services, _ := newTestServices(t)

	result := services.Log.List(context.Background())
	if result.Total != 0 || len(result.Entries) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestLogService_ClearAll(t *testing.T) {
	tests := []struct {
		name        string
		confirm     func() bool
		wantCleared bool
		wantLeft    int
	}{
		{"declined", func() bool { return false }, false, 1},
		{"confirmed", func() bool { return true }, true, 0},
		{"no prompt", nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, store := newTestServices(t)
			ctx := context.Background()
			if _, err := services.Log.Create(ctx, entry.Draft{Activities: []entry.Kind{entry.Sleep}}); err != nil {
				t.Fatal(err)
			}

			cleared, err := services.Log.ClearAll(ctx, tt.confirm)
			if err != nil {
				t.Fatalf("ClearAll() returned unexpected error: %v", err)
			}
			if cleared != tt.wantCleared {
				t.Errorf("cleared = %v, expected %v", cleared, tt.wantCleared)
			}
			if n := len(store.LoadEntries(ctx)); n != tt.wantLeft {
				t.Errorf("expected %d entries left, got %d", tt.wantLeft, n)
			}
		})
	}
}
