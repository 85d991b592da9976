package entry

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Kind
		wantErr error
	}{
		{"single", []string{"walk"}, []Kind{Walk}, nil},
		{"multiple args", []string{"walk", "poop"}, []Kind{Walk, Poop}, nil},
		{"comma separated", []string{"meal,sleep"}, []Kind{Meal, Sleep}, nil},
		{"mixed case", []string{"Walk", "PISH"}, []Kind{Walk, Pish}, nil},
		{"duplicates collapse", []string{"walk", "walk,poop"}, []Kind{Walk, Poop}, nil},
		{"empty", nil, nil, ErrNoActivities},
		{"only separators", []string{" , "}, nil, ErrNoActivities},
		{"unknown", []string{"swim"}, nil, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKinds(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseKinds(%v) error = %v, expected %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKinds(%v) returned unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKinds(%v) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, time.January, 1, 0, 30, 15, 0, loc)

	e, err := New(now, Clock24h, Draft{
		Activities: []Kind{Walk, Poop},
		Details: Details{
			Walk: &WalkDetails{Distance: " 2.5 ", Location: " park "},
			Meal: &MealDetails{Food: "ignored, meal not selected"},
		},
		Notes: "  happy dog  ",
	})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if e.Date != "2024-01-01" {
		t.Errorf("Date = %q, expected local date 2024-01-01", e.Date)
	}
	if e.Time != "00:30" {
		t.Errorf("Time = %q, expected 00:30", e.Time)
	}
	if e.Timestamp != "2023-12-31T22:30:15.000Z" {
		t.Errorf("Timestamp = %q, expected UTC instant", e.Timestamp)
	}
	if e.Notes != "happy dog" {
		t.Errorf("Notes = %q, expected trimmed notes", e.Notes)
	}
	if e.Details.Meal != nil {
		t.Error("expected details of unselected kinds to be dropped")
	}
	if e.Details.Walk.Distance != "2.5" || e.Details.Walk.Location != "park" {
		t.Errorf("expected trimmed walk details, got %+v", e.Details.Walk)
	}
	if e.Details.Poop == nil || e.Details.Poop.Location != WhereWalk {
		t.Errorf("expected poop location to default to walk, got %+v", e.Details.Poop)
	}
}

func TestNew_DoesNotMutateDraft(t *testing.T) {
	walk := &WalkDetails{Location: " park "}
	_, err := New(time.Now(), Clock24h, Draft{
		Activities: []Kind{Walk},
		Details:    Details{Walk: walk},
	})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if walk.Location != " park " {
		t.Errorf("draft details were modified: %q", walk.Location)
	}
}

func TestNew_ClockFormat(t *testing.T) {
	now := time.Date(2024, time.May, 4, 14, 5, 0, 0, time.UTC)

	e, err := New(now, Clock12h, Draft{Activities: []Kind{Play}})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if e.Time != "02:05 PM" {
		t.Errorf("Time = %q, expected 02:05 PM", e.Time)
	}
	if e.Details.Play == nil || e.Details.Play.WithOtherDogs != No {
		t.Errorf("expected play to default to no other dogs, got %+v", e.Details.Play)
	}
}

func TestNew_NoActivities(t *testing.T) {
	_, err := New(time.Now(), Clock24h, Draft{Notes: "nothing selected"})
	if !errors.Is(err, ErrNoActivities) {
		t.Errorf("expected ErrNoActivities, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{
			name:  "valid",
			entry: Entry{Activities: []Kind{Walk}, Details: Details{Walk: &WalkDetails{Start: "07:00", Distance: "1.2"}}},
		},
		{
			name:    "no activities",
			entry:   Entry{},
			wantErr: ErrNoActivities,
		},
		{
			name:    "unknown kind",
			entry:   Entry{Activities: []Kind{"swim"}},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "duplicate kind",
			entry:   Entry{Activities: []Kind{Meal, Meal}},
			wantErr: ErrDuplicateKind,
		},
		{
			name:    "details for unselected kind",
			entry:   Entry{Activities: []Kind{Walk}, Details: Details{Sleep: &SleepDetails{}}},
			wantErr: ErrOrphanDetails,
		},
		{
			name:    "bad distance",
			entry:   Entry{Activities: []Kind{Walk}, Details: Details{Walk: &WalkDetails{Distance: "far"}}},
			wantErr: ErrInvalidDetail,
		},
		{
			name:    "negative distance",
			entry:   Entry{Activities: []Kind{Walk}, Details: Details{Walk: &WalkDetails{Distance: "-1"}}},
			wantErr: ErrInvalidDetail,
		},
		{
			name:    "bad clock",
			entry:   Entry{Activities: []Kind{Meal}, Details: Details{Meal: &MealDetails{Time: "25:00"}}},
			wantErr: ErrInvalidDetail,
		},
		{
			name:    "bad where",
			entry:   Entry{Activities: []Kind{Pish}, Details: Details{Pish: &EliminationDetails{Location: "kitchen"}}},
			wantErr: ErrInvalidDetail,
		},
		{
			name:    "bad play answer",
			entry:   Entry{Activities: []Kind{Play}, Details: Details{Play: &PlayDetails{WithOtherDogs: "maybe"}}},
			wantErr: ErrInvalidDetail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}
