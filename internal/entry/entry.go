package entry

import (
	"strings"
	"time"
)

// Kind identifies one activity type that can be logged for an entry
type Kind string

const (
	Walk  Kind = "walk"
	Poop  Kind = "poop"
	Pish  Kind = "pish"
	Play  Kind = "play"
	Sleep Kind = "sleep"
	Meal  Kind = "meal"
	Other Kind = "other"
)

// Kinds lists every activity kind in display order.
var Kinds = []Kind{Walk, Poop, Pish, Play, Sleep, Meal, Other}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Title returns the kind name with its first letter upper-cased ("walk" -> "Walk")
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Entry represents a single logged set of activities.
// Entries are never modified once appended to storage.
type Entry struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Activities []Kind  `json:"activities"`
	Details    Details `json:"details"`
	Notes      string  `json:"notes"`
	Timestamp  string  `json:"timestamp"`
}

// TimestampLayout is the layout used for Entry.Timestamp (ISO 8601, UTC, milliseconds)
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ParsedTimestamp parses the entry's timestamp.
// The second return value is false when the timestamp is missing or malformed.
func (e Entry) ParsedTimestamp() (time.Time, bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Has reports whether the entry's activities contain k
func (e Entry) Has(k Kind) bool {
	for _, a := range e.Activities {
		if a == k {
			return true
		}
	}
	return false
}

// ActivityTitles returns the capitalized activity names joined with ", "
func (e Entry) ActivityTitles() string {
	titles := make([]string, len(e.Activities))
	for i, a := range e.Activities {
		titles[i] = a.Title()
	}
	return strings.Join(titles, ", ")
}
