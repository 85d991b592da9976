// Package summary aggregates the activity log into the per-kind dashboard for one day.
package summary

import (
	"time"

	"github.com/xolan/pawlog/internal/entry"
)

// Placeholder is shown instead of a last time for kinds not logged today
const Placeholder = "—"

// Card contains the dashboard figures for a single activity kind
type Card struct {
	Kind  entry.Kind
	Count int    // Number of today's entries that include Kind
	Last  string // Time field of the most recent such entry, empty when Count is 0
}

// LastOrPlaceholder returns Last, or Placeholder when nothing was logged
func (c Card) LastOrPlaceholder() string {
	if c.Last == "" {
		return Placeholder
	}
	return c.Last
}

// Dashboard is the per-kind summary of a single day
type Dashboard struct {
	Date    string
	Entries int    // Number of entries dated Date
	Cards   []Card // One card per kind, in entry.Kinds order
}

// Empty reports whether no entries were logged on the dashboard's date
func (d Dashboard) Empty() bool {
	return d.Entries == 0
}

// Card returns the card for k
func (d Dashboard) Card(k entry.Kind) Card {
	for _, c := range d.Cards {
		if c.Kind == k {
			return c
		}
	}
	return Card{Kind: k}
}

// Today computes the dashboard for the entries whose Date equals today.
// For each kind, Last is taken from the entry with the latest timestamp;
// equal or unparseable timestamps are resolved by position, later entries winning.
func Today(entries []entry.Entry, today string) Dashboard {
	d := Dashboard{Date: today, Cards: make([]Card, len(entry.Kinds))}

	index := make(map[entry.Kind]int, len(entry.Kinds))
	latest := make([]time.Time, len(entry.Kinds))
	for i, k := range entry.Kinds {
		d.Cards[i] = Card{Kind: k}
		index[k] = i
	}

	for _, e := range entries {
		if e.Date != today {
			continue
		}
		d.Entries++

		ts, ok := e.ParsedTimestamp()
		for _, k := range e.Activities {
			i, known := index[k]
			if !known {
				continue
			}
			card := &d.Cards[i]
			card.Count++

			switch {
			case !ok:
				card.Last = e.Time
			case ts.Before(latest[i]):
				// an earlier entry appended later doesn't replace Last
			default:
				latest[i] = ts
				card.Last = e.Time
			}
		}
	}

	return d
}
