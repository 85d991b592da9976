// Package render turns stored entries into the rows and text shown to the user.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xolan/pawlog/internal/entry"
)

// NoActivities is the report body for a day without entries
const NoActivities = "No activities logged."

// Row is one line of the logs table
type Row struct {
	Date       string
	Time       string
	Activities string // Capitalized kinds joined with ", "
	Details    string
}

// SortNewestFirst returns a copy of entries ordered by timestamp, newest first.
// The sort is stable. Entries with unparseable timestamps go last, in stored order.
func SortNewestFirst(entries []entry.Entry) []entry.Entry {
	return sortByTimestamp(entries, -1)
}

// SortOldestFirst returns a copy of entries ordered by timestamp, oldest first.
// Entries with unparseable timestamps go last, in stored order.
func SortOldestFirst(entries []entry.Entry) []entry.Entry {
	return sortByTimestamp(entries, 1)
}

func sortByTimestamp(entries []entry.Entry, dir int) []entry.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b entry.Entry) int {
		ta, okA := a.ParsedTimestamp()
		tb, okB := b.ParsedTimestamp()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return dir * ta.Compare(tb)
	})
	return sorted
}

// LogRows returns the logs table rows, newest first
func LogRows(entries []entry.Entry) []Row {
	sorted := SortNewestFirst(entries)
	rows := make([]Row, len(sorted))
	for i, e := range sorted {
		rows[i] = Row{
			Date:       e.Date,
			Time:       e.Time,
			Activities: e.ActivityTitles(),
			Details:    DetailsSummary(e),
		}
	}
	return rows
}

// DetailsSummary returns the compact details of e, e.g.
// "walk: start:08:00 | distance:2.5; poop: location:walk".
// Every activity gets a segment, even when it has no values.
func DetailsSummary(e entry.Entry) string {
	segments := make([]string, 0, len(e.Activities))
	for _, k := range e.Activities {
		var parts []string
		for _, f := range e.Details.PresentFields(k) {
			parts = append(parts, f.Name+":"+f.Value)
		}
		segments = append(segments, fmt.Sprintf("%s: %s", k, strings.Join(parts, " | ")))
	}
	return strings.Join(segments, "; ")
}

// ReportLine returns the report line for a single entry, without the trailing newline, e.g.
// "08:15 – Walk, Poop (walk [distance: 2.5; location: Park] | poop [location: walk]) – Notes: good boy"
func ReportLine(e entry.Entry) string {
	var b strings.Builder
	b.WriteString(e.Time)
	b.WriteString(" – ")
	b.WriteString(e.ActivityTitles())

	var parts []string
	for _, k := range e.Activities {
		var sub []string
		for _, f := range e.Details.PresentFields(k) {
			sub = append(sub, f.Name+": "+f.Value)
		}
		if len(sub) > 0 {
			parts = append(parts, fmt.Sprintf("%s [%s]", k, strings.Join(sub, "; ")))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, " | "))
	}

	if e.Notes != "" {
		b.WriteString(" – Notes: ")
		b.WriteString(e.Notes)
	}
	return b.String()
}

// ReportHeader returns the first line of the report for date
func ReportHeader(date string) string {
	return "Activity report for " + date
}

// TodaysEntries returns the entries dated today, in stored order
func TodaysEntries(entries []entry.Entry, today string) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}

// DailyReport renders the plain-text report for the entries dated today, oldest first.
// Each entry line is newline-terminated; an empty day ends with NoActivities and no newline.
func DailyReport(entries []entry.Entry, today string) string {
	var b strings.Builder
	b.WriteString(ReportHeader(today))
	b.WriteString("\n\n")

	todays := TodaysEntries(entries, today)
	if len(todays) == 0 {
		b.WriteString(NoActivities)
		return b.String()
	}

	for _, e := range SortOldestFirst(todays) {
		b.WriteString(ReportLine(e))
		b.WriteString("\n")
	}
	return b.String()
}
