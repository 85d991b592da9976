package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used for Entry.Date ("2006-01-02")
const DateLayout = "2006-01-02"

// ISODate returns the calendar date of t in t's own location.
// Unlike t.UTC().Format(...), a late evening in UTC+2 stays on the local day.
func ISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay resolves a day expression relative to now and returns its ISO date.
//
// Valid inputs:
//   - "" or "today"
//   - "yesterday"
//   - "2024-01-15" (ISO format)
//   - "15/01/2024" (European format)
func ParseDay(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today":
		return ISODate(now), nil
	case "yesterday":
		return ISODate(StartOfDay(now).AddDate(0, 0, -1)), nil
	}

	// Try ISO format first (YYYY-MM-DD) - preferred for ambiguous dates
	if t, err := time.ParseInLocation(DateLayout, input, now.Location()); err == nil {
		return ISODate(t), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, now.Location()); err == nil {
		return ISODate(t), nil
	}

	return "", buildDateParseError(input)
}

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)        // YYYY-MM (missing day)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)                // YYYY (year only)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)      // MM-DD or DD-MM (missing year)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)      // DD/MM (missing year)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`) // Too many separators
)

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use today, yesterday, YYYY-MM-DD or DD/MM/YYYY)", input)
	}
}
