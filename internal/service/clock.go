package service

import (
	"time"

	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/timeutil"
)

// Clock returns the current time in the configured timezone
type Clock func() time.Time

// NewClock returns a Clock reading now and converting it to cfg's timezone.
// An unusable timezone falls back to the system local time.
func NewClock(cfg config.Config, now func() time.Time) Clock {
	if now == nil {
		now = time.Now
	}
	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}
	return func() time.Time {
		return now().In(loc)
	}
}

// Today returns the local calendar date ("2006-01-02")
func (c Clock) Today() string {
	return timeutil.ISODate(c())
}
