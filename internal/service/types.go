// Package service provides the business logic layer for pawlog.
// It wraps the underlying storage, config, summary and render packages,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/render"
)

// ListResult contains every logged entry, newest first
type ListResult struct {
	Entries []entry.Entry
	Rows    []render.Row // Table rows, same order as Entries
	Total   int
}

// DailyReport contains the plain-text report for one day
type DailyReport struct {
	Date  string
	Text  string
	Count int // Number of entries in the report
}
