// Package cli provides the CLI presentation layer for pawlog.
// It handles command-line output formatting and user interaction.
package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

// Truncate shortens s to at most width terminal cells, ending with "..." when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "...")
}

// FormatTable renders rows as aligned columns separated by two spaces.
// Widths are measured in terminal cells so the "–" placeholder and
// non-ASCII notes line up. The last column is never padded.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	separators := make([]string, len(headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
