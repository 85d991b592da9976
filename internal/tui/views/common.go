// Package views contains the tab views of the TUI.
package views

import (
	"fmt"
	"strings"

	"github.com/xolan/pawlog/internal/tui/ui"
)

// renderLine renders a label/value pair on its own line
func renderLine(styles ui.Styles, label, value string) string {
	return styles.Label.Render(label) + " " + styles.Value.Render(value) + "\n"
}

// renderError renders err the same way in every view
func renderError(styles ui.Styles, err error) string {
	return styles.Error.Render(fmt.Sprintf("Error: %v", err))
}

// rule renders a horizontal rule no wider than width
func rule(width int) string {
	return strings.Repeat("─", max(0, min(50, width)))
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
