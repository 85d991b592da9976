package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Dashboard cards
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardCount lipgloss.Style
	CardLast  lipgloss.Style

	// Logs table
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style

	// Log form
	ToggleOn     lipgloss.Style
	ToggleOff    lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style

	// Label/value pairs (settings, totals)
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style

	// Selection lists (theme picker)
	Selected lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary, secondary, accent, muted lipgloss.TerminalColor
	success, warning, danger          lipgloss.TerminalColor
	fg, bg, highlight                 lipgloss.TerminalColor
}

// DefaultStyles returns styles using a fixed 256-color palette
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),  // Green
		warning:   lipgloss.Color("214"), // Orange
		danger:    lipgloss.Color("196"), // Red
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		highlight: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates styles from the registry's current theme.
// Purple is the primary color (tabs, titles), cyan the secondary (keys, times),
// bright purple the accent (counts) and bright black the muted one.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		danger:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		highlight: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1).
			Width(18),
		CardTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		CardCount: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		CardLast: lipgloss.NewStyle().
			Foreground(p.secondary),

		TableHeader: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.muted),
		TableSelected: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.highlight).
			Bold(true),

		ToggleOn: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		ToggleOff: lipgloss.NewStyle().
			Foreground(p.muted),
		FieldLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(22),
		FieldFocused: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Width(22),
		Button: lipgloss.NewStyle().
			Foreground(p.fg).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 2),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 2),

		Label: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(12),
		Value: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		Selected: lipgloss.NewStyle().
			Background(p.highlight).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
