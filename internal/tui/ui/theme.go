package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured or the configured one is unknown
const DefaultTheme = "dracula"

// ThemeProvider tracks the active bubbletint theme
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a ThemeProvider showing initialTheme,
// falling back to DefaultTheme when it is empty or unknown.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{registry: registry}
}

// SetTheme switches to the named theme; it reports false for unknown names
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the ID of the active theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns every theme ID, sorted
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	slices.Sort(ids)
	return ids
}

// Styles returns the TUI styles in the active theme's colors
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
