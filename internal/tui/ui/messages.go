package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// EntriesChangedMsg is sent after an entry was logged or the log was cleared,
// so every view showing entries reloads.
type EntriesChangedMsg struct{}
