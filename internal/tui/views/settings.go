package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/tui/ui"
)

// settingsMode is what the settings view is waiting for
type settingsMode int

const (
	settingsModeNormal settingsMode = iota
	settingsModeConfirmClear
	settingsModeSelectTheme
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// SettingsModel is the model for the settings view
type SettingsModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	version  string

	// UI state
	width     int
	height    int
	mode      settingsMode
	config    config.Config
	path      string
	exists    bool
	location  string
	count     int
	themeName string
	status    string
	err       error

	// Theme selector state
	themes      []string
	themeCursor int
	themeOffset int
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(ctx context.Context, services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap, version string) SettingsModel {
	m := SettingsModel{
		ctx:       ctx,
		services:  services,
		styles:    styles,
		keys:      keys,
		version:   version,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
	}
	m.themeCursor = m.themeIndex(m.themeName)
	return m
}

// settingsLoadedMsg is sent when the settings are loaded
type settingsLoadedMsg struct {
	config   config.Config
	path     string
	exists   bool
	location string
	count    int
}

// logsClearedMsg is sent after the log was cleared
type logsClearedMsg struct {
	err error
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return m.loadSettings()
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case settingsModeConfirmClear:
			return m.handleConfirmClear(msg)
		case settingsModeSelectTheme:
			return m.handleThemeSelection(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Clear):
			m.mode = settingsModeConfirmClear
			m.status = ""
			m.err = nil
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			next := m.themes[(m.themeIndex(m.themeName)+1)%len(m.themes)]
			return m, m.requestThemeChange(next)
		case key.Matches(msg, m.keys.Select):
			m.mode = settingsModeSelectTheme
			m.themeCursor = m.themeIndex(m.themeName)
			m.updateThemeOffset()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadSettings()
		}

	case settingsLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.location = msg.location
		m.count = msg.count

	case logsClearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "All logs cleared."
		return m, func() tea.Msg { return ui.EntriesChangedMsg{} }

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, nil
	}

	return m, nil
}

// handleConfirmClear handles keys while the clear confirmation is shown
func (m SettingsModel) handleConfirmClear(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = settingsModeNormal
		return m, m.clearLogs()
	case key.Matches(msg, m.keys.Deny):
		m.mode = settingsModeNormal
		m.status = "Clear cancelled"
	}
	return m, nil
}

// handleThemeSelection handles keys when the theme selector is open
func (m SettingsModel) handleThemeSelection(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Select):
		m.mode = settingsModeNormal
		return m, m.requestThemeChange(m.themes[m.themeCursor])
	case key.Matches(msg, m.keys.Back):
		m.mode = settingsModeNormal
		m.themeCursor = m.themeIndex(m.themeName)
	}
	return m, nil
}

func (m SettingsModel) themeIndex(name string) int {
	for i, t := range m.themes {
		if t == name {
			return i
		}
	}
	return 0
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *SettingsModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// requestThemeChange creates a command to request a theme change by name
func (m SettingsModel) requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n")

	b.WriteString(renderLine(m.styles, "Version:", m.version))
	if m.exists {
		b.WriteString(renderLine(m.styles, "Config:", m.path))
	} else {
		b.WriteString(renderLine(m.styles, "Config:", m.path+" (defaults, no file)"))
	}
	b.WriteString(renderLine(m.styles, "Storage:", fmt.Sprintf("%s (%s)", m.location, m.config.StorageBackend)))
	b.WriteString(renderLine(m.styles, "Entries:", fmt.Sprintf("%d", m.count)))
	b.WriteString(renderLine(m.styles, "Clock:", m.config.ClockFormat))
	b.WriteString(renderLine(m.styles, "Timezone:", m.config.Timezone))

	if m.mode == settingsModeSelectTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}
	b.WriteString(renderLine(m.styles, "Theme:", m.themeName))

	b.WriteString("\n")
	b.WriteString(rule(m.width))
	b.WriteString("\n")

	switch {
	case m.mode == settingsModeConfirmClear:
		b.WriteString(m.styles.Dialog.Render(
			m.styles.DialogTitle.Render("Clear Logs") + "\n" +
				m.styles.Warning.Render("Delete all logged activities?") + "\n\n" +
				m.styles.Muted.Render("Press Y to confirm, N or Esc to cancel")))
	case m.err != nil:
		b.WriteString(renderError(m.styles, m.err))
	case m.status != "":
		b.WriteString(m.styles.Success.Render(m.status))
	default:
		b.WriteString(m.styles.Muted.Render("x clear all logs  t next theme  enter pick theme"))
	}

	return b.String()
}

// renderThemeSelector renders the theme selection list
func (m SettingsModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("Theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.Value.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.Muted.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.Selected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + theme)
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.Muted.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the view waits for a confirmation or a theme pick
func (m SettingsModel) IsInputMode() bool {
	return m.mode != settingsModeNormal
}

// loadSettings creates a command to load the settings
func (m SettingsModel) loadSettings() tea.Cmd {
	return func() tea.Msg {
		return settingsLoadedMsg{
			config:   m.services.Config.Get(),
			path:     m.services.Config.GetPath(),
			exists:   m.services.Config.Exists(),
			location: m.services.Log.Location(),
			count:    m.services.Log.Count(m.ctx),
		}
	}
}

// clearLogs creates a command that deletes every entry; the user already confirmed
func (m SettingsModel) clearLogs() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Log.ClearAll(m.ctx, nil)
		return logsClearedMsg{err: err}
	}
}
