// Package tui provides the Terminal User Interface for pawlog.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/tui/ui"
	"github.com/xolan/pawlog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabDashboard Tab = iota
	TabLog
	TabLogs
	TabReport
	TabSettings
)

var tabNames = []string{"Today", "Log", "Logs", "Report", "Settings"}

// Options configures the TUI
type Options struct {
	Version string
	// Clipboard copies the report; defaults to the system clipboard
	Clipboard func(text string) error
}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	dashboardView views.DashboardModel
	formView      views.FormModel
	logsView      views.LogsModel
	reportView    views.ReportModel
	settingsView  views.SettingsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(ctx context.Context, services *service.Services, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabDashboard,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		dashboardView: views.NewDashboardModel(ctx, services, styles, keys),
		formView:      views.NewFormModel(ctx, services, styles, keys),
		logsView:      views.NewLogsModel(ctx, services, styles, keys),
		reportView:    views.NewReportModel(ctx, services, styles, keys, opts.Clipboard),
		settingsView:  views.NewSettingsModel(ctx, services, themeProvider, styles, keys, opts.Version),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboardView.Init(),
		m.settingsView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// modalInput blocks ALL global keys (clear confirmation, theme picker)
		// capturingKeys blocks character keys but allows Tab (form inputs)
		modalInput := m.isModalInputMode()
		capturingKeys := modalInput || m.isCapturingKeys()

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			return m.switchTab(TabDashboard)

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			return m.switchTab(TabLog)

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			return m.switchTab(TabLogs)

		case key.Matches(msg, m.keys.Tab4) && !capturingKeys:
			return m.switchTab(TabReport)

		case key.Matches(msg, m.keys.Tab5) && !capturingKeys:
			return m.switchTab(TabSettings)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.dashboardView.SetSize(m.width, contentHeight)
		m.formView.SetSize(m.width, contentHeight)
		m.logsView.SetSize(m.width, contentHeight)
		m.reportView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.EntriesChangedMsg:
		// The form and settings views report the change themselves;
		// everything that shows entries reloads.
		return m, tea.Batch(
			m.dashboardView.Init(),
			m.logsView.Init(),
			m.reportView.Init(),
			m.settingsView.Init(),
		)

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.dashboardView, _ = m.dashboardView.Update(themeMsg)
		m.formView, _ = m.formView.Update(themeMsg)
		m.logsView, _ = m.logsView.Update(themeMsg)
		m.reportView, _ = m.reportView.Update(themeMsg)
		m.settingsView, _ = m.settingsView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Key presses go to the active view only; loaded data goes to every view
	if _, ok := msg.(tea.KeyMsg); ok {
		switch m.activeTab {
		case TabDashboard:
			m.dashboardView, cmd = m.dashboardView.Update(msg)
		case TabLog:
			m.formView, cmd = m.formView.Update(msg)
		case TabLogs:
			m.logsView, cmd = m.logsView.Update(msg)
		case TabReport:
			m.reportView, cmd = m.reportView.Update(msg)
		case TabSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		return m, cmd
	}

	var cmds [5]tea.Cmd
	m.dashboardView, cmds[0] = m.dashboardView.Update(msg)
	m.formView, cmds[1] = m.formView.Update(msg)
	m.logsView, cmds[2] = m.logsView.Update(msg)
	m.reportView, cmds[3] = m.reportView.Update(msg)
	m.settingsView, cmds[4] = m.settingsView.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

// switchTab activates tab and reloads its data
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabDashboard:
		b.WriteString(m.dashboardView.View())
	case TabLog:
		b.WriteString(m.formView.View())
	case TabLogs:
		b.WriteString(m.logsView.View())
	case TabReport:
		b.WriteString(m.reportView.View())
	case TabSettings:
		b.WriteString(m.settingsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.isModalInputMode():
		parts = append(parts, m.renderKeyHelp("Enter/y", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc/n", "cancel"))
	case m.isCapturingKeys():
		parts = append(parts, m.renderKeyHelp("↑/↓", "field"))
		parts = append(parts, m.renderKeyHelp("ctrl+s", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "reset"))
		parts = append(parts, m.renderKeyHelp("Tab", "views"))
	default:
		switch m.activeTab {
		case TabDashboard:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabLog:
			parts = append(parts, m.renderKeyHelp("space", "toggle"))
			parts = append(parts, m.renderKeyHelp("ctrl+s", "save"))
		case TabLogs:
			parts = append(parts, m.renderKeyHelp("j/k", "scroll"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabReport:
			parts = append(parts, m.renderKeyHelp("c", "copy"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabSettings:
			parts = append(parts, m.renderKeyHelp("x", "clear"))
			parts = append(parts, m.renderKeyHelp("t", "theme"))
		}

		parts = append(parts, m.renderKeyHelp("1-5", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode reports whether the active view waits for an answer
// and must not be left (clear confirmation, theme picker)
func (m Model) isModalInputMode() bool {
	return m.activeTab == TabSettings && m.settingsView.IsInputMode()
}

// isCapturingKeys reports whether a text input has the keyboard
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabLog && m.formView.IsCapturingKeys()
}

// initCurrentView reloads the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabDashboard:
		return m.dashboardView.Init()
	case TabLog:
		return m.formView.Init()
	case TabLogs:
		return m.logsView.Init()
	case TabReport:
		return m.reportView.Init()
	case TabSettings:
		return m.settingsView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		if err := m.services.Config.Update(cfg); err != nil {
			slog.Warn("could not save theme", "theme", themeName, "error", err)
		}
		return nil
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.Label.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-5    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabDashboard:
		help.WriteString(m.styles.Label.Render("Today:"))
		help.WriteString("\n")
		help.WriteString("  r          Refresh\n")
	case TabLog:
		help.WriteString(m.styles.Label.Render("Log:"))
		help.WriteString("\n")
		help.WriteString("  ↑/↓        Move between fields\n")
		help.WriteString("  space      Toggle activity\n")
		help.WriteString("  Enter      Toggle / next field / save\n")
		help.WriteString("  ctrl+s     Save entry\n")
		help.WriteString("  Esc        Reset form\n")
	case TabLogs:
		help.WriteString(m.styles.Label.Render("Logs:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  g/G        Top/bottom\n")
		help.WriteString("  r          Refresh\n")
	case TabReport:
		help.WriteString(m.styles.Label.Render("Report:"))
		help.WriteString("\n")
		help.WriteString("  c          Copy to clipboard\n")
		help.WriteString("  j/k        Scroll\n")
		help.WriteString("  r          Refresh\n")
	case TabSettings:
		help.WriteString(m.styles.Label.Render("Settings:"))
		help.WriteString("\n")
		help.WriteString("  x          Clear all logs\n")
		help.WriteString("  t          Next theme\n")
		help.WriteString("  Enter      Pick a theme\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application and blocks until it exits
func Run(ctx context.Context, services *service.Services, opts Options) error {
	model := New(ctx, services, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
