package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/tui/ui"
)

// ReportModel is the model for the daily report view
type ReportModel struct {
	ctx       context.Context
	services  *service.Services
	styles    ui.Styles
	keys      ui.KeyMap
	clipboard func(text string) error

	// UI state
	width    int
	height   int
	viewport viewport.Model
	report   *service.DailyReport
	copied   bool
	err      error
}

// NewReportModel creates a new report view model.
// clipboard receives the report text when the user copies it.
func NewReportModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap, clipboard func(string) error) ReportModel {
	return ReportModel{
		ctx:       ctx,
		services:  services,
		styles:    styles,
		keys:      keys,
		clipboard: clipboard,
		viewport:  viewport.New(80, 10),
	}
}

// reportLoadedMsg is sent when today's report is rendered
type reportLoadedMsg struct {
	report *service.DailyReport
}

// reportCopiedMsg is sent after a copy attempt
type reportCopiedMsg struct {
	err error
}

// Init implements tea.Model
func (m ReportModel) Init() tea.Cmd {
	return m.loadReport()
}

// Update implements tea.Model
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyReport()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadReport()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case reportLoadedMsg:
		m.report = msg.report
		m.copied = false
		m.err = nil
		m.viewport.SetContent(msg.report.Text)

	case reportCopiedMsg:
		m.err = msg.err
		m.copied = msg.err == nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Daily Report"))
	b.WriteString("\n")

	if m.report == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(rule(m.width))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Warning.Render("Could not copy report to clipboard: " + m.err.Error()))
	case m.copied:
		b.WriteString(m.styles.Success.Render("Report copied to clipboard."))
	default:
		b.WriteString(m.styles.Muted.Render("Press c to copy the report"))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(20, width)
	// title, rule and the copy line take four lines
	m.viewport.Height = max(3, height-4)
}

// loadReport creates a command to render today's report
func (m ReportModel) loadReport() tea.Cmd {
	return func() tea.Msg {
		return reportLoadedMsg{report: m.services.Report.Daily(m.ctx)}
	}
}

// copyReport creates a command that puts the report on the clipboard
func (m ReportModel) copyReport() tea.Cmd {
	if m.report == nil {
		return nil
	}
	text := m.report.Text
	return func() tea.Msg {
		return reportCopiedMsg{err: m.clipboard(text)}
	}
}
