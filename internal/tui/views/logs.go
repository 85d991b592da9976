package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/pawlog/internal/render"
	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/tui/ui"
)

// NoActivitiesRecorded is shown when the log is empty
const NoActivitiesRecorded = "No activities recorded yet."

// Fixed column widths; Details takes the rest of the width
const (
	dateColumnWidth       = 10
	timeColumnWidth       = 8
	activitiesColumnWidth = 24
	minDetailsWidth       = 20
)

// LogsModel is the model for the all logs view
type LogsModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	table  table.Model
	total  int
	loaded bool
}

// NewLogsModel creates a new all logs view model
func NewLogsModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap) LogsModel {
	t := table.New(
		table.WithColumns(logColumns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles(styles))

	return LogsModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		table:    t,
	}
}

// logsLoadedMsg is sent when the log is loaded
type logsLoadedMsg struct {
	rows  []render.Row
	total int
}

// Init implements tea.Model
func (m LogsModel) Init() tea.Cmd {
	return m.loadLogs()
}

// Update implements tea.Model
func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadLogs()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case logsLoadedMsg:
		m.loaded = true
		m.total = msg.total
		rows := make([]table.Row, len(msg.rows))
		for i, r := range msg.rows {
			rows[i] = table.Row{r.Date, r.Time, r.Activities, r.Details}
		}
		m.table.SetRows(rows)
		if m.table.Cursor() >= len(rows) {
			m.table.SetCursor(max(0, len(rows)-1))
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.table.SetStyles(tableStyles(msg.Styles))
	}

	return m, nil
}

// View implements tea.Model
func (m LogsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("All Logs"))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.total == 0 {
		b.WriteString(m.styles.Muted.Render(NoActivitiesRecorded))
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s", m.total, pluralize("entry", m.total)))

	return b.String()
}

// SetSize sets the view dimensions
func (m *LogsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(logColumns(width))
	// title, rule and total take four lines
	m.table.SetHeight(max(3, height-4))
}

// loadLogs creates a command to load every entry, newest first
func (m LogsModel) loadLogs() tea.Cmd {
	return func() tea.Msg {
		result := m.services.Log.List(m.ctx)
		return logsLoadedMsg{rows: result.Rows, total: result.Total}
	}
}

func logColumns(width int) []table.Column {
	// each cell is padded by one column on both sides
	details := width - dateColumnWidth - timeColumnWidth - activitiesColumnWidth - 8
	return []table.Column{
		{Title: "Date", Width: dateColumnWidth},
		{Title: "Time", Width: timeColumnWidth},
		{Title: "Activities", Width: activitiesColumnWidth},
		{Title: "Details", Width: max(minDetailsWidth, details)},
	}
}

func tableStyles(styles ui.Styles) table.Styles {
	s := table.DefaultStyles()
	s.Header = styles.TableHeader.Padding(0, 1)
	s.Selected = styles.TableSelected
	return s
}
