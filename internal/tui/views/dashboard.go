package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/summary"
	"github.com/xolan/pawlog/internal/tui/ui"
)

// NoActivitiesToday is shown when nothing was logged today
const NoActivitiesToday = "No activities logged for today yet."

// DashboardModel is the model for the today view
type DashboardModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width     int
	height    int
	dashboard *summary.Dashboard
}

// NewDashboardModel creates a new today view model
func NewDashboardModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap) DashboardModel {
	return DashboardModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// dashboardLoadedMsg is sent when today's summary is computed
type dashboardLoadedMsg struct {
	dashboard *summary.Dashboard
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return m.loadDashboard()
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadDashboard()
		}

	case dashboardLoadedMsg:
		m.dashboard = msg.dashboard

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.dashboard == nil {
		b.WriteString(m.styles.ViewTitle.Render("Today's Summary"))
		b.WriteString("\n")
		b.WriteString("Loading...")
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Today's Summary (%s)", m.dashboard.Date)))
	b.WriteString("\n")

	if m.dashboard.Empty() {
		b.WriteString(m.styles.Muted.Render(NoActivitiesToday))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Press 2 to log an activity"))
		return b.String()
	}

	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s today", m.dashboard.Entries, pluralize("entry", m.dashboard.Entries)))

	return b.String()
}

// renderCards lays the cards out in as many columns as the width allows
func (m DashboardModel) renderCards() string {
	cards := make([]string, len(m.dashboard.Cards))
	for i, c := range m.dashboard.Cards {
		body := m.styles.CardTitle.Render(c.Kind.Title()) + "\n" +
			"Count: " + m.styles.CardCount.Render(fmt.Sprintf("%d", c.Count)) + "\n" +
			"Last:  " + m.styles.CardLast.Render(c.LastOrPlaceholder())
		cards[i] = m.styles.Card.Render(body)
	}

	perRow := len(cards)
	if m.width > 0 && len(cards) > 0 {
		perRow = max(1, m.width/lipgloss.Width(cards[0]))
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize sets the view dimensions
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadDashboard creates a command to compute today's summary
func (m DashboardModel) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		return dashboardLoadedMsg{dashboard: m.services.Dashboard.Today(m.ctx)}
	}
}
