package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.contentView())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBarView())
}

func (m *model) contentView() string {
	content := ""
	if m.active != nil {
		content = m.active.View(m.labels)
	}
	return contentStyle.Width(m.layout.contentWidth).Render(content)
}

func (m *model) statusBarView() string {
	hints := []string{"esc: menu", "tab: next", "enter: submit", "ctrl+c: quit"}
	if m.focus == focusSidebar {
		hints = []string{"↑/↓: move", "enter: open", "←/→: language", "tab: back", "q: quit"}
	}
	parts := []string{strings.Join(hints, " • ")}
	if running := m.jobs.Running(); running > 0 {
		parts = append(parts, fmt.Sprintf("%s %d request(s) in flight", m.spinner.View(), running))
	}
	if m.config.Client != nil {
		parts = append(parts, "API "+m.config.Client.BaseURL())
	}
	return statusBarStyle.Render(strings.Join(parts, "  │  "))
}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f4f4f5")).Underline(true)
	helperStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Italic(true)
	fieldLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	contentStyle    = lipgloss.NewStyle().Padding(1, 2)
	statusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)

	buttonStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3b82f6")).Padding(0, 2)
	buttonFocusedStyle = buttonStyle.Copy().Background(lipgloss.Color("#2563eb")).Bold(true).Underline(true)

	userBubbleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f172a")).Background(lipgloss.Color("#bfdbfe")).Padding(0, 1)
	botBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#d1d5db")).Padding(0, 1)

	sidebarStyle         = lipgloss.NewStyle().Width(sidebarWidth).Padding(1, 2).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#111827"))
	sidebarTitleStyle    = lipgloss.NewStyle().Bold(true)
	sidebarLinkStyle     = lipgloss.NewStyle()
	sidebarActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	sidebarLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	selectorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb"))
	selectorFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
)
