package tui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/i18n"
)

type sidebarLink struct {
	label i18n.Key
	route string
}

var sidebarLinks = []sidebarLink{
	{label: i18n.KeyLogin, route: routeLogin},
	{label: i18n.KeyRegister, route: routeRegister},
	{label: i18n.KeyChatbot, route: routeChat},
	{label: i18n.KeyResetPassword, route: routeResetRequest},
}

// the row after the links holds the locale selector
var sidebarLocaleRow = len(sidebarLinks)

func (m *model) focusSidebar() {
	m.focus = focusSidebar
	m.sidebarCursor = sidebarLocaleRow
	for i, link := range sidebarLinks {
		if link.route == m.location.path {
			m.sidebarCursor = i
		}
	}
}

func (m *model) handleSidebarKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc", "tab":
		m.focus = focusScreen
	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case "down", "j":
		if m.sidebarCursor < sidebarLocaleRow {
			m.sidebarCursor++
		}
	case "left", "h":
		if m.sidebarCursor == sidebarLocaleRow {
			m.switchLocale(-1)
		}
	case "right", "l":
		if m.sidebarCursor == sidebarLocaleRow {
			m.switchLocale(1)
		}
	case "enter":
		if m.sidebarCursor == sidebarLocaleRow {
			m.switchLocale(1)
			return nil
		}
		m.focus = focusScreen
		return m.navigate(sidebarLinks[m.sidebarCursor].route)
	case "q":
		return tea.Quit
	}
	return nil
}

// switchLocale is the only place the session locale changes.
func (m *model) switchLocale(delta int) {
	loc := m.labels.Next(delta)
	if err := m.labels.Set(loc); err != nil {
		log.Printf("[i18n] locale switch failed: %v", err)
		return
	}
	log.Printf("[i18n] locale switched to %s", loc)
}

func (m *model) sidebarView() string {
	var b strings.Builder
	b.WriteString(sidebarTitleStyle.Render("Menu"))
	b.WriteString("\n\n")
	for i, link := range sidebarLinks {
		label := m.labels.T(link.label)
		cursor := "  "
		if m.focus == focusSidebar && m.sidebarCursor == i {
			cursor = "▸ "
		}
		style := sidebarLinkStyle
		if link.route == m.location.path {
			style = sidebarActiveStyle
		}
		b.WriteString(cursor + style.Render(label))
		b.WriteRune('\n')
	}
	b.WriteRune('\n')
	b.WriteString(sidebarLabelStyle.Render(m.labels.T(i18n.KeyLanguage)))
	b.WriteRune('\n')
	selector := "◀ " + i18n.DisplayName(m.labels.Current()) + " ▶"
	if m.focus == focusSidebar && m.sidebarCursor == sidebarLocaleRow {
		b.WriteString("▸ " + selectorFocusedStyle.Render(selector))
	} else {
		b.WriteString("  " + selectorStyle.Render(selector))
	}
	return sidebarStyle.Height(m.layout.contentHeight).Render(b.String())
}
