package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
)

// screen is one route's view. Screens own all of their state; the shell
// discards a screen on navigation and builds a fresh one for the next
// route.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(labels *i18n.Selector) string
	SetSize(width, height int)
}

// screenEnv is what a mounted screen may use to talk to the outside world.
type screenEnv struct {
	mount         int
	client        api.Client
	jobs          *jobBus
	redirectDelay time.Duration
}

func (e screenEnv) start(kind jobKind, runner jobRunner) tea.Cmd {
	return e.jobs.Start(kind, e.mount, runner)
}

type navigateMsg struct {
	mount int
	to    string
}

// redirect navigates to route once redirectDelay has passed, unless the
// screen has been replaced by then.
func (e screenEnv) redirect(route string) tea.Cmd {
	mount := e.mount
	return tea.Tick(e.redirectDelay, func(time.Time) tea.Msg {
		return navigateMsg{mount: mount, to: route}
	})
}

func buildScreen(loc location, env screenEnv) screen {
	switch loc.path {
	case routeLogin:
		return newLoginScreen(env)
	case routeRegister:
		return newRegisterScreen(env)
	case routeChat:
		return newChatScreen(env)
	case routeResetRequest:
		return newResetRequestScreen(env)
	case routeResetConfirm:
		return newResetConfirmScreen(env, loc.Param("token"))
	default:
		return nil
	}
}

func renderStatus(status string) string {
	switch {
	case status == "":
		return ""
	case strings.HasPrefix(status, "✅"):
		return successStyle.Render(status)
	case strings.HasPrefix(status, "⚠️"):
		return warningStyle.Render(status)
	default:
		return errorStyle.Render(status)
	}
}

func renderButton(label string, focused bool) string {
	if focused {
		return buttonFocusedStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
