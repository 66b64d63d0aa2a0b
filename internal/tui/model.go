package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Client        api.Client
	Labels        *i18n.Table
	StartRoute    string
	RedirectDelay time.Duration
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.RedirectDelay <= 0 {
		config.RedirectDelay = defaultRedirectDelay
	}
	if config.StartRoute == "" {
		config.StartRoute = routeLogin
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &model{
		config:  config,
		labels:  i18n.NewSelector(config.Labels),
		jobs:    newJobBus(),
		spinner: spin,
		layout:  newPageLayout(),
		focus:   focusScreen,
	}
	m.startCmd = m.navigate(config.StartRoute)
	return m
}

// model is the navigation shell: the sidebar plus the one mounted screen.
type model struct {
	config  Config
	labels  *i18n.Selector
	jobs    *jobBus
	spinner spinner.Model
	layout  pageLayout

	location      location
	active        screen
	mount         int
	focus         focusZone
	sidebarCursor int
	spinning      bool
	startCmd      tea.Cmd
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCmd)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusSidebar {
			return m, m.withSpinner(m.handleSidebarKey(msg))
		}
		if msg.Type == tea.KeyEsc {
			m.focusSidebar()
			return m, nil
		}
		return m, m.withSpinner(m.forward(msg))
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		if m.active != nil {
			m.active.SetSize(m.layout.contentWidth, m.layout.contentHeight)
		}
		return m, nil
	case jobResultEnvelope:
		m.jobs.Finish(msg.Snapshot)
		if msg.Snapshot.Mount != m.mount || m.active == nil {
			log.Printf("[nav] dropped %s result for unmounted screen %d (current=%d)", msg.Snapshot.Kind, msg.Snapshot.Mount, m.mount)
			return m, nil
		}
		return m, m.withSpinner(m.active.Update(msg.Payload))
	case navigateMsg:
		if msg.mount != m.mount {
			log.Printf("[nav] dropped redirect to %s from unmounted screen %d", msg.to, msg.mount)
			return m, nil
		}
		return m, m.navigate(msg.to)
	case spinner.TickMsg:
		if m.jobs.Running() == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, m.forward(msg)
}

func (m *model) forward(msg tea.Msg) tea.Cmd {
	if m.active == nil {
		return nil
	}
	return m.active.Update(msg)
}

// withSpinner starts the spinner when a handler has just launched a job.
func (m *model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if m.spinning || m.jobs.Running() == 0 {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// navigate mounts a fresh screen for raw. Re-opening the location that is
// already mounted keeps the current screen and its state.
func (m *model) navigate(raw string) tea.Cmd {
	loc := parseLocation(raw)
	if m.mount > 0 && loc == m.location {
		return nil
	}
	m.mount++
	m.location = loc
	m.focus = focusScreen
	env := screenEnv{
		mount:         m.mount,
		client:        m.config.Client,
		jobs:          m.jobs,
		redirectDelay: m.config.RedirectDelay,
	}
	m.active = buildScreen(loc, env)
	log.Printf("[nav] %s (mount=%d)", loc, m.mount)
	if m.active == nil {
		return nil
	}
	m.active.SetSize(m.layout.contentWidth, m.layout.contentHeight)
	return m.active.Init()
}
