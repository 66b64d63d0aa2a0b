package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
)

type loginScreen struct {
	env    screenEnv
	form   form
	phase  formPhase
	status string
}

func newLoginScreen(env screenEnv) *loginScreen {
	return &loginScreen{
		env: env,
		form: newForm(
			newField(i18n.KeyEmail, fieldEmail),
			newField(i18n.KeyPassword, fieldPassword),
		),
	}
}

func (s *loginScreen) Init() tea.Cmd {
	return s.form.Focus(0)
}

func (s *loginScreen) SetSize(width, height int) {}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		submit, cmd := s.form.HandleKey(msg)
		if submit {
			return tea.Batch(cmd, s.submit())
		}
		return cmd
	case loginResultMsg:
		return s.finish(msg.err)
	}
	return s.form.UpdateInput(msg)
}

// submit accepts a new attempt in every phase; there is no lockout while a
// request is in flight.
func (s *loginScreen) submit() tea.Cmd {
	ok, cmd := s.form.Validate()
	if !ok {
		return cmd
	}
	s.phase = phaseSubmitting
	creds := api.Credentials{
		Email:    strings.TrimSpace(s.form.Value(i18n.KeyEmail)),
		Password: s.form.Value(i18n.KeyPassword),
	}
	return s.env.start(jobKindLogin, loginJob(s.env.client, creds))
}

func (s *loginScreen) finish(err error) tea.Cmd {
	if err == nil {
		s.phase = phaseSucceeded
		s.status = loginSucceeded
		return s.env.redirect(routeChat)
	}
	s.phase = phaseFailed
	s.status = credentialFailure(err, loginFailed, loginUnreachable)
	return nil
}

func (s *loginScreen) View(labels *i18n.Selector) string {
	parts := []string{
		titleStyle.Render(labels.T(i18n.KeyLogin)),
		s.form.View(labels),
	}
	if s.phase == phaseSubmitting {
		parts = append(parts, helperStyle.Render("Signing in…"))
	}
	parts = append(parts, renderStatus(s.status))
	return joinNonEmpty(parts)
}
