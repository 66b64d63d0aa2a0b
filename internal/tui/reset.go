package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/i18n"
)

type resetRequestScreen struct {
	env    screenEnv
	form   form
	status string
}

func newResetRequestScreen(env screenEnv) *resetRequestScreen {
	return &resetRequestScreen{
		env:  env,
		form: newForm(newField(i18n.KeyEmail, fieldEmail)),
	}
}

func (s *resetRequestScreen) Init() tea.Cmd {
	return s.form.Focus(0)
}

func (s *resetRequestScreen) SetSize(width, height int) {}

func (s *resetRequestScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		submit, cmd := s.form.HandleKey(msg)
		if !submit {
			return cmd
		}
		ok, cmd := s.form.Validate()
		if !ok {
			return cmd
		}
		email := strings.TrimSpace(s.form.Value(i18n.KeyEmail))
		return s.env.start(jobKindResetRequest, resetRequestJob(s.env.client, email))
	case resetRequestResultMsg:
		if msg.err == nil {
			s.status = resetRequestSent
		} else {
			s.status = resetRequestFailure(msg.err)
		}
		return nil
	}
	return s.form.UpdateInput(msg)
}

func (s *resetRequestScreen) View(labels *i18n.Selector) string {
	return joinNonEmpty([]string{
		titleStyle.Render(labels.T(i18n.KeyResetPassword)),
		renderStatus(s.status),
		helperStyle.Render("We will e-mail you a link to choose a new password."),
		s.form.View(labels),
	})
}

// resetConfirmScreen finishes a reset from an e-mailed link. The token is
// opaque and fixed at mount time.
type resetConfirmScreen struct {
	env    screenEnv
	token  string
	form   form
	status string
}

func newResetConfirmScreen(env screenEnv, token string) *resetConfirmScreen {
	return &resetConfirmScreen{
		env:   env,
		token: token,
		form:  newForm(newField(i18n.KeyPassword, fieldPassword)),
	}
}

func (s *resetConfirmScreen) hasToken() bool {
	return s.token != ""
}

func (s *resetConfirmScreen) Init() tea.Cmd {
	if !s.hasToken() {
		return nil
	}
	return s.form.Focus(0)
}

func (s *resetConfirmScreen) SetSize(width, height int) {}

func (s *resetConfirmScreen) Update(msg tea.Msg) tea.Cmd {
	if !s.hasToken() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		submit, cmd := s.form.HandleKey(msg)
		if !submit {
			return cmd
		}
		ok, cmd := s.form.Validate()
		if !ok {
			return cmd
		}
		return s.env.start(jobKindResetConfirm, resetConfirmJob(s.env.client, s.token, s.form.Value(i18n.KeyPassword)))
	case resetConfirmResultMsg:
		if msg.err == nil {
			s.status = resetConfirmed
		} else {
			s.status = resetConfirmFailure(msg.err)
		}
		return nil
	}
	return s.form.UpdateInput(msg)
}

func (s *resetConfirmScreen) View(labels *i18n.Selector) string {
	parts := []string{titleStyle.Render(labels.T(i18n.KeyResetPassword))}
	if !s.hasToken() {
		parts = append(parts, errorStyle.Render(resetTokenMissing))
		return joinNonEmpty(parts)
	}
	parts = append(parts, s.form.View(labels), renderStatus(s.status))
	return joinNonEmpty(parts)
}
