package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
)

type registerScreen struct {
	env    screenEnv
	form   form
	phase  formPhase
	status string
}

func newRegisterScreen(env screenEnv) *registerScreen {
	return &registerScreen{
		env: env,
		form: newForm(
			newField(i18n.KeyUsername, fieldText),
			newField(i18n.KeyEmail, fieldEmail),
			newField(i18n.KeyAge, fieldNumber),
			newField(i18n.KeyGender, fieldText),
			newField(i18n.KeyPassword, fieldPassword),
		),
	}
}

func (s *registerScreen) Init() tea.Cmd {
	return s.form.Focus(0)
}

func (s *registerScreen) SetSize(width, height int) {}

func (s *registerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		submit, cmd := s.form.HandleKey(msg)
		if submit {
			return tea.Batch(cmd, s.submit())
		}
		return cmd
	case registerResultMsg:
		if msg.err == nil {
			s.phase = phaseSucceeded
			s.status = registerSucceeded
			return s.env.redirect(routeLogin)
		}
		s.phase = phaseFailed
		s.status = credentialFailure(msg.err, registerFailed, loginUnreachable)
		return nil
	}
	return s.form.UpdateInput(msg)
}

func (s *registerScreen) submit() tea.Cmd {
	ok, cmd := s.form.Validate()
	if !ok {
		return cmd
	}
	// Validate guarantees the age parses.
	age, _ := strconv.Atoi(strings.TrimSpace(s.form.Value(i18n.KeyAge)))
	reg := api.Registration{
		Username: s.form.Value(i18n.KeyUsername),
		Email:    strings.TrimSpace(s.form.Value(i18n.KeyEmail)),
		Age:      age,
		Gender:   s.form.Value(i18n.KeyGender),
		Password: s.form.Value(i18n.KeyPassword),
	}
	s.phase = phaseSubmitting
	return s.env.start(jobKindRegister, registerJob(s.env.client, reg))
}

func (s *registerScreen) View(labels *i18n.Selector) string {
	parts := []string{
		titleStyle.Render(labels.T(i18n.KeyRegister)),
		s.form.View(labels),
	}
	if s.phase == phaseSubmitting {
		parts = append(parts, helperStyle.Render("Creating account…"))
	}
	parts = append(parts, renderStatus(s.status))
	return joinNonEmpty(parts)
}
