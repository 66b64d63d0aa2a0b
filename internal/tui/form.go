package tui

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/i18n"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEmail
	fieldPassword
	fieldNumber
)

type formField struct {
	label i18n.Key
	kind  fieldKind
	input textinput.Model
}

func newField(label i18n.Key, kind fieldKind) formField {
	input := textinput.New()
	input.Width = 40
	input.Prompt = "› "
	switch kind {
	case fieldPassword:
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	case fieldNumber:
		input.CharLimit = 3
	}
	return formField{label: label, kind: kind, input: input}
}

// form is a vertical stack of required fields followed by a submit
// button. Enter in any field submits, Tab and the arrows move focus.
type form struct {
	fields  []formField
	focus   int
	hint    string
	hintFor int
}

func newForm(fields ...formField) form {
	return form{fields: fields, hintFor: -1}
}

func (f *form) buttonIndex() int {
	return len(f.fields)
}

func (f *form) Focus(idx int) tea.Cmd {
	if idx < 0 {
		idx = f.buttonIndex()
	}
	if idx > f.buttonIndex() {
		idx = 0
	}
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.fields {
		if i == idx {
			cmd = f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
	return cmd
}

func (f *form) Value(label i18n.Key) string {
	for _, field := range f.fields {
		if field.label == label {
			return field.input.Value()
		}
	}
	return ""
}

func (f *form) SetValue(label i18n.Key, value string) {
	for i := range f.fields {
		if f.fields[i].label == label {
			f.fields[i].input.SetValue(value)
		}
	}
}

// HandleKey reports whether the key asked for submission.
func (f *form) HandleKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		return true, nil
	case tea.KeyTab, tea.KeyDown:
		return false, f.Focus(f.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return false, f.Focus(f.focus - 1)
	}
	if f.focus == f.buttonIndex() {
		if key.Type == tea.KeySpace || key.String() == " " {
			return true, nil
		}
		return false, nil
	}
	if f.hintFor == f.focus {
		f.hint = ""
		f.hintFor = -1
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(key)
	return false, cmd
}

// UpdateInput forwards non-key messages such as cursor blinks.
func (f *form) UpdateInput(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.fields) {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// Validate checks every field is filled in and well-formed for its kind.
// The first offending field gets focus and a hint.
func (f *form) Validate() (bool, tea.Cmd) {
	for i, field := range f.fields {
		value := field.input.Value()
		hint := ""
		switch {
		case value == "":
			hint = hintRequired
		case field.kind == fieldEmail && !validEmail(value):
			hint = hintEmail
		case field.kind == fieldNumber && !validNumber(value):
			hint = hintNumber
		}
		if hint != "" {
			f.hint = hint
			f.hintFor = i
			return false, f.Focus(i)
		}
	}
	f.hint = ""
	f.hintFor = -1
	return true, nil
}

func validEmail(value string) bool {
	value = strings.TrimSpace(value)
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

func validNumber(value string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(value))
	return err == nil
}

func (f *form) View(labels *i18n.Selector) string {
	var b strings.Builder
	for i, field := range f.fields {
		label := labels.T(field.label)
		b.WriteString(fieldLabelStyle.Render(label))
		b.WriteRune('\n')
		input := field.input
		input.Placeholder = label
		b.WriteString(inputBoxStyle.Render(input.View()))
		b.WriteRune('\n')
		if f.hintFor == i && f.hint != "" {
			b.WriteString(hintStyle.Render(f.hint))
			b.WriteRune('\n')
		}
	}
	b.WriteString(renderButton(labels.T(i18n.KeySubmit), f.focus == f.buttonIndex()))
	return b.String()
}
