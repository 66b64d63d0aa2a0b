package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
)

type sender string

const (
	senderUser sender = "user"
	senderBot  sender = "bot"
)

type chatMessage struct {
	Sender sender
	Text   string
}

type chatFocus int

const (
	chatFocusInput chatFocus = iota
	chatFocusSend
)

// chatScreen keeps an append-only transcript for as long as it is mounted.
type chatScreen struct {
	env        screenEnv
	transcript []chatMessage
	input      textinput.Model
	focus      chatFocus
	viewport   viewport.Model
	width      int
}

func newChatScreen(env screenEnv) *chatScreen {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.Prompt = "› "
	input.Width = 50

	vp := viewport.New(60, 10)
	vp.MouseWheelEnabled = true

	s := &chatScreen{
		env:        env,
		transcript: []chatMessage{{Sender: senderBot, Text: chatGreeting}},
		input:      input,
		viewport:   vp,
		width:      60,
	}
	s.refresh()
	return s
}

func (s *chatScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *chatScreen) SetSize(width, height int) {
	s.width = width
	s.viewport.Width = width
	vpHeight := height - chatChrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	s.viewport.Height = vpHeight
	s.input.Width = width - 16
	if s.input.Width < 10 {
		s.input.Width = 10
	}
	s.refresh()
}

func (s *chatScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case chatReplyMsg:
		s.appendMessage(senderBot, chatReplyText(msg.reply, msg.err))
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *chatScreen) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if s.focus == chatFocusInput {
			s.focus = chatFocusSend
			s.input.Blur()
			return nil
		}
		s.focus = chatFocusInput
		return s.input.Focus()
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(key)
		return cmd
	case tea.KeyEnter:
		return s.send()
	}
	if s.focus == chatFocusSend {
		if key.Type == tea.KeySpace || key.String() == " " {
			return s.send()
		}
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(key)
	return cmd
}

// send appends the user's message before the request resolves; the reply
// is appended when its result reaches Update.
func (s *chatScreen) send() tea.Cmd {
	text := s.input.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	s.appendMessage(senderUser, text)
	s.input.SetValue("")
	req := api.ChatRequest{User: chatUser, Message: text, Language: chatLanguage}
	return s.env.start(jobKindChat, chatJob(s.env.client, req))
}

func (s *chatScreen) appendMessage(from sender, text string) {
	s.transcript = append(s.transcript, chatMessage{Sender: from, Text: text})
	s.refresh()
}

func (s *chatScreen) refresh() {
	s.viewport.SetContent(s.renderTranscript())
	s.viewport.GotoBottom()
}

func (s *chatScreen) bubbleWidth() int {
	w := s.width * 2 / 3
	if w < 20 {
		w = 20
	}
	return w
}

func (s *chatScreen) renderTranscript() string {
	wrap := s.bubbleWidth() - 2
	lines := make([]string, 0, len(s.transcript))
	for _, msg := range s.transcript {
		body := wordwrap.String(msg.Text, wrap)
		if msg.Sender == senderUser {
			lines = append(lines, lipgloss.PlaceHorizontal(s.width, lipgloss.Right, userBubbleStyle.Render(body)))
			continue
		}
		lines = append(lines, lipgloss.PlaceHorizontal(s.width, lipgloss.Left, botBubbleStyle.Render(body)))
	}
	return strings.Join(lines, "\n")
}

func (s *chatScreen) View(labels *i18n.Selector) string {
	composer := lipgloss.JoinHorizontal(
		lipgloss.Center,
		inputBoxStyle.Render(s.input.View()),
		" ",
		renderButton("Send", s.focus == chatFocusSend),
	)
	return joinNonEmpty([]string{
		titleStyle.Render(labels.T(i18n.KeyChatbot)),
		s.viewport.View(),
		composer,
		helperStyle.Render("Enter: send • Tab: focus Send • PgUp/PgDn: scroll"),
	})
}
