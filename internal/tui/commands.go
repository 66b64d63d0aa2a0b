package tui

import (
	"context"
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/api"
)

type loginResultMsg struct{ err error }

type registerResultMsg struct{ err error }

type resetRequestResultMsg struct{ err error }

type resetConfirmResultMsg struct{ err error }

type chatReplyMsg struct {
	reply string
	err   error
}

func loginJob(client api.Client, creds api.Credentials) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		err := client.Login(ctx, creds)
		return loginResultMsg{err: err}, err
	}
}

func registerJob(client api.Client, reg api.Registration) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		err := client.Register(ctx, reg)
		return registerResultMsg{err: err}, err
	}
}

func resetRequestJob(client api.Client, email string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		err := client.RequestPasswordReset(ctx, email)
		return resetRequestResultMsg{err: err}, err
	}
}

func resetConfirmJob(client api.Client, token, newPassword string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		err := client.ConfirmPasswordReset(ctx, token, newPassword)
		return resetConfirmResultMsg{err: err}, err
	}
}

func chatJob(client api.Client, req api.ChatRequest) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		reply, err := client.Chat(ctx, req)
		return chatReplyMsg{reply: reply, err: err}, err
	}
}

// credentialFailure classifies a failed login or registration: validation
// lists are joined, string details shown as is, anything else generic.
func credentialFailure(err error, generic, unreachable string) string {
	if errors.Is(err, api.ErrUnreachable) {
		return unreachable
	}
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.Detail.Kind {
		case api.DetailValidation, api.DetailString:
			return markFailure + " " + respErr.Detail.Text()
		}
	}
	return generic
}

func resetRequestFailure(err error) string {
	if errors.Is(err, api.ErrUnreachable) {
		return resetRequestUnreachable
	}
	var respErr *api.ResponseError
	if errors.As(err, &respErr) && respErr.Detail.Kind == api.DetailString && respErr.Detail.Message != "" {
		return markFailure + " " + respErr.Detail.Message
	}
	return resetRequestFailed
}

// resetConfirmFailure shows the detail without interpreting its shape.
func resetConfirmFailure(err error) string {
	if errors.Is(err, api.ErrUnreachable) {
		return resetConfirmUnreachable
	}
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		detail := respErr.Detail.Verbatim()
		if detail == "" {
			detail = respErr.Status
		}
		return markFailure + " " + detail
	}
	return resetConfirmUnreachable
}

func chatReplyText(reply string, err error) string {
	if err == nil {
		if reply == "" {
			return chatEmptyReply
		}
		return reply
	}
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		detail := respErr.Detail.Text()
		if detail == "" {
			detail = strconv.Itoa(respErr.StatusCode)
		}
		return markFailure + " Error: " + detail
	}
	return chatUnreachable
}
