package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://127.0.0.1:8000"
	defaultHTTPTimeout = 30 * time.Second
)

// Config describes how to build an API client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

// ChatRequest is one message sent to the assistant.
type ChatRequest struct {
	User     string `json:"user"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

// Client talks to the wellness assistant API. Non-2xx answers come back as
// *ResponseError; transport failures wrap ErrUnreachable.
type Client interface {
	Login(ctx context.Context, creds Credentials) error
	Register(ctx context.Context, reg Registration) error
	Chat(ctx context.Context, req ChatRequest) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	BaseURL() string
}

// NewFromEnv fills unset fields from WELLNESS_API_URL and WELLNESS_TIMEOUT
// and builds a client.
func NewFromEnv(cfg Config) (Client, error) {
	base := cfg.BaseURL
	if base == "" {
		if env := os.Getenv("WELLNESS_API_URL"); env != "" {
			base = env
		} else {
			base = defaultBaseURL
		}
	}
	base = strings.TrimRight(base, "/")
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url %q must use http or https", base)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		if env := os.Getenv("WELLNESS_TIMEOUT"); env != "" {
			parsedTimeout, err := time.ParseDuration(env)
			if err != nil {
				return nil, fmt.Errorf("parse WELLNESS_TIMEOUT: %w", err)
			}
			timeout = parsedTimeout
		}
	}
	return &httpClient{
		base:   base,
		client: pickHTTPClient(cfg.HTTPClient, timeout),
	}, nil
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}
