package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/wellness/internal/apitest"
)

func newTestClient(t *testing.T, srv *apitest.Server) Client {
	t.Helper()
	client, err := NewFromEnv(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	require.NoError(t, err)
	return client
}

func TestLoginSendsJSONCredentials(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	err := client.Login(context.Background(), Credentials{Email: apitest.Email, Password: apitest.Password})
	require.NoError(t, err)

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "/login", last.Path)
	assert.Equal(t, "application/json", last.ContentType)
	assert.Equal(t, apitest.Email, last.JSON["email"])
	assert.Equal(t, apitest.Password, last.JSON["password"])
	assert.NotEmpty(t, last.RequestID)
}

func TestLoginStringDetail(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	err := client.Login(context.Background(), Credentials{Email: apitest.Email, Password: "wrong"})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusUnauthorized, respErr.StatusCode)
	assert.Equal(t, DetailString, respErr.Detail.Kind)
	assert.Equal(t, "Invalid email or password", respErr.Detail.Text())
	assert.False(t, errors.Is(err, ErrUnreachable))
}

func TestLoginValidationDetail(t *testing.T) {
	srv := apitest.New(t)
	srv.Handle("/login", apitest.Detail(http.StatusUnprocessableEntity, []map[string]any{
		{"loc": []any{"body", "email"}, "msg": "a", "type": "value_error"},
		{"loc": []any{"body", 1}, "msg": "b"},
	}))
	client := newTestClient(t, srv)

	err := client.Login(context.Background(), Credentials{Email: "x", Password: "y"})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, DetailValidation, respErr.Detail.Kind)
	assert.Equal(t, []string{"a", "b"}, respErr.Detail.Messages())
	assert.Equal(t, "a, b", respErr.Detail.Text())
}

func TestTransportFailureWrapsUnreachable(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)
	srv.Close()

	err := client.Login(context.Background(), Credentials{Email: apitest.Email, Password: apitest.Password})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
}

func TestRegisterSendsIntegerAge(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	err := client.Register(context.Background(), Registration{
		Username: "asha",
		Email:    "asha@example.com",
		Age:      29,
		Gender:   "female",
		Password: "pw",
	})
	require.NoError(t, err)
	last, _ := srv.Last()
	assert.Equal(t, "/register", last.Path)
	assert.Equal(t, float64(29), last.JSON["age"])
	assert.Equal(t, "female", last.JSON["gender"])
}

func TestChatReturnsReply(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	reply, err := client.Chat(context.Background(), ChatRequest{User: "testuser", Message: "hello", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "You said: hello", reply)

	last, _ := srv.Last()
	assert.Equal(t, "testuser", last.JSON["user"])
	assert.Equal(t, "en", last.JSON["language"])
}

func TestChatUndecodableOKBodyYieldsEmptyReply(t *testing.T) {
	srv := apitest.New(t)
	srv.Handle("/chat", apitest.Raw(http.StatusOK, "text/plain", "pong"))
	client := newTestClient(t, srv)

	reply, err := client.Chat(context.Background(), ChatRequest{Message: "ping"})
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestChatErrorWithoutDetail(t *testing.T) {
	srv := apitest.New(t)
	srv.Handle("/chat", apitest.Raw(http.StatusBadGateway, "text/html", "<html>bad gateway</html>"))
	client := newTestClient(t, srv)

	_, err := client.Chat(context.Background(), ChatRequest{Message: "ping"})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
	assert.Equal(t, DetailUnknown, respErr.Detail.Kind)
	assert.Nil(t, respErr.Detail.Raw)
}

func TestRequestPasswordResetUsesMultipart(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	require.NoError(t, client.RequestPasswordReset(context.Background(), apitest.Email))
	last, _ := srv.Last()
	assert.True(t, strings.HasPrefix(last.ContentType, "multipart/form-data; boundary="), last.ContentType)
	assert.Equal(t, apitest.Email, last.Form.Get("email"))
}

func TestConfirmPasswordResetUsesURLEncodedForm(t *testing.T) {
	srv := apitest.New(t)
	client := newTestClient(t, srv)

	err := client.ConfirmPasswordReset(context.Background(), "expired", "n3w")
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Invalid or expired token", respErr.Detail.Verbatim())

	last, _ := srv.Last()
	assert.Equal(t, "application/x-www-form-urlencoded", last.ContentType)
	assert.Equal(t, "expired", last.Form.Get("token"))
	assert.Equal(t, "n3w", last.Form.Get("new_password"))
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("WELLNESS_API_URL", "")
	t.Setenv("WELLNESS_TIMEOUT", "")
	client, err := NewFromEnv(Config{})
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, client.BaseURL())
}

func TestNewFromEnvReadsEnvironment(t *testing.T) {
	t.Setenv("WELLNESS_API_URL", "https://wellness.example.com/api/")
	t.Setenv("WELLNESS_TIMEOUT", "5s")
	client, err := NewFromEnv(Config{})
	require.NoError(t, err)
	assert.Equal(t, "https://wellness.example.com/api", client.BaseURL())
	assert.Equal(t, 5*time.Second, client.(*httpClient).client.Timeout)
}

func TestNewFromEnvRejectsBadValues(t *testing.T) {
	_, err := NewFromEnv(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	t.Setenv("WELLNESS_TIMEOUT", "soon")
	_, err = NewFromEnv(Config{BaseURL: "http://localhost"})
	assert.Error(t, err)
}

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	assert.Same(t, custom, pickHTTPClient(custom, time.Second))
	assert.Equal(t, defaultHTTPTimeout, pickHTTPClient(nil, 0).Timeout)
}
