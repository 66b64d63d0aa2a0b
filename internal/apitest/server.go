// Package apitest serves a fake wellness API for tests. It implements the
// login, register, chat and password-reset endpoints with fixture data and
// records every request it receives.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Fixture credentials accepted by the default handlers.
const (
	Email      = "demo@example.com"
	Password   = "secret"
	ValidToken = "valid-token"
)

// Request is a recorded call.
type Request struct {
	Path        string
	ContentType string
	RequestID   string
	JSON        map[string]any
	Form        url.Values
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	overrides map[string]http.HandlerFunc
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{overrides: map[string]http.HandlerFunc{}}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/login", s.dispatch("/login", handleLogin))
	r.Post("/register", s.dispatch("/register", handleRegister))
	r.Post("/chat", s.dispatch("/chat", handleChat))
	r.Post("/request-password-reset", s.dispatch("/request-password-reset", handleResetRequest))
	r.Post("/reset-password/confirm", s.dispatch("/reset-password/confirm", handleResetConfirm))
	return r
}

// Handle replaces the handler for path.
func (s *Server) Handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = h
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request.
func (s *Server) Last() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) dispatch(path string, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		h, ok := s.overrides[path]
		s.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		fallback(w, r)
	}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec := Request{
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
		}
		mediaType, _, _ := mime.ParseMediaType(rec.ContentType)
		switch mediaType {
		case "application/json":
			_ = json.Unmarshal(body, &rec.JSON)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			clone := r.Clone(r.Context())
			clone.Body = io.NopCloser(bytes.NewReader(body))
			if err := clone.ParseMultipartForm(1 << 20); err != nil && mediaType == "multipart/form-data" {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			rec.Form = clone.PostForm
			if clone.MultipartForm != nil {
				rec.Form = url.Values(clone.MultipartForm.Value)
			}
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

// JSON returns a handler that always answers status with body encoded as JSON.
func JSON(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	}
}

// Detail returns a handler answering status with {"detail": detail}.
func Detail(status int, detail any) http.HandlerFunc {
	return JSON(status, map[string]any{"detail": detail})
}

// Raw returns a handler answering status with a literal body.
func Raw(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func validationError(field, msg string) map[string]any {
	return map[string]any{
		"detail": []map[string]any{
			{"loc": []string{"body", field}, "msg": msg, "type": "value_error"},
		},
	}
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("body", "invalid JSON"))
		return
	}
	if !strings.Contains(creds.Email, "@") {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("email", "value is not a valid email address"))
		return
	}
	if creds.Email != Email || creds.Password != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Login successful", "username": "demo"})
}

func handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("age", "Input should be a valid integer"))
		return
	}
	if reg.Email == Email {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Email already registered"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": 2, "username": reg.Username, "email": reg.Email})
}

func handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User     string `json:"user"`
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid chat payload"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"response": fmt.Sprintf("You said: %s", req.Message)})
}

func handleResetRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "expected multipart form"})
		return
	}
	if r.FormValue("email") != Email {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Password reset email sent"})
}

func handleResetConfirm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "expected form body"})
		return
	}
	if r.PostForm.Get("token") != ValidToken {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Invalid or expired token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Password updated"})
}
