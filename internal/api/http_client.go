package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

type httpClient struct {
	base   string
	client *http.Client
}

func (c *httpClient) BaseURL() string {
	return c.base
}

func (c *httpClient) Login(ctx context.Context, creds Credentials) error {
	body, contentType, err := jsonBody(creds)
	if err != nil {
		return err
	}
	_, err = c.post(ctx, "/login", contentType, body)
	return err
}

func (c *httpClient) Register(ctx context.Context, reg Registration) error {
	body, contentType, err := jsonBody(reg)
	if err != nil {
		return err
	}
	_, err = c.post(ctx, "/register", contentType, body)
	return err
}

// Chat returns the assistant's reply. An OK body that does not decode
// yields an empty reply rather than an error.
func (c *httpClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	body, contentType, err := jsonBody(req)
	if err != nil {
		return "", err
	}
	raw, err := c.post(ctx, "/chat", contentType, body)
	if err != nil {
		return "", err
	}
	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[api] chat reply not decodable: %v", err)
		return "", nil
	}
	return parsed.Response, nil
}

func (c *httpClient) RequestPasswordReset(ctx context.Context, email string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("email", email); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	_, err := c.post(ctx, "/request-password-reset", writer.FormDataContentType(), &buf)
	return err
}

func (c *httpClient) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	form := url.Values{}
	form.Set("token", token)
	form.Set("new_password", newPassword)
	_, err := c.post(ctx, "/reset-password/confirm", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	return err
}

func jsonBody(payload any) (io.Reader, string, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(buf), "application/json", nil
}

func (c *httpClient) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, body)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[api] POST %s failed (id=%s): %v", path, requestID, err)
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[api] POST %s body read failed (id=%s): %v", path, requestID, err)
		return nil, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	log.Printf("[api] POST %s -> %d (id=%s, duration=%s)", path, resp.StatusCode, requestID, time.Since(started))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     DecodeDetail(raw),
		}
	}
	return raw, nil
}
