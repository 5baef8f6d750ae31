// Package api is the HTTP adapter between the terminal client and the
// eventflow API. Every request goes through one dispatch path that injects
// the live bearer token, and every failure goes through one interceptor
// that turns it into a user-facing notice while still propagating the
// error to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Notices surfaced by the failure interceptor.
const (
	NoticeSessionExpired = "Session expired or unauthorized. Please log in again."
	NoticeUnexpected     = "An unexpected error occurred."
	NoticeNetwork        = "Network error or server unreachable."
)

// TokenSource provides the current bearer token, empty when logged out.
// It is read just before each dispatch, never snapshotted at construction.
type TokenSource interface {
	Token() string
}

// Notifier surfaces transient user-facing notices (the toast analog).
type Notifier interface {
	Notify(msg string)
}

// Client dispatches requests against the eventflow API.
//
// On 401 it invokes onUnauthorized, the hard session invalidation hook,
// before returning ErrUnauthorized, so callers never need bespoke 401
// handling. It never retries.
type Client struct {
	baseURL        string
	httpc          *http.Client
	tokens         TokenSource
	notify         Notifier
	onUnauthorized func()
}

// New builds a Client. No request timeout is configured; cancellation is
// the caller's context's business.
func New(baseURL string, tokens TokenSource, notify Notifier, onUnauthorized func()) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpc:          &http.Client{},
		tokens:         tokens,
		notify:         notify,
		onUnauthorized: onUnauthorized,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.notify.Notify(NoticeNetwork)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.notify.Notify(NoticeSessionExpired)
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			c.notify.Notify(payload.Message)
		} else {
			c.notify.Notify(NoticeUnexpected)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
